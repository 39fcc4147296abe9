package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fundpulse/internal/analytics"
	"fundpulse/internal/config"
	"fundpulse/internal/dataset"
)

var inspectDataset string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load the dataset and print summary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := inspectDataset
		if path == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path = cfg.Dataset.Path
		}

		table, err := dataset.Load(path, slog.Default())
		if err != nil {
			return err
		}

		overall := analytics.NewOverall(table)
		byMonth := overall.FundingByMonth()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dataset:           %s\n", path)
		fmt.Fprintf(out, "rows:              %d\n", table.Len())
		if len(byMonth) > 0 {
			first, last := byMonth[0], byMonth[len(byMonth)-1]
			fmt.Fprintf(out, "span:              %s to %s\n", first.Label, last.Label)
		}
		fmt.Fprintf(out, "funded startups:   %d\n", overall.FundedStartupCount())
		fmt.Fprintf(out, "distinct investors: %d\n", len(overall.DistinctInvestors()))
		fmt.Fprintf(out, "total invested:    %s\n", overall.TotalInvested().String())
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectDataset, "dataset", "d", "", "dataset file (defaults to configured path)")
	rootCmd.AddCommand(inspectCmd)
}
