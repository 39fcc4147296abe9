// Package cmd defines the fundpulse command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fundpulse",
	Short: "Startup funding analytics service",
	Long: `FundPulse serves descriptive analytics over a historical dataset of
startup funding events. The dataset is loaded once at startup and all
queries run in memory.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
