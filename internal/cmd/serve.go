package cmd

import (
	"github.com/spf13/cobra"

	"fundpulse/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analytics HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApplication()
		if err != nil {
			return err
		}
		return application.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
