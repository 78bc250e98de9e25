package cmd

import (
	"github.com/spf13/cobra"

	"phishguard/analyzer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := analyzer.LoadConfig()
		return analyzer.NewServer(cfg).ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
