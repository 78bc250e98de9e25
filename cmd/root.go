package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"phishguard/analyzer"
)

var rootCmd = &cobra.Command{
	Use:   "phishguard",
	Short: "Heuristic phishing risk scoring for URLs",
	Long: `Phishguard assigns a risk score to a URL by running a fixed battery of
structural checks (protocol, subdomains, IP-literal hosts, suspicious
keywords and more), optionally cross-checked against the abuse.ch URLhaus
threat database. Run it as an HTTP API with "serve" or analyze a single
URL from the terminal with "check".`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = analyzer.Version
}
