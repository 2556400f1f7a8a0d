package main

import (
	"os"

	"github.com/spf13/cobra"

	"hits/cmd/migrate"
	"hits/cmd/seed"
)

var rootCmd = &cobra.Command{
	Use:   "hitsctl",
	Short: "Operational tooling for the hits counter service",
}

func main() {
	rootCmd.AddCommand(migrate.Command)
	rootCmd.AddCommand(seed.Command)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
