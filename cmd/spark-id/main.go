package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand assembles the spark-id command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "spark-id",
		Long:         "spark-id generates, parses, and validates short cryptographically random identifiers with optional type prefixes.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		NewGenerateCommand(),
		NewParseCommand(),
		NewValidateCommand(),
		NewStatsCommand(),
		NewServeCommand(),
	)

	return rootCmd
}
