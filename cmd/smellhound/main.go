// Package main provides the entry point for the smellhound CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/smellhound/cmd/smellhound/commands"
	"github.com/Sumatoshi-tech/smellhound/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smellhound",
		Short: "Smellhound - code smell pattern and metric analysis",
		Long: `Smellhound detects code smell patterns and computes structural metrics
over serialized UAST documents.

Commands:
  list      Show the analyzer catalog
  check     Run the analyzer working set against a UAST document`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "smellhound %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
