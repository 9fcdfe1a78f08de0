// Package cli provides the command-line interface for logsift.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"logsift/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logsift",
		Short: "Analyze service log files and generate synthetic logs",
		Long: `Logsift is an offline log analysis engine. It runs once over a finite
log file, normalizes txt, json, or csv lines into structured records, and
reports:
  - Per-level log counts
  - Per-service average durations
  - Contiguous error bursts (error sequences)
  - Repeated error messages (anomaly flags)

It also ships a synthetic log producer for generating sample inputs in the
same wire formats.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
