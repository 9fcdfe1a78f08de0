package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"logsift/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logsift configuration file without generating anything.

Checks:
  - YAML syntax
  - Level distribution weights (total must be positive)
  - Wire format names
  - Burst pacing settings
  - Output configuration`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	gen := cfg.Generator
	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Rate:     %d logs/second\n", gen.Rate)
	fmt.Fprintf(w, "  Levels:   %s\n", strings.Join(gen.Levels, ", "))
	fmt.Fprintf(w, "  Formats:  %s\n", strings.Join(gen.Formats, ", "))
	fmt.Fprintf(w, "  Services: %d\n", len(gen.Services))

	if gen.Bursts.Enabled {
		fmt.Fprintf(w, "  Bursts:   x%d rate for %ds every ~%d minute(s)\n",
			gen.Bursts.Multiplier, gen.Bursts.Duration, gen.Bursts.Frequency)
	} else {
		fmt.Fprintf(w, "  Bursts:   disabled\n")
	}

	if gen.OutputFile != "" {
		fmt.Fprintf(w, "  Output:   %s\n", gen.OutputFile)
	} else {
		fmt.Fprintf(w, "  Output:   console only\n")
	}

	return nil
}
