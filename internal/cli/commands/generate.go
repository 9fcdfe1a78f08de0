package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"logsift/pkg/config"
	"logsift/pkg/detector"
	"logsift/pkg/generator"
)

// GenerateOptions holds command-line options for the generate command.
type GenerateOptions struct {
	Config   string
	Duration time.Duration
	Rate     int
	Format   string
	Output   string
	Console  bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate synthetic service logs",
		Long: `Generate synthetic service logs in the analyzer's wire formats.

Entries are attributed to a random service with a weighted-random level,
and messages are filled from per-service templates. One wire format
(txt, json, or csv) is chosen per run unless --format pins it. Burst mode
temporarily multiplies the emission rate.

Configuration comes from defaults, an optional YAML file, and LOGSIFT_*
environment overrides; flags take final precedence.

Example:
  logsift generate --duration 30s --format json --output sample.json
  logsift generate --config logsift.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().DurationVarP(&opts.Duration, "duration", "d", 0, "How long to run (0 = until interrupted)")
	cmd.Flags().IntVar(&opts.Rate, "rate", 0, "Logs per second (overrides config)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Wire format (txt|json|csv); default random per run")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (overrides config)")
	cmd.Flags().BoolVar(&opts.Console, "console", false, "Echo entries to stdout (overrides config)")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *GenerateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyGenerateFlags(cmd, opts, &cfg.Generator)

	gen, err := generator.New(&cfg.Generator)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	format := gen.PickFormat()
	if opts.Format != "" {
		f, ok := detector.Parse(opts.Format)
		if !ok {
			return fmt.Errorf("unknown format %q (use txt, json, or csv)", opts.Format)
		}
		format = f
	}

	var console io.Writer
	if cfg.Generator.ConsoleOutput {
		console = cmd.OutOrStdout()
	}
	writer, err := generator.NewWriter(cfg.Generator.OutputFile, format, console)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer writer.Close()

	fmt.Fprintf(os.Stderr, "Starting log generator: %d logs/second, %s format\n", cfg.Generator.Rate, format)
	if writer.Path() != "" {
		fmt.Fprintf(os.Stderr, "Writing to %s\n", writer.Path())
	}
	if cfg.Generator.Bursts.Enabled {
		fmt.Fprintf(os.Stderr, "Burst mode enabled: x%d rate for %ds every ~%d minute(s)\n",
			cfg.Generator.Bursts.Multiplier,
			cfg.Generator.Bursts.Duration,
			cfg.Generator.Bursts.Frequency)
	}

	// Stop cleanly on Ctrl-C
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	count, err := gen.Run(ctx, opts.Duration, format, writer)
	fmt.Fprintf(os.Stderr, "Generated %d log entries\n", count)
	return err
}

// applyGenerateFlags lets explicit flags override config values.
func applyGenerateFlags(cmd *cobra.Command, opts *GenerateOptions, gen *config.GeneratorConfig) {
	if opts.Rate > 0 {
		gen.Rate = opts.Rate
	}
	if opts.Output != "" {
		gen.OutputFile = opts.Output
	}
	if cmd.Flags().Changed("console") {
		gen.ConsoleOutput = opts.Console
	}
}
