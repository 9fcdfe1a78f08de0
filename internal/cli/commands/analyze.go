package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"logsift/pkg/analyzer"
	"logsift/pkg/detector"
	"logsift/pkg/output"
	"logsift/pkg/parser"
	"logsift/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Output     string
	WindowSize int
	Verbose    bool
	Quiet      bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// Webhook trigger policies.
const (
	WebhookTriggerOnFindings = "on_findings"
	WebhookTriggerAlways     = "always"
	WebhookTriggerNever      = "never"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <log-file>",
		Short: "Analyze a log file and print a summary report",
		Long: `Analyze a service log file and print a summary report.

The wire format is chosen from the file extension (.json, .csv, anything
else is txt; a trailing .gz is decompressed first) and applies to the whole
file. Lines that fail the format's decoder are silently dropped.

Reports:
  - Per-level log counts and unique service count
  - Contiguous error bursts of the configured window size
  - Error messages repeated above the anomaly threshold
  - Per-service average durations (when records carry durations)

Exit codes:
  0 - No error sequences or anomalies detected
  1 - Error sequences or anomalies detected
  2 - Missing input or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.WindowSize, "window-size", analyzer.DefaultWindowSize, "Contiguous ERROR run length that emits an error sequence")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show sample messages, service metrics, and run metadata")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", WebhookTriggerOnFindings, "When to fire webhook (on_findings|always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	started := time.Now()

	// The declared format is fixed for the entire file
	format := detector.Detect(logFile)

	records, err := parser.ReadRecords(ctx, logFile, format)
	if err != nil {
		return fmt.Errorf("loading logs: %w", err)
	}

	result := analyzer.New(records, analyzer.WithWindowSize(opts.WindowSize)).Run()

	report := output.NewReport(result)
	report.Metadata = output.Metadata{
		Source:     logFile,
		Format:     string(format),
		AnalyzedAt: time.Now(),
		Duration:   time.Since(started),
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhook (errors logged but don't fail analysis)
	sendWebhook(ctx, opts, report)

	if report.HasFindings() {
		ExitCode = 1
	}

	return nil
}

func createFormatter(opts *AnalyzeOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhook posts the report to the configured webhook endpoint.
// Errors are logged to stderr but never fail the analysis.
func sendWebhook(ctx context.Context, opts *AnalyzeOptions, report *output.Report) {
	if opts.WebhookURL == "" {
		return
	}
	if !shouldFireWebhook(opts.WebhookTrigger, report.HasFindings()) {
		return
	}

	client := webhook.NewClient()
	resp := client.Send(ctx, report, webhook.SendOptions{
		URL:   opts.WebhookURL,
		Token: opts.WebhookToken,
	})

	if resp.Success() {
		fmt.Fprintf(os.Stderr, "Webhook: sent (%d, %s)\n", resp.StatusCode, resp.Duration)
	} else {
		fmt.Fprintf(os.Stderr, "Webhook: failed (%v)\n", resp.Error)
	}
}

// shouldFireWebhook determines if the webhook fires for this report.
func shouldFireWebhook(trigger string, hasFindings bool) bool {
	switch trigger {
	case WebhookTriggerAlways:
		return true
	case WebhookTriggerNever:
		return false
	default:
		return hasFindings
	}
}
