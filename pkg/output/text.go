package output

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
)

// messagePreviewLen is how many characters of an anomaly message the text
// report shows.
const messagePreviewLen = 100

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "logsift: %d logs, %d error sequence(s), %d anomaly flag(s)\n",
		report.Summary.TotalLogs,
		len(report.ErrorAnalysis.ErrorSequences),
		len(report.ErrorAnalysis.UnusualPatterns))
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Log Analysis Report ===")
	fmt.Fprintf(w, "Total logs analyzed: %d\n", report.Summary.TotalLogs)
	fmt.Fprintf(w, "Unique services: %d\n", report.Summary.UniqueServices)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Log Levels:")
	for _, level := range sortedKeys(report.Summary.LogLevels) {
		fmt.Fprintf(w, "  - %s: %d\n", level, report.Summary.LogLevels[level])
	}

	f.formatErrorAnalysis(report, w)

	if f.opts.Verbose {
		f.formatServiceMetrics(report, w)
		f.formatMetadata(report, w)
	}

	return nil
}

func (f *TextFormatter) formatErrorAnalysis(report *Report, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Error Analysis:")

	sequences := report.ErrorAnalysis.ErrorSequences
	patterns := report.ErrorAnalysis.UnusualPatterns

	if len(sequences) == 0 && len(patterns) == 0 {
		fmt.Fprintln(w, "  No error sequences or unusual patterns detected")
		return
	}

	if len(sequences) > 0 {
		fmt.Fprintln(w, "  Detected error sequences:")
		for _, seq := range sequences {
			fmt.Fprintf(w, "    - Service: %s, Count: %d, From: %s to %s\n",
				seq.Service, seq.Count, seq.StartTime, seq.EndTime)
			if f.opts.Verbose {
				for _, msg := range seq.SampleMessages {
					fmt.Fprintf(w, "      %s\n", msg)
				}
			}
		}
	}

	if len(patterns) > 0 {
		fmt.Fprintln(w, "  Unusual patterns detected:")
		for _, flag := range patterns {
			fmt.Fprintf(w, "    - %s: %s (count: %d, severity: %s)\n",
				humanizeType(flag.Type),
				previewMessage(flag.Message),
				flag.Count, flag.Severity)
		}
	}
}

func (f *TextFormatter) formatServiceMetrics(report *Report, w io.Writer) {
	durations := report.ServiceMetrics.AverageDurations
	if len(durations) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Service Metrics (average duration):")
	for _, svc := range sortedDurationKeys(durations) {
		fmt.Fprintf(w, "  - %s: %.2f\n", svc, durations[svc])
	}
}

func (f *TextFormatter) formatMetadata(report *Report, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Source: %s (%s format)\n", report.Metadata.Source, report.Metadata.Format)
	fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
}

// humanizeType renders a flag type like "repeated_error" as "Repeated Error".
func humanizeType(t string) string {
	words := strings.Split(strings.ReplaceAll(t, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// previewMessage returns the first messagePreviewLen characters of a
// message, with an ellipsis when truncated.
func previewMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= messagePreviewLen {
		return msg
	}
	return string(runes[:messagePreviewLen]) + "..."
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedDurationKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
