package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"logsift/pkg/analyzer"
)

func sampleResult() *analyzer.Result {
	return &analyzer.Result{
		TotalRecords:   120,
		LevelCounts:    map[string]int{"INFO": 100, "ERROR": 20},
		UniqueServices: 4,
		AverageDurations: map[string]float64{
			"payment-service": 41.5,
		},
		ErrorSequences: []analyzer.ErrorSequence{{
			StartTime:      "t10",
			EndTime:        "t14",
			Count:          5,
			Service:        "auth-service",
			SampleMessages: []string{"boom 1", "boom 2", "boom 3"},
		}},
		Anomalies: []analyzer.AnomalyFlag{{
			Type:     analyzer.AnomalyTypeRepeatedError,
			Message:  "connection refused",
			Count:    7,
			Severity: analyzer.SeverityMedium,
		}},
	}
}

func formatText(t *testing.T, report *Report, opts FormatOptions) string {
	t.Helper()
	var buf bytes.Buffer
	f := NewTextFormatter(opts)
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	return buf.String()
}

func TestTextFormatter_Full(t *testing.T) {
	got := formatText(t, NewReport(sampleResult()), FormatOptions{})

	for _, want := range []string{
		"=== Log Analysis Report ===",
		"Total logs analyzed: 120",
		"Unique services: 4",
		"- INFO: 100",
		"- ERROR: 20",
		"Service: auth-service, Count: 5, From: t10 to t14",
		"Repeated Error: connection refused (count: 7, severity: medium)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, got)
		}
	}

	// Service metrics only appear in verbose mode.
	if strings.Contains(got, "payment-service") {
		t.Errorf("non-verbose output contains service metrics:\n%s", got)
	}
}

func TestTextFormatter_Verbose(t *testing.T) {
	got := formatText(t, NewReport(sampleResult()), FormatOptions{Verbose: true})

	for _, want := range []string{
		"payment-service: 41.50",
		"boom 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("verbose output missing %q\noutput:\n%s", want, got)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	got := formatText(t, NewReport(sampleResult()), FormatOptions{Quiet: true})

	want := "logsift: 120 logs, 1 error sequence(s), 1 anomaly flag(s)\n"
	if got != want {
		t.Errorf("quiet output = %q, want %q", got, want)
	}
}

func TestTextFormatter_NoFindings(t *testing.T) {
	result := &analyzer.Result{
		TotalRecords: 3,
		LevelCounts:  map[string]int{"INFO": 3},
	}

	got := formatText(t, NewReport(result), FormatOptions{})
	if !strings.Contains(got, "No error sequences or unusual patterns detected") {
		t.Errorf("output missing no-findings line:\n%s", got)
	}
}

func TestTextFormatter_LongMessageTruncated(t *testing.T) {
	long := strings.Repeat("x", 150)
	result := &analyzer.Result{
		Anomalies: []analyzer.AnomalyFlag{{
			Type:     analyzer.AnomalyTypeRepeatedError,
			Message:  long,
			Count:    6,
			Severity: analyzer.SeverityMedium,
		}},
	}

	got := formatText(t, NewReport(result), FormatOptions{})

	if strings.Contains(got, long) {
		t.Error("output contains untruncated message")
	}
	if !strings.Contains(got, strings.Repeat("x", 100)+"...") {
		t.Errorf("output missing 100-char preview with ellipsis:\n%s", got)
	}
}

func TestHumanizeType(t *testing.T) {
	tests := []struct{ in, want string }{
		{"repeated_error", "Repeated Error"},
		{"single", "Single"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := humanizeType(tt.in); got != tt.want {
			t.Errorf("humanizeType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
