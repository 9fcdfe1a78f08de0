// Package output provides report assembly and rendering for analysis
// results.
package output

import (
	"time"

	"logsift/pkg/analyzer"
)

// Report is the structured analysis report. Its JSON shape is the wire
// contract consumed by presentation layers and webhooks.
type Report struct {
	Summary        Summary        `json:"summary"`
	ErrorAnalysis  ErrorAnalysis  `json:"error_analysis"`
	ServiceMetrics ServiceMetrics `json:"service_metrics"`

	// Metadata provides context about the run. It is rendered only in
	// verbose text output, never in the wire report.
	Metadata Metadata `json:"-"`
}

// Summary provides aggregate statistics.
type Summary struct {
	TotalLogs      int            `json:"total_logs"`
	LogLevels      map[string]int `json:"log_levels"`
	UniqueServices int            `json:"unique_services"`
}

// ErrorAnalysis groups the sequence and anomaly findings.
type ErrorAnalysis struct {
	ErrorSequences  []analyzer.ErrorSequence `json:"error_sequences"`
	UnusualPatterns []analyzer.AnomalyFlag   `json:"unusual_patterns"`
}

// ServiceMetrics holds per-service aggregate metrics.
type ServiceMetrics struct {
	AverageDurations map[string]float64 `json:"average_durations"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source is the log file that was analyzed.
	Source string

	// Format is the declared wire format.
	Format string

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time

	// Duration is how long loading and analysis took.
	Duration time.Duration
}

// NewReport assembles a Report from an analysis result. Pure composition:
// nothing is recomputed.
func NewReport(result *analyzer.Result) *Report {
	sequences := result.ErrorSequences
	if sequences == nil {
		sequences = []analyzer.ErrorSequence{}
	}
	patterns := result.Anomalies
	if patterns == nil {
		patterns = []analyzer.AnomalyFlag{}
	}

	return &Report{
		Summary: Summary{
			TotalLogs:      result.TotalRecords,
			LogLevels:      result.LevelCounts,
			UniqueServices: result.UniqueServices,
		},
		ErrorAnalysis: ErrorAnalysis{
			ErrorSequences:  sequences,
			UnusualPatterns: patterns,
		},
		ServiceMetrics: ServiceMetrics{
			AverageDurations: result.AverageDurations,
		},
	}
}

// HasFindings reports whether any error sequences or anomalies were
// detected.
func (r *Report) HasFindings() bool {
	return len(r.ErrorAnalysis.ErrorSequences) > 0 || len(r.ErrorAnalysis.UnusualPatterns) > 0
}
