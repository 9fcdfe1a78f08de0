package analyzer

import (
	"logsift/pkg/parser"
)

// Anomaly thresholds. Both comparisons are strictly greater-than: a
// message seen exactly repeatThreshold times produces no flag, and one
// seen exactly highSeverityThreshold times stays medium.
const (
	repeatThreshold       = 5
	highSeverityThreshold = 10
)

// AnomalyTypeRepeatedError is the flag type for error messages recurring
// above the repeat threshold.
const AnomalyTypeRepeatedError = "repeated_error"

// Anomaly severities.
const (
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// AnomalyDetector builds a frequency table keyed by exact ERROR message
// text and flags messages that recur above the repeat threshold.
type AnomalyDetector struct {
	counts map[string]int
	order  []string // first-occurrence order, for deterministic output
}

// NewAnomalyDetector creates an empty detector.
func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{counts: make(map[string]int)}
}

// Process handles a single record. Non-ERROR records are ignored.
func (d *AnomalyDetector) Process(rec *parser.Record) {
	if !rec.IsError() {
		return
	}
	if _, seen := d.counts[rec.Message]; !seen {
		d.order = append(d.order, rec.Message)
	}
	d.counts[rec.Message]++
}

// Flags returns one AnomalyFlag per message above the repeat threshold,
// in first-occurrence order.
func (d *AnomalyDetector) Flags() []AnomalyFlag {
	var flags []AnomalyFlag
	for _, msg := range d.order {
		count := d.counts[msg]
		if count <= repeatThreshold {
			continue
		}

		severity := SeverityMedium
		if count > highSeverityThreshold {
			severity = SeverityHigh
		}
		flags = append(flags, AnomalyFlag{
			Type:     AnomalyTypeRepeatedError,
			Message:  msg,
			Count:    count,
			Severity: severity,
		})
	}
	return flags
}

// Reset clears the frequency table for reuse.
func (d *AnomalyDetector) Reset() {
	d.counts = make(map[string]int)
	d.order = nil
}
