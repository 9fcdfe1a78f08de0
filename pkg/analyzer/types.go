// Package analyzer derives operational insight from a parsed record stream.
package analyzer

// ErrorSequence summarizes a contiguous run of ERROR records that reached
// the configured window size. It is derived fresh on each analysis and
// never persisted.
type ErrorSequence struct {
	// StartTime and EndTime are the timestamps of the first and last
	// records in the run, as opaque tokens from the source stream.
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	// Count is the number of records in the run.
	Count int `json:"count"`

	// Service is the first record's service label.
	Service string `json:"service"`

	// SampleMessages holds the messages of up to the first 3 records.
	SampleMessages []string `json:"sample_messages"`
}

// AnomalyFlag signals that one error message text recurs above the repeat
// threshold.
type AnomalyFlag struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Count    int    `json:"count"`
	Severity string `json:"severity"`
}

// Result is the complete analysis output for one record store.
type Result struct {
	// TotalRecords is the number of successfully parsed records.
	TotalRecords int

	// LevelCounts maps severity level to record count. The counts sum
	// to TotalRecords.
	LevelCounts map[string]int

	// UniqueServices is the number of distinct non-absent service names.
	UniqueServices int

	// AverageDurations maps service label to mean duration, for services
	// with at least one duration-bearing record.
	AverageDurations map[string]float64

	// ErrorSequences holds emitted error-burst summaries, in stream order.
	ErrorSequences []ErrorSequence

	// Anomalies holds repeated-message flags, in first-occurrence order.
	Anomalies []AnomalyFlag
}

// HasFindings reports whether any error sequences or anomalies were
// detected.
func (r *Result) HasFindings() bool {
	return len(r.ErrorSequences) > 0 || len(r.Anomalies) > 0
}
