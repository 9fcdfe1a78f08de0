package analyzer

import (
	"logsift/pkg/parser"
)

// Analyzer runs every aggregator and detector over a completed, immutable
// record store. The store is write-once during parsing and read-only
// here; analyses are sequential and have no cross-dependencies.
type Analyzer struct {
	records    []*parser.Record
	windowSize int
}

// Option configures analyzer behavior.
type Option func(*Analyzer)

// WithWindowSize sets the error-sequence window size (default 5).
// Values below 1 are ignored.
func WithWindowSize(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.windowSize = n
		}
	}
}

// New creates an analyzer over a parsed record store.
func New(records []*parser.Record, opts ...Option) *Analyzer {
	a := &Analyzer{
		records:    records,
		windowSize: DefaultWindowSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes all aggregators and detectors and returns the combined
// result. Derived entities are built fresh on every call; no state
// survives between runs.
func (a *Analyzer) Run() *Result {
	sequences := NewSequenceDetector(a.windowSize)
	anomalies := NewAnomalyDetector()
	for _, rec := range a.records {
		sequences.Process(rec)
		anomalies.Process(rec)
	}

	return &Result{
		TotalRecords:     len(a.records),
		LevelCounts:      LevelCounts(a.records),
		UniqueServices:   UniqueServices(a.records),
		AverageDurations: AverageDurationByService(a.records),
		ErrorSequences:   sequences.Sequences(),
		Anomalies:        anomalies.Flags(),
	}
}
