package analyzer

import (
	"logsift/pkg/parser"
)

// DefaultWindowSize is the contiguous ERROR run length that triggers an
// ErrorSequence emission.
const DefaultWindowSize = 5

// maxSampleMessages caps the messages carried by an emitted sequence.
const maxSampleMessages = 3

// SequenceDetector scans for contiguous runs of ERROR records. A run that
// reaches the window size is emitted and the run restarts, so a run of
// twice the window length yields exactly two non-overlapping sequences.
// Any non-ERROR record discards a partial run without emitting, and runs
// still open at end-of-stream are never flushed.
type SequenceDetector struct {
	windowSize int

	run       []*parser.Record
	sequences []ErrorSequence
}

// NewSequenceDetector creates a detector with the given window size.
// Sizes below 1 fall back to DefaultWindowSize.
func NewSequenceDetector(windowSize int) *SequenceDetector {
	if windowSize < 1 {
		windowSize = DefaultWindowSize
	}
	return &SequenceDetector{windowSize: windowSize}
}

// Process handles a single record, updating run state and emitting a
// sequence when the current run reaches the window size.
func (d *SequenceDetector) Process(rec *parser.Record) {
	if !rec.IsError() {
		d.run = d.run[:0]
		return
	}

	d.run = append(d.run, rec)
	if len(d.run) < d.windowSize {
		return
	}

	sampleCount := min(maxSampleMessages, len(d.run))
	samples := make([]string, 0, sampleCount)
	for _, r := range d.run[:sampleCount] {
		samples = append(samples, r.Message)
	}

	d.sequences = append(d.sequences, ErrorSequence{
		StartTime:      d.run[0].Timestamp,
		EndTime:        d.run[len(d.run)-1].Timestamp,
		Count:          len(d.run),
		Service:        d.run[0].ServiceLabel(),
		SampleMessages: samples,
	})
	d.run = d.run[:0]
}

// Sequences returns the sequences emitted so far, in stream order.
func (d *SequenceDetector) Sequences() []ErrorSequence {
	return d.sequences
}

// Reset clears run state and emitted sequences for reuse.
func (d *SequenceDetector) Reset() {
	d.run = nil
	d.sequences = nil
}
