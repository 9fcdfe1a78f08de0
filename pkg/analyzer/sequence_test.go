package analyzer

import (
	"fmt"
	"testing"

	"logsift/pkg/parser"
)

func errorRec(n int) *parser.Record {
	return &parser.Record{
		Timestamp: fmt.Sprintf("t%d", n),
		Level:     "ERROR",
		Service:   "svc",
		Message:   fmt.Sprintf("error %d", n),
	}
}

func TestSequenceDetector_Windowing(t *testing.T) {
	// 12 consecutive ERRORs then one INFO: exactly 2 sequences covering
	// records 1-5 and 6-10; records 11-12 never appear in any emission.
	d := NewSequenceDetector(5)

	for i := 1; i <= 12; i++ {
		d.Process(errorRec(i))
	}
	d.Process(rec("INFO", "svc", "ok"))

	sequences := d.Sequences()
	if len(sequences) != 2 {
		t.Fatalf("got %d sequences, want 2", len(sequences))
	}

	first, second := sequences[0], sequences[1]

	if first.StartTime != "t1" || first.EndTime != "t5" {
		t.Errorf("first sequence covers %s..%s, want t1..t5", first.StartTime, first.EndTime)
	}
	if second.StartTime != "t6" || second.EndTime != "t10" {
		t.Errorf("second sequence covers %s..%s, want t6..t10", second.StartTime, second.EndTime)
	}
	if first.Count != 5 || second.Count != 5 {
		t.Errorf("counts = %d, %d, want 5, 5", first.Count, second.Count)
	}
}

func TestSequenceDetector_NonOverlap(t *testing.T) {
	// Sample messages across consecutive sequences never reuse a record.
	d := NewSequenceDetector(5)
	for i := 1; i <= 10; i++ {
		d.Process(errorRec(i))
	}

	seen := make(map[string]bool)
	for _, seq := range d.Sequences() {
		for _, msg := range seq.SampleMessages {
			if seen[msg] {
				t.Errorf("message %q appears in more than one sequence", msg)
			}
			seen[msg] = true
		}
	}
}

func TestSequenceDetector_SampleMessages(t *testing.T) {
	d := NewSequenceDetector(5)
	for i := 1; i <= 5; i++ {
		d.Process(errorRec(i))
	}

	sequences := d.Sequences()
	if len(sequences) != 1 {
		t.Fatalf("got %d sequences, want 1", len(sequences))
	}

	want := []string{"error 1", "error 2", "error 3"}
	got := sequences[0].SampleMessages
	if len(got) != len(want) {
		t.Fatalf("got %d sample messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SampleMessages[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSequenceDetector_NonErrorResetsRun(t *testing.T) {
	d := NewSequenceDetector(3)

	d.Process(errorRec(1))
	d.Process(errorRec(2))
	d.Process(rec("INFO", "svc", "interruption"))
	d.Process(errorRec(3))
	d.Process(errorRec(4))

	if got := len(d.Sequences()); got != 0 {
		t.Errorf("got %d sequences, want 0 (runs interrupted before window)", got)
	}
}

func TestSequenceDetector_NoEndOfStreamFlush(t *testing.T) {
	d := NewSequenceDetector(5)
	for i := 1; i <= 4; i++ {
		d.Process(errorRec(i))
	}

	if got := len(d.Sequences()); got != 0 {
		t.Errorf("got %d sequences, want 0 (partial run at end of stream)", got)
	}
}

func TestSequenceDetector_AbsentServiceLabeledUnknown(t *testing.T) {
	d := NewSequenceDetector(2)
	d.Process(&parser.Record{Timestamp: "t1", Level: "ERROR", Message: "a"})
	d.Process(&parser.Record{Timestamp: "t2", Level: "ERROR", Message: "b"})

	sequences := d.Sequences()
	if len(sequences) != 1 {
		t.Fatalf("got %d sequences, want 1", len(sequences))
	}
	if sequences[0].Service != parser.UnknownService {
		t.Errorf("Service = %q, want %q", sequences[0].Service, parser.UnknownService)
	}
}

func TestSequenceDetector_ServiceFromFirstRecord(t *testing.T) {
	d := NewSequenceDetector(2)
	d.Process(&parser.Record{Timestamp: "t1", Level: "ERROR", Service: "first", Message: "a"})
	d.Process(&parser.Record{Timestamp: "t2", Level: "ERROR", Service: "second", Message: "b"})

	sequences := d.Sequences()
	if len(sequences) != 1 {
		t.Fatalf("got %d sequences, want 1", len(sequences))
	}
	if sequences[0].Service != "first" {
		t.Errorf("Service = %q, want first", sequences[0].Service)
	}
}

func TestSequenceDetector_Reset(t *testing.T) {
	d := NewSequenceDetector(2)
	d.Process(errorRec(1))
	d.Process(errorRec(2))
	d.Reset()

	if got := len(d.Sequences()); got != 0 {
		t.Errorf("got %d sequences after Reset, want 0", got)
	}
}
