package generator

import (
	"math/rand"
	"testing"
)

func TestChooser_SingleLabel(t *testing.T) {
	c := NewChooser(map[string]int{"INFO": 10})
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		if got := c.Pick(rng); got != "INFO" {
			t.Fatalf("Pick() = %q, want INFO", got)
		}
	}
}

func TestChooser_NonPositiveWeightsSkipped(t *testing.T) {
	c := NewChooser(map[string]int{"INFO": 5, "DEBUG": 0, "TRACE": -3})
	if c.Total() != 5 {
		t.Errorf("Total() = %d, want 5", c.Total())
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if got := c.Pick(rng); got != "INFO" {
			t.Fatalf("Pick() = %q, want INFO", got)
		}
	}
}

func TestChooser_Empty(t *testing.T) {
	c := NewChooser(map[string]int{"OFF": 0})
	if c.Total() != 0 {
		t.Errorf("Total() = %d, want 0", c.Total())
	}
	rng := rand.New(rand.NewSource(1))
	if got := c.Pick(rng); got != "" {
		t.Errorf("Pick() = %q, want empty string", got)
	}
}

func TestChooser_WeightsSkewSelection(t *testing.T) {
	c := NewChooser(map[string]int{"INFO": 70, "WARNING": 20, "ERROR": 5, "DEBUG": 5})
	rng := rand.New(rand.NewSource(42))

	counts := map[string]int{}
	const picks = 10000
	for i := 0; i < picks; i++ {
		counts[c.Pick(rng)]++
	}

	if counts["INFO"]+counts["WARNING"]+counts["ERROR"]+counts["DEBUG"] != picks {
		t.Fatalf("picks outside the configured labels: %v", counts)
	}
	if counts["INFO"] <= counts["WARNING"] || counts["WARNING"] <= counts["ERROR"] {
		t.Errorf("counts do not follow weights: %v", counts)
	}
	// INFO holds 70% of the weight; with 10000 picks it cannot
	// plausibly land below half.
	if counts["INFO"] < picks/2 {
		t.Errorf("INFO picked %d times out of %d, want a clear majority", counts["INFO"], picks)
	}
}

func TestChooser_DeterministicWithSeed(t *testing.T) {
	weights := map[string]int{"a": 1, "b": 2, "c": 3}

	first := make([]string, 20)
	second := make([]string, 20)
	for i := range first {
		first[i] = NewChooser(weights).Pick(rand.New(rand.NewSource(int64(i))))
		second[i] = NewChooser(weights).Pick(rand.New(rand.NewSource(int64(i))))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pick %d differs between identical seeds: %q vs %q", i, first[i], second[i])
		}
	}
}
