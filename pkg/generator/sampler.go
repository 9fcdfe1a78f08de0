package generator

import (
	"math/rand"
	"sort"
)

// Chooser selects labels at random according to relative weights.
// Weights need not sum to any particular total.
type Chooser struct {
	labels     []string
	cumulative []int
	total      int
}

// NewChooser builds a sampler from a label-to-weight table. Labels with
// zero or negative weight are never selected. Labels are ordered
// deterministically so a seeded source yields reproducible picks.
func NewChooser(weights map[string]int) *Chooser {
	labels := make([]string, 0, len(weights))
	for label := range weights {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	c := &Chooser{}
	for _, label := range labels {
		w := weights[label]
		if w <= 0 {
			continue
		}
		c.total += w
		c.labels = append(c.labels, label)
		c.cumulative = append(c.cumulative, c.total)
	}
	return c
}

// Pick returns a label drawn from the weighted distribution, or "" when
// no label has positive weight.
func (c *Chooser) Pick(rng *rand.Rand) string {
	if c.total == 0 {
		return ""
	}
	n := rng.Intn(c.total)
	i := sort.SearchInts(c.cumulative, n+1)
	return c.labels[i]
}

// Total returns the summed weight of all selectable labels.
func (c *Chooser) Total() int {
	return c.total
}
