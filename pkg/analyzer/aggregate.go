package analyzer

import (
	"logsift/pkg/parser"
)

// LevelCounts tallies records by severity level. Records without a level
// count under parser.UnknownLevel; the sum of all counts equals the number
// of records.
func LevelCounts(records []*parser.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		level := rec.Level
		if level == "" {
			level = parser.UnknownLevel
		}
		counts[level]++
	}
	return counts
}

// AverageDurationByService averages the duration field per service over
// the records that carry one, grouping absent services under the unknown
// label. Services with no duration-bearing records are omitted entirely,
// never reported as zero.
func AverageDurationByService(records []*parser.Record) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		if rec.Duration == nil {
			continue
		}
		svc := rec.ServiceLabel()
		sums[svc] += *rec.Duration
		counts[svc]++
	}

	averages := make(map[string]float64, len(sums))
	for svc, sum := range sums {
		averages[svc] = sum / float64(counts[svc])
	}
	return averages
}

// UniqueServices counts the distinct non-absent service names across all
// records.
func UniqueServices(records []*parser.Record) int {
	seen := make(map[string]bool)
	for _, rec := range records {
		if rec.Service != "" {
			seen[rec.Service] = true
		}
	}
	return len(seen)
}
