package parser

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"logsift/pkg/detector"
)

// DefaultProbeSize is the default number of non-blank lines Probe samples.
const DefaultProbeSize = 100

// ProbeResult summarizes how well a file's lines decode under its
// declared format. It is a diagnostic surface only; analysis itself never
// reports per-line failures.
type ProbeResult struct {
	Format       detector.Format `json:"format"`
	SampledLines int             `json:"sampled_lines"`
	ParsedLines  int             `json:"parsed_lines"`
	Confidence   float64         `json:"confidence"`

	// SampleLine is the first line that decoded successfully, if any.
	SampleLine string `json:"sample_line,omitempty"`
}

// Probe decodes up to sampleSize non-blank lines of a file under its
// declared format and reports the parse rate.
func Probe(ctx context.Context, path string, format detector.Format, sampleSize int) (*ProbeResult, error) {
	if sampleSize <= 0 {
		sampleSize = DefaultProbeSize
	}

	r, closeFn, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	result := &ProbeResult{Format: format}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && result.SampledLines < sampleSize {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.SampledLines++

		if rec := DecodeLine(line, format); rec != nil {
			result.ParsedLines++
			if result.SampleLine == "" {
				result.SampleLine = line
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if result.SampledLines > 0 {
		result.Confidence = float64(result.ParsedLines) / float64(result.SampledLines)
	}

	return result, nil
}
