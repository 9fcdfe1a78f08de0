package output

import (
	"context"
	"io"
)

// Formatter renders an analysis report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds service metrics and run metadata to the output.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}
