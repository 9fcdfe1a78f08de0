package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"logsift/pkg/detector"
)

// ReadRecords loads every successfully decoded record from a log file, in
// file order. Blank lines are skipped and lines that fail the declared
// format's decoder are silently dropped; there is no per-line diagnostic.
// A missing or unreadable file is a fatal error.
func ReadRecords(ctx context.Context, path string, format detector.Format) ([]*Record, error) {
	r, closeFn, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var records []*Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if rec := DecodeLine(line, format); rec != nil {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return records, nil
}

// openSource opens a log file for line scanning, transparently
// decompressing files with a .gz suffix.
func openSource(path string) (io.Reader, func(), error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, func() { _ = f.Close() }, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("opening gzip stream %s: %w", path, err)
	}
	return gz, func() {
		_ = gz.Close()
		_ = f.Close()
	}, nil
}
