package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"logsift/pkg/detector"
)

// Writer appends encoded entries to an output file and optionally echoes
// them to a console writer.
type Writer struct {
	file    *os.File
	path    string
	console io.Writer
}

// NewWriter opens the output file for appending, creating its directory
// if needed. When the path carries no known log extension, the format's
// extension is added. An empty path with a nil console is an error.
func NewWriter(path string, format detector.Format, console io.Writer) (*Writer, error) {
	if path == "" && console == nil {
		return nil, errors.New("no output configured")
	}

	w := &Writer{console: console}
	if path == "" {
		return w, nil
	}

	if !hasKnownExtension(path) {
		path = path + "." + string(format)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return nil, fmt.Errorf("opening output file: %w", err)
	}
	w.file = f
	w.path = path

	return w, nil
}

// Write appends one encoded entry.
func (w *Writer) Write(line string) error {
	if w.file != nil {
		if _, err := w.file.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing log entry: %w", err)
		}
	}
	if w.console != nil {
		fmt.Fprintln(w.console, line)
	}
	return nil
}

// Path returns the resolved output file path, or "" for console-only
// writers.
func (w *Writer) Path() string {
	return w.path
}

// Close releases the output file.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

func hasKnownExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range []string{".txt", ".json", ".csv"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
