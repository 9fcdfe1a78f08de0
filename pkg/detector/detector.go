// Package detector decides which wire format a log file uses.
package detector

import (
	"path/filepath"
	"strings"
)

// Format identifies a log wire format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
)

// Formats lists every supported wire format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatCSV}
}

// Parse converts a format name to a Format. Returns false for unknown names.
func Parse(name string) (Format, bool) {
	switch Format(strings.ToLower(name)) {
	case FormatJSON:
		return FormatJSON, true
	case FormatCSV:
		return FormatCSV, true
	case FormatText:
		return FormatText, true
	default:
		return "", false
	}
}

// Detect returns the wire format for a log file path based on its final
// extension, case-insensitively: .json is json, .csv is csv, anything else
// (including no extension) is txt. The chosen format applies to the whole
// file. A trailing .gz is ignored so compressed logs detect the same as
// their uncompressed originals.
func Detect(path string) Format {
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, ".gz")
	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	default:
		return FormatText
	}
}
