package detector

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"app.json", FormatJSON},
		{"app.csv", FormatCSV},
		{"app.txt", FormatText},
		{"app.log", FormatText},
		{"app", FormatText},
		{"APP.JSON", FormatJSON},
		{"App.Csv", FormatCSV},
		{"dir/with.json/app.txt", FormatText},
		{"archive.tar.json", FormatJSON},
		{"app.jsonl", FormatText},
		{"", FormatText},
		{".json", FormatJSON},
		// Compressed inputs detect like their uncompressed originals
		{"app.json.gz", FormatJSON},
		{"app.csv.GZ", FormatCSV},
		{"app.log.gz", FormatText},
		{"app.gz", FormatText},
	}

	for _, tt := range tests {
		if got := Detect(tt.path); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDetect_SameSuffixSameFormat(t *testing.T) {
	// Detection is a pure function of the suffix, case-insensitively.
	pairs := [][2]string{
		{"a.json", "completely/different/b.JSON"},
		{"x.csv", "y.CSV"},
		{"no-extension", "other.weird"},
	}

	for _, pair := range pairs {
		if Detect(pair[0]) != Detect(pair[1]) {
			t.Errorf("Detect(%q) = %q, but Detect(%q) = %q",
				pair[0], Detect(pair[0]), pair[1], Detect(pair[1]))
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		want   Format
		wantOK bool
	}{
		{"json", FormatJSON, true},
		{"JSON", FormatJSON, true},
		{"csv", FormatCSV, true},
		{"txt", FormatText, true},
		{"xml", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.name)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
