package parser

import (
	"regexp"
	"strings"

	"github.com/valyala/fastjson"

	"logsift/pkg/detector"
)

// textLinePattern matches: <timestamp> [<level>] [<id>] [<service>]: <message>
// The level token forbids whitespace; id and service forbid a closing bracket.
var textLinePattern = regexp.MustCompile(`^(\S+) \[(\S+)\] \[([^\]]+)\] \[([^\]]+)\]: (.+)$`)

// DecodeLine applies the decoder for the given format to a single line.
// Decoders are total: they return a record or nil, never an error. The
// caller drops nil results; partially-matched lines are never kept.
func DecodeLine(line string, format detector.Format) *Record {
	switch format {
	case detector.FormatJSON:
		return decodeJSON(line)
	case detector.FormatCSV:
		return decodeCSV(line)
	default:
		return decodeText(line)
	}
}

// decodeJSON decodes one self-describing object per line. Any decodable
// object becomes a record; there is no field validation. Unrecognized
// fields are preserved in Extra.
func decodeJSON(line string) *Record {
	v, err := fastjson.Parse(line)
	if err != nil || v.Type() != fastjson.TypeObject {
		return nil
	}
	obj, err := v.Object()
	if err != nil {
		return nil
	}

	rec := &Record{Level: UnknownLevel}
	obj.Visit(func(key []byte, val *fastjson.Value) {
		switch string(key) {
		case "timestamp":
			rec.Timestamp = string(val.GetStringBytes())
		case "level":
			if s := string(val.GetStringBytes()); s != "" {
				rec.Level = s
			}
		case "id":
			rec.ID = string(val.GetStringBytes())
		case "service":
			rec.Service = string(val.GetStringBytes())
		case "message":
			rec.Message = strings.TrimSpace(string(val.GetStringBytes()))
		case "duration":
			if val.Type() == fastjson.TypeNumber {
				d := val.GetFloat64()
				rec.Duration = &d
			}
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[string(key)] = extraString(val)
		}
	})

	return rec
}

// extraString renders an unrecognized JSON value for Record.Extra.
func extraString(v *fastjson.Value) string {
	if v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes())
	}
	return v.String()
}

func decodeText(line string) *Record {
	m := textLinePattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	return &Record{
		Timestamp: m[1],
		Level:     m[2],
		ID:        m[3],
		Service:   m[4],
		Message:   strings.TrimSpace(m[5]),
	}
}

// decodeCSV handles the producer's minimal CSV dialect: the whole text
// line wrapped in one pair of double quotes. There is no embedded-quote
// or delimiter escaping.
func decodeCSV(line string) *Record {
	if len(line) < 2 || !strings.HasPrefix(line, `"`) || !strings.HasSuffix(line, `"`) {
		return nil
	}
	return decodeText(line[1 : len(line)-1])
}
