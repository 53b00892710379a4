package tracefile

import (
	"bytes"
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"gasanalysis/internal/core/table"
	perr "gasanalysis/internal/platform/errors"

	"github.com/buger/jsonparser"
)

// Flatten decodes one JSON object line into dot-path fields.
// {"a":{"b":{"c":1}}} yields a.b.c=1; arrays are kept as raw JSON text; empty
// nested objects yield nothing; null yields a null cell
func Flatten(line []byte) ([]table.Field, error) {
	if !utf8.Valid(line) {
		return nil, perr.JSONErrf("invalid UTF-8")
	}
	// jsonparser is lenient about trailing data, so validate strictly first
	if !json.Valid(line) {
		return nil, perr.Wrap(syntaxError(line), perr.ErrorCodeJSON, "malformed JSON")
	}
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, perr.JSONErrf("expected a JSON object")
	}
	out := make([]table.Field, 0, 16)
	if err := flattenObject(trimmed, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenObject(data []byte, prefix string, out *[]table.Field) error {
	// ObjectEach hands keys over already unescaped
	err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
		k := string(key)
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		switch dt {
		case jsonparser.Object:
			return flattenObject(value, name, out)
		case jsonparser.Array:
			*out = append(*out, table.Field{Name: name, Value: table.Raw(string(value))})
		case jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return perr.WithField(perr.Wrap(err, perr.ErrorCodeJSON, "bad string"), name)
			}
			*out = append(*out, table.Field{Name: name, Value: table.String(s)})
		case jsonparser.Number:
			*out = append(*out, table.Field{Name: name, Value: parseNumber(value)})
		case jsonparser.Boolean:
			b, err := jsonparser.ParseBoolean(value)
			if err != nil {
				return perr.WithField(perr.Wrap(err, perr.ErrorCodeJSON, "bad boolean"), name)
			}
			*out = append(*out, table.Field{Name: name, Value: table.Bool(b)})
		case jsonparser.Null:
			*out = append(*out, table.Field{Name: name, Value: table.Null})
		default:
			return perr.WithField(perr.JSONErrf("unsupported value %q", value), name)
		}
		return nil
	})
	if err != nil {
		if _, ok := perr.As(err); ok {
			return err
		}
		return perr.Wrap(err, perr.ErrorCodeJSON, "malformed JSON")
	}
	return nil
}

// parseNumber keeps integers exact when they fit int64 and falls back to float64
func parseNumber(b []byte) table.Value {
	s := string(b)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return table.Int(n)
	}
	// out-of-range literals come back as ±Inf, matching how large exponents decode
	f, _ := strconv.ParseFloat(s, 64)
	return table.Float(f)
}

// syntaxError recovers the decoder's positioned message for a line json.Valid rejected
func syntaxError(line []byte) error {
	var v any
	if err := json.Unmarshal(line, &v); err != nil {
		return err
	}
	return perr.JSONErrf("invalid JSON")
}
