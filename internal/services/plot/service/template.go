package service

import (
	"strconv"
	"strings"

	perr "gasanalysis/internal/platform/errors"
)

// FormatOutput fills an output template with the window bounds. {0} is start and {1}
// is stop, {} takes the next one in order, {{ and }} are literal braces. Mixing {} with
// numbered fields, an index past 1, or any other use of braces is a usage error
func FormatOutput(tmpl string, start, stop int) (string, error) {
	args := [2]string{strconv.Itoa(start), strconv.Itoa(stop)}
	var (
		b         strings.Builder
		auto      = 0
		numbered  bool
		automatic bool
	)
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", perr.Usagef("output template %q: unmatched '{'", tmpl)
			}
			field := tmpl[i+1 : i+1+end]
			i += end + 1

			var idx int
			if field == "" {
				if numbered {
					return "", perr.Usagef("output template %q: cannot mix {} with numbered fields", tmpl)
				}
				automatic = true
				idx = auto
				auto++
			} else {
				n, err := strconv.Atoi(field)
				if err != nil || n < 0 {
					return "", perr.Usagef("output template %q: unsupported field {%s}, use {0} for start and {1} for stop", tmpl, field)
				}
				if automatic {
					return "", perr.Usagef("output template %q: cannot mix {} with numbered fields", tmpl)
				}
				numbered = true
				idx = n
			}
			if idx >= len(args) {
				return "", perr.Usagef("output template %q: field index %d out of range", tmpl, idx)
			}
			b.WriteString(args[idx])
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", perr.Usagef("output template %q: single '}' encountered", tmpl)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
