package gonumplot

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// SciTicks labels the default tick positions in scientific notation when the axis's
// order of magnitude falls outside [Lo, Hi). The choice is made once per axis from the
// largest major tick so labels on one axis never mix formats
type SciTicks struct {
	Lo, Hi int
}

// Ticks satisfies plot.Ticker
func (s SciTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	var peak float64
	for _, tk := range ticks {
		if tk.Label != "" {
			peak = math.Max(peak, math.Abs(tk.Value))
		}
	}
	sci := outside(exponent(peak), s.Lo, s.Hi)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue // minor tick
		}
		ticks[i].Label = formatTick(ticks[i].Value, sci)
	}
	return ticks
}

// SciLabel formats a single value as mantissa and exponent ("2.5e5") when its own
// exponent is below lo or at least hi, and as a plain number otherwise. Zero is always "0"
func SciLabel(v float64, lo, hi int) string {
	return formatTick(v, outside(exponent(v), lo, hi))
}

func outside(exp, lo, hi int) bool { return exp < lo || exp >= hi }

// exponent is the decimal exponent of v as %e would print it; zero counts as 0
func exponent(v float64) int {
	if v == 0 {
		return 0
	}
	_, n := splitE(v)
	return n
}

func splitE(v float64) (string, int) {
	e := strconv.FormatFloat(v, 'e', 6, 64)
	at := strings.IndexByte(e, 'e')
	n, _ := strconv.Atoi(e[at+1:])
	return e[:at], n
}

func formatTick(v float64, sci bool) string {
	if v == 0 {
		return "0"
	}
	if !sci {
		return strconv.FormatFloat(v, 'g', 10, 64)
	}
	mant, n := splitE(v)
	mant = strings.TrimRight(strings.TrimRight(mant, "0"), ".")
	return mant + "e" + strconv.Itoa(n)
}
