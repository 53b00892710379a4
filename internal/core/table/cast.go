package table

import (
	"math"
	"strconv"
	"strings"

	perr "gasanalysis/internal/platform/errors"
)

// int64 bounds as floats; 2^63 itself does not fit
const (
	minInt64F = -9223372036854775808.0
	maxInt64F = 9223372036854775808.0
)

// ToInt64 coerces one cell to int64.
// Ints pass through, finite floats truncate toward zero, strings must hold a base-10
// integer, bools become 0 or 1. Nulls, raw values and out-of-range numbers fail
func ToInt64(v Value) (int64, error) {
	switch v.Kind {
	case KindInt:
		return v.I64, nil
	case KindFloat:
		f := v.F64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, perr.Newf(perr.ErrorCodeCoercion, "cannot convert non-finite float %v to int64", f)
		}
		t := math.Trunc(f)
		if t < minInt64F || t >= maxInt64F {
			return 0, perr.Newf(perr.ErrorCodeCoercion, "float %v out of int64 range", f)
		}
		return int64(t), nil
	case KindString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.S), 10, 64)
		if err != nil {
			return 0, perr.Wrapf(err, perr.ErrorCodeCoercion, "invalid literal %q for int64", v.S)
		}
		return n, nil
	case KindBool:
		if v.B {
			return 1, nil
		}
		return 0, nil
	case KindRaw:
		return 0, perr.Newf(perr.ErrorCodeCoercion, "cannot convert %s to int64", v.S)
	default:
		return 0, perr.New(perr.ErrorCodeCoercion, "cannot convert missing value to int64")
	}
}

// CastInt64 converts the named column in place. The first failing row aborts the cast
// with a coercion error naming the column; the column is left untouched in that case
func (t *Table) CastInt64(name string) error {
	col, ok := t.Column(name)
	if !ok {
		return perr.WithField(perr.Wrapf(perr.MissingColumn(name), perr.ErrorCodeCoercion, "cast %s to int64", name), name)
	}
	out := make([]Value, len(col))
	for r, v := range col {
		n, err := ToInt64(v)
		if err != nil {
			return perr.Coercionf(name, "cast %s to int64 (row %d): %v", name, r, err)
		}
		out[r] = Int(n)
	}
	t.cols[t.index[name]] = out
	return nil
}
