// Package table holds decoded trace records as a column-oriented, append-only table.
//
// Cells are small tagged values rather than interface{} so filters and casts can
// switch on Kind without reflection. Columns keep the order in which keys were first
// seen; a row that lacks a column holds a null there.
package table

import (
	"math"
	"strconv"
)

// Kind is the logical type of a Value
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindRaw // arrays and other JSON kept verbatim
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindRaw:
		return "raw"
	default:
		return "null"
	}
}

// Value is a single cell. Only the field matching Kind is meaningful
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	S    string // string payload, or JSON text for KindRaw
	B    bool
}

// Null is the missing value
var Null = Value{}

// Int returns an int cell
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float cell
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string cell
func String(v string) Value { return Value{Kind: KindString, S: v} }

// Bool returns a bool cell
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Raw returns an opaque cell holding JSON text
func Raw(text string) Value { return Value{Kind: KindRaw, S: text} }

// IsNull reports whether v is missing
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Float64 returns v as a float when it is numeric. Strings, bools, raw and nulls report false,
// which makes comparisons against them false the same way NaN comparisons are
func (v Value) Float64() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		if math.IsNaN(v.F64) {
			return 0, false
		}
		return v.F64, true
	default:
		return 0, false
	}
}

// Text renders v for labels and logs
func (v Value) Text() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindString, KindRaw:
		return v.S
	case KindBool:
		if v.B {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// Equal reports whether two cells hold the same kind and payload
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.I64 == o.I64
	case KindFloat:
		return v.F64 == o.F64
	case KindString, KindRaw:
		return v.S == o.S
	case KindBool:
		return v.B == o.B
	default:
		return true
	}
}
