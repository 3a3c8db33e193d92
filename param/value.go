package param

import "math"

// Sentinels returned when validation fails with FlagNone, or on a kind
// mismatch. Reads never fail; they surface these instead.
var (
	SentinelFloat = math.NaN()
	SentinelInt   = math.MinInt32
)

// Kind is the storage class of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat
	KindInt
	KindBool
)

// Value is a tagged union of float/int/bool with an explicit invalid state,
// so that validation failure is representable rather than silently zero.
type Value struct {
	kind Kind
	f    float64
	i    int
	b    bool
}

// Float wraps a float value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Int wraps an int value.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Bool wraps a bool value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Invalid is the sentinel Value.
func Invalid() Value { return Value{kind: KindInvalid} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsFloat returns the float content, or SentinelFloat on kind mismatch.
func (v Value) AsFloat() float64 {
	if v.kind != KindFloat {
		return SentinelFloat
	}
	return v.f
}

// AsInt returns the int content, or SentinelInt on kind mismatch.
func (v Value) AsInt() int {
	if v.kind != KindInt {
		return SentinelInt
	}
	return v.i
}

// AsBool returns the bool content, or false on kind mismatch.
func (v Value) AsBool() bool {
	return v.kind == KindBool && v.b
}

// IsSentinel reports whether the value is invalid or holds a sentinel.
func (v Value) IsSentinel() bool {
	switch v.kind {
	case KindInvalid:
		return true
	case KindFloat:
		return math.IsNaN(v.f)
	case KindInt:
		return v.i == SentinelInt
	}
	return false
}
