// Package param implements the per-scene typed settings store: parameter
// declarations with bounds and flags, validated reads/writes with sentinel
// fallbacks, named presets, and a JSON schema export for UI builders.
package param

import "math"

// Type tags a parameter's semantic kind. The tag fixes the underlying storage
// (float, int or bool) and, for the semantic float types, the default bounds.
type Type uint8

const (
	Ratio       Type = iota // float, [0,1]
	SignedRatio             // float, [-1,1]
	Angle                   // float, [0,2π]
	SignedAngle             // float, [-π,π]
	Percent                 // float, [0,100]
	Range                   // float, user bounds
	Count                   // int, user bounds (inclusive)
	Switch                  // bool
	Select                  // int, named options
)

var typeNames = [...]string{
	Ratio: "ratio", SignedRatio: "signed_ratio", Angle: "angle",
	SignedAngle: "signed_angle", Percent: "percent", Range: "range",
	Count: "count", Switch: "switch", Select: "select",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// TypeFromString resolves a type tag name; ok is false for unknown tags.
func TypeFromString(s string) (Type, bool) {
	for i, n := range typeNames {
		if n == s {
			return Type(i), true
		}
	}
	return Range, false
}

// IsFloat reports whether the underlying storage is float.
func (t Type) IsFloat() bool {
	switch t {
	case Ratio, SignedRatio, Angle, SignedAngle, Percent, Range:
		return true
	}
	return false
}

// IsInt reports whether the underlying storage is int.
func (t Type) IsInt() bool { return t == Count || t == Select }

// WrapFriendly reports whether WRAP folding is meaningful for the type.
// Angles and ratios wrap; everything else clamps instead.
func (t Type) WrapFriendly() bool {
	switch t {
	case Ratio, SignedRatio, Angle, SignedAngle:
		return true
	}
	return false
}

// DefaultBounds returns the fixed bounds for semantic float types. Range,
// Count and Select carry user bounds; Switch has none.
func (t Type) DefaultBounds() (min, max float64, ok bool) {
	switch t {
	case Ratio:
		return 0, 1, true
	case SignedRatio:
		return -1, 1, true
	case Angle:
		return 0, 2 * math.Pi, true
	case SignedAngle:
		return -math.Pi, math.Pi, true
	case Percent:
		return 0, 100, true
	}
	return 0, 0, false
}

// Flags control how out-of-range writes are coerced.
type Flags uint8

const (
	// FlagNone rejects out-of-range writes; the stored value becomes the
	// type's sentinel and a warning is logged.
	FlagNone Flags = 0
	// FlagClamp snaps writes into [min,max].
	FlagClamp Flags = 1 << iota
	// FlagWrap folds writes into range by modulo for wrap-friendly types;
	// equivalent to FlagClamp otherwise.
	FlagWrap
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// Strings renders the flag set for schema export.
func (f Flags) Strings() []string {
	var out []string
	if f.Has(FlagClamp) {
		out = append(out, "CLAMP")
	}
	if f.Has(FlagWrap) {
		out = append(out, "WRAP")
	}
	return out
}

func (f Flags) String() string {
	s := f.Strings()
	if len(s) == 0 {
		return "NONE"
	}
	out := s[0]
	for _, v := range s[1:] {
		out += "|" + v
	}
	return out
}
