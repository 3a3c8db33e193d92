package param

import (
	"fmt"
	"math"
)

// Option names one value of a Select parameter. Sparse values are allowed.
type Option struct {
	Name  string
	Value int
}

// Def is one parameter declaration: type, bounds, default, flags, description.
type Def struct {
	Name        string
	Type        Type
	Min, Max    float64 // integral for Count; option-value range for Select
	Default     Value
	Flags       Flags
	Description string
	Options     []Option // Select only
}

func isIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		alpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		digit := r >= '0' && r <= '9'
		if i == 0 && !alpha {
			return false
		}
		if !alpha && !digit {
			return false
		}
	}
	return true
}

// normalize fills fixed bounds, resolves flag conflicts, and checks the
// default. Returns an error describing why the declaration must be dropped.
func (d *Def) normalize() error {
	if !isIdentifier(d.Name) {
		return fmt.Errorf("invalid parameter name %q", d.Name)
	}
	if d.Flags.Has(FlagClamp) && d.Flags.Has(FlagWrap) {
		return fmt.Errorf("parameter %q: CLAMP and WRAP are mutually exclusive", d.Name)
	}

	if min, max, fixed := d.Type.DefaultBounds(); fixed {
		d.Min, d.Max = min, max
	}

	switch d.Type {
	case Switch:
		d.Flags = FlagNone // flags are meaningless for booleans
		if d.Default.Kind() != KindBool {
			return fmt.Errorf("parameter %q: switch default must be bool", d.Name)
		}
		return nil

	case Select:
		if len(d.Options) == 0 {
			return fmt.Errorf("parameter %q: select needs options", d.Name)
		}
		if d.Default.Kind() != KindInt {
			return fmt.Errorf("parameter %q: select default must be int", d.Name)
		}
		if _, ok := d.optionName(d.Default.AsInt()); !ok {
			return fmt.Errorf("parameter %q: default %d is not an option", d.Name, d.Default.AsInt())
		}
		d.Min, d.Max = d.optionRange()
		return nil

	case Count:
		if d.Default.Kind() != KindInt {
			return fmt.Errorf("parameter %q: count default must be int", d.Name)
		}
	default:
		if d.Default.Kind() != KindFloat {
			return fmt.Errorf("parameter %q: %s default must be float", d.Name, d.Type)
		}
	}

	if math.IsNaN(d.Min) || math.IsInf(d.Min, 0) || math.IsNaN(d.Max) || math.IsInf(d.Max, 0) {
		return fmt.Errorf("parameter %q: bounds must be finite", d.Name)
	}
	if d.Min > d.Max {
		return fmt.Errorf("parameter %q: min %g exceeds max %g", d.Name, d.Min, d.Max)
	}

	// The default must already be in range; flags only coerce runtime writes.
	if d.Type == Count {
		v := float64(d.Default.AsInt())
		if v < d.Min || v > d.Max {
			return fmt.Errorf("parameter %q: default %d outside [%g, %g]", d.Name, d.Default.AsInt(), d.Min, d.Max)
		}
	} else {
		v := d.Default.AsFloat()
		if math.IsNaN(v) || v < d.Min || v > d.Max {
			return fmt.Errorf("parameter %q: default %g outside [%g, %g]", d.Name, v, d.Min, d.Max)
		}
	}
	return nil
}

func (d *Def) optionName(value int) (string, bool) {
	for _, o := range d.Options {
		if o.Value == value {
			return o.Name, true
		}
	}
	return "", false
}

func (d *Def) optionRange() (min, max float64) {
	min, max = float64(d.Options[0].Value), float64(d.Options[0].Value)
	for _, o := range d.Options[1:] {
		if float64(o.Value) < min {
			min = float64(o.Value)
		}
		if float64(o.Value) > max {
			max = float64(o.Value)
		}
	}
	return min, max
}

// wrapFloat folds value into [min,max) by modulo.
func wrapFloat(value, min, max float64) float64 {
	if min == max {
		return min
	}
	span := max - min
	n := (value - min) / span
	n -= math.Floor(n)
	return min + n*span
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
