package param

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Settings holds a scene's declared parameters and their current values.
// All failure paths log a warning and degrade to sentinels; nothing panics.
type Settings struct {
	defs   map[string]*Def
	values map[string]Value
	order  []string // declaration order, for stable schema output
	logger zerolog.Logger
}

// NewSettings returns an empty store logging through the global logger.
func NewSettings() *Settings {
	return NewSettingsWithLogger(log.Logger)
}

func NewSettingsWithLogger(logger zerolog.Logger) *Settings {
	return &Settings{
		defs:   map[string]*Def{},
		values: map[string]Value{},
		logger: logger,
	}
}

// Declare stages and validates a parameter definition. Invalid declarations
// are dropped with a warning and returned as an error; duplicates are errors.
func (s *Settings) Declare(d Def) error {
	if err := d.normalize(); err != nil {
		s.logger.Warn().Err(err).Msg("parameter declaration dropped")
		return err
	}
	if _, dup := s.defs[d.Name]; dup {
		err := fmt.Errorf("duplicate parameter %q", d.Name)
		s.logger.Warn().Err(err).Msg("parameter declaration dropped")
		return err
	}
	def := d
	s.defs[d.Name] = &def
	s.values[d.Name] = d.Default
	s.order = append(s.order, d.Name)
	return nil
}

// Convenience declarations used from scene Setup.

func (s *Settings) DeclareFloat(name string, t Type, def float64, flags Flags, desc string) error {
	return s.Declare(Def{Name: name, Type: t, Default: Float(def), Flags: flags, Description: desc})
}

func (s *Settings) DeclareRange(name string, min, max, def float64, flags Flags, desc string) error {
	return s.Declare(Def{Name: name, Type: Range, Min: min, Max: max, Default: Float(def), Flags: flags, Description: desc})
}

func (s *Settings) DeclareCount(name string, min, max, def int, flags Flags, desc string) error {
	return s.Declare(Def{Name: name, Type: Count, Min: float64(min), Max: float64(max), Default: Int(def), Flags: flags, Description: desc})
}

func (s *Settings) DeclareSwitch(name string, def bool, desc string) error {
	return s.Declare(Def{Name: name, Type: Switch, Default: Bool(def), Description: desc})
}

func (s *Settings) DeclareSelect(name string, def int, options []Option, desc string) error {
	return s.Declare(Def{Name: name, Type: Select, Default: Int(def), Options: options, Description: desc})
}

// Set runs the validation pipeline: kind check, range check, flag coercion.
// An invalid write is recorded as the type's sentinel under FlagNone.
func (s *Settings) Set(name string, v Value) {
	def, ok := s.defs[name]
	if !ok {
		s.logger.Warn().Str("param", name).Msg("set of unknown parameter ignored")
		return
	}

	switch {
	case def.Type.IsFloat():
		if v.Kind() != KindFloat {
			s.logger.Warn().Str("param", name).Msg("type mismatch; sentinel stored")
			s.values[name] = Float(SentinelFloat)
			return
		}
		s.values[name] = Float(s.coerceFloat(def, v.AsFloat()))

	case def.Type == Count:
		if v.Kind() != KindInt {
			s.logger.Warn().Str("param", name).Msg("type mismatch; sentinel stored")
			s.values[name] = Int(SentinelInt)
			return
		}
		s.values[name] = Int(s.coerceInt(def, v.AsInt()))

	case def.Type == Select:
		if v.Kind() != KindInt {
			s.logger.Warn().Str("param", name).Msg("type mismatch; sentinel stored")
			s.values[name] = Int(SentinelInt)
			return
		}
		if _, valid := def.optionName(v.AsInt()); !valid {
			s.logger.Warn().Str("param", name).Int("value", v.AsInt()).Msg("not a select option; sentinel stored")
			s.values[name] = Int(SentinelInt)
			return
		}
		s.values[name] = v

	case def.Type == Switch:
		if v.Kind() != KindBool {
			s.logger.Warn().Str("param", name).Msg("type mismatch; sentinel stored")
			s.values[name] = Bool(false)
			return
		}
		s.values[name] = v
	}
}

func (s *Settings) coerceFloat(def *Def, v float64) float64 {
	if v != v { // NaN write
		s.logger.Warn().Str("param", def.Name).Msg("NaN write; sentinel stored")
		return SentinelFloat
	}
	if v >= def.Min && v <= def.Max {
		return v
	}
	switch {
	case def.Flags.Has(FlagWrap) && def.Type.WrapFriendly():
		return wrapFloat(v, def.Min, def.Max)
	case def.Flags.Has(FlagClamp) || def.Flags.Has(FlagWrap):
		return clampFloat(v, def.Min, def.Max)
	}
	s.logger.Warn().Str("param", def.Name).Float64("value", v).
		Float64("min", def.Min).Float64("max", def.Max).Msg("value out of range; sentinel stored")
	return SentinelFloat
}

func (s *Settings) coerceInt(def *Def, v int) int {
	min, max := int(def.Min), int(def.Max)
	if v >= min && v <= max {
		return v
	}
	if def.Flags.Has(FlagClamp) || def.Flags.Has(FlagWrap) {
		return clampInt(v, min, max)
	}
	s.logger.Warn().Str("param", def.Name).Int("value", v).
		Int("min", min).Int("max", max).Msg("value out of range; sentinel stored")
	return SentinelInt
}

// Get returns the current value, or Invalid for unknown names.
func (s *Settings) Get(name string) Value {
	v, ok := s.values[name]
	if !ok {
		s.logger.Warn().Str("param", name).Msg("read of unknown parameter")
		return Invalid()
	}
	return v
}

// GetFloat reads a float parameter. Unknown names yield 0 with a warning;
// a failed prior write yields the NaN sentinel.
func (s *Settings) GetFloat(name string) float64 {
	v, ok := s.values[name]
	if !ok {
		s.logger.Warn().Str("param", name).Msg("read of unknown parameter")
		return 0
	}
	return v.AsFloat()
}

// GetInt reads an int parameter. Unknown names yield 0 with a warning.
func (s *Settings) GetInt(name string) int {
	v, ok := s.values[name]
	if !ok {
		s.logger.Warn().Str("param", name).Msg("read of unknown parameter")
		return 0
	}
	return v.AsInt()
}

// GetBool reads a switch parameter. Unknown names yield false with a warning.
func (s *Settings) GetBool(name string) bool {
	v, ok := s.values[name]
	if !ok {
		s.logger.Warn().Str("param", name).Msg("read of unknown parameter")
		return false
	}
	return v.AsBool()
}

// Has reports whether the parameter is declared.
func (s *Settings) Has(name string) bool {
	_, ok := s.defs[name]
	return ok
}

// Metadata returns the declaration for name.
func (s *Settings) Metadata(name string) (Def, bool) {
	d, ok := s.defs[name]
	if !ok {
		return Def{}, false
	}
	return *d, true
}

// Reset restores every parameter to its declared default.
func (s *Settings) Reset() {
	for name, def := range s.defs {
		s.values[name] = def.Default
	}
}

// Names returns declared parameter names sorted for stable output.
func (s *Settings) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	sort.Strings(out)
	return out
}

// Len returns the number of declared parameters.
func (s *Settings) Len() int { return len(s.defs) }
