package param

// Preset is a named bag of parameter values. Applying one calls Set per key;
// keys the scene never declared are warned about and skipped.
type Preset struct {
	Name   string
	Values map[string]Value
}

// PresetBuilder assembles a Preset fluently:
//
//	p := param.NewPreset("fast").SetFloat("speed", 0.8).SetBool("enabled", false).Build()
type PresetBuilder struct {
	preset Preset
}

func NewPreset(name string) *PresetBuilder {
	return &PresetBuilder{preset: Preset{Name: name, Values: map[string]Value{}}}
}

func (b *PresetBuilder) Set(name string, v Value) *PresetBuilder {
	b.preset.Values[name] = v
	return b
}

func (b *PresetBuilder) SetFloat(name string, v float64) *PresetBuilder {
	return b.Set(name, Float(v))
}

func (b *PresetBuilder) SetInt(name string, v int) *PresetBuilder {
	return b.Set(name, Int(v))
}

func (b *PresetBuilder) SetBool(name string, v bool) *PresetBuilder {
	return b.Set(name, Bool(v))
}

func (b *PresetBuilder) Build() Preset { return b.preset }

// ApplyPreset sets every bound key through the normal validation pipeline.
// Idempotent: applying the same preset twice equals applying it once.
func (s *Settings) ApplyPreset(p Preset) {
	for name, v := range p.Values {
		if !s.Has(name) {
			s.logger.Warn().Str("preset", p.Name).Str("param", name).
				Msg("preset key not declared by scene; skipped")
			continue
		}
		s.Set(name, v)
	}
}
