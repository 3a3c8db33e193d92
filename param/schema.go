package param

import "encoding/json"

// ParameterSchema is the wire shape of one declared parameter. Only the
// fields relevant to the type are emitted.
type ParameterSchema struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	MinValue    *float64 `json:"min_value,omitempty"`
	MaxValue    *float64 `json:"max_value,omitempty"`
	DefaultF    *float64 `json:"default_float,omitempty"`
	DefaultI    *int     `json:"default_int,omitempty"`
	DefaultB    *bool    `json:"default_bool,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Flags       []string `json:"flags"`
}

// SceneSchema describes every parameter of one scene, for simulator UIs.
type SceneSchema struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Parameters  []ParameterSchema `json:"parameters"`
}

// MarshalJSON for Option flattens to {"name": ..., "value": ...}.
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}{o.Name, o.Value})
}

// Schema exports every declared parameter in name order.
func (s *Settings) Schema(sceneName, sceneDesc string) SceneSchema {
	out := SceneSchema{Name: sceneName, Description: sceneDesc}
	for _, name := range s.Names() {
		def := s.defs[name]
		ps := ParameterSchema{
			Name:        def.Name,
			Type:        def.Type.String(),
			Description: def.Description,
			Flags:       flagsOrNone(def.Flags),
		}
		switch {
		case def.Type.IsFloat():
			min, max := def.Min, def.Max
			ps.MinValue, ps.MaxValue = &min, &max
			d := def.Default.AsFloat()
			ps.DefaultF = &d
		case def.Type == Count:
			min, max := def.Min, def.Max
			ps.MinValue, ps.MaxValue = &min, &max
			d := def.Default.AsInt()
			ps.DefaultI = &d
		case def.Type == Select:
			d := def.Default.AsInt()
			ps.DefaultI = &d
			ps.Options = def.Options
		case def.Type == Switch:
			d := def.Default.AsBool()
			ps.DefaultB = &d
		}
		out.Parameters = append(out.Parameters, ps)
	}
	return out
}

func flagsOrNone(f Flags) []string {
	s := f.Strings()
	if len(s) == 0 {
		return []string{"NONE"}
	}
	return s
}

// JSON renders the schema as a JSON document.
func (sc SceneSchema) JSON() ([]byte, error) {
	return json.MarshalIndent(sc, "", "  ")
}
