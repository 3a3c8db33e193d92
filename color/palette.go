package color

// Palette is 16 anchor colors sampled with an 8-bit index; the classic layout
// used by LED gradient palettes.
type Palette [16]CRGB

// BlendType selects palette sampling behavior.
type BlendType uint8

const (
	// NoBlend snaps to the nearest lower anchor.
	NoBlend BlendType = iota
	// LinearBlend interpolates between adjacent anchors (wrapping at the end).
	LinearBlend
)

// Sample returns the palette color at index (0..255), scaled by brightness.
// With LinearBlend the low 4 bits interpolate between anchor i and anchor i+1,
// wrapping from entry 15 back to entry 0.
func (p Palette) Sample(index uint8, brightness uint8, blend BlendType) CRGB {
	hi := index >> 4
	lo := index & 0x0F

	c := p[hi]
	if blend == LinearBlend && lo != 0 {
		next := p[(hi+1)&0x0F]
		amount := lo << 4 // 0..240
		c = c.Blend(next, amount)
	}
	if brightness != 255 {
		c = c.Scale(brightness)
	}
	return c
}

// GradientStop is one keyframe of a gradient palette definition: a position on
// the 0..255 index axis and the color there.
type GradientStop struct {
	Pos   uint8
	Color CRGB
}

// FromGradient expands keyframe stops into a 16-entry palette. Stops must be
// sorted by Pos ascending; the first stop should sit at 0 and the last at 255.
func FromGradient(stops []GradientStop) Palette {
	var p Palette
	if len(stops) == 0 {
		return p
	}
	for i := 0; i < 16; i++ {
		idx := uint8(i * 17) // spread anchors over 0..255
		p[i] = gradientAt(stops, idx)
	}
	return p
}

func gradientAt(stops []GradientStop, idx uint8) CRGB {
	if idx <= stops[0].Pos {
		return stops[0].Color
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if idx >= a.Pos && idx <= b.Pos {
			span := uint16(b.Pos) - uint16(a.Pos)
			if span == 0 {
				return b.Color
			}
			amount := uint8((uint16(idx-a.Pos) * 255) / span)
			return a.Color.Blend(b.Color, amount)
		}
	}
	return stops[len(stops)-1].Color
}
