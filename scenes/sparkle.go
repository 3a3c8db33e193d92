package scenes

import (
	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/param"
	"github.com/pixeltheater/pixeltheater/scene"
)

// Sparkle fades the buffer toward black and ignites random LEDs from a
// palette, spreading a dimmer glow to each spark's precomputed neighbors.
type Sparkle struct {
	scene.Base
	palette color.Palette
}

func NewSparkle() *Sparkle {
	return &Sparkle{
		Base:    scene.NewBase(scene.Meta{Name: "sparkle", Description: "random palette sparks", Version: "1.0.0"}),
		palette: color.PartyColors,
	}
}

func (s *Sparkle) Setup() {
	_ = s.DeclareCount("sparks", 0, 50, 4, param.FlagClamp, "new sparks per frame")
	_ = s.DeclareFloat("decay", param.Ratio, 0.12, param.FlagClamp, "fade per frame")
	_ = s.DeclareSwitch("glow", true, "light up neighbors too")
}

func (s *Sparkle) Tick() {
	leds := s.Leds()
	fade := uint8(s.Float("decay") * 255)
	for i := range leds {
		leds[i] = leds[i].FadeToBlack(fade)
	}

	m := s.Model()
	glow := s.Bool("glow")
	for n := 0; n < s.Int("sparks"); n++ {
		id := s.RandomInt(0, len(leds)-1)
		c := s.palette.Sample(s.Random8(), 255, color.LinearBlend)
		leds[id] = c

		if !glow {
			continue
		}
		for _, nb := range m.Point(id).Neighbors() {
			leds[nb.ID] = leds[nb.ID].Add(c.Scale(64))
		}
	}
}
