// Package scenes ships the stock animations: small, parameter-driven scenes
// that exercise the geometry API and double as authoring references.
package scenes

import (
	"math"

	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/param"
	"github.com/pixeltheater/pixeltheater/scene"
)

// Rainbow sweeps a hue gradient around the sculpture, keyed on each LED's
// angular position so the bands follow geometry rather than wiring.
type Rainbow struct {
	scene.Base
	phase float64
}

func NewRainbow() *Rainbow {
	return &Rainbow{Base: scene.NewBase(scene.Meta{
		Name:        "rainbow",
		Description: "geometry-keyed rotating rainbow",
		Version:     "1.0.0",
	})}
}

func (s *Rainbow) Setup() {
	_ = s.DeclareFloat("speed", param.Ratio, 0.3, param.FlagClamp, "rotation speed")
	_ = s.DeclareFloat("phase", param.Angle, 0, param.FlagWrap, "start angle")
	_ = s.DeclareRange("bands", 1, 8, 2, param.FlagClamp, "hue repeats per turn")
}

func (s *Rainbow) Reset() {
	s.Base.Reset()
	s.phase = s.Float("phase")
}

func (s *Rainbow) Tick() {
	s.phase += s.Float("speed") * s.DeltaTime() * 2 * math.Pi
	bands := s.Float("bands")

	leds := s.Leds()
	m := s.Model()
	for i := range leds {
		p := m.Point(i)
		a := math.Atan2(p.Y(), p.X()) + s.phase
		h := a * bands / (2 * math.Pi)
		h -= math.Floor(h)
		leds[i] = color.CHSV{H: uint8(h * 255), S: 255, V: 255}.ToRGB()
	}
}
