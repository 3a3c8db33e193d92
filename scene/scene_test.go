package scene_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/model/modeltest"
	"github.com/pixeltheater/pixeltheater/param"
	"github.com/pixeltheater/pixeltheater/platform"
	"github.com/pixeltheater/pixeltheater/scene"
)

// pulse fills every face with one color whose intensity follows a parameter.
type pulse struct {
	scene.Base
	setups int
}

func newPulse() *pulse {
	return &pulse{Base: scene.NewBase(scene.Meta{
		Name:        "pulse",
		Description: "whole-sculpture pulse",
		Version:     "1.0.0",
	})}
}

func (s *pulse) Setup() {
	s.setups++
	_ = s.DeclareFloat("level", param.Ratio, 0.5, param.FlagClamp, "pulse level")
}

func (s *pulse) Tick() {
	v := uint8(s.Float("level") * 255)
	c := color.CRGB{R: v, G: v, B: v}
	for i := 0; i < s.Model().FaceCount(); i++ {
		s.Model().Face(i).Fill(c)
	}
}

func stage(t *testing.T) (platform.Platform, model.Geometry) {
	t.Helper()
	def := modeltest.BasicPentagon()
	p := platform.NewNativeWithLogger(def.LedCount, zerolog.Nop())
	m, err := model.New(def, p.Leds())
	require.NoError(t, err)
	return p, m
}

func TestSceneLifecycle(t *testing.T) {
	p, m := stage(t)
	s := newPulse()
	s.Bind(p, m)
	s.Setup()

	assert.Equal(t, "pulse", s.Meta().Name)
	assert.Zero(t, s.TickCount())

	for i := 0; i < 3; i++ {
		s.BeginTick()
		s.Tick()
	}
	assert.EqualValues(t, 3, s.TickCount())
	assert.Equal(t, uint8(127), p.Leds()[0].R)

	// Reset clears the counter and parameter values; Setup does not re-run,
	// so declarations survive any number of activations.
	s.Settings().Set("level", param.Float(1.0))
	s.Reset()
	assert.Zero(t, s.TickCount())
	assert.Equal(t, 0.5, s.Float("level"))
	assert.Equal(t, 1, s.setups)
	assert.Equal(t, []string{"level"}, s.Settings().Names())
}

func TestSceneWritesThroughFaceSpans(t *testing.T) {
	p, m := stage(t)
	s := newPulse()
	s.Bind(p, m)
	s.Setup()
	s.Settings().Set("level", param.Float(1.0))

	s.BeginTick()
	s.Tick()

	for i, c := range p.Leds() {
		assert.Equal(t, uint8(255), c.R, "led %d", i)
	}
	assert.Equal(t, m.PointCount(), len(p.Leds()))
}

func TestSceneSchemaExport(t *testing.T) {
	p, m := stage(t)
	s := newPulse()
	s.Bind(p, m)
	s.Setup()

	schema := s.Schema()
	assert.Equal(t, "pulse", schema.Name)
	require.Len(t, schema.Parameters, 1)
	assert.Equal(t, "level", schema.Parameters[0].Name)
	assert.Equal(t, "ratio", schema.Parameters[0].Type)
}

func TestBaseStatus(t *testing.T) {
	s := newPulse()
	s.BeginTick()
	assert.Contains(t, s.Status(), `"pulse"`)
	assert.Contains(t, s.Status(), "tick=1")
}
