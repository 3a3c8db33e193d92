package scene

import (
	"fmt"

	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/param"
	"github.com/pixeltheater/pixeltheater/platform"
)

// Base carries the stage bindings and parameter store every scene needs.
// Embed it and implement Setup and Tick; override Meta via NewBase.
type Base struct {
	meta     Meta
	p        platform.Platform
	geom     model.Geometry
	settings *param.Settings
	ticks    uint64
}

func NewBase(meta Meta) Base {
	return Base{meta: meta, settings: param.NewSettings()}
}

func (b *Base) Meta() Meta { return b.meta }

func (b *Base) Bind(p platform.Platform, geom model.Geometry) {
	b.p = p
	b.geom = geom
}

func (b *Base) Reset() {
	b.ticks = 0
	if b.settings != nil {
		b.settings.Reset()
	}
}

func (b *Base) Settings() *param.Settings { return b.settings }
func (b *Base) TickCount() uint64         { return b.ticks }
func (b *Base) BeginTick()                { b.ticks++ }

// Status is a one-line runtime summary for logs.
func (b *Base) Status() string {
	return fmt.Sprintf("scene %q tick=%d", b.meta.Name, b.ticks)
}

// ---- stage accessors ----

func (b *Base) Model() model.Geometry       { return b.geom }
func (b *Base) Platform() platform.Platform { return b.p }

func (b *Base) Leds() []color.CRGB { return b.p.Leds() }
func (b *Base) LedCount() int      { return b.p.NumLeds() }

func (b *Base) Millis() uint32     { return b.p.Millis() }
func (b *Base) DeltaTime() float64 { return b.p.DeltaTime() }

func (b *Base) Random8() uint8                        { return b.p.Random8() }
func (b *Base) Random16() uint16                      { return b.p.Random16() }
func (b *Base) RandomInt(min, max int) int            { return b.p.RandomInt(min, max) }
func (b *Base) RandomFloat() float64                  { return b.p.RandomFloat() }
func (b *Base) RandomFloatIn(min, max float64) float64 { return b.p.RandomFloatIn(min, max) }

func (b *Base) LogInfo(format string, args ...any)    { b.p.LogInfo(format, args...) }
func (b *Base) LogWarning(format string, args ...any) { b.p.LogWarning(format, args...) }
func (b *Base) LogError(format string, args ...any)   { b.p.LogError(format, args...) }

// ---- parameter declaration forwarders ----

func (b *Base) DeclareFloat(name string, t param.Type, def float64, flags param.Flags, desc string) error {
	return b.settings.DeclareFloat(name, t, def, flags, desc)
}

func (b *Base) DeclareRange(name string, min, max, def float64, flags param.Flags, desc string) error {
	return b.settings.DeclareRange(name, min, max, def, flags, desc)
}

func (b *Base) DeclareCount(name string, min, max, def int, flags param.Flags, desc string) error {
	return b.settings.DeclareCount(name, min, max, def, flags, desc)
}

func (b *Base) DeclareSwitch(name string, def bool, desc string) error {
	return b.settings.DeclareSwitch(name, def, desc)
}

func (b *Base) DeclareSelect(name string, def int, options []param.Option, desc string) error {
	return b.settings.DeclareSelect(name, def, options, desc)
}

// ---- parameter reads ----

func (b *Base) Float(name string) float64 { return b.settings.GetFloat(name) }
func (b *Base) Int(name string) int       { return b.settings.GetInt(name) }
func (b *Base) Bool(name string) bool     { return b.settings.GetBool(name) }

// Schema exports this scene's parameter schema.
func (b *Base) Schema() param.SceneSchema {
	return b.settings.Schema(b.meta.Name, b.meta.Description)
}
