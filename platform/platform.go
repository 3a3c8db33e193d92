package platform

import "github.com/pixeltheater/pixeltheater/color"

// Platform is the hardware facade scenes and the stage run against. All
// implementations are single-goroutine with respect to the render loop;
// Show blocks until the frame is handed to the output.
type Platform interface {
	// Leds returns the frame buffer slice. Length never changes.
	Leds() []color.CRGB
	NumLeds() int

	// Buffer exposes the bounds-safe wrapper around the same storage.
	Buffer() *LedBuffer

	Clear()

	// Show pushes the current buffer to the output device.
	Show() error

	// BeginFrame advances the frame clock. The stage calls it at the top of
	// every frame, before any scene runs, so DeltaTime covers the whole
	// previous frame by the time a scene reads it.
	BeginFrame()

	// SetBrightness scales output globally, 0..255. It affects output only;
	// buffer contents are untouched.
	SetBrightness(v uint8)
	Brightness() uint8

	SetMaxRefreshRate(fps uint16)
	SetDither(on bool)

	// Millis is elapsed time since the platform started, wrapping like a
	// 32-bit millisecond counter does.
	Millis() uint32

	// DeltaTime is the seconds elapsed between the two most recent
	// BeginFrame calls, for frame-rate independent animation.
	DeltaTime() float64

	Random8() uint8
	Random8In(max uint8) uint8
	Random16() uint16
	Random16In(max uint16) uint16
	Random32() uint32
	RandomInt(min, max int) int
	RandomFloat() float64
	RandomFloatIn(min, max float64) float64

	LogInfo(format string, args ...any)
	LogWarning(format string, args ...any)
	LogError(format string, args ...any)
}
