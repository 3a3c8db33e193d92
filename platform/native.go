package platform

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pixeltheater/pixeltheater/color"
)

// Native is the host-side platform: monotonic clock, seeded PRNG, zerolog
// output, and a Show that only advances frame timing. It backs tests and
// headless runs; hardware and simulator platforms embed it and override Show.
type Native struct {
	buf        *LedBuffer
	start      time.Time
	lastFrame  time.Time
	delta      float64
	frames     uint64
	brightness uint8
	maxFPS     uint16
	dither     bool
	rng        *rand.Rand
	logger     zerolog.Logger
}

var _ Platform = (*Native)(nil)

func NewNative(numLeds int) *Native {
	return NewNativeWithLogger(numLeds, log.Logger)
}

func NewNativeWithLogger(numLeds int, logger zerolog.Logger) *Native {
	now := time.Now()
	return &Native{
		buf:        NewLedBuffer(numLeds),
		start:      now,
		lastFrame:  now,
		brightness: 255,
		rng:        rand.New(rand.NewSource(now.UnixNano())),
		logger:     logger,
	}
}

func (p *Native) Leds() []color.CRGB { return p.buf.Raw() }
func (p *Native) NumLeds() int       { return p.buf.Len() }
func (p *Native) Buffer() *LedBuffer { return p.buf }
func (p *Native) Clear()             { p.buf.Clear() }

// BeginFrame samples the clock and updates the frame delta. Call it at the
// start of a frame, before scenes read DeltaTime.
func (p *Native) BeginFrame() {
	now := time.Now()
	p.delta = now.Sub(p.lastFrame).Seconds()
	p.lastFrame = now
}

func (p *Native) Show() error {
	p.frames++
	return nil
}

// Frames counts Show calls since creation.
func (p *Native) Frames() uint64 { return p.frames }

func (p *Native) SetBrightness(v uint8) { p.brightness = v }
func (p *Native) Brightness() uint8     { return p.brightness }

func (p *Native) SetMaxRefreshRate(fps uint16) { p.maxFPS = fps }
func (p *Native) MaxRefreshRate() uint16       { return p.maxFPS }
func (p *Native) SetDither(on bool)            { p.dither = on }

func (p *Native) Millis() uint32 {
	return uint32(time.Since(p.start).Milliseconds())
}

func (p *Native) DeltaTime() float64 { return p.delta }

func (p *Native) Random8() uint8 { return uint8(p.rng.Intn(256)) }
func (p *Native) Random8In(max uint8) uint8 {
	if max == 0 {
		return 0
	}
	return uint8(p.rng.Intn(int(max)))
}
func (p *Native) Random16() uint16 { return uint16(p.rng.Intn(65536)) }
func (p *Native) Random16In(max uint16) uint16 {
	if max == 0 {
		return 0
	}
	return uint16(p.rng.Intn(int(max)))
}
func (p *Native) Random32() uint32 { return p.rng.Uint32() }

// RandomInt returns a value in [min, max] inclusive.
func (p *Native) RandomInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + p.rng.Intn(max-min+1)
}

func (p *Native) RandomFloat() float64 { return p.rng.Float64() }

func (p *Native) RandomFloatIn(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + p.rng.Float64()*(max-min)
}

func (p *Native) LogInfo(format string, args ...any) {
	p.logger.Info().Msgf(format, args...)
}

func (p *Native) LogWarning(format string, args ...any) {
	p.logger.Warn().Msgf(format, args...)
}

func (p *Native) LogError(format string, args ...any) {
	p.logger.Error().Msgf(format, args...)
}
