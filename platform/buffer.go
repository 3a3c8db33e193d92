// Package platform hides hardware and host differences behind one facade:
// timing, random numbers, logging, brightness, and pushing the LED buffer to
// an output device. Scenes talk to a Platform and never to a driver.
package platform

import (
	"sync/atomic"

	"github.com/pixeltheater/pixeltheater/color"
)

// LedBuffer owns the frame's pixel storage. Indexed access is bounds-safe:
// writes outside the buffer are dropped and counted, reads outside return
// black. The raw slice is available for hot loops that manage their own
// bounds (face spans are pre-sliced and always in range).
type LedBuffer struct {
	leds    []color.CRGB
	dropped atomic.Uint64
}

func NewLedBuffer(n int) *LedBuffer {
	if n < 0 {
		n = 0
	}
	return &LedBuffer{leds: make([]color.CRGB, n)}
}

func (b *LedBuffer) Len() int { return len(b.leds) }

// Raw exposes the underlying slice for face spans and drivers.
func (b *LedBuffer) Raw() []color.CRGB { return b.leds }

// Set writes one pixel. Out-of-range writes are dropped, never panic.
func (b *LedBuffer) Set(i int, c color.CRGB) {
	if i < 0 || i >= len(b.leds) {
		b.dropped.Add(1)
		return
	}
	b.leds[i] = c
}

// Get reads one pixel; out-of-range reads return black.
func (b *LedBuffer) Get(i int) color.CRGB {
	if i < 0 || i >= len(b.leds) {
		return color.CRGB{}
	}
	return b.leds[i]
}

// DroppedWrites reports how many writes landed outside the buffer since
// creation. Useful as a cheap animation-bug detector.
func (b *LedBuffer) DroppedWrites() uint64 { return b.dropped.Load() }

// Clear sets every pixel to black.
func (b *LedBuffer) Clear() {
	for i := range b.leds {
		b.leds[i] = color.CRGB{}
	}
}

// Fill sets every pixel to c.
func (b *LedBuffer) Fill(c color.CRGB) {
	color.FillSolid(b.leds, c)
}
