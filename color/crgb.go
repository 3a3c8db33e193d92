// Package color provides the 8-bit RGB/HSV primitives the animation runtime
// renders with: saturating channel math, rainbow HSV conversion, and 16-entry
// gradient palettes. All operations stay within uint8 range by clamping rather
// than overflowing, matching the behavior of common addressable-LED firmware.
package color

import "fmt"

// CRGB is one pixel: three 8-bit channels in R,G,B order. The channel order
// actually transmitted to hardware is a driver concern.
type CRGB struct {
	R, G, B uint8
}

// RGB builds a CRGB from channel values.
func RGB(r, g, b uint8) CRGB { return CRGB{r, g, b} }

// qadd8 adds two bytes, saturating at 255.
func qadd8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// qsub8 subtracts b from a, saturating at 0.
func qsub8(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// Scale8 scales a byte by scale/256, so Scale8(x, 255) ≈ x and Scale8(x, 0) == 0.
func Scale8(v, scale uint8) uint8 {
	return uint8((uint16(v) * (uint16(scale) + 1)) >> 8)
}

// Scale8Video is like Scale8 but never drops a non-zero value to zero, which
// keeps dim pixels lit during fades.
func Scale8Video(v, scale uint8) uint8 {
	if v == 0 {
		return 0
	}
	s := uint8((uint16(v) * uint16(scale)) >> 8)
	if s == 0 && scale != 0 {
		return 1
	}
	return s
}

// Blend8 mixes a toward b by amount/255.
func Blend8(a, b, amount uint8) uint8 {
	partial := uint16(a)*(255-uint16(amount)) + uint16(b)*uint16(amount) + 255
	return uint8(partial >> 8)
}

// Add returns the saturating sum of two colors.
func (c CRGB) Add(o CRGB) CRGB {
	return CRGB{qadd8(c.R, o.R), qadd8(c.G, o.G), qadd8(c.B, o.B)}
}

// Sub returns the saturating difference of two colors.
func (c CRGB) Sub(o CRGB) CRGB {
	return CRGB{qsub8(c.R, o.R), qsub8(c.G, o.G), qsub8(c.B, o.B)}
}

// Scale multiplies every channel by scale/256.
func (c CRGB) Scale(scale uint8) CRGB {
	return CRGB{Scale8(c.R, scale), Scale8(c.G, scale), Scale8(c.B, scale)}
}

// FadeToBlack dims the color by fade/256. fade=0 leaves it unchanged.
func (c CRGB) FadeToBlack(fade uint8) CRGB {
	return c.Scale(255 - fade)
}

// Blend mixes c toward o by amount/255.
func (c CRGB) Blend(o CRGB, amount uint8) CRGB {
	return CRGB{Blend8(c.R, o.R, amount), Blend8(c.G, o.G, amount), Blend8(c.B, o.B, amount)}
}

// IsBlack reports whether all channels are zero.
func (c CRGB) IsBlack() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// Luma approximates perceived brightness (Rec. 601 weights, integer math).
func (c CRGB) Luma() uint8 {
	return uint8((uint32(c.R)*54 + uint32(c.G)*183 + uint32(c.B)*19) >> 8)
}

// String renders the color as a 24-bit ANSI color swatch plus hex, handy when
// dumping frames to a terminal.
func (c CRGB) String() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m #%02X%02X%02X", c.R, c.G, c.B, c.R, c.G, c.B)
}

// FillSolid writes color into every element of leds.
func FillSolid(leds []CRGB, c CRGB) {
	for i := range leds {
		leds[i] = c
	}
}

// NScale8 scales every element of leds in place.
func NScale8(leds []CRGB, scale uint8) {
	for i := range leds {
		leds[i] = leds[i].Scale(scale)
	}
}
