package color

// CHSV is an 8-bit HSV triple. Hue wraps at 256 (no degrees anywhere).
type CHSV struct {
	H, S, V uint8
}

// HSV builds a CHSV from channel values.
func HSV(h, s, v uint8) CHSV { return CHSV{h, s, v} }

// Rainbow hue band boundaries. Each band is 32 hue steps wide, eight bands
// around the circle: red, orange, yellow, green, aqua, blue, purple, pink.
const hueBand = 32

// ToRGB converts using the "rainbow" mapping: bands are perceptually balanced
// so yellow and orange get as much of the hue circle as blue does. Output is
// monotonic in V and saturation-safe.
func (c CHSV) ToRGB() CRGB {
	hue, sat, val := c.H, c.S, c.V

	offset := hue & (hueBand - 1)
	third := Scale8(offset<<3, 85) // offset8 * 1/3

	var r, g, b uint8
	switch hue >> 5 {
	case 0: // red -> orange
		r, g, b = 255-third, third, 0
	case 1: // orange -> yellow
		r, g, b = 171, 85+third, 0
	case 2: // yellow -> green
		twoThirds := Scale8(offset<<3, 170)
		r, g, b = 171-twoThirds, 170+third, 0
	case 3: // green -> aqua
		r, g, b = 0, 255-third, third
	case 4: // aqua -> blue
		twoThirds := Scale8(offset<<3, 170)
		r, g, b = 0, 171-twoThirds, 85+twoThirds
	case 5: // blue -> purple
		r, g, b = third, 0, 255-third
	case 6: // purple -> pink
		r, g, b = 85+third, 0, 171-third
	default: // pink -> red
		r, g, b = 170+third, 0, 85-third
	}

	// Desaturate toward white, then scale by value.
	if sat != 255 {
		if sat == 0 {
			r, g, b = 255, 255, 255
		} else {
			desat := 255 - sat
			desat = Scale8(desat, desat) // quadratic falloff reads better on LEDs
			satScale := 255 - desat
			r = Scale8(r, satScale) + desat
			g = Scale8(g, satScale) + desat
			b = Scale8(b, satScale) + desat
		}
	}
	if val != 255 {
		if val == 0 {
			return CRGB{}
		}
		val = Scale8Video(val, val)
		r = Scale8Video(r, val)
		g = Scale8Video(g, val)
		b = Scale8Video(b, val)
	}
	return CRGB{r, g, b}
}

// FillRainbow paints leds with an evenly stepped rainbow starting at startHue.
func FillRainbow(leds []CRGB, startHue, deltaHue uint8) {
	h := startHue
	for i := range leds {
		leds[i] = CHSV{h, 255, 255}.ToRGB()
		h += deltaHue
	}
}
