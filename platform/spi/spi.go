// Package spi drives NRZ LED strips (WS2812B and friends) over a SPI port,
// with a terminal fallback when no port is present.
package spi

import (
	"fmt"
	"image"
	imgcolor "image/color"
	"strings"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/platform"
)

// NRZ data rate for 800kHz strips; 3 SPI bits encode one NRZ bit.
const strip800kHz physic.Frequency = ((800 * 3) + 100) * physic.KiloHertz

// Output is a hardware platform: the native facade plus a display.Drawer
// that Show pushes frames through. Brightness scaling and channel ordering
// are applied when composing the output image, so the buffer always holds
// unscaled RGB.
type Output struct {
	*platform.Native
	drawer display.Drawer
	order  [3]int
	img    *image.NRGBA
	logger zerolog.Logger
}

var _ platform.Platform = (*Output)(nil)

// Open initializes the host, opens the named SPI port (empty means first
// available), and attaches an NRZ driver. When no port exists the frames
// render to the terminal instead, which keeps development off-device honest.
func Open(portName string, numLeds int, hw model.Hardware, logger zerolog.Logger) (*Output, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	var drawer display.Drawer
	port, err := spireg.Open(portName)
	if err != nil {
		logger.Warn().Err(err).Msg("no SPI port, rendering to terminal")
		drawer = screen.New(numLeds)
	} else {
		opts := nrzled.Opts{
			NumPixels: numLeds,
			Channels:  3,
			Freq:      strip800kHz,
		}
		d, err := nrzled.NewSPI(port, &opts)
		if err != nil {
			return nil, fmt.Errorf("nrzled: %w", err)
		}
		drawer = d
	}
	return NewWithDrawer(drawer, numLeds, hw, logger), nil
}

// NewWithDrawer wires an Output over an existing drawer. Tests inject
// playback drawers here.
func NewWithDrawer(d display.Drawer, numLeds int, hw model.Hardware, logger zerolog.Logger) *Output {
	return &Output{
		Native: platform.NewNativeWithLogger(numLeds, logger),
		drawer: d,
		order:  channelOrder(hw.ColorOrder),
		img:    image.NewNRGBA(image.Rect(0, 0, numLeds, 1)),
		logger: logger,
	}
}

func (o *Output) Show() error {
	o.compose()
	if err := o.drawer.Draw(o.drawer.Bounds(), o.img, image.Point{}); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return o.Native.Show()
}

// Close blanks the strip and halts the driver.
func (o *Output) Close() error {
	o.Clear()
	if err := o.Show(); err != nil {
		return err
	}
	if h, ok := o.drawer.(interface{ Halt() error }); ok {
		return h.Halt()
	}
	return nil
}

func (o *Output) compose() {
	leds := o.Leds()
	b := o.Brightness()
	for x, c := range leds {
		if b != 255 {
			c = color.CRGB{
				R: color.Scale8Video(c.R, b),
				G: color.Scale8Video(c.G, b),
				B: color.Scale8Video(c.B, b),
			}
		}
		ch := [3]uint8{c.R, c.G, c.B}
		o.img.SetNRGBA(x, 0, imgcolor.NRGBA{
			R: ch[o.order[0]],
			G: ch[o.order[1]],
			B: ch[o.order[2]],
			A: 255,
		})
	}
}

// channelOrder maps a wiring order string like "GRB" to source channel
// indices (0=R, 1=G, 2=B) for each output slot. Unknown strings fall back
// to RGB.
func channelOrder(s string) [3]int {
	order := [3]int{0, 1, 2}
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return order
	}
	for i, r := range s {
		switch r {
		case 'R':
			order[i] = 0
		case 'G':
			order[i] = 1
		case 'B':
			order[i] = 2
		default:
			return [3]int{0, 1, 2}
		}
	}
	return order
}
