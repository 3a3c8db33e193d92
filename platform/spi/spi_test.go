package spi

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/nrzled"

	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/model"
)

func recordingDrawer(t *testing.T, numLeds int) (*nrzled.Dev, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	opts := nrzled.Opts{NumPixels: numLeds, Channels: 3, Freq: 2500 * physic.KiloHertz}
	d, err := nrzled.NewSPI(spitest.NewRecordRaw(buf), &opts)
	require.NoError(t, err)
	return d, buf
}

func TestShowPushesFrame(t *testing.T) {
	d, buf := recordingDrawer(t, 4)
	hw := model.Hardware{ColorOrder: "RGB"}
	out := NewWithDrawer(d, 4, hw, zerolog.Nop())

	out.Leds()[0] = color.Red
	out.Leds()[3] = color.Blue
	require.NoError(t, out.Show())

	assert.NotZero(t, buf.Len(), "a frame must reach the SPI port")
	assert.Equal(t, uint64(1), out.Frames())
}

func TestBrightnessScalesOutputNotBuffer(t *testing.T) {
	d, _ := recordingDrawer(t, 2)
	out := NewWithDrawer(d, 2, model.Hardware{}, zerolog.Nop())

	out.Leds()[0] = color.CRGB{R: 200, G: 100, B: 50}
	out.SetBrightness(128)
	require.NoError(t, out.Show())

	// The buffer keeps full values; scaling happens during compose.
	assert.Equal(t, color.CRGB{R: 200, G: 100, B: 50}, out.Leds()[0])
	got := out.img.NRGBAAt(0, 0)
	assert.Less(t, got.R, uint8(200))
	assert.NotZero(t, got.R)
}

func TestChannelOrder(t *testing.T) {
	cases := []struct {
		in   string
		want [3]int
	}{
		{"RGB", [3]int{0, 1, 2}},
		{"GRB", [3]int{1, 0, 2}},
		{"BGR", [3]int{2, 1, 0}},
		{"grb", [3]int{1, 0, 2}},
		{"", [3]int{0, 1, 2}},
		{"XYZ", [3]int{0, 1, 2}},
		{"RG", [3]int{0, 1, 2}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, channelOrder(c.in), "order %q", c.in)
	}
}

func TestComposeAppliesWiringOrder(t *testing.T) {
	d, _ := recordingDrawer(t, 1)
	out := NewWithDrawer(d, 1, model.Hardware{ColorOrder: "GRB"}, zerolog.Nop())

	out.Leds()[0] = color.CRGB{R: 10, G: 20, B: 30}
	out.compose()

	px := out.img.NRGBAAt(0, 0)
	assert.Equal(t, uint8(20), px.R)
	assert.Equal(t, uint8(10), px.G)
	assert.Equal(t, uint8(30), px.B)
}

func TestCloseBlanksStrip(t *testing.T) {
	d, _ := recordingDrawer(t, 3)
	out := NewWithDrawer(d, 3, model.Hardware{}, zerolog.Nop())

	out.Leds()[1] = color.White
	require.NoError(t, out.Show())
	require.NoError(t, out.Close())

	for _, c := range out.Leds() {
		assert.True(t, c.IsBlack())
	}
}
