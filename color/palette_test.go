package color

import "testing"

func TestPaletteSampleAnchors(t *testing.T) {
	p := RainbowColors
	for i := 0; i < 16; i++ {
		got := p.Sample(uint8(i*16), 255, NoBlend)
		if got != p[i] {
			t.Fatalf("anchor %d: got %v want %v", i, got, p[i])
		}
	}
}

func TestPaletteLinearBlendMidpoint(t *testing.T) {
	var p Palette
	p[0] = CRGB{0, 0, 0}
	p[1] = CRGB{200, 0, 0}
	got := p.Sample(8, 255, LinearBlend) // halfway between anchors 0 and 1
	if got.R < 95 || got.R > 105 {
		t.Fatalf("midpoint blend: got R=%d want ~100", got.R)
	}
}

func TestPaletteWrapsAtEnd(t *testing.T) {
	var p Palette
	p[15] = CRGB{0, 200, 0}
	p[0] = CRGB{0, 0, 200}
	got := p.Sample(248, 255, LinearBlend) // between anchor 15 and anchor 0
	if got.G == 0 || got.B == 0 {
		t.Fatalf("sample past last anchor should wrap toward entry 0, got %v", got)
	}
}

func TestPaletteBrightnessScaling(t *testing.T) {
	p := LavaColors
	dim := p.Sample(160, 64, LinearBlend)
	full := p.Sample(160, 255, LinearBlend)
	if dim.R > full.R || dim.G > full.G || dim.B > full.B {
		t.Fatalf("dim sample brighter than full: %v vs %v", dim, full)
	}
}

func TestGradientMonotoneHeat(t *testing.T) {
	// Heat runs black->red->yellow->white; luma must be non-decreasing.
	prev := uint8(0)
	for i := 0; i <= 255; i += 3 {
		c := HeatColors.Sample(uint8(i), 255, LinearBlend)
		if c.Luma()+2 < prev { // rounding slack
			t.Fatalf("heat palette luma dipped at index %d", i)
		}
		if c.Luma() > prev {
			prev = c.Luma()
		}
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("red")
	if !ok || c != Red {
		t.Fatalf("ByName(red): got %v %v", c, ok)
	}
	if _, ok := ByName("REd"); ok {
		t.Fatal("lookup is case-sensitive lowercase")
	}
}
