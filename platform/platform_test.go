package platform

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixeltheater/pixeltheater/color"
)

func TestBufferBoundsSafety(t *testing.T) {
	b := NewLedBuffer(4)

	b.Set(0, color.Red)
	b.Set(3, color.Blue)
	b.Set(-1, color.White)
	b.Set(4, color.White)
	b.Set(1000, color.White)

	if got := b.DroppedWrites(); got != 3 {
		t.Fatalf("dropped writes = %d, want 3", got)
	}
	if b.Get(0) != color.Red || b.Get(3) != color.Blue {
		t.Fatal("in-range writes lost")
	}
	if b.Get(-1) != (color.CRGB{}) || b.Get(99) != (color.CRGB{}) {
		t.Fatal("out-of-range reads must be black")
	}
}

func TestBufferClearAndFill(t *testing.T) {
	b := NewLedBuffer(8)
	b.Fill(color.Green)
	for i := 0; i < b.Len(); i++ {
		if b.Get(i) != color.Green {
			t.Fatalf("fill missed index %d", i)
		}
	}
	b.Clear()
	for i := 0; i < b.Len(); i++ {
		if !b.Get(i).IsBlack() {
			t.Fatalf("clear missed index %d", i)
		}
	}
}

func TestBufferRawSharesStorage(t *testing.T) {
	b := NewLedBuffer(3)
	b.Raw()[2] = color.Purple
	if b.Get(2) != color.Purple {
		t.Fatal("Raw slice must alias indexed access")
	}
}

func TestNativeTiming(t *testing.T) {
	p := NewNativeWithLogger(10, zerolog.Nop())

	if p.DeltaTime() != 0 {
		t.Fatal("delta before the first frame should be 0")
	}
	time.Sleep(5 * time.Millisecond)
	p.BeginFrame()
	if p.DeltaTime() <= 0 {
		t.Fatalf("delta after BeginFrame = %g, want > 0", p.DeltaTime())
	}
	if err := p.Show(); err != nil {
		t.Fatal(err)
	}
	if p.Frames() != 1 {
		t.Fatalf("frames = %d", p.Frames())
	}
	if p.Millis() == 0 {
		t.Skip("clock too coarse")
	}
}

func TestDeltaReadyBeforeShow(t *testing.T) {
	p := NewNativeWithLogger(1, zerolog.Nop())

	time.Sleep(2 * time.Millisecond)
	p.BeginFrame()
	first := p.DeltaTime()
	if first <= 0 {
		t.Fatalf("first frame delta = %g, want > 0", first)
	}

	// Show must not disturb the delta mid-frame.
	if err := p.Show(); err != nil {
		t.Fatal(err)
	}
	if p.DeltaTime() != first {
		t.Fatal("Show changed the frame delta")
	}
}

func TestNativeRandomBounds(t *testing.T) {
	p := NewNativeWithLogger(1, zerolog.Nop())

	for i := 0; i < 1000; i++ {
		if v := p.Random8In(10); v >= 10 {
			t.Fatalf("Random8In(10) = %d", v)
		}
		if v := p.RandomInt(3, 7); v < 3 || v > 7 {
			t.Fatalf("RandomInt(3,7) = %d", v)
		}
		if v := p.RandomFloat(); v < 0 || v >= 1 {
			t.Fatalf("RandomFloat = %g", v)
		}
		if v := p.RandomFloatIn(-2, 2); v < -2 || v >= 2 {
			t.Fatalf("RandomFloatIn(-2,2) = %g", v)
		}
	}
	if p.Random8In(0) != 0 || p.Random16In(0) != 0 {
		t.Fatal("zero max must return 0")
	}
	if p.RandomInt(5, 5) != 5 {
		t.Fatal("degenerate range must return min")
	}
}

func TestNativeBrightnessDefaults(t *testing.T) {
	p := NewNativeWithLogger(1, zerolog.Nop())
	if p.Brightness() != 255 {
		t.Fatalf("default brightness = %d", p.Brightness())
	}
	p.SetBrightness(40)
	if p.Brightness() != 40 {
		t.Fatal("brightness not stored")
	}
}
