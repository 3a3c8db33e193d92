package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theater.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTemp(t, `
driver: sim
model: models/dodeca.yaml
brightness: 128
fps: 30
playback:
  mode: advance
  interval: 90s
  start_with: fireworks
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Driver != "sim" || c.Brightness != 128 || c.FPS != 30 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Playback.Mode != "advance" || c.Playback.Interval.Std() != 90*time.Second {
		t.Fatalf("playback not decoded: %+v", c.Playback)
	}
	if c.Sim.Addr != ":8089" {
		t.Fatalf("unset fields must keep defaults, got %q", c.Sim.Addr)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []string{
		"driver: teleport\nfps: 60\n",
		"driver: spi\nfps: 0\n",
		"driver: spi\nfps: 60\nplayback:\n  mode: chaos\n",
	}
	for _, body := range cases {
		if _, err := Load(writeTemp(t, body)); err == nil {
			t.Fatalf("config should be rejected:\n%s", body)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	c := Default()
	c.Driver = "spi"
	c.SPI.Port = "/dev/spidev0.0"

	if err := Save(path, c); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Driver != "spi" || got.SPI.Port != "/dev/spidev0.0" {
		t.Fatalf("round trip lost data: %+v", got)
	}
}
