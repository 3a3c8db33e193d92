package param

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func quietSettings() *Settings {
	return NewSettingsWithLogger(zerolog.Nop())
}

func TestDeclareRejectsBadNames(t *testing.T) {
	s := quietSettings()
	for _, name := range []string{"", "1speed", "sp eed", "sp-eed"} {
		if err := s.DeclareFloat(name, Ratio, 0.5, FlagClamp, ""); err == nil {
			t.Fatalf("name %q should be rejected", name)
		}
	}
	if err := s.DeclareFloat("_speed2", Ratio, 0.5, FlagClamp, ""); err != nil {
		t.Fatalf("valid identifier rejected: %v", err)
	}
}

func TestDeclareRejectsDuplicates(t *testing.T) {
	s := quietSettings()
	if err := s.DeclareFloat("speed", Ratio, 0.5, FlagClamp, ""); err != nil {
		t.Fatal(err)
	}
	if err := s.DeclareFloat("speed", Ratio, 0.1, FlagClamp, ""); err == nil {
		t.Fatal("duplicate declaration should error")
	}
	if got := s.GetFloat("speed"); got != 0.5 {
		t.Fatalf("original declaration should survive, got %g", got)
	}
}

func TestDeclareRejectsConflictingFlags(t *testing.T) {
	s := quietSettings()
	err := s.Declare(Def{Name: "a", Type: Ratio, Default: Float(0.5), Flags: FlagClamp | FlagWrap})
	if err == nil {
		t.Fatal("CLAMP|WRAP should be rejected")
	}
}

func TestDeclareRejectsOutOfRangeDefault(t *testing.T) {
	s := quietSettings()
	if err := s.DeclareFloat("speed", Ratio, 2.0, FlagClamp, ""); err == nil {
		t.Fatal("default outside [0,1] should be rejected")
	}
	if err := s.DeclareCount("n", 1, 10, 0, FlagNone, ""); err == nil {
		t.Fatal("count default below min should be rejected")
	}
}

func TestClampRoundTrip(t *testing.T) {
	s := quietSettings()
	if err := s.DeclareFloat("speed", Ratio, 0.5, FlagClamp, "animation speed"); err != nil {
		t.Fatal(err)
	}
	cases := []struct{ in, want float64 }{
		{2.0, 1.0}, {-3.0, 0.0}, {0.25, 0.25}, {1.0, 1.0},
	}
	for _, c := range cases {
		s.Set("speed", Float(c.in))
		if got := s.GetFloat("speed"); got != c.want {
			t.Fatalf("set %g: got %g want %g", c.in, got, c.want)
		}
	}
}

func TestNoneFlagStoresSentinel(t *testing.T) {
	s := quietSettings()
	if err := s.DeclareFloat("gain", Ratio, 0.5, FlagNone, ""); err != nil {
		t.Fatal(err)
	}
	s.Set("gain", Float(2.0))
	if got := s.GetFloat("gain"); !math.IsNaN(got) {
		t.Fatalf("out-of-range write under NONE: got %g want NaN", got)
	}
	// In-range write recovers.
	s.Set("gain", Float(0.75))
	if got := s.GetFloat("gain"); got != 0.75 {
		t.Fatalf("recovery write: got %g", got)
	}
}

func TestWrapFoldsIntoRange(t *testing.T) {
	s := quietSettings()
	if err := s.DeclareFloat("phase", Angle, 0, FlagWrap, ""); err != nil {
		t.Fatal(err)
	}
	twoPi := 2 * math.Pi
	for _, in := range []float64{twoPi + 1, -1, 10 * twoPi, -7.5} {
		s.Set("phase", Float(in))
		got := s.GetFloat("phase")
		if got < 0 || got > twoPi {
			t.Fatalf("wrap(%g) = %g outside [0, 2π]", in, got)
		}
	}
	// WRAP on a non-wrap-friendly type behaves as CLAMP.
	if err := s.DeclareRange("level", 0, 10, 5, FlagWrap, ""); err != nil {
		t.Fatal(err)
	}
	s.Set("level", Float(25))
	if got := s.GetFloat("level"); got != 10 {
		t.Fatalf("WRAP on range type should clamp: got %g", got)
	}
}

func TestCountSemantics(t *testing.T) {
	s := quietSettings()
	if err := s.DeclareCount("blobs", 1, 10, 5, FlagClamp, ""); err != nil {
		t.Fatal(err)
	}
	s.Set("blobs", Int(50))
	if got := s.GetInt("blobs"); got != 10 {
		t.Fatalf("clamped count: got %d want 10", got)
	}
	// NONE count out of range stores INT_MIN sentinel.
	if err := s.DeclareCount("seeds", 0, 4, 2, FlagNone, ""); err != nil {
		t.Fatal(err)
	}
	s.Set("seeds", Int(9))
	if got := s.GetInt("seeds"); got != SentinelInt {
		t.Fatalf("got %d want sentinel %d", got, SentinelInt)
	}
}

func TestSelectSparseOptions(t *testing.T) {
	s := quietSettings()
	opts := []Option{{"off", 0}, {"slow", 10}, {"fast", 30}}
	if err := s.DeclareSelect("mode", 10, opts, ""); err != nil {
		t.Fatal(err)
	}
	s.Set("mode", Int(30))
	if got := s.GetInt("mode"); got != 30 {
		t.Fatalf("got %d want 30", got)
	}
	s.Set("mode", Int(11)) // not an option
	if got := s.GetInt("mode"); got != SentinelInt {
		t.Fatalf("invalid select should store sentinel, got %d", got)
	}
}

func TestTypeMismatchStoresSentinel(t *testing.T) {
	s := quietSettings()
	_ = s.DeclareFloat("speed", Ratio, 0.5, FlagClamp, "")
	s.Set("speed", Int(1))
	if got := s.GetFloat("speed"); !math.IsNaN(got) {
		t.Fatalf("int write to float param: got %g want NaN", got)
	}
}

func TestUnknownParameterReads(t *testing.T) {
	s := quietSettings()
	if got := s.GetFloat("nope"); got != 0 {
		t.Fatalf("unknown float read: got %g want 0", got)
	}
	if got := s.GetInt("nope"); got != 0 {
		t.Fatalf("unknown int read: got %d want 0", got)
	}
	if s.GetBool("nope") {
		t.Fatal("unknown bool read: want false")
	}
	if s.Get("nope").IsValid() {
		t.Fatal("unknown Get should be invalid")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := quietSettings()
	_ = s.DeclareFloat("speed", Ratio, 0.5, FlagClamp, "")
	_ = s.DeclareCount("blobs", 1, 10, 3, FlagClamp, "")
	_ = s.DeclareSwitch("enabled", true, "")
	s.Set("speed", Float(0.9))
	s.Set("blobs", Int(7))
	s.Set("enabled", Bool(false))
	s.Reset()
	if s.GetFloat("speed") != 0.5 || s.GetInt("blobs") != 3 || !s.GetBool("enabled") {
		t.Fatal("reset did not restore declared defaults")
	}
}

func TestPresetIdempotence(t *testing.T) {
	s := quietSettings()
	_ = s.DeclareFloat("speed", Ratio, 0.5, FlagClamp, "")
	_ = s.DeclareSwitch("enabled", true, "")

	p := NewPreset("fast").SetFloat("speed", 0.8).SetBool("enabled", false).
		SetFloat("missing", 1.0).Build()

	s.ApplyPreset(p)
	speed1, en1 := s.GetFloat("speed"), s.GetBool("enabled")
	s.ApplyPreset(p)
	if s.GetFloat("speed") != speed1 || s.GetBool("enabled") != en1 {
		t.Fatal("applying a preset twice changed the result")
	}
	if speed1 != 0.8 || en1 != false {
		t.Fatalf("preset values not applied: speed=%g enabled=%v", speed1, en1)
	}
}

func TestSchemaShape(t *testing.T) {
	s := quietSettings()
	_ = s.DeclareFloat("speed", Ratio, 0.5, FlagClamp, "animation speed")
	_ = s.DeclareCount("count", 1, 10, 5, FlagClamp, "")
	_ = s.DeclareSwitch("enabled", true, "")
	_ = s.DeclareSelect("mode", 0, []Option{{"calm", 0}, {"wild", 5}}, "")

	raw, err := s.Schema("demo", "a demo scene").JSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if decoded["name"] != "demo" {
		t.Fatalf("scene name missing: %v", decoded["name"])
	}
	params := decoded["parameters"].([]any)
	if len(params) != 4 {
		t.Fatalf("expected 4 parameters, got %d", len(params))
	}

	text := string(raw)
	// Only type-relevant default fields may appear.
	if strings.Contains(text, `"default_float"`) && !strings.Contains(text, `"speed"`) {
		t.Fatal("schema text unexpectedly malformed")
	}
	first := params[0].(map[string]any) // sorted: count first
	if first["name"] != "count" {
		t.Fatalf("parameters should be name-sorted, first = %v", first["name"])
	}
	if _, has := first["default_bool"]; has {
		t.Fatal("count parameter must not carry default_bool")
	}
	if first["default_int"].(float64) != 5 {
		t.Fatalf("count default_int = %v", first["default_int"])
	}
}
