// Package theater runs scenes against a stage: it owns the scene registry,
// playback order, frame dispatch, and the output push. One Theater drives
// one sculpture.
package theater

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/platform"
	"github.com/pixeltheater/pixeltheater/scene"
)

// PlaybackMode controls what happens when the playback interval elapses.
type PlaybackMode int

const (
	// Hold keeps the current scene until told otherwise.
	Hold PlaybackMode = iota
	// Advance steps through the registry in registration order.
	Advance
	// Random jumps to a random other scene.
	Random
)

func (m PlaybackMode) String() string {
	switch m {
	case Hold:
		return "hold"
	case Advance:
		return "advance"
	case Random:
		return "random"
	}
	return "unknown"
}

const statusEveryFrames = 300

// Theater binds scenes to a platform and geometry and steps them frame by
// frame. Not safe for concurrent use; drive it from one render goroutine.
type Theater struct {
	p      platform.Platform
	geom   model.Geometry
	logger zerolog.Logger

	order      []string
	scenes     map[string]scene.Scene
	disabled   map[string]bool
	configured map[string]bool

	current     string
	mode        PlaybackMode
	interval    time.Duration
	lastSwitch  time.Time
	frames      uint64
	lastStatus  string
	statusFrame uint64
}

func New(p platform.Platform, geom model.Geometry, logger zerolog.Logger) *Theater {
	return &Theater{
		p:          p,
		geom:       geom,
		logger:     logger,
		scenes:     map[string]scene.Scene{},
		disabled:   map[string]bool{},
		configured: map[string]bool{},
		mode:       Hold,
		lastSwitch: time.Now(),
	}
}

// AddScene registers a scene under its meta name and binds it to the stage.
// Registering the same name again replaces the earlier scene in place, with
// a warning, keeping its slot in the playback order.
func (t *Theater) AddScene(s scene.Scene) {
	name := s.Meta().Name
	if name == "" {
		t.logger.Warn().Msg("scene with empty name dropped")
		return
	}
	if _, exists := t.scenes[name]; exists {
		t.logger.Warn().Str("scene", name).Msg("scene replaced")
	} else {
		t.order = append(t.order, name)
	}
	s.Bind(t.p, t.geom)
	t.scenes[name] = s
	delete(t.disabled, name)
	delete(t.configured, name)
}

// SceneNames lists registered scenes in registration order.
func (t *Theater) SceneNames() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Current returns the active scene, or nil while nothing is running.
func (t *Theater) Current() scene.Scene {
	if t.current == "" {
		return nil
	}
	return t.scenes[t.current]
}

// Play activates a scene by name over a cleared buffer. Setup runs once per
// registration, on the scene's first activation; every activation runs Reset.
func (t *Theater) Play(name string) error {
	s, ok := t.scenes[name]
	if !ok {
		return fmt.Errorf("scene %q not registered", name)
	}
	if t.disabled[name] {
		return fmt.Errorf("scene %q is disabled", name)
	}
	t.p.Clear()
	if !t.configured[name] {
		s.Setup()
		t.configured[name] = true
	}
	s.Reset()
	t.current = name
	t.lastSwitch = time.Now()
	t.lastStatus = ""
	t.logger.Info().Str("scene", name).Msg("scene started")
	return nil
}

// Next activates the next enabled scene in registration order, wrapping.
func (t *Theater) Next() error {
	if len(t.order) == 0 {
		return fmt.Errorf("no scenes registered")
	}
	start := t.indexOf(t.current)
	for step := 1; step <= len(t.order); step++ {
		name := t.order[(start+step)%len(t.order)]
		if !t.disabled[name] {
			return t.Play(name)
		}
	}
	return fmt.Errorf("all scenes disabled")
}

// PlayRandom activates a random enabled scene, avoiding the current one when
// another choice exists.
func (t *Theater) PlayRandom() error {
	candidates := make([]string, 0, len(t.order))
	for _, name := range t.order {
		if !t.disabled[name] && name != t.current {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		if t.current != "" && !t.disabled[t.current] {
			return t.Play(t.current)
		}
		return fmt.Errorf("no playable scenes")
	}
	return t.Play(candidates[t.p.RandomInt(0, len(candidates)-1)])
}

// SetPlaybackMode switches the automatic progression policy and restarts the
// interval timer. A non-positive interval under Advance or Random switches
// on every frame.
func (t *Theater) SetPlaybackMode(mode PlaybackMode, interval time.Duration) {
	t.mode = mode
	t.interval = interval
	t.lastSwitch = time.Now()
	t.logger.Info().Stringer("mode", mode).Dur("interval", interval).Msg("playback mode set")
}

func (t *Theater) PlaybackMode() PlaybackMode { return t.mode }

// Disabled reports whether a scene has been disabled after a panic.
func (t *Theater) Disabled(name string) bool { return t.disabled[name] }

// EnableScene clears the disabled flag, giving a fixed scene another chance.
func (t *Theater) EnableScene(name string) { delete(t.disabled, name) }

// Update renders one frame: advance the frame clock, progress playback if
// due, tick the active scene, push the buffer. With scenes registered but
// none active, the first enabled scene starts automatically. A panicking
// scene is disabled and playback moves on; the stage itself never crashes.
func (t *Theater) Update() error {
	t.p.BeginFrame()
	t.maybeProgress()

	if t.current == "" && len(t.order) > 0 {
		// Next from the empty state picks the first enabled scene. If
		// everything is disabled the stage stays dark.
		_ = t.Next()
	}

	s := t.Current()
	if s == nil {
		return t.p.Show()
	}

	if ok := t.tickSafely(s); !ok {
		t.disabled[t.current] = true
		t.p.Clear()
		if err := t.Next(); err != nil {
			t.current = ""
			t.logger.Error().Msg("no playable scenes remain")
		}
	}

	t.frames++
	if t.frames%statusEveryFrames == 0 {
		if cur := t.Current(); cur != nil {
			t.lastStatus = cur.Status()
			t.statusFrame = t.frames
			t.logger.Debug().
				Str("status", t.lastStatus).
				Float64("delta_s", t.p.DeltaTime()).
				Msg("stage status")
		}
	}
	return t.p.Show()
}

// Status returns the current scene's one-line status without touching scene
// state. The string is refreshed at the status cadence and cached between
// refreshes; an idle stage reports "no scene".
func (t *Theater) Status() string {
	s := t.Current()
	if s == nil {
		return "no scene"
	}
	if t.lastStatus == "" || t.frames-t.statusFrame >= statusEveryFrames {
		t.lastStatus = s.Status()
		t.statusFrame = t.frames
	}
	return t.lastStatus
}

func (t *Theater) maybeProgress() {
	if t.mode == Hold || t.current == "" {
		return
	}
	if t.interval > 0 && time.Since(t.lastSwitch) < t.interval {
		return
	}
	var err error
	switch t.mode {
	case Advance:
		err = t.Next()
	case Random:
		err = t.PlayRandom()
	}
	if err != nil {
		t.logger.Warn().Err(err).Msg("playback progression failed")
	}
}

func (t *Theater) tickSafely(s scene.Scene) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			t.logger.Error().
				Str("scene", t.current).
				Interface("panic", r).
				Msg("scene panicked, disabling")
		}
	}()
	s.BeginTick()
	s.Tick()
	return true
}

func (t *Theater) indexOf(name string) int {
	for i, n := range t.order {
		if n == name {
			return i
		}
	}
	return -1
}
