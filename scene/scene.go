// Package scene defines the authoring surface for animations: a Scene runs
// against a geometry view and a platform facade, declares its parameters
// once, and renders one frame per Tick.
package scene

import (
	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/param"
	"github.com/pixeltheater/pixeltheater/platform"
)

// Meta is the static identity of a scene.
type Meta struct {
	Name        string
	Description string
	Version     string
	Author      string
}

// Scene is what the theater runs. Authors embed Base, which supplies
// everything except Setup and Tick.
//
// Lifecycle: Bind once when the scene joins a stage, Setup exactly once on
// the scene's first activation, Reset on every activation (including the
// first, right after Setup). Tick renders exactly one frame and must not
// block.
type Scene interface {
	Meta() Meta

	// Bind attaches the scene to its stage. Called before Setup.
	Bind(p platform.Platform, geom model.Geometry)

	// Setup declares parameters. It runs once per stage registration;
	// per-activation state belongs in Reset.
	Setup()

	// Reset restores declared parameter defaults, clears the tick counter,
	// and re-initializes any per-run scene state. The stage calls it on
	// every activation.
	Reset()

	// Tick renders the next frame into the platform's buffer.
	Tick()

	Settings() *param.Settings
	TickCount() uint64

	// BeginTick advances the frame counter; the stage calls it immediately
	// before Tick, so the count inside Tick is 1-based.
	BeginTick()

	// Status is a one-line, non-destructive runtime summary for logs.
	Status() string
}
