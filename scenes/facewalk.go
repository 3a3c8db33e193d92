package scenes

import (
	"github.com/pixeltheater/pixeltheater/color"
	"github.com/pixeltheater/pixeltheater/model"
	"github.com/pixeltheater/pixeltheater/param"
	"github.com/pixeltheater/pixeltheater/scene"
)

// FaceWalk lights one face at a time and leaks color across shared edges to
// the neighboring faces, walking the adjacency graph. Good for checking a
// model's edge tables on real hardware.
type FaceWalk struct {
	scene.Base
	face    int // logical id of the lit face
	holdFor uint64
	palette color.Palette
}

func NewFaceWalk() *FaceWalk {
	return &FaceWalk{
		Base:    scene.NewBase(scene.Meta{Name: "facewalk", Description: "walk faces across shared edges", Version: "1.0.0"}),
		palette: color.OceanColors,
	}
}

func (s *FaceWalk) Setup() {
	_ = s.DeclareCount("hold", 1, 300, 30, param.FlagClamp, "frames per face")
	_ = s.DeclareFloat("bleed", param.Ratio, 0.25, param.FlagClamp, "neighbor brightness")
}

func (s *FaceWalk) Reset() {
	s.Base.Reset()
	s.face = 0
	s.holdFor = 0
}

func (s *FaceWalk) Tick() {
	m := s.Model()
	color.FillSolid(s.Leds(), color.CRGB{})

	cur, ok := m.FaceByID(s.face)
	if !ok {
		s.face = 0
		return
	}

	hue := uint8(int(s.TickCount()/8) % 256)
	main := s.palette.Sample(hue, 255, color.LinearBlend)
	cur.Fill(main)

	bleed := main.Scale(uint8(s.Float("bleed") * 255))
	for e := 0; e < cur.EdgeCount(); e++ {
		n := cur.FaceAtEdge(e)
		if n == model.NoConnection {
			continue
		}
		if nf, ok := m.FaceByID(n); ok {
			nf.Fill(bleed)
		}
	}

	s.holdFor++
	if s.holdFor >= uint64(s.Int("hold")) {
		s.holdFor = 0
		s.step(cur)
	}
}

// step moves to the first connected face, or the next logical id when the
// current face has no connections.
func (s *FaceWalk) step(cur model.Face) {
	for e := 0; e < cur.EdgeCount(); e++ {
		if n := cur.FaceAtEdge(e); n != model.NoConnection && n != s.face {
			s.face = n
			return
		}
	}
	s.face = (s.face + 1) % s.Model().FaceCount()
}
