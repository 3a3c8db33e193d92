package model

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/pixeltheater/pixeltheater/color"
)

// Face is a lightweight proxy over one face's slice of the shared LED buffer
// plus its geometry. Copy freely; it holds no state of its own.
type Face struct {
	m  *Model
	id int // logical id
}

func (f Face) ID() int          { return f.id }
func (f Face) GeometricID() int { return f.m.faces[f.id].data.GeometricID }
func (f Face) TypeID() int      { return f.m.faces[f.id].ftype.ID }
func (f Face) Kind() PolygonKind {
	return f.m.faces[f.id].ftype.Kind
}

// LedOffset is the face's first global LED index.
func (f Face) LedOffset() int { return f.m.faces[f.id].ledOffset }
func (f Face) LedCount() int  { return f.m.faces[f.id].ftype.NumLeds }

// Leds returns the face's writable window into the shared buffer. Index 0 is
// the face's first LED; writes are immediately visible at the corresponding
// global index.
func (f Face) Leds() []color.CRGB {
	fr := f.m.faces[f.id]
	return f.m.leds[fr.ledOffset : fr.ledOffset+fr.ftype.NumLeds]
}

// Led returns one LED of the face by local index, clamped into range.
func (f Face) Led(local int) *color.CRGB {
	leds := f.Leds()
	if local < 0 {
		local = 0
	} else if local >= len(leds) {
		local = len(leds) - 1
	}
	return &leds[local]
}

// Fill paints every LED of the face.
func (f Face) Fill(c color.CRGB) {
	color.FillSolid(f.Leds(), c)
}

// Vertices returns the face corner positions in edge order.
func (f Face) Vertices() []Vertex { return f.m.faces[f.id].data.Vertices }

func (f Face) EdgeCount() int { return f.m.faces[f.id].ftype.Kind.EdgeCount() }

// EdgeCenter is the midpoint of edge i (between vertices i and i+1, wrapping).
func (f Face) EdgeCenter(edgeIndex int) Vertex {
	return f.VertexMidpoint(edgeIndex, edgeIndex+1)
}

// VertexMidpoint is the midpoint between two vertices by index; indices wrap
// modulo the vertex count.
func (f Face) VertexMidpoint(i, j int) Vertex {
	vs := f.m.faces[f.id].data.Vertices
	n := len(vs)
	if n == 0 {
		return Vertex{}
	}
	i = ((i % n) + n) % n
	j = ((j % n) + n) % n
	return midpoint(vs[i], vs[j])
}

// Group resolves a named LED group on this face to global LED indices.
func (f Face) Group(name string) []int { return f.m.Group(name, f.id) }

// Groups lists the group names available on this face's type, sorted.
func (f Face) Groups() []string {
	gs := f.m.faces[f.id].groups
	names := make([]string, 0, len(gs))
	for name := range gs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FaceAtEdge returns the logical id of the face across edge edgeIndex, or
// NoConnection.
func (f Face) FaceAtEdge(edgeIndex int) int { return f.m.FaceAtEdge(f.id, edgeIndex) }

// Edges returns this face's edge records.
func (f Face) Edges() []EdgeData { return f.m.faces[f.id].edges }

// LedDistance pairs a global LED index with its distance to a query position.
type LedDistance struct {
	LedID    int
	Distance float64
}

// NearbyLeds lists this face's LEDs within maxDist of v, sorted ascending by
// distance. The result is sized by the face LED count.
func (f Face) NearbyLeds(v Vertex, maxDist float64) []LedDistance {
	fr := f.m.faces[f.id]
	out := make([]LedDistance, 0, fr.ftype.NumLeds)
	for i := 0; i < fr.ftype.NumLeds; i++ {
		p := f.m.points[fr.ledOffset+i]
		d := p.DistanceToVertex(v)
		if d <= maxDist {
			out = append(out, LedDistance{LedID: p.ID(), Distance: d})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Distance < out[b].Distance })
	return out
}

// ValidateGeometry checks this face's vertex table against its polygon kind:
// correct vertex count, finite positions within the coordinate bound, and
// roughly uniform edge lengths. Problems are logged and counted.
func (f Face) ValidateGeometry() int {
	fr := f.m.faces[f.id]
	errs := 0
	want := fr.ftype.Kind.EdgeCount()
	vs := fr.data.Vertices
	if want > 0 && len(vs) != want {
		log.Warn().Int("face", f.id).Int("have", len(vs)).Int("want", want).
			Msg("vertex count does not match polygon kind")
		return 1
	}
	bound := coordinateBound(f.m.def.SphereRadius)
	for i, v := range vs {
		if !finiteVertex(v) || absf(v.X) > bound || absf(v.Y) > bound || absf(v.Z) > bound {
			log.Warn().Int("face", f.id).Int("vertex", i).
				Str("pos", fmt.Sprintf("(%.1f,%.1f,%.1f)", v.X, v.Y, v.Z)).
				Msg("vertex outside coordinate bound")
			errs++
		}
	}
	if len(vs) >= 3 && fr.ftype.EdgeLengthMM > 0 {
		tol := edgeTolerance(f.m.def.SphereRadius)
		for i := range vs {
			l := vertexDistance(vs[i], vs[(i+1)%len(vs)])
			if absf(l-fr.ftype.EdgeLengthMM) > tol {
				log.Warn().Int("face", f.id).Int("edge", i).
					Float64("length", l).Float64("expected", fr.ftype.EdgeLengthMM).
					Msg("edge length outside tolerance")
				errs++
			}
		}
	}
	return errs
}
