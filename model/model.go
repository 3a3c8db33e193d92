package model

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/pixeltheater/pixeltheater/color"
)

// Geometry is the stable, non-generic interface scenes program against, so an
// animation never depends on which sculpture it runs on. Implementations
// never panic: invalid indices clamp (with a warning) or return sentinels.
type Geometry interface {
	PointCount() int
	FaceCount() int
	SphereRadius() float64

	// Point returns the LED position for a global LED index. Out-of-range
	// ids clamp to the last valid id.
	Point(id int) Point

	// Face addresses faces by geometric position, consulting the
	// geometric-to-logical permutation, so iteration order follows physical
	// placement rather than wiring order.
	Face(geomIndex int) Face

	// FaceByID addresses a face by logical (wiring-order) id, as returned
	// by FaceAtEdge.
	FaceByID(faceID int) (Face, bool)

	// FaceEdgeCount returns the number of edges on a logical face; 0 for
	// invalid ids.
	FaceEdgeCount(faceID int) int

	// FaceAtEdge returns the logical id of the face across the given edge,
	// or NoConnection (-1) for free edges and invalid input.
	FaceAtEdge(faceID, edgeIndex int) int

	// Group resolves a named LED group on a face to global LED indices, in
	// declared order. Empty on any miss; comparison is exact and
	// case-sensitive.
	Group(name string, faceID int) []int

	// Edge returns the edge record at a flat index.
	Edge(edgeIndex int) (EdgeData, bool)

	Hardware() Hardware

	// Validate runs the model integrity report.
	Validate(checkGeometry, checkIntegrity bool) Validation
}

type faceRuntime struct {
	data      FaceData
	ftype     FaceTypeData
	ledOffset int
	edges     []EdgeData
	groups    map[string][]int // group name -> global LED indices
}

// Model is the concrete per-device runtime view over a Definition and the
// shared LED buffer. It implements Geometry.
type Model struct {
	def           Definition
	leds          []color.CRGB
	points        []Point
	faces         []faceRuntime // indexed by logical id
	geomToLogical []int
}

var _ Geometry = (*Model)(nil)

// New builds the runtime view. leds is the platform-owned buffer the faces
// write into; its length must equal the definition's LED count.
func New(def Definition, leds []color.CRGB) (*Model, error) {
	if def.LedCount <= 0 || def.LedCount > ABSOLUTE_MAX_LED {
		return nil, fmt.Errorf("model %q: invalid led count %d", def.Name, def.LedCount)
	}
	if len(leds) != def.LedCount {
		return nil, fmt.Errorf("model %q: buffer holds %d leds, definition declares %d",
			def.Name, len(leds), def.LedCount)
	}
	if len(def.Faces) != def.FaceCount {
		return nil, fmt.Errorf("model %q: %d face records, declared %d",
			def.Name, len(def.Faces), def.FaceCount)
	}

	m := &Model{def: def, leds: leds}

	if err := m.buildFaces(); err != nil {
		return nil, err
	}
	if err := m.buildPoints(); err != nil {
		return nil, err
	}
	m.buildGroups()
	return m, nil
}

func (m *Model) buildFaces() error {
	m.faces = make([]faceRuntime, m.def.FaceCount)
	m.geomToLogical = make([]int, m.def.FaceCount)
	for i := range m.geomToLogical {
		m.geomToLogical[i] = -1
	}

	// LED offsets accumulate in wiring order: the faces array sorted by
	// logical id defines how LED ranges pack into the buffer.
	ordered := make([]FaceData, len(m.def.Faces))
	copy(ordered, m.def.Faces)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	offset := 0
	for i, fd := range ordered {
		if fd.ID != i {
			return fmt.Errorf("model %q: face ids not dense at %d", m.def.Name, fd.ID)
		}
		if fd.TypeID < 0 || fd.TypeID >= len(m.def.FaceTypes) {
			return fmt.Errorf("model %q: face %d references unknown type %d", m.def.Name, fd.ID, fd.TypeID)
		}
		ft := m.def.FaceTypes[fd.TypeID]
		m.faces[i] = faceRuntime{data: fd, ftype: ft, ledOffset: offset}
		offset += ft.NumLeds

		if fd.GeometricID >= 0 && fd.GeometricID < m.def.FaceCount {
			m.geomToLogical[fd.GeometricID] = fd.ID
		}
	}
	if offset != m.def.LedCount {
		return fmt.Errorf("model %q: face led counts sum to %d, declared %d",
			m.def.Name, offset, m.def.LedCount)
	}

	// Fall back to identity where the remap is incomplete; Validate will
	// still flag a non-bijective table.
	for g, logical := range m.geomToLogical {
		if logical < 0 {
			m.geomToLogical[g] = g
		}
	}

	for _, e := range m.def.Edges {
		if e.FaceID >= 0 && e.FaceID < len(m.faces) {
			m.faces[e.FaceID].edges = append(m.faces[e.FaceID].edges, e)
		}
	}
	return nil
}

func (m *Model) buildPoints() error {
	m.points = make([]Point, m.def.LedCount)
	seen := make([]bool, m.def.LedCount)
	for _, pd := range m.def.Points {
		if pd.ID < 0 || pd.ID >= m.def.LedCount {
			return fmt.Errorf("model %q: point id %d out of range", m.def.Name, pd.ID)
		}
		if seen[pd.ID] {
			return fmt.Errorf("model %q: duplicate point id %d", m.def.Name, pd.ID)
		}
		seen[pd.ID] = true
		m.points[pd.ID] = Point{id: pd.ID, faceID: pd.FaceID, x: pd.X, y: pd.Y, z: pd.Z}
	}
	for id, ok := range seen {
		if !ok {
			return fmt.Errorf("model %q: point %d missing", m.def.Name, id)
		}
	}
	for _, nd := range m.def.Neighbors {
		if nd.PointID >= 0 && nd.PointID < len(m.points) {
			n := nd.Neighbors
			if len(n) > MaxNeighbors {
				n = n[:MaxNeighbors]
			}
			m.points[nd.PointID].neighbors = n
		}
	}
	return nil
}

// buildGroups resolves every (face, group) pair to global LED indices up
// front so Group lookups on the render path never re-scan the tables.
func (m *Model) buildGroups() {
	for i := range m.faces {
		f := &m.faces[i]
		f.groups = map[string][]int{}
		for _, g := range m.def.Groups {
			if g.FaceTypeID != f.ftype.ID || len(g.Name) > MaxGroupNameLen {
				continue
			}
			global := make([]int, 0, len(g.LedIndices))
			for _, local := range g.LedIndices {
				if local < 0 || local >= f.ftype.NumLeds {
					continue
				}
				global = append(global, f.ledOffset+local)
			}
			f.groups[g.Name] = global
		}
	}
}

func (m *Model) PointCount() int        { return len(m.points) }
func (m *Model) FaceCount() int         { return len(m.faces) }
func (m *Model) SphereRadius() float64  { return m.def.SphereRadius }
func (m *Model) Hardware() Hardware     { return m.def.Hardware }
func (m *Model) Definition() Definition { return m.def }

// Leds exposes the whole shared buffer (all faces).
func (m *Model) Leds() []color.CRGB { return m.leds }

func (m *Model) Point(id int) Point {
	if id < 0 || id >= len(m.points) {
		log.Warn().Int("id", id).Int("count", len(m.points)).Msg("point index clamped")
		if id < 0 {
			id = 0
		} else {
			id = len(m.points) - 1
		}
	}
	return m.points[id]
}

func (m *Model) Face(geomIndex int) Face {
	if geomIndex < 0 || geomIndex >= len(m.faces) {
		log.Warn().Int("geometric", geomIndex).Int("count", len(m.faces)).Msg("face index clamped")
		if geomIndex < 0 {
			geomIndex = 0
		} else {
			geomIndex = len(m.faces) - 1
		}
	}
	return Face{m: m, id: m.geomToLogical[geomIndex]}
}

// FaceByID addresses a face by logical (wiring-order) id.
func (m *Model) FaceByID(faceID int) (Face, bool) {
	if faceID < 0 || faceID >= len(m.faces) {
		return Face{}, false
	}
	return Face{m: m, id: faceID}, true
}

func (m *Model) FaceEdgeCount(faceID int) int {
	if faceID < 0 || faceID >= len(m.faces) {
		return 0
	}
	return m.faces[faceID].ftype.Kind.EdgeCount()
}

func (m *Model) FaceAtEdge(faceID, edgeIndex int) int {
	if faceID < 0 || faceID >= len(m.faces) {
		return NoConnection
	}
	for _, e := range m.faces[faceID].edges {
		if e.EdgeIndex == edgeIndex {
			return e.Connected()
		}
	}
	return NoConnection
}

// Group returns a fresh slice per call so callers cannot corrupt the
// precomputed table.
func (m *Model) Group(name string, faceID int) []int {
	if faceID < 0 || faceID >= len(m.faces) {
		log.Warn().Str("group", name).Int("face", faceID).Msg("group lookup on invalid face")
		return nil
	}
	ids, ok := m.faces[faceID].groups[name]
	if !ok {
		log.Warn().Str("group", name).Int("face", faceID).Msg("unknown group")
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func (m *Model) Edge(edgeIndex int) (EdgeData, bool) {
	if edgeIndex < 0 || edgeIndex >= len(m.def.Edges) {
		return EdgeData{}, false
	}
	return m.def.Edges[edgeIndex], true
}

// EdgeCount returns the total number of edge records.
func (m *Model) EdgeCount() int { return len(m.def.Edges) }
