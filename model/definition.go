// Package model describes one physical LED sculpture: the compile-time
// definition tables (faces, points, edges, named LED groups, neighbor graph)
// and the runtime view scenes use to address LEDs by geometry instead of by
// wiring order.
package model

// Interface-level sentinel for "this edge has no neighboring face". Schema
// tables store 255 in a uint8; the runtime normalizes to -1.
const (
	NoConnection       = -1
	noConnectionStored = 255
)

// Table-size limits. These bound transient buffers so the render hot path
// never allocates unpredictably.
const (
	MaxNeighbors     = 7
	MaxGroupNameLen  = 15
	MaxVerticesPer   = 6 // hexagon
	MaxErrors        = 16
	ABSOLUTE_MAX_LED = 10000
)

// Vertex is a 3D position in millimetres, centered on the sculpture centroid.
type Vertex struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// PolygonKind names the face outline shape.
type PolygonKind uint8

const (
	Strip PolygonKind = iota
	Circle
	Triangle
	Square
	Pentagon
	Hexagon
)

// EdgeCount returns how many boundary edges the polygon has; 0 for shapes
// without a polygonal boundary.
func (k PolygonKind) EdgeCount() int {
	switch k {
	case Triangle:
		return 3
	case Square:
		return 4
	case Pentagon:
		return 5
	case Hexagon:
		return 6
	}
	return 0
}

func (k PolygonKind) String() string {
	switch k {
	case Strip:
		return "strip"
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Pentagon:
		return "pentagon"
	case Hexagon:
		return "hexagon"
	}
	return "unknown"
}

// Hardware is the read-only electrical metadata declared with a model.
type Hardware struct {
	LedType            string  `yaml:"led_type"`
	ColorOrder         string  `yaml:"color_order"` // e.g. "GRB"
	LedDiameterMM      float64 `yaml:"led_diameter_mm"`
	LedSpacingMM       float64 `yaml:"led_spacing_mm"`
	MaxCurrentPerLedMA int     `yaml:"max_current_per_led_ma"`
	AvgCurrentPerLedMA int     `yaml:"avg_current_per_led_ma"`
}

// FaceTypeData is the per-type template shared by faces of the same polygon
// and LED layout.
type FaceTypeData struct {
	ID           int         `yaml:"id"`
	Kind         PolygonKind `yaml:"kind"`
	NumLeds      int         `yaml:"num_leds"`
	EdgeLengthMM float64     `yaml:"edge_length_mm"`
}

// FaceData is one face instance. ID is the wiring-order (logical) id;
// GeometricID is where the face sits on the sculpture. Rotation is in
// fifths/sixths of a turn depending on the polygon.
type FaceData struct {
	ID          int      `yaml:"id"`
	TypeID      int      `yaml:"type_id"`
	Rotation    int      `yaml:"rotation"`
	GeometricID int      `yaml:"geometric_id"`
	Vertices    []Vertex `yaml:"vertices"`
}

// PointData is one LED position.
type PointData struct {
	ID     int     `yaml:"id"`
	FaceID int     `yaml:"face_id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
}

// EdgeData is one boundary segment of a face. ConnectedFaceID is the logical
// id of the face across the edge, or 255 when the edge is free.
type EdgeData struct {
	FaceID          int    `yaml:"face_id"`
	EdgeIndex       int    `yaml:"edge_index"`
	Start           Vertex `yaml:"start_vertex"`
	End             Vertex `yaml:"end_vertex"`
	ConnectedFaceID int    `yaml:"connected_face_id"`
}

// Connected normalizes the stored sentinel to the interface-level -1.
func (e EdgeData) Connected() int {
	if e.ConnectedFaceID == noConnectionStored || e.ConnectedFaceID < 0 {
		return NoConnection
	}
	return e.ConnectedFaceID
}

// GroupData names an ordered subset of a face type's LEDs (face-local
// indices). Names are exact and case-sensitive, at most 15 characters.
type GroupData struct {
	Name       string `yaml:"name"`
	FaceTypeID int    `yaml:"face_type_id"`
	LedIndices []int  `yaml:"led_indices"`
}

// Neighbor is one entry of a point's nearest-neighbor list.
type Neighbor struct {
	ID       int     `yaml:"id"`
	Distance float64 `yaml:"distance"`
}

// NeighborData lists up to MaxNeighbors nearest points for one point, sorted
// by ascending distance.
type NeighborData struct {
	PointID   int        `yaml:"point_id"`
	Neighbors []Neighbor `yaml:"neighbors"`
}

// Definition is the complete compile-time description of one sculpture.
// Generated out of band from YAML and treated as opaque constant data; all
// access goes through the runtime view.
type Definition struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`

	LedCount     int     `yaml:"led_count"`
	FaceCount    int     `yaml:"face_count"`
	SphereRadius float64 `yaml:"sphere_radius"`

	Hardware  Hardware       `yaml:"hardware"`
	FaceTypes []FaceTypeData `yaml:"face_types"`
	Faces     []FaceData     `yaml:"faces"`
	Points    []PointData    `yaml:"points"`
	Edges     []EdgeData     `yaml:"edges"`
	Groups    []GroupData    `yaml:"groups"`
	Neighbors []NeighborData `yaml:"neighbors"`
}
