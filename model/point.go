package model

import "math"

// Point is the runtime view of one LED position. Constructed once from the
// definition; never mutated.
type Point struct {
	id        int
	faceID    int
	x, y, z   float64
	neighbors []Neighbor
}

func (p Point) ID() int     { return p.id }
func (p Point) FaceID() int { return p.faceID }
func (p Point) X() float64  { return p.x }
func (p Point) Y() float64  { return p.y }
func (p Point) Z() float64  { return p.z }

// Neighbors returns the precomputed nearest neighbors, ascending by distance.
func (p Point) Neighbors() []Neighbor { return p.neighbors }

// DistanceTo is the Euclidean distance to another point, in millimetres.
func (p Point) DistanceTo(o Point) float64 {
	dx, dy, dz := p.x-o.x, p.y-o.y, p.z-o.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistanceToVertex measures from the point to an arbitrary position.
func (p Point) DistanceToVertex(v Vertex) float64 {
	dx, dy, dz := p.x-v.X, p.y-v.Y, p.z-v.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsNeighbor reports whether o appears in p's neighbor list.
func (p Point) IsNeighbor(o Point) bool {
	for _, n := range p.neighbors {
		if n.ID == o.id {
			return true
		}
	}
	return false
}

func midpoint(a, b Vertex) Vertex {
	return Vertex{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

func vertexDistance(a, b Vertex) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
