// Package modeltest provides small hand-checkable sculpture definitions for
// tests: a three-face pentagon patch with shared edges and named groups, and
// a four-triangle board whose wiring order differs from its physical layout.
package modeltest

import (
	"math"
	"sort"

	"github.com/pixeltheater/pixeltheater/model"
)

const (
	pentagonEdgeMM = 100.0
	pentagonRingMM = 30.0
	triangleEdgeMM = 60.0
)

// BasicPentagon is a flat patch of three regular pentagon faces, five LEDs
// each (one center, four ring). Faces 1 and 2 are mirror images of face 0
// across its edges 0 and 1, so those two edges are shared and the rest are
// free. Wiring order matches physical order.
//
// Groups on the pentagon type: center {0}, ring1 {1,2,3,4}, edge0 {1,2},
// edge1 {2,3}.
func BasicPentagon() model.Definition {
	cr := pentagonEdgeMM / (2 * math.Sin(math.Pi/5))

	base := make([]model.Vertex, 5)
	for k := range base {
		a := math.Pi/2 + 2*math.Pi*float64(k)/5
		base[k] = model.Vertex{X: cr * math.Cos(a), Y: cr * math.Sin(a)}
	}

	faces := [][]model.Vertex{
		base,
		reflectPolygon(base, base[0], base[1]),
		reflectPolygon(base, base[1], base[2]),
	}

	def := model.Definition{
		Name:         "basic-pentagon",
		Version:      "1.0.0",
		Description:  "three pentagon faces sharing two edges",
		LedCount:     15,
		FaceCount:    3,
		SphereRadius: 150,
		Hardware: model.Hardware{
			LedType:            "WS2812B",
			ColorOrder:         "GRB",
			LedDiameterMM:      5,
			LedSpacingMM:       pentagonRingMM,
			MaxCurrentPerLedMA: 60,
			AvgCurrentPerLedMA: 20,
		},
		FaceTypes: []model.FaceTypeData{
			{ID: 0, Kind: model.Pentagon, NumLeds: 5, EdgeLengthMM: pentagonEdgeMM},
		},
		Groups: []model.GroupData{
			{Name: "center", FaceTypeID: 0, LedIndices: []int{0}},
			{Name: "ring1", FaceTypeID: 0, LedIndices: []int{1, 2, 3, 4}},
			{Name: "edge0", FaceTypeID: 0, LedIndices: []int{1, 2}},
			{Name: "edge1", FaceTypeID: 0, LedIndices: []int{2, 3}},
		},
	}

	for id, vs := range faces {
		def.Faces = append(def.Faces, model.FaceData{
			ID: id, TypeID: 0, GeometricID: id, Vertices: vs,
		})
		def.Points = append(def.Points, ledRing(id*5, id, vs)...)
	}

	def.Edges = pentagonEdges(faces)
	def.Neighbors = nearestNeighbors(def.Points)
	return def
}

// RemappedTriangles is four separate equilateral triangle faces, three LEDs
// each, wired in a different order than they are placed: geometric positions
// 0..3 map to logical faces 2, 3, 0, 1.
func RemappedTriangles() model.Definition {
	// geomOf[logical] = geometric position of that wiring slot.
	geomOf := []int{2, 3, 0, 1}
	centers := []model.Vertex{
		{X: -100, Y: -100}, {X: 100, Y: -100}, {X: -100, Y: 100}, {X: 100, Y: 100},
	}

	def := model.Definition{
		Name:         "remapped-triangles",
		Version:      "1.0.0",
		Description:  "four triangles wired out of physical order",
		LedCount:     12,
		FaceCount:    4,
		SphereRadius: 100,
		Hardware: model.Hardware{
			LedType: "WS2812B", ColorOrder: "GRB",
			LedDiameterMM: 5, LedSpacingMM: 20,
			MaxCurrentPerLedMA: 60, AvgCurrentPerLedMA: 20,
		},
		FaceTypes: []model.FaceTypeData{
			{ID: 0, Kind: model.Triangle, NumLeds: 3, EdgeLengthMM: triangleEdgeMM},
		},
		Groups: []model.GroupData{
			{Name: "all", FaceTypeID: 0, LedIndices: []int{0, 1, 2}},
		},
	}

	cr := triangleEdgeMM / math.Sqrt(3)
	for logical, g := range geomOf {
		c := centers[g]
		vs := make([]model.Vertex, 3)
		for k := range vs {
			a := math.Pi/2 + 2*math.Pi*float64(k)/3
			vs[k] = model.Vertex{X: c.X + cr*math.Cos(a), Y: c.Y + cr*math.Sin(a)}
		}
		def.Faces = append(def.Faces, model.FaceData{
			ID: logical, TypeID: 0, GeometricID: g, Vertices: vs,
		})
		// LEDs sit just inside the corners.
		for k, v := range vs {
			def.Points = append(def.Points, model.PointData{
				ID: logical*3 + k, FaceID: logical,
				X: c.X + 0.6*(v.X-c.X), Y: c.Y + 0.6*(v.Y-c.Y),
			})
		}
		for e := 0; e < 3; e++ {
			def.Edges = append(def.Edges, model.EdgeData{
				FaceID: logical, EdgeIndex: e,
				Start: vs[e], End: vs[(e+1)%3],
				ConnectedFaceID: 255,
			})
		}
	}

	def.Neighbors = nearestNeighbors(def.Points)
	return def
}

// ledRing lays out one center LED plus four ring LEDs around the face
// centroid, all in the z=0 plane.
func ledRing(firstID, faceID int, vs []model.Vertex) []model.PointData {
	c := centroid(vs)
	pts := []model.PointData{{ID: firstID, FaceID: faceID, X: c.X, Y: c.Y}}
	for k := 0; k < 4; k++ {
		a := math.Pi/4 + 2*math.Pi*float64(k)/4
		pts = append(pts, model.PointData{
			ID: firstID + 1 + k, FaceID: faceID,
			X: c.X + pentagonRingMM*math.Cos(a),
			Y: c.Y + pentagonRingMM*math.Sin(a),
		})
	}
	return pts
}

func pentagonEdges(faces [][]model.Vertex) []model.EdgeData {
	connected := map[[2]int]int{
		{0, 0}: 1, // face 0 edge 0 touches face 1
		{0, 1}: 2,
		{1, 0}: 0,
		{2, 1}: 0,
	}
	var edges []model.EdgeData
	for faceID, vs := range faces {
		for e := range vs {
			conn, ok := connected[[2]int{faceID, e}]
			if !ok {
				conn = 255
			}
			edges = append(edges, model.EdgeData{
				FaceID: faceID, EdgeIndex: e,
				Start: vs[e], End: vs[(e+1)%len(vs)],
				ConnectedFaceID: conn,
			})
		}
	}
	return edges
}

func centroid(vs []model.Vertex) model.Vertex {
	var c model.Vertex
	for _, v := range vs {
		c.X += v.X
		c.Y += v.Y
		c.Z += v.Z
	}
	n := float64(len(vs))
	return model.Vertex{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

// reflectPolygon mirrors every vertex across the line through a and b. The
// endpoints themselves are fixed, so the mirrored polygon shares that edge
// exactly.
func reflectPolygon(vs []model.Vertex, a, b model.Vertex) []model.Vertex {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	out := make([]model.Vertex, len(vs))
	for i, v := range vs {
		t := ((v.X-a.X)*dx + (v.Y-a.Y)*dy) / l2
		px, py := a.X+t*dx, a.Y+t*dy
		out[i] = model.Vertex{X: 2*px - v.X, Y: 2*py - v.Y, Z: v.Z}
	}
	return out
}

// nearestNeighbors builds ascending-distance neighbor lists, capped at the
// schema limit.
func nearestNeighbors(points []model.PointData) []model.NeighborData {
	out := make([]model.NeighborData, 0, len(points))
	for _, p := range points {
		ns := make([]model.Neighbor, 0, len(points)-1)
		for _, q := range points {
			if q.ID == p.ID {
				continue
			}
			dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
			ns = append(ns, model.Neighbor{
				ID:       q.ID,
				Distance: math.Sqrt(dx*dx + dy*dy + dz*dz),
			})
		}
		sort.Slice(ns, func(i, j int) bool { return ns[i].Distance < ns[j].Distance })
		if len(ns) > model.MaxNeighbors {
			ns = ns[:model.MaxNeighbors]
		}
		out = append(out, model.NeighborData{PointID: p.ID, Neighbors: ns})
	}
	return out
}
