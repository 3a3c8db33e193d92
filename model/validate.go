package model

import (
	"fmt"
	"math"
)

// Geometry checks use a relative tolerance so large and small sculptures get
// proportionate slack.
const (
	edgeToleranceFactor  = 1e-3
	coordinateBoundScale = 3.0
)

func edgeTolerance(radius float64) float64 {
	if radius <= 0 {
		return 1.0
	}
	return radius * edgeToleranceFactor
}

func coordinateBound(radius float64) float64 {
	if radius <= 0 {
		return math.MaxFloat64
	}
	return radius * coordinateBoundScale
}

func finiteVertex(v Vertex) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

func absf(x float64) float64 { return math.Abs(x) }

// CheckResult is one validation category's tally.
type CheckResult struct {
	Checks int
	Failed int
}

func (c *CheckResult) pass()      { c.Checks++ }
func (c *CheckResult) fail() bool { c.Checks++; c.Failed++; return true }

// Validation is the report produced by Model.Validate. Error messages cap at
// MaxErrors; counters keep running past the cap.
type Validation struct {
	Geometric     CheckResult
	DataIntegrity CheckResult
	Errors        []string
}

func (v Validation) IsValid() bool { return v.FailedChecks() == 0 }
func (v Validation) TotalChecks() int {
	return v.Geometric.Checks + v.DataIntegrity.Checks
}
func (v Validation) FailedChecks() int {
	return v.Geometric.Failed + v.DataIntegrity.Failed
}

func (v *Validation) record(format string, args ...any) {
	if len(v.Errors) < MaxErrors {
		v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
	}
}

// Validate audits the model's tables. checkGeometry covers coordinates, edge
// symmetry, and face planarity; checkIntegrity covers index ranges,
// uniqueness, the remap permutation, and the neighbor graph. Both run by
// default; either can be skipped for speed on constrained targets.
func (m *Model) Validate(checkGeometry, checkIntegrity bool) Validation {
	var v Validation
	if checkIntegrity {
		m.validateIntegrity(&v)
	}
	if checkGeometry {
		m.validateGeometry(&v)
	}
	return v
}

func (m *Model) validateIntegrity(v *Validation) {
	c := &v.DataIntegrity

	// Face ids are dense and unique (guaranteed by construction), remap is
	// a bijection over [0, FaceCount).
	seenGeom := make([]bool, len(m.faces))
	for _, fr := range m.faces {
		g := fr.data.GeometricID
		if g < 0 || g >= len(m.faces) {
			c.fail()
			v.record("face %d: geometric id %d out of range", fr.data.ID, g)
			continue
		}
		if seenGeom[g] {
			c.fail()
			v.record("geometric id %d assigned to multiple faces", g)
			continue
		}
		seenGeom[g] = true
		c.pass()
	}

	// LED ranges tile the buffer exactly.
	offset := 0
	for _, fr := range m.faces {
		if fr.ledOffset != offset || fr.ftype.NumLeds <= 0 {
			c.fail()
			v.record("face %d: led range [%d,+%d) breaks contiguity at %d",
				fr.data.ID, fr.ledOffset, fr.ftype.NumLeds, offset)
		} else {
			c.pass()
		}
		offset += fr.ftype.NumLeds
	}
	if offset == m.def.LedCount {
		c.pass()
	} else {
		c.fail()
		v.record("face led counts sum to %d, declared %d", offset, m.def.LedCount)
	}

	// Points reference real faces.
	for _, p := range m.points {
		if p.faceID < 0 || p.faceID >= len(m.faces) {
			c.fail()
			v.record("point %d: face id %d out of range", p.id, p.faceID)
		} else {
			c.pass()
		}
	}

	// Group indices stay inside their face type.
	for _, g := range m.def.Groups {
		ok := len(g.Name) > 0 && len(g.Name) <= MaxGroupNameLen &&
			g.FaceTypeID >= 0 && g.FaceTypeID < len(m.def.FaceTypes)
		if ok {
			limit := m.def.FaceTypes[g.FaceTypeID].NumLeds
			for _, idx := range g.LedIndices {
				if idx < 0 || idx >= limit {
					ok = false
					break
				}
			}
		}
		if ok {
			c.pass()
		} else {
			c.fail()
			v.record("group %q: bad face type or led indices", g.Name)
		}
	}

	// Edge records reference real faces; connected ids are valid or free.
	for i, e := range m.def.Edges {
		conn := e.Connected()
		if e.FaceID < 0 || e.FaceID >= len(m.faces) ||
			(conn != NoConnection && (conn < 0 || conn >= len(m.faces))) {
			c.fail()
			v.record("edge %d: face %d / connected %d out of range", i, e.FaceID, conn)
		} else {
			c.pass()
		}
	}

	// Neighbor lists: valid ids, positive distances, ascending order.
	for _, p := range m.points {
		ok := true
		prev := 0.0
		for _, n := range p.neighbors {
			if n.ID < 0 || n.ID >= len(m.points) || n.ID == p.id ||
				n.Distance <= 0 || n.Distance < prev {
				ok = false
				break
			}
			prev = n.Distance
		}
		if ok {
			c.pass()
		} else {
			c.fail()
			v.record("point %d: malformed neighbor list", p.id)
		}
	}
}

func (m *Model) validateGeometry(v *Validation) {
	c := &v.Geometric
	bound := coordinateBound(m.def.SphereRadius)
	tol := edgeTolerance(m.def.SphereRadius)

	for _, p := range m.points {
		if finiteVertex(Vertex{p.x, p.y, p.z}) &&
			absf(p.x) <= bound && absf(p.y) <= bound && absf(p.z) <= bound {
			c.pass()
		} else {
			c.fail()
			v.record("point %d: position (%.1f,%.1f,%.1f) outside bound %.1f",
				p.id, p.x, p.y, p.z, bound)
		}
	}

	for _, fr := range m.faces {
		want := fr.ftype.Kind.EdgeCount()
		if want == 0 {
			continue
		}
		if len(fr.data.Vertices) != want {
			c.fail()
			v.record("face %d: %d vertices for %s", fr.data.ID, len(fr.data.Vertices), fr.ftype.Kind)
			continue
		}
		c.pass()

		// Uniform edge lengths within tolerance.
		vs := fr.data.Vertices
		ok := true
		for i := range vs {
			l := vertexDistance(vs[i], vs[(i+1)%len(vs)])
			if fr.ftype.EdgeLengthMM > 0 && absf(l-fr.ftype.EdgeLengthMM) > tol {
				ok = false
			}
		}
		if ok {
			c.pass()
		} else {
			c.fail()
			v.record("face %d: edge lengths deviate past %.3fmm", fr.data.ID, tol)
		}

		if facePlanar(vs, tol) {
			c.pass()
		} else {
			c.fail()
			v.record("face %d: vertices not coplanar", fr.data.ID)
		}
	}

	// Shared edges coincide geometrically: for each connected edge, the far
	// face has some edge whose endpoints match within tolerance.
	for i, e := range m.def.Edges {
		conn := e.Connected()
		if conn == NoConnection || conn < 0 || conn >= len(m.faces) {
			continue
		}
		if edgeMirrored(e, m.faces[conn].edges, tol) {
			c.pass()
		} else {
			c.fail()
			v.record("edge %d (face %d -> %d): no matching edge on far face", i, e.FaceID, conn)
		}
	}
}

// facePlanar fits the plane through the first three vertices and checks the
// rest lie within tol of it.
func facePlanar(vs []Vertex, tol float64) bool {
	if len(vs) <= 3 {
		return true
	}
	ax, ay, az := vs[1].X-vs[0].X, vs[1].Y-vs[0].Y, vs[1].Z-vs[0].Z
	bx, by, bz := vs[2].X-vs[0].X, vs[2].Y-vs[0].Y, vs[2].Z-vs[0].Z
	nx, ny, nz := ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx
	norm := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if norm == 0 {
		return false
	}
	nx, ny, nz = nx/norm, ny/norm, nz/norm
	for _, v := range vs[3:] {
		d := nx*(v.X-vs[0].X) + ny*(v.Y-vs[0].Y) + nz*(v.Z-vs[0].Z)
		if math.Abs(d) > tol {
			return false
		}
	}
	return true
}

func edgeMirrored(e EdgeData, farEdges []EdgeData, tol float64) bool {
	for _, fe := range farEdges {
		same := vertexDistance(e.Start, fe.Start) <= tol && vertexDistance(e.End, fe.End) <= tol
		flipped := vertexDistance(e.Start, fe.End) <= tol && vertexDistance(e.End, fe.Start) <= tol
		if same || flipped {
			return true
		}
	}
	return false
}
