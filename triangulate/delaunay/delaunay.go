// Package delaunay computes the Delaunay triangulation of a point set:
// the triangulation in which no point lies strictly inside any
// triangle's circumcircle.
//
// Grounded on original_source/include/geos/triangulate/tri/Tri.h's
// model of a triangulation as a set of triangles, each knowing its 3
// vertices. This package favors the classic Bowyer-Watson cavity
// formulation over Tri.h's persistent per-edge adjacency/flip
// bookkeeping: a triangle's neighbors are re-derived from the current
// triangle set on every insertion (by counting each candidate edge's
// occurrences) rather than maintained as living pointers -- a
// documented simplification recorded in DESIGN.md. Insertion order is
// derived from a packed index/strtree over the point set, grounded on
// original_source/include/geos/triangulate/polygon/VertexSequencePackedRtree.h's
// role of giving incremental insertion good spatial locality.
package delaunay

import (
	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/index/strtree"
	"github.com/gogeos/geos/kernel"
)

// Tri is one triangle of a triangulation, vertices stored
// counter-clockwise.
type Tri struct {
	A, B, C geom.Coordinate
}

func newTri(a, b, c geom.Coordinate) Tri {
	if kernel.OrientationIndex(a, b, c) == kernel.Clockwise {
		b, c = c, b
	}
	return Tri{A: a, B: b, C: c}
}

func (t Tri) hasVertex(v geom.Coordinate) bool {
	return t.A.Equals2D(v) || t.B.Equals2D(v) || t.C.Equals2D(v)
}

// Polygon builds the Polygon representation of t via f.
func (t Tri) Polygon(f *geom.Factory) (*geom.Polygon, error) {
	ring, err := f.CreateLinearRing([]geom.Coordinate{t.A, t.B, t.C, t.A})
	if err != nil {
		return nil, err
	}
	return f.CreatePolygon(ring, nil)
}

// Triangulate computes the Delaunay triangulation of every distinct
// coordinate reachable from g, returning one Tri per triangle. At
// least 3 non-collinear points are required.
func Triangulate(g geom.Geometry) ([]Tri, error) {
	pts := uniquePoints(collectCoordinates(g))
	if len(pts) < 3 {
		return nil, gerr.NewInvalidArgument("delaunay: need at least 3 distinct points, got %d", len(pts))
	}

	super := superTriangle(pts)
	triangles := []Tri{super}
	for _, p := range spatialOrder(pts) {
		triangles = insertPoint(triangles, p)
	}

	out := make([]Tri, 0, len(triangles))
	for _, t := range triangles {
		if t.hasVertex(super.A) || t.hasVertex(super.B) || t.hasVertex(super.C) {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, gerr.NewInvalidArgument("delaunay: input points are collinear, no triangle could be formed")
	}
	return out, nil
}

// Polygons builds []*geom.Polygon for tris via a Factory derived from
// g's precision model and SRID.
func Polygons(g geom.Geometry, tris []Tri) ([]*geom.Polygon, error) {
	f := geom.NewFactory(g.PrecisionModel(), g.SRID())
	out := make([]*geom.Polygon, len(tris))
	for i, t := range tris {
		p, err := t.Polygon(f)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

type edgeKey struct{ x1, y1, x2, y2 float64 }

func canonicalEdge(a, b geom.Coordinate) edgeKey {
	if a.X < b.X || (a.X == b.X && a.Y < b.Y) {
		return edgeKey{a.X, a.Y, b.X, b.Y}
	}
	return edgeKey{b.X, b.Y, a.X, a.Y}
}

func triangleEdges(t Tri) [3][2]geom.Coordinate {
	return [3][2]geom.Coordinate{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// insertPoint adds p to triangles via Bowyer-Watson: every triangle
// whose circumcircle contains p is removed (its "cavity"), and the
// cavity's boundary -- the edges bordering exactly one removed
// triangle -- is re-triangulated by connecting each boundary edge to
// p.
func insertPoint(triangles []Tri, p geom.Coordinate) []Tri {
	var kept []Tri
	edgeCount := make(map[edgeKey]int)
	edgeCoords := make(map[edgeKey][2]geom.Coordinate)
	for _, t := range triangles {
		if kernel.InCircle(t.A, t.B, t.C, p) {
			for _, e := range triangleEdges(t) {
				k := canonicalEdge(e[0], e[1])
				edgeCount[k]++
				edgeCoords[k] = e
			}
			continue
		}
		kept = append(kept, t)
	}
	for k, count := range edgeCount {
		if count == 1 {
			e := edgeCoords[k]
			kept = append(kept, newTri(e[0], e[1], p))
		}
	}
	return kept
}

// superTriangle returns one large triangle enclosing every point in
// pts, so Bowyer-Watson insertion always starts from a valid
// triangulation.
func superTriangle(pts []geom.Coordinate) Tri {
	env := geom.NullEnvelope()
	for _, p := range pts {
		env = env.ExpandByPoint(p.X, p.Y)
	}
	dx, dy := env.Width(), env.Height()
	span := dx
	if dy > span {
		span = dy
	}
	if span == 0 {
		span = 1
	}
	midX, midY := env.CenterX(), env.CenterY()
	m := span * 20
	return newTri(
		geom.NewXY(midX-2*m, midY-m),
		geom.NewXY(midX+2*m, midY-m),
		geom.NewXY(midX, midY+2*m),
	)
}

// spatialOrder returns pts reordered via a packed index/strtree so
// that incremental insertion visits nearby points consecutively,
// keeping each insertion's cavity small.
func spatialOrder(pts []geom.Coordinate) []geom.Coordinate {
	tree := strtree.New[geom.Coordinate]()
	full := geom.NullEnvelope()
	for _, p := range pts {
		tree.Insert(geom.NewEnvelope(p.X, p.X, p.Y, p.Y), p)
		full = full.ExpandByPoint(p.X, p.Y)
	}
	return tree.QueryAll(full)
}

func uniquePoints(coords []geom.Coordinate) []geom.Coordinate {
	seen := make(map[[2]float64]bool, len(coords))
	out := make([]geom.Coordinate, 0, len(coords))
	for _, c := range coords {
		key := [2]float64{c.X, c.Y}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// collectCoordinates flattens every coordinate reachable from g, the
// same descent hull.Compute uses to gather its input point set.
func collectCoordinates(g geom.Geometry) []geom.Coordinate {
	switch t := g.(type) {
	case *geom.Point:
		if t.IsEmpty() {
			return nil
		}
		return []geom.Coordinate{t.Coordinate()}
	case *geom.LineString:
		return t.Sequence().Coordinates()
	case *geom.LinearRing:
		return t.Sequence().Coordinates()
	case *geom.Polygon:
		if t.IsEmpty() {
			return nil
		}
		coords := append([]geom.Coordinate{}, t.Shell().Sequence().Coordinates()...)
		for _, h := range t.Holes() {
			coords = append(coords, h.Sequence().Coordinates()...)
		}
		return coords
	case *geom.MultiPoint:
		var coords []geom.Coordinate
		for _, p := range t.Points() {
			coords = append(coords, collectCoordinates(p)...)
		}
		return coords
	case *geom.MultiLineString:
		var coords []geom.Coordinate
		for _, l := range t.LineStrings() {
			coords = append(coords, collectCoordinates(l)...)
		}
		return coords
	case *geom.MultiPolygon:
		var coords []geom.Coordinate
		for _, p := range t.Polygons() {
			coords = append(coords, collectCoordinates(p)...)
		}
		return coords
	case *geom.GeometryCollection:
		var coords []geom.Coordinate
		for i := 0; i < t.NumGeometries(); i++ {
			coords = append(coords, collectCoordinates(t.GeometryN(i))...)
		}
		return coords
	default:
		return nil
	}
}
