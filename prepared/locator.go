package prepared

import (
	"github.com/dhconnelly/rtreego"
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// IndexedPointInAreaLocator answers repeated point-in-polygon queries
// against a fixed areal geometry: an R-tree over the boundary's
// segments, queried by a zero-height horizontal-ray rectangle at the
// query point's Y so only segments whose Y-interval can cross the ray
// are tested for crossings. The ray's far end (maxBound) is found by a
// scan of every ring vertex on each call, so a query is still linear
// in the vertex count.
type IndexedPointInAreaLocator struct {
	rings []*geom.Sequence
	tree  *rtreego.Rtree
}

// NewIndexedPointInAreaLocator indexes every ring (shells and holes) of
// an areal geometry's segments. Building the tree is eager here; callers
// that want lazy, pre-warmable behaviour go through Geometry.Prepare.
func NewIndexedPointInAreaLocator(g geom.Geometry) *IndexedPointInAreaLocator {
	rings := arealRings(g)
	tree := rtreego.NewTree(2, 4, 16)
	for _, ring := range rings {
		for i := 0; i < ring.Len()-1; i++ {
			tree.Insert(segment{ring.Get(i), ring.Get(i + 1)})
		}
	}
	return &IndexedPointInAreaLocator{rings: rings, tree: tree}
}

func arealRings(g geom.Geometry) []*geom.Sequence {
	var out []*geom.Sequence
	switch t := g.(type) {
	case *geom.Polygon:
		out = append(out, t.Shell().Sequence())
		for _, h := range t.Holes() {
			out = append(out, h.Sequence())
		}
	case *geom.MultiPolygon:
		for _, p := range t.Polygons() {
			out = append(out, arealRings(p)...)
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, arealRings(t.GeometryN(i))...)
		}
	}
	return out
}

// Locate classifies pt against the indexed area by casting a horizontal
// ray from pt to +X and counting crossings among only the segments the
// index reports as candidates for pt's Y ordinate -- the same crossing
// rule as kernel.PointInRing, restricted to a narrow-phase candidate set.
func (l *IndexedPointInAreaLocator) Locate(pt geom.Coordinate) kernel.Location {
	rayEnv := geom.NewEnvelope(pt.X, maxBound(l), pt.Y, pt.Y)
	candidates := l.tree.SearchIntersect(toRect(rayEnv))

	crossings := 0
	for _, c := range candidates {
		s := c.(segment)
		if onSegment(pt, s.p0, s.p1) {
			return kernel.Boundary
		}
		a, b := s.p0, s.p1
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		xIntersect := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if xIntersect > pt.X {
			crossings++
		}
	}
	if crossings%2 == 1 {
		return kernel.Interior
	}
	return kernel.Exterior
}

func maxBound(l *IndexedPointInAreaLocator) float64 {
	maxX := 0.0
	first := true
	for _, ring := range l.rings {
		for i := 0; i < ring.Len(); i++ {
			x := ring.Get(i).X
			if first || x > maxX {
				maxX = x
				first = false
			}
		}
	}
	return maxX + 1
}

func onSegment(p, a, b geom.Coordinate) bool {
	cross := (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
	if cross != 0 {
		return false
	}
	return p.X >= minF(a.X, b.X) && p.X <= maxF(a.X, b.X) &&
		p.Y >= minF(a.Y, b.Y) && p.Y <= maxF(a.Y, b.Y)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
