package relate

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
	"github.com/gogeos/geos/planar"
)

// lineEndpoints collects every LineString endpoint of a (possibly multi-)
// linear geometry, grouped by coordinate, so boundary membership can be
// decided by the endpoint's degree under a BoundaryNodeRule -- the same
// rule planar.BoundaryNodeRule already expresses for planar-graph nodes.
func lineEndpoints(g geom.Geometry) map[[2]float64]int {
	counts := make(map[[2]float64]int)
	var walk func(geom.Geometry)
	walk = func(g geom.Geometry) {
		switch t := g.(type) {
		case *geom.LineString:
			if t.IsEmpty() {
				return
			}
			seq := t.Sequence()
			a, b := seq.Get(0), seq.Get(seq.Len()-1)
			counts[key(a)]++
			counts[key(b)]++
		case *geom.MultiLineString:
			for _, l := range t.LineStrings() {
				walk(l)
			}
		case *geom.GeometryCollection:
			for i := 0; i < t.NumGeometries(); i++ {
				walk(t.GeometryN(i))
			}
		}
	}
	walk(g)
	return counts
}

func key(c geom.Coordinate) [2]float64 { return [2]float64{c.X, c.Y} }

// lineSegments returns every segment of every component LineString.
func lineSegments(g geom.Geometry) []boundarySegment {
	var out []boundarySegment
	switch t := g.(type) {
	case *geom.LineString:
		out = append(out, ringSegments(t.Sequence())...)
	case *geom.MultiLineString:
		for _, l := range t.LineStrings() {
			out = append(out, lineSegments(l)...)
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, lineSegments(t.GeometryN(i))...)
		}
	}
	return out
}

// locateOnLinear classifies pt against a linear geometry: Boundary if pt
// coincides with an endpoint the rule counts as boundary, Interior if it
// lies on any segment's interior, else Exterior.
func locateOnLinear(pt geom.Coordinate, g geom.Geometry, rule planar.BoundaryNodeRule) kernel.Location {
	endpoints := lineEndpoints(g)
	if deg, ok := endpoints[key(pt)]; ok && rule.IsInBoundary(deg) {
		return kernel.Boundary
	}
	for _, s := range lineSegments(g) {
		if onSegment(pt, s.p0, s.p1) {
			return kernel.Interior
		}
	}
	return kernel.Exterior
}

func onSegment(p, a, b geom.Coordinate) bool {
	cross := (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
	if cross != 0 {
		return false
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// pointCoordinates collects every Point's coordinate from a (possibly
// multi-)point geometry.
func pointCoordinates(g geom.Geometry) []geom.Coordinate {
	var out []geom.Coordinate
	switch t := g.(type) {
	case *geom.Point:
		if !t.IsEmpty() {
			out = append(out, t.Coordinate())
		}
	case *geom.MultiPoint:
		for _, p := range t.Points() {
			out = append(out, p.Coordinate())
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, pointCoordinates(t.GeometryN(i))...)
		}
	}
	return out
}
