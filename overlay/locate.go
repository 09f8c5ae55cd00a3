package overlay

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// locateInGeometry classifies pt against g (a Polygon, MultiPolygon, or
// GeometryCollection of those), used to label edges that were extracted
// from the OTHER operand: such an edge never touches g's boundary (any
// true crossing would already have produced a node there), so a single
// point-in-polygon test of its midpoint applies to the whole edge.
func locateInGeometry(pt geom.Coordinate, g geom.Geometry) kernel.Location {
	switch t := g.(type) {
	case *geom.Polygon:
		return locateInPolygon(pt, t)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumGeometries(); i++ {
			if loc := locateInPolygon(pt, t.GeometryN(i).(*geom.Polygon)); loc != kernel.Exterior {
				return loc
			}
		}
		return kernel.Exterior
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			if loc := locateInGeometry(pt, t.GeometryN(i)); loc != kernel.Exterior {
				return loc
			}
		}
		return kernel.Exterior
	default:
		return kernel.Exterior
	}
}

func locateInPolygon(pt geom.Coordinate, p *geom.Polygon) kernel.Location {
	if p.IsEmpty() {
		return kernel.Exterior
	}
	shellLoc := kernel.PointInRing(pt, p.Shell().Sequence())
	if shellLoc != kernel.Interior {
		return shellLoc
	}
	for _, h := range p.Holes() {
		holeLoc := kernel.PointInRing(pt, h.Sequence())
		if holeLoc == kernel.Boundary {
			return kernel.Boundary
		}
		if holeLoc == kernel.Interior {
			return kernel.Exterior
		}
	}
	return kernel.Interior
}

// locateOnLinear classifies pt against g (a LineString or
// MultiLineString), used by computeLinear to decide whether a noded
// edge extracted from one operand is also covered by the other
// operand's line -- the collinear-overlap case a plain inputIndex tag
// can't answer.
func locateOnLinear(pt geom.Coordinate, g geom.Geometry) kernel.Location {
	switch t := g.(type) {
	case *geom.LineString:
		return locateOnLineString(pt, t)
	case *geom.MultiLineString:
		for i := 0; i < t.NumGeometries(); i++ {
			if loc := locateOnLineString(pt, t.GeometryN(i).(*geom.LineString)); loc != kernel.Exterior {
				return loc
			}
		}
		return kernel.Exterior
	default:
		return kernel.Exterior
	}
}

func locateOnLineString(pt geom.Coordinate, ls *geom.LineString) kernel.Location {
	seq := ls.Sequence()
	n := seq.Len()
	for i := 0; i < n-1; i++ {
		if pointOnSegment(pt, seq.Get(i), seq.Get(i+1)) {
			return kernel.Interior
		}
	}
	return kernel.Exterior
}

// pointOnSegment reports whether p lies exactly on the closed segment
// [a, b], via exact collinearity plus bounding-box containment.
func pointOnSegment(p, a, b geom.Coordinate) bool {
	if p.Equals2D(a) || p.Equals2D(b) {
		return true
	}
	if kernel.OrientationIndex(a, b, p) != kernel.Collinear {
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

// isCCW reports whether a closed ring is oriented counter-clockwise,
// via the standard shoelace signed-area sign test.
func isCCW(seq *geom.Sequence) bool {
	sum := 0.0
	n := seq.Len()
	for i := 0; i < n-1; i++ {
		a, b := seq.Get(i), seq.Get(i+1)
		sum += (b.X - a.X) * (b.Y + a.Y)
	}
	return sum < 0
}
