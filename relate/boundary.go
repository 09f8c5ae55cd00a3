package relate

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// boundarySegment is one segment of a polygon's shell/hole rings, kept
// alongside its midpoint for a single representative locate test.
type boundarySegment struct {
	p0, p1, mid geom.Coordinate
}

// polygonBoundarySegments returns every segment of every ring (shell and
// holes) of an areal geometry.
func polygonBoundarySegments(g geom.Geometry) []boundarySegment {
	var out []boundarySegment
	switch t := g.(type) {
	case *geom.Polygon:
		out = append(out, ringSegments(t.Shell().Sequence())...)
		for _, h := range t.Holes() {
			out = append(out, ringSegments(h.Sequence())...)
		}
	case *geom.MultiPolygon:
		for _, p := range t.Polygons() {
			out = append(out, polygonBoundarySegments(p)...)
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, polygonBoundarySegments(t.GeometryN(i))...)
		}
	}
	return out
}

func ringSegments(seq *geom.Sequence) []boundarySegment {
	var out []boundarySegment
	for i := 0; i < seq.Len()-1; i++ {
		p0, p1 := seq.Get(i), seq.Get(i+1)
		out = append(out, boundarySegment{
			p0: p0, p1: p1,
			mid: geom.NewXY((p0.X+p1.X)/2, (p0.Y+p1.Y)/2),
		})
	}
	return out
}

// locateInAreal classifies pt against an areal geometry: shell tested
// first (non-Interior short-circuits), then each hole (Boundary short-
// circuits, Interior-in-hole flips to Exterior) -- the same polygon
// point-location rule as overlay.locateInPolygon, duplicated here rather
// than exported from overlay since the two packages compute it for
// different purposes (edge labelling there, matrix entries here).
func locateInAreal(pt geom.Coordinate, g geom.Geometry) kernel.Location {
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
			if loc := locateInAreal(pt, t.GeometryN(i)); loc != kernel.Exterior {
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
