// Package hull computes the convex hull of a geometry: the smallest
// convex polygon enclosing all of its coordinates.
//
// Grounded on golang-geo/s2/convex_hull_query.go's ConvexHullQuery,
// which builds a hull by collecting every vertex of the input geometry
// into one point set and running Andrew's monotone chain algorithm
// (sorting around an origin, then scanning for left turns). This
// package keeps that same add-everything/sort/scan shape, adapted from
// the sphere (sorting CCW around a tangent-plane origin via a Sign
// predicate on r3 vectors) to the plane (lexicographic sort on X then
// Y, turns tested with kernel.OrientationIndex).
package hull

import (
	"sort"

	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// Compute returns the convex hull of g as a Geometry: a Polygon for 3
// or more non-collinear points, a LineString for collinear input or an
// input spanning only two distinct points, a Point for a single
// distinct point, and an empty Point for no input coordinates at all.
func Compute(g geom.Geometry) (geom.Geometry, error) {
	f := geom.NewFactory(g.PrecisionModel(), g.SRID())
	pts := uniqueSorted(collectCoordinates(g))

	switch len(pts) {
	case 0:
		return f.CreateEmptyPoint(geom.XY), nil
	case 1:
		return f.CreatePoint(pts[0])
	case 2:
		return f.CreateLineString(pts)
	}

	hull := monotoneChain(pts)
	if len(hull) == 2 {
		return f.CreateLineString(hull)
	}
	ring := append(append([]geom.Coordinate{}, hull...), hull[0])
	shell, err := f.CreateLinearRing(ring)
	if err != nil {
		return nil, err
	}
	return f.CreatePolygon(shell, nil)
}

// collectCoordinates flattens every coordinate reachable from g,
// descending through Multi* and GeometryCollection children.
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

// uniqueSorted sorts coords lexicographically by (X, Y) and removes
// duplicates, the precondition monotoneChain's scan relies on.
func uniqueSorted(coords []geom.Coordinate) []geom.Coordinate {
	out := append([]geom.Coordinate{}, coords...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	n := 0
	for i, c := range out {
		if i == 0 || !c.Equals2D(out[n-1]) {
			out[n] = c
			n++
		}
	}
	return out[:n]
}

// monotoneChain builds the convex hull of sorted, duplicate-free pts
// via Andrew's monotone chain algorithm: scan left-to-right building
// the lower hull, then right-to-left building the upper hull,
// discarding a chain's trailing point whenever it and its last two
// predecessors don't make a strict left turn.
func monotoneChain(pts []geom.Coordinate) []geom.Coordinate {
	lower := scanHalf(pts)
	reversed := make([]geom.Coordinate, len(pts))
	for i, p := range pts {
		reversed[len(pts)-1-i] = p
	}
	upper := scanHalf(reversed)

	hull := make([]geom.Coordinate, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

func scanHalf(pts []geom.Coordinate) []geom.Coordinate {
	var chain []geom.Coordinate
	for _, p := range pts {
		for len(chain) >= 2 && kernel.OrientationIndex(chain[len(chain)-2], chain[len(chain)-1], p) != kernel.CounterClockwise {
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}
