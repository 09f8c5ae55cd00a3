package simplify

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/index/mcindex"
	"github.com/gogeos/geos/kernel"
)

// TopologyPreserving simplifies g like Geometry, but rejects any
// per-component simplification that would introduce a new
// self-intersection, falling back to that component's original
// coordinates instead. Candidate crossings are found by indexing the
// simplified sequence into monotone chains (index/mcindex) rather than
// testing every segment pair, grounded on
// original_source/src/simplify/TaggedLineStringSimplifier.cpp's role of
// validating each simplified line section before accepting it -- this
// adaptation checks the whole simplified sequence at once rather than
// retrying per dropped vertex.
func TopologyPreserving(g geom.Geometry, tolerance float64) (geom.Geometry, error) {
	f := geom.NewFactory(g.PrecisionModel(), g.SRID())
	return simplifyGeometryPreservingTopology(f, g, tolerance)
}

func simplifyGeometryPreservingTopology(f *geom.Factory, g geom.Geometry, tolerance float64) (geom.Geometry, error) {
	switch t := g.(type) {
	case *geom.Point:
		return t, nil
	case *geom.LineString:
		return f.CreateLineString(safeSimplifyOpen(t.Sequence(), tolerance).Coordinates())
	case *geom.LinearRing:
		return f.CreateLinearRing(safeSimplifyRing(t.Sequence(), tolerance).Coordinates())
	case *geom.Polygon:
		return safeSimplifyPolygon(f, t, tolerance)
	case *geom.MultiPoint:
		return t, nil
	case *geom.MultiLineString:
		lines := make([]*geom.LineString, len(t.LineStrings()))
		for i, l := range t.LineStrings() {
			ls, err := f.CreateLineString(safeSimplifyOpen(l.Sequence(), tolerance).Coordinates())
			if err != nil {
				return nil, err
			}
			lines[i] = ls
		}
		return f.CreateMultiLineString(lines)
	case *geom.MultiPolygon:
		polys := make([]*geom.Polygon, len(t.Polygons()))
		for i, p := range t.Polygons() {
			sp, err := safeSimplifyPolygon(f, p, tolerance)
			if err != nil {
				return nil, err
			}
			polys[i] = sp.(*geom.Polygon)
		}
		return f.CreateMultiPolygon(polys)
	case *geom.GeometryCollection:
		geoms := make([]geom.Geometry, t.NumGeometries())
		for i := 0; i < t.NumGeometries(); i++ {
			sg, err := simplifyGeometryPreservingTopology(f, t.GeometryN(i), tolerance)
			if err != nil {
				return nil, err
			}
			geoms[i] = sg
		}
		return f.CreateGeometryCollection(geoms)
	default:
		return g, nil
	}
}

func safeSimplifyPolygon(f *geom.Factory, p *geom.Polygon, tolerance float64) (geom.Geometry, error) {
	if p.IsEmpty() {
		return f.CreatePolygon(nil, nil)
	}
	shell, err := f.CreateLinearRing(safeSimplifyRing(p.Shell().Sequence(), tolerance).Coordinates())
	if err != nil {
		return nil, err
	}
	holes := make([]*geom.LinearRing, len(p.Holes()))
	for i, h := range p.Holes() {
		hr, err := f.CreateLinearRing(safeSimplifyRing(h.Sequence(), tolerance).Coordinates())
		if err != nil {
			return nil, err
		}
		holes[i] = hr
	}
	return f.CreatePolygon(shell, holes)
}

func safeSimplifyOpen(seq *geom.Sequence, tolerance float64) *geom.Sequence {
	simplified := simplifyOpenSequence(seq, tolerance)
	if hasSelfIntersections(simplified, false) {
		return seq.Clone()
	}
	return simplified
}

func safeSimplifyRing(seq *geom.Sequence, tolerance float64) *geom.Sequence {
	simplified := simplifyRing(seq, tolerance)
	if hasSelfIntersections(simplified, true) {
		return seq.Clone()
	}
	return simplified
}

// hasSelfIntersections reports whether seq's segments cross anywhere
// other than at consecutive shared endpoints. closed indicates seq's
// last point duplicates its first (a ring), so the wrap-around segment
// (End-1 -> 0) is adjacent rather than crossing.
func hasSelfIntersections(seq *geom.Sequence, closed bool) bool {
	if seq.Len() < 4 {
		return false
	}
	chain := mcindex.ChainsFromSequence(seq, nil)
	found := false
	for i, c0 := range chain {
		for j := i; j < len(chain); j++ {
			c1 := chain[j]
			c0.ComputeOverlaps(c1, func(chain0 *mcindex.Chain, seg0 int, chain1 *mcindex.Chain, seg1 int) {
				if found || chain0 == chain1 && seg0 == seg1 {
					return
				}
				if adjacentSegments(seq, seg0, seg1, closed) {
					return
				}
				p0, p1 := chain0.Segment(seg0)
				q0, q1 := chain1.Segment(seg1)
				res := kernel.SegmentIntersector(p0, p1, q0, q1)
				if res.Kind == kernel.NoIntersection {
					return
				}
				if res.Kind == kernel.PointIntersection && sharesEndpoint(p0, p1, q0, q1) {
					return
				}
				found = true
			})
		}
	}
	return found
}

func adjacentSegments(seq *geom.Sequence, seg0, seg1 int, closed bool) bool {
	if seg0 == seg1 {
		return true
	}
	lo, hi := seg0, seg1
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo == 1 {
		return true
	}
	if closed && lo == 0 && hi == seq.Len()-2 {
		return true
	}
	return false
}

func sharesEndpoint(p0, p1, q0, q1 geom.Coordinate) bool {
	return p0.Equals2D(q0) || p0.Equals2D(q1) || p1.Equals2D(q0) || p1.Equals2D(q1)
}
