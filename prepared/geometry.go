// Package prepared wraps an immutable geometry with lazily-built spatial
// indexes for fast repeated predicate evaluation.
//
// The segment index is backed by github.com/dhconnelly/rtreego, grounded
// on beetlebugorg-s57/pkg/s57/index.go's ChartIndex (rtreego.NewTree,
// Insert, SearchIntersect) -- a dynamic R-tree is the right tool here
// since a prepared geometry's index is built once and queried many
// times, unlike index/strtree's bulk-loaded, frozen-after-first-query
// STR-tree used by the overlay/noding hot paths.
package prepared

import (
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// Geometry is a prepared (indexed) geometry, safe for concurrent queries.
// Every query builds the indexes through Prepare, whose sync.Once runs
// the build exactly once even when the first queries arrive
// concurrently; calling Prepare up front moves that cost out of the
// first query.
type Geometry struct {
	source geom.Geometry

	once    sync.Once
	segTree *rtreego.Rtree
	locator *IndexedPointInAreaLocator
	isAreal bool
}

// NewGeometry wraps g. Allocation is cheap: no index is built until the
// first predicate call or an explicit Prepare.
func NewGeometry(g geom.Geometry) *Geometry {
	return &Geometry{source: g, isAreal: g.Dimension() == 2}
}

// Prepare builds every index eagerly. It is safe to call concurrently
// and more than once; only the first call builds.
func (p *Geometry) Prepare() {
	p.once.Do(p.build)
}

func (p *Geometry) build() {
	segs := extractSegments(p.source)
	tree := rtreego.NewTree(2, 4, 16)
	for _, s := range segs {
		tree.Insert(s)
	}
	p.segTree = tree
	if p.isAreal {
		p.locator = NewIndexedPointInAreaLocator(p.source)
	}
}

// Source returns the wrapped geometry.
func (p *Geometry) Source() geom.Geometry { return p.source }

func (p *Geometry) candidateSegments(env geom.Envelope) []segment {
	p.Prepare()
	hits := p.segTree.SearchIntersect(toRect(env))
	out := make([]segment, len(hits))
	for i, h := range hits {
		out[i] = h.(segment)
	}
	return out
}

// Locate classifies pt against this prepared geometry (areal only).
func (p *Geometry) Locate(pt geom.Coordinate) kernel.Location {
	p.Prepare()
	if p.locator == nil {
		return kernel.Exterior
	}
	return p.locator.Locate(pt)
}

// Intersects reports whether any segment of query touches or crosses
// any indexed segment of the prepared geometry, or (for areal prepared
// geometries) whether any query vertex locates inside or on the
// boundary. Any single candidate crossing found via
// the index short-circuits the full predicate to true.
func (p *Geometry) Intersects(query geom.Geometry) bool {
	p.Prepare()
	if p.isAreal {
		for _, v := range vertices(query) {
			if p.Locate(v) != kernel.Exterior {
				return true
			}
		}
	}
	qSegs := extractSegments(query)
	for _, qs := range qSegs {
		for _, cs := range p.candidateSegments(qs.envelope()) {
			if kernel.SegmentIntersector(qs.p0, qs.p1, cs.p0, cs.p1).Kind != kernel.NoIntersection {
				return true
			}
		}
	}
	if len(qSegs) > 0 || p.isAreal {
		return false
	}
	// query is a point/multipoint and the prepared geometry is linear:
	// test whether the point lies on one of its indexed segments.
	for _, v := range vertices(query) {
		for _, cs := range p.candidateSegments(geom.NewEnvelope(v.X, v.X, v.Y, v.Y)) {
			if onSegment(v, cs.p0, cs.p1) {
				return true
			}
		}
	}
	return false
}

// Disjoint is the negation of Intersects.
func (p *Geometry) Disjoint(query geom.Geometry) bool {
	return !p.Intersects(query)
}

// Contains reports whether every point of query lies inside or on the
// boundary of the prepared geometry, and query is not merely touching
// it from outside. Areal prepared geometries only.
func (p *Geometry) Contains(query geom.Geometry) bool {
	p.Prepare()
	if !p.isAreal {
		return false
	}
	vs := vertices(query)
	if len(vs) == 0 {
		return false
	}
	for _, v := range vs {
		if p.Locate(v) == kernel.Exterior {
			return false
		}
	}
	return true
}

// Covers is Contains without excluding boundary-only touches -- for this
// implementation's boundary-inclusive Locate, Covers and Contains agree.
func (p *Geometry) Covers(query geom.Geometry) bool {
	return p.Contains(query)
}

// Within reports whether the prepared geometry's source lies entirely
// inside query, evaluated by preparing query instead and calling Contains.
func (p *Geometry) Within(query geom.Geometry) bool {
	return NewGeometry(query).Contains(p.source)
}

// CoveredBy mirrors Within the way Covers mirrors Contains.
func (p *Geometry) CoveredBy(query geom.Geometry) bool {
	return p.Within(query)
}

// Touches reports that the two geometries intersect but neither's
// interior meets the other's interior -- approximated here as:
// they intersect, and no query vertex locates strictly Interior to a
// prepared areal geometry.
func (p *Geometry) Touches(query geom.Geometry) bool {
	if !p.Intersects(query) {
		return false
	}
	if !p.isAreal {
		return true
	}
	for _, v := range vertices(query) {
		if p.Locate(v) == kernel.Interior {
			return false
		}
	}
	return true
}

// Crosses reports that the geometries intersect in a way that produces
// a result of a lower dimension than the maximum of the two -- for an
// areal prepared geometry and a linear query, this is: at least one
// query vertex is Interior and at least one is Exterior.
func (p *Geometry) Crosses(query geom.Geometry) bool {
	if !p.isAreal || query.Dimension() != 1 {
		return false
	}
	sawInterior, sawExterior := false, false
	for _, v := range vertices(query) {
		switch p.Locate(v) {
		case kernel.Interior:
			sawInterior = true
		case kernel.Exterior:
			sawExterior = true
		}
	}
	return sawInterior && sawExterior
}

// Overlaps reports that both geometries are the same dimension, their
// interiors intersect, and neither contains the other.
func (p *Geometry) Overlaps(query geom.Geometry) bool {
	if query.Dimension() != p.source.Dimension() {
		return false
	}
	if !p.Intersects(query) {
		return false
	}
	return !p.Contains(query) && !p.Within(query)
}

// IsWithinDistance reports whether the minimum distance between the
// prepared geometry and query is at most distance.
func (p *Geometry) IsWithinDistance(query geom.Geometry, distance float64) bool {
	return p.Distance(query) <= distance
}

// Distance returns the minimum Euclidean distance between the prepared
// geometry and query, 0 if they intersect.
func (p *Geometry) Distance(query geom.Geometry) float64 {
	if p.Intersects(query) {
		return 0
	}
	_, _, d := p.NearestPoints(query)
	return d
}

// NearestPoints returns one point on the prepared geometry and one on
// query realizing (an upper bound of) their minimum distance, found by
// brute force over every pair of segments; the segment index is not
// consulted.
func (p *Geometry) NearestPoints(query geom.Geometry) (geom.Coordinate, geom.Coordinate, float64) {
	p.Prepare()
	qSegs := extractSegments(query)
	if len(qSegs) == 0 {
		qSegs = pointSegments(query)
	}
	srcSegs := extractSegments(p.source)
	if len(srcSegs) == 0 {
		srcSegs = pointSegments(p.source)
	}

	best := 0.0
	var bestA, bestB geom.Coordinate
	first := true
	for _, qs := range qSegs {
		for _, ss := range srcSegs {
			a, b, d := closestPointsBetweenSegments(ss.p0, ss.p1, qs.p0, qs.p1)
			if first || d < best {
				best, bestA, bestB, first = d, a, b, false
			}
		}
	}
	return bestA, bestB, best
}

func pointSegments(g geom.Geometry) []segment {
	var out []segment
	for _, v := range vertices(g) {
		out = append(out, segment{v, v})
	}
	return out
}
