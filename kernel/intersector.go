package kernel

import "github.com/gogeos/geos/geom"

// IntersectionKind classifies the result of SegmentIntersector.
type IntersectionKind int

const (
	// NoIntersection means the two segments do not touch at all.
	NoIntersection IntersectionKind = iota
	// PointIntersection means the segments touch at exactly one point.
	PointIntersection
	// CollinearIntersection means the segments overlap along a shared
	// sub-segment (they are collinear and their parameter intervals
	// overlap in more than a single point).
	CollinearIntersection
)

// IntersectionResult is the outcome of SegmentIntersector: a kind plus up
// to two intersection points (Points[0] only for PointIntersection,
// both for CollinearIntersection).
type IntersectionResult struct {
	Kind   IntersectionKind
	Points [2]geom.Coordinate
}

// SegmentIntersector computes the intersection of closed segments p1-p2
// and q1-q2. Segments that touch only at an endpoint return exactly that
// endpoint coordinate with no perturbation.
func SegmentIntersector(p1, p2, q1, q2 geom.Coordinate) IntersectionResult {
	// Quick bounding-box reject.
	if !envelopesOverlap(p1, p2, q1, q2) {
		return IntersectionResult{Kind: NoIntersection}
	}

	o1 := OrientationIndex(p1, p2, q1)
	o2 := OrientationIndex(p1, p2, q2)
	o3 := OrientationIndex(q1, q2, p1)
	o4 := OrientationIndex(q1, q2, p2)

	if o1 == Collinear && o2 == Collinear && o3 == Collinear && o4 == Collinear {
		return collinearIntersection(p1, p2, q1, q2)
	}

	// Proper crossing: q1, q2 strictly on opposite sides of line p1p2 and
	// vice versa.
	if o1 != Collinear && o2 != Collinear && o1 != o2 &&
		o3 != Collinear && o4 != Collinear && o3 != o4 {
		pt := properIntersectionPoint(p1, p2, q1, q2)
		return IntersectionResult{Kind: PointIntersection, Points: [2]geom.Coordinate{pt, pt}}
	}

	// Improper intersection: at least one endpoint lies exactly on the
	// other segment. In every such case the intersection point is that
	// endpoint exactly -- never a computed/perturbed value.
	if o1 == Collinear && onSegment(q1, p1, p2) {
		return IntersectionResult{Kind: PointIntersection, Points: [2]geom.Coordinate{q1, q1}}
	}
	if o2 == Collinear && onSegment(q2, p1, p2) {
		return IntersectionResult{Kind: PointIntersection, Points: [2]geom.Coordinate{q2, q2}}
	}
	if o3 == Collinear && onSegment(p1, q1, q2) {
		return IntersectionResult{Kind: PointIntersection, Points: [2]geom.Coordinate{p1, p1}}
	}
	if o4 == Collinear && onSegment(p2, q1, q2) {
		return IntersectionResult{Kind: PointIntersection, Points: [2]geom.Coordinate{p2, p2}}
	}

	return IntersectionResult{Kind: NoIntersection}
}

func envelopesOverlap(p1, p2, q1, q2 geom.Coordinate) bool {
	pMinX, pMaxX := minmax(p1.X, p2.X)
	pMinY, pMaxY := minmax(p1.Y, p2.Y)
	qMinX, qMaxX := minmax(q1.X, q2.X)
	qMinY, qMaxY := minmax(q1.Y, q2.Y)
	return !(qMinX > pMaxX || qMaxX < pMinX || qMinY > pMaxY || qMaxY < pMinY)
}

func minmax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// properIntersectionPoint solves the 2x2 linear system for the crossing
// point of two non-parallel, properly-crossing segments.
func properIntersectionPoint(p1, p2, q1, q2 geom.Coordinate) geom.Coordinate {
	dxP := p2.X - p1.X
	dyP := p2.Y - p1.Y
	dxQ := q2.X - q1.X
	dyQ := q2.Y - q1.Y

	denom := dxP*dyQ - dyP*dxQ
	// denom == 0 cannot happen here: the caller already verified the
	// orientation tests disagree, so the lines are not parallel.
	t := ((q1.X-p1.X)*dyQ - (q1.Y-p1.Y)*dxQ) / denom
	return geom.NewXY(p1.X+t*dxP, p1.Y+t*dyP)
}

// collinearIntersection handles the case where all four orientation tests
// report Collinear: the two segments lie on the same line. It projects
// both segments onto their dominant axis and intersects the resulting
// intervals.
func collinearIntersection(p1, p2, q1, q2 geom.Coordinate) IntersectionResult {
	// Choose the axis with greater spread to avoid precision loss when
	// the line is nearly vertical or horizontal.
	useX := abs64(p2.X-p1.X) >= abs64(p2.Y-p1.Y)

	coord := func(c geom.Coordinate) float64 {
		if useX {
			return c.X
		}
		return c.Y
	}

	pLo, pHi := p1, p2
	if coord(pLo) > coord(pHi) {
		pLo, pHi = pHi, pLo
	}
	qLo, qHi := q1, q2
	if coord(qLo) > coord(qHi) {
		qLo, qHi = qHi, qLo
	}

	loVal := coord(pLo)
	if coord(qLo) > loVal {
		loVal = coord(qLo)
	}
	hiVal := coord(pHi)
	if coord(qHi) < hiVal {
		hiVal = coord(qHi)
	}

	if loVal > hiVal {
		return IntersectionResult{Kind: NoIntersection}
	}

	lo := pointAt(p1, p2, useX, loVal)
	hi := pointAt(p1, p2, useX, hiVal)

	if loVal == hiVal {
		return IntersectionResult{Kind: PointIntersection, Points: [2]geom.Coordinate{lo, lo}}
	}
	return IntersectionResult{Kind: CollinearIntersection, Points: [2]geom.Coordinate{lo, hi}}
}

// pointAt returns the point on line p1-p2 whose dominant-axis ordinate is
// val, interpolating linearly.
func pointAt(p1, p2 geom.Coordinate, useX bool, val float64) geom.Coordinate {
	if useX {
		if p2.X == p1.X {
			return geom.NewXY(val, p1.Y)
		}
		t := (val - p1.X) / (p2.X - p1.X)
		return geom.NewXY(val, p1.Y+t*(p2.Y-p1.Y))
	}
	if p2.Y == p1.Y {
		return geom.NewXY(p1.X, val)
	}
	t := (val - p1.Y) / (p2.Y - p1.Y)
	return geom.NewXY(p1.X+t*(p2.X-p1.X), val)
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
