package prepared

import (
	"math"

	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// closestPointsBetweenSegments returns a point on segment a (p0-p1), a
// point on segment b (q0-q1), and the distance between them -- the
// classic segment/segment minimum-distance computation via clamped
// parametric projection, applied by NearestPoints to every segment pair.
func closestPointsBetweenSegments(p0, p1, q0, q1 geom.Coordinate) (geom.Coordinate, geom.Coordinate, float64) {
	if p0.Equals2D(p1) && q0.Equals2D(q1) {
		return p0, q0, dist(p0, q0)
	}
	if p0.Equals2D(p1) {
		cp := closestPointOnSegment(p0, q0, q1)
		return p0, cp, dist(p0, cp)
	}
	if q0.Equals2D(q1) {
		cp := closestPointOnSegment(q0, p0, p1)
		return cp, q0, dist(cp, q0)
	}

	if ix := kernel.SegmentIntersector(p0, p1, q0, q1); ix.Kind != kernel.NoIntersection {
		return ix.Points[0], ix.Points[0], 0
	}

	candidates := [][2]geom.Coordinate{
		{p0, closestPointOnSegment(p0, q0, q1)},
		{p1, closestPointOnSegment(p1, q0, q1)},
		{closestPointOnSegment(q0, p0, p1), q0},
		{closestPointOnSegment(q1, p0, p1), q1},
	}
	bestI := 0
	bestD := dist(candidates[0][0], candidates[0][1])
	for i := 1; i < len(candidates); i++ {
		d := dist(candidates[i][0], candidates[i][1])
		if d < bestD {
			bestD, bestI = d, i
		}
	}
	return candidates[bestI][0], candidates[bestI][1], bestD
}

func closestPointOnSegment(p, a, b geom.Coordinate) geom.Coordinate {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return geom.NewXY(a.X+t*dx, a.Y+t*dy)
}

func dist(a, b geom.Coordinate) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
