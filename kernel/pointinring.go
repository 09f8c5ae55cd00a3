package kernel

import "github.com/gogeos/geos/geom"

// Location classifies a point's position relative to a ring or area
// geometry.
type Location int

const (
	Exterior Location = iota
	Interior
	Boundary
)

func (l Location) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	default:
		return "Exterior"
	}
}

// PointInRing classifies p against a closed ring sequence using a
// ray-crossing count to the right of p, with exact vertex/edge
// classification via OrientationIndex so that points exactly on a vertex
// or edge are always reported Boundary rather than landing on one side or
// the other of an unlucky floating-point comparison.
func PointInRing(p geom.Coordinate, ring *geom.Sequence) Location {
	n := ring.Len()
	if n < 4 {
		return Exterior
	}
	crossings := 0
	for i := 0; i < n-1; i++ {
		p1 := ring.Get(i)
		p2 := ring.Get(i + 1)

		if onSegment(p, p1, p2) {
			return Boundary
		}

		// Only consider edges that straddle p's Y coordinate.
		if (p1.Y > p.Y) == (p2.Y > p.Y) {
			continue
		}

		// Orientation of (p1, p2, p) tells us which side of the edge p is
		// on; combined with which endpoint is above p, this determines
		// whether the rightward ray from p crosses this edge.
		o := OrientationIndex(p1, p2, p)
		if p2.Y > p1.Y {
			if o == CounterClockwise {
				crossings++
			}
		} else {
			if o == Clockwise {
				crossings++
			}
		}
	}
	if crossings%2 == 1 {
		return Interior
	}
	return Exterior
}

// onSegment reports whether p lies exactly on the closed segment [a, b],
// using an exact collinearity test plus bounding-box containment.
func onSegment(p, a, b geom.Coordinate) bool {
	if p.Equals2D(a) || p.Equals2D(b) {
		return true
	}
	if OrientationIndex(a, b, p) != Collinear {
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
