// Package kernel implements gogeos's robust predicates: orientation,
// point-in-ring classification, segment intersection and ring-orientation
// (CCW) testing. These never throw — degenerate inputs produce deterministic
// sentinel outputs (Collinear, Boundary) rather than panicking.
//
// OrientationIndex follows the exact staged-dispatch shape of
// golang-geo/s2/predicates.go's RobustSign: a cheap float filter
// (triageOrientation) first, a more careful reordered computation
// (stableOrientation) second, and an exact fallback
// (exactOrientation) last. The plane is embedded as homogeneous
// r3.Vector{x, y, 1} points so the same cross/dot trick used on
// the sphere applies directly: the signed volume of the parallelepiped
// formed by three such vectors is (twice) the signed area of the triangle
// they form, and its sign is the orientation.
package kernel

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/gogeos/geos/geom"
)

// Orientation is the result of OrientationIndex: the turn direction of
// three points.
type Orientation int

const (
	Clockwise Orientation = -1
	Collinear Orientation = 0
	CounterClockwise Orientation = 1
)

const (
	// dblEpsilon is the machine epsilon for float64, used to derive the
	// conservative error bounds below (see maxDeterminantError).
	dblEpsilon = 2.220446049250313e-16

	// maxDeterminantError bounds the error in computing ((b-a) x (q-a))
	// via the naive float cross/dot formula. Derived the same way as
	// s2/predicates.go's maxDeterminantError, adapted for 2D homogeneous
	// points whose z-ordinate is exactly 1 (so its contribution to
	// rounding error is from the x/y ordinates alone).
	maxDeterminantError = 1.8274 * dblEpsilon

	// detErrorMultiplier scales |A-C|*|B-C| to bound the determinant
	// error for the reordered ("stable") computation, mirroring
	// s2/predicates.go's detErrorMultiplier.
	detErrorMultiplier = 3.2321 * dblEpsilon
)

func homogeneous(c geom.Coordinate) r3.Vector {
	return r3.Vector{X: c.X, Y: c.Y, Z: 1}
}

// OrientationIndex returns the orientation of the triple (a, b, q): the
// sign of the determinant of (b-a) x (q-a). It is symbolically correct
// (never "indeterminate" for distinct, non-collinear points) via a fast
// float filter that falls back to an exact algorithm when the filter is
// inconclusive.
func OrientationIndex(a, b, q geom.Coordinate) Orientation {
	if o := triageOrientation(a, b, q); o != Collinear || isTriageCertainCollinear(a, b, q) {
		return o
	}
	if o := stableOrientation(a, b, q); o != Collinear {
		return o
	}
	return exactOrientation(a, b, q)
}

// isTriageCertainCollinear reports whether a, b, q coincide enough (two
// equal points) that Collinear is certain without further computation,
// avoiding extra work in the common degenerate case.
func isTriageCertainCollinear(a, b, q geom.Coordinate) bool {
	return a.Equals2D(b) || b.Equals2D(q) || q.Equals2D(a)
}

// triageOrientation computes the orientation via the naive homogeneous
// cross/dot formula and reports Collinear whenever the result is within
// the conservative error bound, leaving disambiguation to the caller.
//
// av.Cross(bv).Dot(qv) is the scalar triple product of the three
// homogeneous vectors, i.e. the determinant
//
//	| a.x a.y 1 |
//	| b.x b.y 1 |
//	| q.x q.y 1 |
//
// which is twice the signed area of triangle (a, b, q) -- positive when
// the turn a -> b -> q is counter-clockwise. This mirrors
// s2/predicates.go's Sign(a, b, c) = c.Cross(a).Dot(b) exactly, just
// reassociated for the (a, b, q) argument order OrientationIndex uses.
func triageOrientation(a, b, q geom.Coordinate) Orientation {
	av, bv, qv := homogeneous(a), homogeneous(b), homogeneous(q)
	det := av.Cross(bv).Dot(qv)
	if det > maxDeterminantError {
		return CounterClockwise
	}
	if det < -maxDeterminantError {
		return Clockwise
	}
	return Collinear
}

// stableOrientation recomputes the determinant after cyclically permuting
// a, b, q so that the longest edge is used as the reference, which
// minimizes the magnitude (and hence the rounding error) of the cross
// product -- the planar analogue of s2/predicates.go's stableSign.
func stableOrientation(a, b, q geom.Coordinate) Orientation {
	ab2 := sqDist(a, b)
	bq2 := sqDist(b, q)
	qa2 := sqDist(q, a)

	var e1x, e1y, e2x, e2y float64
	switch {
	case ab2 >= bq2 && ab2 >= qa2:
		e1x, e1y = q.X-a.X, q.Y-a.Y
		e2x, e2y = b.X-q.X, b.Y-q.Y
	case bq2 >= qa2:
		e1x, e1y = a.X-b.X, a.Y-b.Y
		e2x, e2y = q.X-a.X, q.Y-a.Y
	default:
		e1x, e1y = b.X-q.X, b.Y-q.Y
		e2x, e2y = a.X-b.X, a.Y-b.Y
	}

	det := e1x*e2y - e1y*e2x
	maxErr := detErrorMultiplier * math.Sqrt((e1x*e1x+e1y*e1y)*(e2x*e2x+e2y*e2y))
	if det > maxErr {
		return CounterClockwise
	}
	if det < -maxErr {
		return Clockwise
	}
	return Collinear
}

func sqDist(a, b geom.Coordinate) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// exactOrientation falls back to SignOfDet2x2, which is exact for finite
// double inputs (no rounding-error bound needed).
func exactOrientation(a, b, q geom.Coordinate) Orientation {
	sign := SignOfDet2x2(b.X-a.X, b.Y-a.Y, q.X-a.X, q.Y-a.Y)
	return Orientation(sign)
}
