package kernel

import "github.com/gogeos/geos/geom"

// InCircle reports whether d lies strictly inside the circle through
// a, b, c, which must be given in counter-clockwise order (callers
// typically establish this with OrientationIndex before calling, and
// swap b and c otherwise). Used by triangulate/delaunay's incremental
// insertion to decide whether an edge needs flipping.
//
// Computed via the standard 3x3 determinant test (translating a, b, c,
// d so that d is the origin, then testing the sign of the determinant
// of their (x, y, x^2+y^2) rows), the planar incircle analogue of
// OrientationIndex's (b-a) x (q-a) determinant. Unlike OrientationIndex,
// this does not stage a triage/stable/exact fallback: the Delaunay
// insertion this feeds only uses the predicate to choose between two
// legal triangulations of a quad, so an occasional wrong call at
// near-cocircular inputs degrades triangulation quality rather than
// correctness (see DESIGN.md).
func InCircle(a, b, c, d geom.Coordinate) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cx*cx + cy*cy

	det := ax*(by*cSq-bSq*cy) - ay*(bx*cSq-bSq*cx) + aSq*(bx*cy-by*cx)
	return det > 0
}
