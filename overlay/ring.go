package overlay

import (
	"slices"

	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
	"github.com/gogeos/geos/planar"
)

// resultEdges returns every half-edge whose left side is in the result
// (per op) while its Sym's left side is not -- exactly the half-edges
// that trace the result's boundary with the result area to their left,
// assembled from the labelled graph.
func resultEdges(g *planar.Graph, numEdges int, op Op) []planar.EdgeID {
	var out []planar.EdgeID
	for i := 0; i < numEdges; i++ {
		e := planar.EdgeID(i)
		lbl := g.Label(e)
		left := inResult(op, lbl.Location(0, planar.Left), lbl.Location(1, planar.Left))
		symLeft := inResult(op, g.Label(g.Sym(e)).Location(0, planar.Left), g.Label(g.Sym(e)).Location(1, planar.Left))
		if left && !symLeft {
			out = append(out, e)
		}
	}
	return out
}

// extractRings traces every maximal left-face among candidates, building
// one LinearRing per closed face; a face that fails to close (malformed
// or self-crossing input) is silently dropped rather than propagated as
// a malformed ring.
func extractRings(g *planar.Graph, candidates []planar.EdgeID, factory *geom.Factory) []*geom.LinearRing {
	// next turns from e's Sym clockwise around e's destination node until
	// it reaches another candidate, skipping edges not in the result.
	next := func(e planar.EdgeID) planar.EdgeID {
		n := g.Next(e)
		for i := 0; i < g.NumHalfEdges() && !slices.Contains(candidates, n); i++ {
			n = g.Next(g.Sym(n))
		}
		return n
	}
	visited := make(map[planar.EdgeID]bool)
	var rings []*geom.LinearRing
	for _, start := range candidates {
		if visited[start] {
			continue
		}
		face := []planar.EdgeID{start}
		for e := next(start); e != start && len(face) <= len(candidates); e = next(e) {
			face = append(face, e)
		}
		if len(face) > len(candidates) {
			continue
		}
		for _, e := range face {
			visited[e] = true
		}
		coords := faceCoordinates(g, face)
		if len(coords) < 4 {
			continue
		}
		ring, err := factory.CreateLinearRing(coords)
		if err != nil {
			continue
		}
		rings = append(rings, ring)
	}
	return rings
}

func faceCoordinates(g *planar.Graph, face []planar.EdgeID) []geom.Coordinate {
	var coords []geom.Coordinate
	for _, e := range face {
		path := g.Path(e)
		if len(coords) > 0 {
			path = path[1:]
		}
		coords = append(coords, path...)
	}
	if len(coords) > 0 && !coords[0].Equals2D(coords[len(coords)-1]) {
		coords = append(coords, coords[0])
	}
	return coords
}

// assemblePolygons pairs shells (CCW rings) with the holes (CW rings)
// that lie inside them by envelope containment plus a single
// point-in-ring test.
func assemblePolygons(rings []*geom.LinearRing, factory *geom.Factory) (geom.Geometry, error) {
	var shells, holes []*geom.LinearRing
	for _, r := range rings {
		if isCCW(r.Sequence()) {
			shells = append(shells, r)
		} else {
			holes = append(holes, r)
		}
	}
	if len(shells) == 0 {
		return factory.CreateGeometryCollection(nil)
	}
	shellHoles := make([][]*geom.LinearRing, len(shells))
	for _, h := range holes {
		pt := h.Sequence().Get(0)
		best := -1
		for i, s := range shells {
			if !s.Envelope().Contains(h.Envelope()) {
				continue
			}
			if kernel.PointInRing(pt, s.Sequence()) == kernel.Exterior {
				continue
			}
			if best == -1 || shells[i].Envelope().Area() < shells[best].Envelope().Area() {
				best = i
			}
		}
		if best >= 0 {
			shellHoles[best] = append(shellHoles[best], h)
		}
	}
	polys := make([]*geom.Polygon, len(shells))
	for i, s := range shells {
		p, err := factory.CreatePolygon(s, shellHoles[i])
		if err != nil {
			return nil, err
		}
		polys[i] = p
	}
	if len(polys) == 1 {
		return polys[0], nil
	}
	return factory.CreateMultiPolygon(polys)
}
