// Package polygonize builds polygons from a set of noded line segments
// that form their boundaries, the inverse of extracting boundaries
// from polygons.
//
// Grounded on original_source/src/operation/overlayng/PolygonBuilder.h's
// concept of extracting minimal rings by following next-pointers around
// a labelled planar graph, expressed here with the same planar
// half-edge arena (planar.Graph) that overlay's own ring extraction
// (overlay/ring.go) uses, walking every minimal left face with
// Graph.TraverseFace and then deciding which faces are shells and
// which are holes.
package polygonize

import (
	"math"

	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
	"github.com/gogeos/geos/noding"
	"github.com/gogeos/geos/planar"
)

// Polygonize assembles polygons from lines, which must already form a
// noded (or node-able) planar arrangement: lines are noded internally,
// so callers need not pre-split them at crossings.
//
// Known simplification (recorded in DESIGN.md): this does not separate
// out GEOS's dangle/cut-edge diagnostics (lines that don't participate
// in any ring). Such edges still trace a degenerate zero-area face
// (out along the dangling edge and immediately back via its Sym) and
// are silently dropped by the zero-area filter below, rather than
// surfaced as Dangles()/CutEdges() the way the original Polygonizer
// reports them.
func Polygonize(lines []*geom.LineString) ([]*geom.Polygon, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	pm := lines[0].PrecisionModel()
	srid := lines[0].SRID()
	factory := geom.NewFactory(pm, srid)

	strings := make([]*noding.SegmentString, 0, len(lines))
	for _, l := range lines {
		if l.IsEmpty() {
			continue
		}
		strings = append(strings, noding.NewSegmentString(l.Sequence(), nil))
	}
	if len(strings) == 0 {
		return nil, nil
	}

	noder := &noding.IteratedNoder{}
	if err := noder.ComputeNodes(strings); err != nil {
		return nil, err
	}

	g := planar.NewGraph()
	for _, ss := range noder.GetNodedSubstrings() {
		coords := dedupConsecutive(ss.Coordinates().Coordinates())
		if len(coords) < 2 {
			continue
		}
		g.AddEdgePath(coords)
	}
	g.SortEdgesAroundNodes()

	rings := traceRings(g, factory)
	return assembleShellsAndHoles(rings, factory)
}

func dedupConsecutive(coords []geom.Coordinate) []geom.Coordinate {
	out := coords[:0]
	for i, c := range coords {
		if i > 0 && out[len(out)-1].Equals2D(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// traceRings walks every half-edge's minimal left face exactly once,
// keeping faces with non-negligible area (dropping degenerate
// out-and-back dangles).
func traceRings(g *planar.Graph, factory *geom.Factory) []*geom.LinearRing {
	visited := make(map[planar.EdgeID]bool)
	var rings []*geom.LinearRing
	for i := 0; i < g.NumHalfEdges(); i++ {
		start := planar.EdgeID(i)
		if visited[start] {
			continue
		}
		face := g.TraverseFace(start)
		if face == nil {
			visited[start] = true
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
		if math.Abs(signedArea(ring.Sequence())) < 1e-12 {
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

func signedArea(seq *geom.Sequence) float64 {
	sum := 0.0
	n := seq.Len()
	for i := 0; i < n-1; i++ {
		a, b := seq.Get(i), seq.Get(i+1)
		sum += (b.X - a.X) * (b.Y + a.Y)
	}
	return sum / -2
}

// assembleShellsAndHoles splits traced rings into CCW shells and CW
// holes, discards the single largest CW ring (the unbounded exterior
// face, which always traces clockwise under the left-face convention
// since the true exterior lies to its left), and nests each remaining
// hole inside its smallest enclosing shell by envelope containment plus
// a point-in-ring test -- the same matching idiom as
// overlay/ring.go's assemblePolygons.
func assembleShellsAndHoles(rings []*geom.LinearRing, factory *geom.Factory) ([]*geom.Polygon, error) {
	var shells, holes []*geom.LinearRing
	outerIdx := -1
	outerArea := -1.0
	for i, r := range rings {
		if signedArea(r.Sequence()) > 0 {
			shells = append(shells, r)
			continue
		}
		area := r.Envelope().Area()
		if area > outerArea {
			outerArea = area
			outerIdx = i
		}
	}
	for i, r := range rings {
		if signedArea(r.Sequence()) > 0 || i == outerIdx {
			continue
		}
		holes = append(holes, r)
	}
	if len(shells) == 0 {
		return nil, nil
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
	return polys, nil
}
