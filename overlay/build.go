package overlay

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
	"github.com/gogeos/geos/noding"
	"github.com/gogeos/geos/planar"
)

// buildGraph constructs the topology graph from noded area edges and
// labels every half-edge against both operands.
//
// Known simplification (see DESIGN.md): edges that coincide exactly
// between the two operands (shared boundary) are not merged into a
// single labelled edge the way OverlayNG's edge-merge pass does; each
// contributes its own (here identical) half-edge pair instead. This
// only matters for inputs that share boundary segments exactly; normal
// overlapping-interior inputs are unaffected.
func buildGraph(noded []*noding.SegmentString, opnds [2]geom.Geometry) (*planar.Graph, error) {
	g := planar.NewGraph()
	for _, ss := range noded {
		coords := dedupConsecutiveCoords(ss.Coordinates().Coordinates())
		if len(coords) < 2 {
			continue
		}
		ctx := ss.Context().(edgeContext)
		e := g.AddEdgePath(coords)
		lbl := planar.NewLabel()
		mid := g.MidPoint(e)
		for gi := 0; gi < 2; gi++ {
			if gi == ctx.inputIndex {
				left, right := kernel.Interior, kernel.Exterior
				if (ctx.isHole) == ctx.ccw {
					// A hole is conventionally CW and a shell CCW; if a
					// ring's actual winding doesn't match its role,
					// interior is on the other side.
					left, right = right, left
				}
				lbl.SetLocation(gi, planar.Left, left)
				lbl.SetLocation(gi, planar.Right, right)
			} else {
				loc := locateInGeometry(mid, opnds[gi])
				if loc == kernel.Boundary {
					loc = kernel.Interior
				}
				lbl.SetLocation(gi, planar.Left, loc)
				lbl.SetLocation(gi, planar.Right, loc)
			}
		}
		g.SetLabel(e, lbl)
	}
	if err := g.PropagateLabels(2); err != nil {
		return nil, err
	}
	return g, nil
}

// dedupConsecutiveCoords returns coords with runs of consecutive
// 2D-equal points collapsed to one. coords is never written through --
// Sequence.Coordinates() hands back the sequence's own backing array,
// and that array is shared by every other edge still referencing the
// same noded segment string, so compacting in place would corrupt
// state the caller doesn't own.
func dedupConsecutiveCoords(coords []geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, 0, len(coords))
	for i, c := range coords {
		if i > 0 && out[len(out)-1].Equals2D(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}
