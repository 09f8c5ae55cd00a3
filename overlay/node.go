package overlay

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/noding"
)

// nodeEdges runs the configured noder over edges from both operands, per
// SnapRoundingNoder under a FIXED precision model,
// or SimpleNoder when FLOATING (no grid to snap to, so brute-force exact
// intersection is used instead).
func nodeEdges(edges []*noding.SegmentString, pm *geom.PrecisionModel) ([]*noding.SegmentString, error) {
	var n noding.Noder
	if pm.Type() == geom.Fixed {
		n = &noding.SnapRoundingNoder{PixelSize: pm.GridSize()}
	} else {
		n = &noding.SimpleNoder{}
	}
	if err := n.ComputeNodes(edges); err != nil {
		return nil, err
	}
	return n.GetNodedSubstrings(), nil
}
