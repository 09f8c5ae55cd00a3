package overlay

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/noding"
)

// edgeContext is the context value carried by every noding.SegmentString
// extracted from an operand, so later stages can recover which input and
// ring it came from.
type edgeContext struct {
	inputIndex int
	isHole     bool
	ccw        bool
}

// extractAreaEdges converts g (a Polygon or MultiPolygon) into one
// noding.SegmentString per ring, tagged with inputIndex and its shell/
// hole role. Non-areal geometries contribute no
// edges here; line extraction is handled by extractLinearEdges, point
// extraction directly off the Geometry in pointOverlay.
func extractAreaEdges(g geom.Geometry, inputIndex int) []*noding.SegmentString {
	var out []*noding.SegmentString
	switch t := g.(type) {
	case *geom.Polygon:
		out = append(out, ringEdges(t.Shell(), inputIndex, false))
		for _, h := range t.Holes() {
			out = append(out, ringEdges(h, inputIndex, true))
		}
	case *geom.MultiPolygon:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, extractAreaEdges(t.GeometryN(i), inputIndex)...)
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, extractAreaEdges(t.GeometryN(i), inputIndex)...)
		}
	}
	return out
}

func ringEdges(ring *geom.LinearRing, inputIndex int, isHole bool) *noding.SegmentString {
	ctx := edgeContext{inputIndex: inputIndex, isHole: isHole, ccw: isCCW(ring.Sequence())}
	return noding.NewSegmentString(ring.Sequence(), ctx)
}

// extractLinearEdges converts g (a LineString or MultiLineString) into
// one noding.SegmentString per line, consumed by computeLinear's Line
// result-dimension path.
func extractLinearEdges(g geom.Geometry, inputIndex int) []*noding.SegmentString {
	var out []*noding.SegmentString
	switch t := g.(type) {
	case *geom.LineString:
		out = append(out, noding.NewSegmentString(t.Sequence(), edgeContext{inputIndex: inputIndex}))
	case *geom.MultiLineString:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, extractLinearEdges(t.GeometryN(i), inputIndex)...)
		}
	}
	return out
}

// isArealOrEmpty reports whether g contributes only area geometry (or
// nothing), used to dispatch to the Area result-dimension path.
func isArealOrEmpty(g geom.Geometry) bool {
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		return true
	default:
		return g.IsEmpty()
	}
}

// isPointOrEmpty reports whether g contributes only puntal geometry (or
// nothing), used to dispatch to the points-only fast path.
func isPointOrEmpty(g geom.Geometry) bool {
	switch g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return true
	default:
		return g.IsEmpty()
	}
}

// isLinearOrEmpty reports whether g contributes only linear geometry (or
// nothing), used to dispatch to the Line result-dimension path.
func isLinearOrEmpty(g geom.Geometry) bool {
	switch g.(type) {
	case *geom.LineString, *geom.MultiLineString:
		return true
	default:
		return g.IsEmpty()
	}
}
