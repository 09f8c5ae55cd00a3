// Package noding builds a consistent node set out of a collection of
// line segment strings: every pairwise intersection between input
// strings becomes a vertex shared by the split-apart output strings, so
// downstream planar-graph construction never has to reason about
// crossing edges.
//
// Grounded on original_source/source/noding/{SimpleNoder,SegmentNode,
// IteratedNoder}.cpp and include/geos/noding/ScaledNoder.h for the
// Noder/SegmentString split and the scaling/iteration wrapper shapes,
// and on golang-geo/s2/builder_snapper.go for the Snapper interface
// idiom adapted to planar hot-pixel snapping.
package noding

import (
	"sort"

	"github.com/gogeos/geos/geom"
)

// SegmentString is an immutable input line, tagged with an opaque
// context value the caller uses to recover which original edge a noded
// output string came from.
type SegmentString struct {
	seq     *geom.Sequence
	context any
}

// NewSegmentString wraps seq as an input segment string with the given
// context.
func NewSegmentString(seq *geom.Sequence, context any) *SegmentString {
	return &SegmentString{seq: seq, context: context}
}

// Coordinates returns the string's backing coordinate sequence.
func (s *SegmentString) Coordinates() *geom.Sequence { return s.seq }

// Context returns the caller-supplied context value.
func (s *SegmentString) Context() any { return s.context }

// Size returns the number of coordinates.
func (s *SegmentString) Size() int { return s.seq.Len() }

// NumSegments returns the number of segments (Size()-1, or 0 if empty).
func (s *SegmentString) NumSegments() int {
	if s.seq.Len() == 0 {
		return 0
	}
	return s.seq.Len() - 1
}

// Segment returns the i'th segment's endpoints.
func (s *SegmentString) Segment(i int) (geom.Coordinate, geom.Coordinate) {
	return s.seq.Get(i), s.seq.Get(i + 1)
}

// IsClosed reports whether the first and last coordinate coincide.
func (s *SegmentString) IsClosed() bool { return s.seq.IsClosed() }

// octant classifies the direction of (p0 -> p1) into one of 8 wedges,
// used by segmentNodeLess to order nodes consistently along a segment.
func octant(p0, p1 geom.Coordinate) int {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	switch {
	case dx >= 0 && dy >= 0:
		if adx >= ady {
			return 0
		}
		return 1
	case dx < 0 && dy >= 0:
		if adx >= ady {
			return 3
		}
		return 2
	case dx < 0 && dy < 0:
		if adx >= ady {
			return 4
		}
		return 5
	default:
		if adx >= ady {
			return 7
		}
		return 6
	}
}

func relativeSign(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareValue(s0, s1 int) int {
	switch {
	case s0 < 0:
		return -1
	case s0 > 0:
		return 1
	case s1 < 0:
		return -1
	case s1 > 0:
		return 1
	default:
		return 0
	}
}

// comparePointsOnSegment orders p0 and p1, both assumed to lie near a
// segment pointing into the given octant, by their position along it.
func comparePointsOnSegment(oct int, p0, p1 geom.Coordinate) int {
	if p0.Equals2D(p1) {
		return 0
	}
	xSign := relativeSign(p0.X, p1.X)
	ySign := relativeSign(p0.Y, p1.Y)
	switch oct {
	case 0:
		return compareValue(xSign, ySign)
	case 1:
		return compareValue(ySign, xSign)
	case 2:
		return compareValue(ySign, -xSign)
	case 3:
		return compareValue(-xSign, ySign)
	case 4:
		return compareValue(-xSign, -ySign)
	case 5:
		return compareValue(-ySign, -xSign)
	case 6:
		return compareValue(-ySign, xSign)
	default:
		return compareValue(xSign, -ySign)
	}
}

// segmentNode is an intersection vertex recorded against one input
// string: segmentIndex identifies which segment it lies on, and coord
// its (possibly snapped) location.
type segmentNode struct {
	coord        geom.Coordinate
	segmentIndex int
	octant       int
	interior     bool
}

// NodableString accumulates intersections found against a SegmentString
// and produces the split output strings once noding is complete.
type NodableString struct {
	*SegmentString
	nodes []segmentNode
}

// NewNodableString wraps ss to accumulate intersections.
func NewNodableString(ss *SegmentString) *NodableString {
	n := &NodableString{SegmentString: ss}
	n.addEndpoints()
	return n
}

func (n *NodableString) addEndpoints() {
	last := n.seq.Len() - 1
	n.nodes = append(n.nodes,
		segmentNode{coord: n.seq.Get(0), segmentIndex: 0},
		segmentNode{coord: n.seq.Get(last), segmentIndex: last},
	)
}

// AddIntersection records an intersection at coord on segment segIndex.
// An intersection at the segment's end vertex is recorded against the
// following vertex index, so it dedupes with any node already there.
func (n *NodableString) AddIntersection(coord geom.Coordinate, segIndex int) {
	if next := segIndex + 1; next < n.seq.Len() && coord.Equals2D(n.seq.Get(next)) {
		segIndex = next
	}
	oct := 0
	if segIndex < n.seq.Len()-1 {
		p0, p1 := n.Segment(segIndex)
		oct = octant(p0, p1)
	}
	n.nodes = append(n.nodes, segmentNode{
		coord:        coord,
		segmentIndex: segIndex,
		octant:       oct,
		interior:     !coord.Equals2D(n.seq.Get(segIndex)),
	})
}

func (n *NodableString) sortedNodes() []segmentNode {
	out := make([]segmentNode, len(n.nodes))
	copy(out, n.nodes)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.segmentIndex != b.segmentIndex {
			return a.segmentIndex < b.segmentIndex
		}
		return comparePointsOnSegment(a.octant, a.coord, b.coord) < 0
	})
	deduped := out[:0]
	for i, nd := range out {
		if i > 0 {
			p := deduped[len(deduped)-1]
			if p.segmentIndex == nd.segmentIndex && p.coord.Equals2D(nd.coord) {
				continue
			}
		}
		deduped = append(deduped, nd)
	}
	return deduped
}

// SplitSubstrings returns the noded output strings: the input sequence
// split at every recorded intersection, each still carrying the parent
// context.
func (n *NodableString) SplitSubstrings() []*SegmentString {
	nodes := n.sortedNodes()
	if len(nodes) < 2 {
		return []*SegmentString{n.SegmentString}
	}
	var out []*SegmentString
	for i := 0; i < len(nodes)-1; i++ {
		coords := n.coordinatesBetween(nodes[i], nodes[i+1])
		if len(coords) < 2 {
			continue
		}
		seq, err := geom.NewSequence(coords)
		if err != nil {
			continue
		}
		out = append(out, NewSegmentString(seq, n.context))
	}
	return out
}

func (n *NodableString) coordinatesBetween(a, b segmentNode) []geom.Coordinate {
	var coords []geom.Coordinate
	coords = append(coords, a.coord)
	for i := a.segmentIndex + 1; i <= b.segmentIndex; i++ {
		coords = append(coords, n.seq.Get(i))
	}
	if !coords[len(coords)-1].Equals2D(b.coord) {
		coords = append(coords, b.coord)
	}
	return coords
}
