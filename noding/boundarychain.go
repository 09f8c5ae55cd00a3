package noding

import "github.com/gogeos/geos/geom"

// BoundaryChainNoder does not node its input at all: it discards every
// segment that appears an even number of times across the input (the
// interior, cancelling edges of adjacent polygons sharing a boundary)
// and keeps only maximal runs of segments appearing an odd number of
// times -- the true outer/inner boundary. Useful as a fast pre-pass when
// the only thing that matters is the union's boundary, not a fully noded
// result. Grounded on
// original_source/src/noding/BoundaryChainNoder.cpp's
// SegmentSet-symmetric-difference-then-extract-runs algorithm.
type BoundaryChainNoder struct {
	noded []*SegmentString
}

type undirectedSegment struct {
	x0, y0, x1, y1 float64
}

func newUndirectedSegment(p0, p1 geom.Coordinate) undirectedSegment {
	if p0.X > p1.X || (p0.X == p1.X && p0.Y > p1.Y) {
		p0, p1 = p1, p0
	}
	return undirectedSegment{p0.X, p0.Y, p1.X, p1.Y}
}

// ComputeNodes implements Noder.
func (b *BoundaryChainNoder) ComputeNodes(segStrings []*SegmentString) error {
	counts := make(map[undirectedSegment]int)
	for _, ss := range segStrings {
		for i := 0; i < ss.NumSegments(); i++ {
			p0, p1 := ss.Segment(i)
			counts[newUndirectedSegment(p0, p1)]++
		}
	}

	var out []*SegmentString
	for _, ss := range segStrings {
		isBoundary := make([]bool, ss.NumSegments())
		for i := range isBoundary {
			p0, p1 := ss.Segment(i)
			isBoundary[i] = counts[newUndirectedSegment(p0, p1)]%2 == 1
		}
		out = append(out, extractChains(ss, isBoundary)...)
	}
	b.noded = out
	return nil
}

// GetNodedSubstrings implements Noder.
func (b *BoundaryChainNoder) GetNodedSubstrings() []*SegmentString { return b.noded }

func extractChains(ss *SegmentString, isBoundary []bool) []*SegmentString {
	var chains []*SegmentString
	end := 0
	for {
		start := end
		for start < len(isBoundary) && !isBoundary[start] {
			start++
		}
		if start >= len(isBoundary) {
			break
		}
		end = start + 1
		for end < len(isBoundary) && isBoundary[end] {
			end++
		}
		coords := make([]geom.Coordinate, 0, end-start+1)
		for i := start; i <= end; i++ {
			coords = append(coords, ss.seq.Get(i))
		}
		seq, err := geom.NewSequence(coords)
		if err == nil {
			chains = append(chains, NewSegmentString(seq, ss.Context()))
		}
	}
	return chains
}
