package noding

import "github.com/gogeos/geos/kernel"

// SimpleNoder nodes its input by brute-force pairwise testing of every
// segment against every other segment, including a string against
// itself. It is correct but O(n^2) in the segment count -- grounded on
// original_source/source/noding/SimpleNoder.cpp's nested-loop
// computeIntersects/computeNodes.
type SimpleNoder struct {
	strings []*NodableString
	noded   []*SegmentString
}

// ComputeNodes implements Noder.
func (s *SimpleNoder) ComputeNodes(segStrings []*SegmentString) error {
	s.strings = make([]*NodableString, len(segStrings))
	for i, ss := range segStrings {
		s.strings[i] = NewNodableString(ss)
	}
	for i, a := range s.strings {
		for j := i; j < len(s.strings); j++ {
			b := s.strings[j]
			addIntersections(a, b, i == j)
		}
	}
	s.noded = nil
	for _, a := range s.strings {
		s.noded = append(s.noded, a.SplitSubstrings()...)
	}
	return nil
}

// GetNodedSubstrings implements Noder.
func (s *SimpleNoder) GetNodedSubstrings() []*SegmentString { return s.noded }

// addIntersections tests every segment pair of a against every segment
// pair of b (skipping a segment against itself and its immediate
// neighbours when a==b), recording any found intersection on both
// strings.
func addIntersections(a, b *NodableString, sameString bool) {
	for i := 0; i < a.NumSegments(); i++ {
		p1, p2 := a.Segment(i)
		startJ := 0
		if sameString {
			startJ = i
		}
		for j := startJ; j < b.NumSegments(); j++ {
			if sameString && j <= i+1 && i <= j+1 {
				// Adjacent (or identical) segments of the same string
				// always share an endpoint; that's not a noding
				// intersection.
				continue
			}
			q1, q2 := b.Segment(j)
			res := kernel.SegmentIntersector(p1, p2, q1, q2)
			switch res.Kind {
			case kernel.PointIntersection:
				a.AddIntersection(res.Points[0], i)
				b.AddIntersection(res.Points[0], j)
			case kernel.CollinearIntersection:
				a.AddIntersection(res.Points[0], i)
				a.AddIntersection(res.Points[1], i)
				b.AddIntersection(res.Points[0], j)
				b.AddIntersection(res.Points[1], j)
			}
		}
	}
}
