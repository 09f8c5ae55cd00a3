package noding

import (
	"github.com/gogeos/geos/index/mcindex"
	"github.com/gogeos/geos/kernel"
)

// MCIndexNoder nodes its input using a monotone-chain index for the
// broad phase instead of SimpleNoder's full pairwise scan, making it the
// noder of choice for anything beyond toy input sizes. Grounded on
// index/mcindex (itself grounded on
// original_source/src/geomgraph/index/MonotoneChainIndexer.cpp) composed
// with the chain-overlap action pattern from
// original_source/source/index/chain/MonotoneChain.cpp.
type MCIndexNoder struct {
	strings []*NodableString
	noded   []*SegmentString
}

// ComputeNodes implements Noder.
func (m *MCIndexNoder) ComputeNodes(segStrings []*SegmentString) error {
	m.strings = make([]*NodableString, len(segStrings))
	byContext := make(map[*mcindex.Chain]*NodableString)

	var allChains []*mcindex.Chain
	for i, ss := range segStrings {
		ns := NewNodableString(ss)
		m.strings[i] = ns
		chains := mcindex.ChainsFromSequence(ss.Coordinates(), ns)
		for _, c := range chains {
			byContext[c] = ns
			allChains = append(allChains, c)
		}
	}

	idx := mcindex.NewIndex(allChains)
	seen := make(map[*mcindex.Chain]map[*mcindex.Chain]bool)
	for _, c := range allChains {
		owner := byContext[c]
		for _, cand := range idx.Query(c.Envelope()) {
			if cand == c {
				continue
			}
			candOwner := byContext[cand]
			if seen[c][cand] || seen[cand][c] {
				continue
			}
			if seen[c] == nil {
				seen[c] = make(map[*mcindex.Chain]bool)
			}
			seen[c][cand] = true
			sameString := owner == candOwner
			c.ComputeOverlaps(cand, func(c0 *mcindex.Chain, s0 int, c1 *mcindex.Chain, s1 int) {
				a, b := owner, candOwner
				i, j := s0, s1
				if sameString && j <= i+1 && i <= j+1 {
					return
				}
				p1, p2 := c0.Segment(i)
				q1, q2 := c1.Segment(j)
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
			})
		}
	}

	m.noded = nil
	for _, a := range m.strings {
		m.noded = append(m.noded, a.SplitSubstrings()...)
	}
	return nil
}

// GetNodedSubstrings implements Noder.
func (m *MCIndexNoder) GetNodedSubstrings() []*SegmentString { return m.noded }
