// Package mcindex implements monotone chains: a polyline is partitioned
// into maximal runs of segments that all point into the same quadrant
// (so each run is monotone in both X and Y), and each run's envelope is
// indexed so that two polylines can be tested for possible intersection
// by recursively narrowing down pairs of overlapping chain envelopes
// rather than comparing every segment pair.
//
// Grounded on original_source/src/geomgraph/Quadrant.cpp (the
// quadrant-of-direction classification) and
// original_source/src/geomgraph/index/MonotoneChainIndexer.cpp (splitting
// a sequence into chains at quadrant changes), with the chain's own
// recursive select/overlap search from
// original_source/source/index/chain/MonotoneChain.cpp; the chain set is
// indexed for broad-phase queries using index/strtree.
package mcindex

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/index/strtree"
)

// quadrant is one of the four compass directions a chain segment can
// point in.
type quadrant int

const (
	quadNE quadrant = iota
	quadSE
	quadNW
	quadSW
)

// quadrantOf returns the quadrant of the direction from p0 to p1. It
// panics if p0 equals p1, matching the original's "direction of a
// degenerate segment is undefined" invariant.
func quadrantOf(p0, p1 geom.Coordinate) quadrant {
	if p1.X == p0.X && p1.Y == p0.Y {
		panic("mcindex: cannot compute quadrant for two identical points")
	}
	if p1.X >= p0.X {
		if p1.Y >= p0.Y {
			return quadNE
		}
		return quadSE
	}
	if p1.Y >= p0.Y {
		return quadNW
	}
	return quadSW
}

// Chain is a maximal run of segments of seq[Start..End] that all point
// into the same quadrant.
type Chain struct {
	seq        *geom.Sequence
	Start, End int
	context    any
	env        geom.Envelope
	hasEnv     bool
}

// Context returns the caller-supplied value associated with this chain
// (typically identifying the parent edge).
func (c *Chain) Context() any { return c.context }

// Envelope returns the bounding envelope of this chain, computed lazily.
func (c *Chain) Envelope() geom.Envelope {
	if !c.hasEnv {
		p0 := c.seq.Get(c.Start)
		p1 := c.seq.Get(c.End)
		c.env = geom.NewEnvelope(p0.X, p1.X, p0.Y, p1.Y)
		c.hasEnv = true
	}
	return c.env
}

// Segment returns the segment starting at sequence index i (Start <= i
// < End, the same absolute indexing Select and ComputeOverlaps use) as
// its two endpoint coordinates.
func (c *Chain) Segment(i int) (geom.Coordinate, geom.Coordinate) {
	return c.seq.Get(i), c.seq.Get(i + 1)
}

// NumSegments returns the number of segments making up this chain.
func (c *Chain) NumSegments() int { return c.End - c.Start }

// ChainsFromSequence partitions seq into monotone chains, tagging each
// with context.
func ChainsFromSequence(seq *geom.Sequence, context any) []*Chain {
	if seq.Len() < 2 {
		return nil
	}
	var chains []*Chain
	start := 0
	for start < seq.Len()-1 {
		end := findChainEnd(seq, start)
		chains = append(chains, &Chain{seq: seq, Start: start, End: end, context: context})
		start = end
	}
	return chains
}

func findChainEnd(seq *geom.Sequence, start int) int {
	chainQuad := quadrantOf(seq.Get(start), seq.Get(start+1))
	last := start + 1
	for last < seq.Len()-1 {
		if quadrantOf(seq.Get(last), seq.Get(last+1)) != chainQuad {
			break
		}
		last++
	}
	return last
}

// Select invokes visit(segmentIndex) for every segment of c whose
// envelope could intersect searchEnv, using the chain's internal binary
// subdivision rather than testing every segment.
func (c *Chain) Select(searchEnv geom.Envelope, visit func(segmentIndex int)) {
	computeSelect(c, searchEnv, c.Start, c.End, visit)
}

func computeSelect(c *Chain, searchEnv geom.Envelope, start0, end0 int, visit func(int)) {
	p0 := c.seq.Get(start0)
	p1 := c.seq.Get(end0)
	segEnv := geom.NewEnvelope(p0.X, p1.X, p0.Y, p1.Y)

	if end0-start0 == 1 {
		visit(start0)
		return
	}
	if !searchEnv.Intersects(segEnv) {
		return
	}
	mid := (start0 + end0) / 2
	if start0 < mid {
		computeSelect(c, searchEnv, start0, mid, visit)
	}
	if mid < end0 {
		computeSelect(c, searchEnv, mid, end0, visit)
	}
}

// OverlapAction is invoked for every candidate pair of segments (indices
// into each chain) whose envelopes overlap.
type OverlapAction func(chain0 *Chain, seg0 int, chain1 *Chain, seg1 int)

// ComputeOverlaps finds every pair of segments, one from c and one from
// other, whose envelopes overlap, via recursive binary subdivision of
// both chains simultaneously.
func (c *Chain) ComputeOverlaps(other *Chain, action OverlapAction) {
	computeOverlaps(c, c.Start, c.End, other, other.Start, other.End, action)
}

func computeOverlaps(c0 *Chain, start0, end0 int, c1 *Chain, start1, end1 int, action OverlapAction) {
	if end0-start0 == 1 && end1-start1 == 1 {
		action(c0, start0, c1, start1)
		return
	}
	p00, p01 := c0.seq.Get(start0), c0.seq.Get(end0)
	p10, p11 := c1.seq.Get(start1), c1.seq.Get(end1)
	env0 := geom.NewEnvelope(p00.X, p01.X, p00.Y, p01.Y)
	env1 := geom.NewEnvelope(p10.X, p11.X, p10.Y, p11.Y)
	if !env0.Intersects(env1) {
		return
	}

	mid0 := (start0 + end0) / 2
	mid1 := (start1 + end1) / 2

	if start0 < mid0 {
		if start1 < mid1 {
			computeOverlaps(c0, start0, mid0, c1, start1, mid1, action)
		}
		if mid1 < end1 {
			computeOverlaps(c0, start0, mid0, c1, mid1, end1, action)
		}
	}
	if mid0 < end0 {
		if start1 < mid1 {
			computeOverlaps(c0, mid0, end0, c1, start1, mid1, action)
		}
		if mid1 < end1 {
			computeOverlaps(c0, mid0, end0, c1, mid1, end1, action)
		}
	}
}

// Index is a broad-phase spatial index over a set of monotone chains,
// backed by an strtree keyed on each chain's envelope.
type Index struct {
	tree *strtree.Tree[*Chain]
}

// NewIndex builds an index over the given chains.
func NewIndex(chains []*Chain) *Index {
	tree := strtree.New[*Chain]()
	for _, c := range chains {
		tree.Insert(c.Envelope(), c)
	}
	return &Index{tree: tree}
}

// Query returns every indexed chain whose envelope intersects env.
func (idx *Index) Query(env geom.Envelope) []*Chain {
	return idx.tree.QueryAll(env)
}

// QueryPairs finds every pair of possibly-overlapping segments between
// chains and this index's chains, invoking action once per candidate
// segment pair via each matched chain pair's ComputeOverlaps.
func (idx *Index) QueryPairs(chains []*Chain, action OverlapAction) {
	for _, c := range chains {
		for _, cand := range idx.Query(c.Envelope()) {
			if cand == c {
				continue
			}
			c.ComputeOverlaps(cand, action)
		}
	}
}
