package mcindex

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func seq(t *testing.T, coords ...geom.Coordinate) *geom.Sequence {
	t.Helper()
	s, err := geom.NewSequence(coords)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	return s
}

func TestChainsFromSequenceSplitsAtQuadrantChange(t *testing.T) {
	// (0,0)->(1,1) NE, (1,1)->(2,0) SE: quadrant changes at index 1.
	s := seq(t, geom.NewXY(0, 0), geom.NewXY(1, 1), geom.NewXY(2, 0))
	chains := ChainsFromSequence(s, "edge-1")
	if len(chains) != 2 {
		t.Fatalf("expected 2 chains, got %d", len(chains))
	}
	if chains[0].Start != 0 || chains[0].End != 1 {
		t.Errorf("chain 0 = [%d,%d], want [0,1]", chains[0].Start, chains[0].End)
	}
	if chains[1].Start != 1 || chains[1].End != 2 {
		t.Errorf("chain 1 = [%d,%d], want [1,2]", chains[1].Start, chains[1].End)
	}
	if chains[0].Context() != "edge-1" {
		t.Errorf("Context = %v, want edge-1", chains[0].Context())
	}
}

func TestChainsFromSequenceSingleMonotoneRunStaysOneChain(t *testing.T) {
	s := seq(t, geom.NewXY(0, 0), geom.NewXY(1, 1), geom.NewXY(2, 3), geom.NewXY(5, 9))
	chains := ChainsFromSequence(s, nil)
	if len(chains) != 1 {
		t.Fatalf("expected 1 chain for monotone NE run, got %d", len(chains))
	}
	if chains[0].Start != 0 || chains[0].End != 3 {
		t.Errorf("chain = [%d,%d], want [0,3]", chains[0].Start, chains[0].End)
	}
}

func TestChainEnvelope(t *testing.T) {
	s := seq(t, geom.NewXY(0, 0), geom.NewXY(3, 1), geom.NewXY(5, 2))
	chains := ChainsFromSequence(s, nil)
	env := chains[0].Envelope()
	want := geom.NewEnvelope(0, 5, 0, 2)
	if !env.Equals(want) {
		t.Errorf("Envelope = %v, want %v", env, want)
	}
}

func TestSelectFindsCrossingSegments(t *testing.T) {
	s := seq(t, geom.NewXY(0, 0), geom.NewXY(10, 10))
	chains := ChainsFromSequence(s, nil)
	var found []int
	chains[0].Select(geom.NewEnvelope(4, 6, 4, 6), func(segIdx int) {
		found = append(found, segIdx)
	})
	if len(found) != 1 || found[0] != 0 {
		t.Errorf("Select found = %v, want [0]", found)
	}
}

func TestComputeOverlapsFindsCrossingPair(t *testing.T) {
	a := ChainsFromSequence(seq(t, geom.NewXY(0, 0), geom.NewXY(10, 10)), "a")
	b := ChainsFromSequence(seq(t, geom.NewXY(0, 10), geom.NewXY(10, 0)), "b")

	var pairs int
	a[0].ComputeOverlaps(b[0], func(c0 *Chain, s0 int, c1 *Chain, s1 int) {
		pairs++
	})
	if pairs != 1 {
		t.Errorf("ComputeOverlaps found %d candidate pairs, want 1", pairs)
	}
}

func TestIndexQueryReturnsOverlappingChains(t *testing.T) {
	a := ChainsFromSequence(seq(t, geom.NewXY(0, 0), geom.NewXY(1, 1)), "a")
	far := ChainsFromSequence(seq(t, geom.NewXY(100, 100), geom.NewXY(101, 101)), "far")
	idx := NewIndex(append(append([]*Chain{}, a...), far...))

	got := idx.Query(geom.NewEnvelope(0, 1, 0, 1))
	if len(got) != 1 || got[0].Context() != "a" {
		t.Errorf("Query = %v, want only chain 'a'", got)
	}
}

func TestQuadrantOfPanicsOnDegenerateSegment(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for identical points")
		}
	}()
	quadrantOf(geom.NewXY(1, 1), geom.NewXY(1, 1))
}
