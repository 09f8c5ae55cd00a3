package quadtree

import (
	"sort"
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestQueryReturnsExactlyIntersectingItems(t *testing.T) {
	tr := New[int](0.01)
	envs := map[int]geom.Envelope{
		0: geom.NewEnvelope(0, 1, 0, 1),
		1: geom.NewEnvelope(5, 6, 5, 6),
		2: geom.NewEnvelope(2, 3, 2, 3),
		3: geom.NewEnvelope(-10, -9, -10, -9),
	}
	for id, env := range envs {
		tr.Insert(env, id)
	}

	got := tr.QueryAll(geom.NewEnvelope(0, 3, 0, 3))
	sort.Ints(got)
	want := []int{0, 2}
	if len(got) != len(want) {
		t.Fatalf("QueryAll = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("QueryAll = %v, want %v", got, want)
		}
	}
}

func TestQueryAcrossAllFourQuadrants(t *testing.T) {
	tr := New[string](0.01)
	tr.Insert(geom.NewEnvelope(1, 2, 1, 2), "NE")
	tr.Insert(geom.NewEnvelope(-2, -1, 1, 2), "NW")
	tr.Insert(geom.NewEnvelope(-2, -1, -2, -1), "SW")
	tr.Insert(geom.NewEnvelope(1, 2, -2, -1), "SE")

	got := tr.QueryAll(geom.NewEnvelope(-10, 10, -10, 10))
	if len(got) != 4 {
		t.Fatalf("expected all 4 items, got %v", got)
	}
}

func TestStraddlingAxisItemIsStillFound(t *testing.T) {
	tr := New[string](0.01)
	tr.Insert(geom.NewEnvelope(-1, 1, -1, 1), "straddles-both-axes")

	got := tr.QueryAll(geom.NewEnvelope(0, 0.5, 0, 0.5))
	if len(got) != 1 || got[0] != "straddles-both-axes" {
		t.Errorf("expected straddling item to be found, got %v", got)
	}
}

func TestZeroExtentEnvelopeIsPadded(t *testing.T) {
	tr := New[string](0.1)
	tr.Insert(geom.NewEnvelope(5, 5, 5, 5), "point")

	got := tr.QueryAll(geom.NewEnvelope(4.9, 5.1, 4.9, 5.1))
	if len(got) != 1 {
		t.Errorf("expected point item to be found via padded envelope, got %v", got)
	}
}

func TestNoFalseNegativesOnManyItems(t *testing.T) {
	tr := New[int](0.01)
	n := 300
	for i := 0; i < n; i++ {
		x := float64(i%30) - 15
		y := float64(i/30) - 5
		tr.Insert(geom.NewEnvelope(x, x+1, y, y+1), i)
	}
	query := geom.NewEnvelope(-5, 5, -3, 3)
	got := tr.QueryAll(query)
	gotSet := map[int]bool{}
	for _, g := range got {
		gotSet[g] = true
	}
	for i := 0; i < n; i++ {
		x := float64(i%30) - 15
		y := float64(i/30) - 5
		env := geom.NewEnvelope(x, x+1, y, y+1)
		if env.Intersects(query) && !gotSet[i] {
			t.Errorf("item %d intersects query but was not returned (false negative)", i)
		}
	}
}

func TestRemove(t *testing.T) {
	tr := New[int](0.01)
	env := geom.NewEnvelope(1, 2, 1, 2)
	tr.Insert(env, 42)
	tr.Insert(geom.NewEnvelope(5, 6, 5, 6), 7)
	if !tr.Remove(env, func(v int) bool { return v == 42 }) {
		t.Fatal("Remove reported not found")
	}
	got := tr.QueryAll(env)
	for _, g := range got {
		if g == 42 {
			t.Error("removed item still returned by Query")
		}
	}
	if tr.Size() != 1 {
		t.Errorf("Size = %d, want 1", tr.Size())
	}
}

func TestGrowsUpwardForDistantItem(t *testing.T) {
	tr := New[string](0.01)
	tr.Insert(geom.NewEnvelope(1, 2, 1, 2), "near")
	tr.Insert(geom.NewEnvelope(1000000, 1000001, 1000000, 1000001), "far")

	got := tr.QueryAll(geom.NewEnvelope(999999, 1000002, 999999, 1000002))
	if len(got) != 1 || got[0] != "far" {
		t.Errorf("expected far item after upward growth, got %v", got)
	}
	gotNear := tr.QueryAll(geom.NewEnvelope(0, 3, 0, 3))
	if len(gotNear) != 1 || gotNear[0] != "near" {
		t.Errorf("expected near item unaffected by growth, got %v", gotNear)
	}
}

func TestEmptyTreeQueryIsNoOp(t *testing.T) {
	tr := New[string](0.01)
	got := tr.QueryAll(geom.NewEnvelope(0, 1, 0, 1))
	if len(got) != 0 {
		t.Errorf("expected no results from empty tree, got %v", got)
	}
}
