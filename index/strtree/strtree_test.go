package strtree

import (
	"math"
	"sort"
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestQueryReturnsExactlyIntersectingItems(t *testing.T) {
	tr := New[int]()
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

func TestQueryNoFalseNegativesOnManyItems(t *testing.T) {
	tr := New[int]()
	n := 500
	for i := 0; i < n; i++ {
		x := float64(i % 50)
		y := float64(i / 50)
		tr.Insert(geom.NewEnvelope(x, x+1, y, y+1), i)
	}
	query := geom.NewEnvelope(10, 20, 3, 8)
	got := tr.QueryAll(query)
	gotSet := map[int]bool{}
	for _, g := range got {
		gotSet[g] = true
	}
	for i := 0; i < n; i++ {
		x := float64(i % 50)
		y := float64(i / 50)
		env := geom.NewEnvelope(x, x+1, y, y+1)
		if env.Intersects(query) && !gotSet[i] {
			t.Errorf("item %d intersects query but was not returned (false negative)", i)
		}
	}
}

func TestInsertAfterQueryPanics(t *testing.T) {
	tr := New[int]()
	tr.Insert(geom.NewEnvelope(0, 1, 0, 1), 1)
	tr.QueryAll(geom.NewEnvelope(0, 1, 0, 1))
	defer func() {
		if recover() == nil {
			t.Error("expected panic inserting after tree is built")
		}
	}()
	tr.Insert(geom.NewEnvelope(2, 3, 2, 3), 2)
}

func TestEmptyTreeQueryIsNoOp(t *testing.T) {
	tr := New[string]()
	got := tr.QueryAll(geom.NewEnvelope(0, 1, 0, 1))
	if len(got) != 0 {
		t.Errorf("expected no results from empty tree, got %v", got)
	}
}

func TestRemove(t *testing.T) {
	tr := New[int]()
	env := geom.NewEnvelope(0, 1, 0, 1)
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
}

type pointItem struct {
	x, y float64
}

func TestNearestNeighbour(t *testing.T) {
	tr := New[pointItem]()
	pts := []pointItem{{0, 0}, {10, 10}, {3, 4}, {100, 100}}
	for _, p := range pts {
		tr.Insert(geom.NewEnvelope(p.x, p.x, p.y, p.y), p)
	}
	dist := func(a, b pointItem) float64 {
		return math.Hypot(a.x-b.x, a.y-b.y)
	}
	query := pointItem{2, 2}
	got, d, ok := tr.NearestNeighbour(geom.NewEnvelope(query.x, query.x, query.y, query.y), dist, query)
	if !ok {
		t.Fatal("expected a nearest neighbour")
	}
	if got != (pointItem{3, 4}) {
		t.Errorf("NearestNeighbour = %v (dist %v), want {3 4}", got, d)
	}
}
