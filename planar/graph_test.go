package planar

import (
	"testing"

	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

func TestAddEdgeCreatesSymPair(t *testing.T) {
	g := NewGraph()
	e := g.AddEdge(geom.NewXY(0, 0), geom.NewXY(1, 0))
	sym := g.Sym(e)
	if g.Sym(sym) != e {
		t.Fatalf("sym.sym != e")
	}
	if g.NumNodes() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NumNodes())
	}
}

func TestAddEdgeDedupesSharedEndpoint(t *testing.T) {
	g := NewGraph()
	g.AddEdge(geom.NewXY(0, 0), geom.NewXY(1, 0))
	g.AddEdge(geom.NewXY(0, 0), geom.NewXY(0, 1))
	if g.NumNodes() != 3 {
		t.Fatalf("expected 3 distinct nodes, got %d", g.NumNodes())
	}
}

func TestSortEdgesAroundNodesOrdersCCW(t *testing.T) {
	// Star at origin: east, north, west, south edges, added out of order.
	g := NewGraph()
	g.AddEdge(geom.NewXY(0, 0), geom.NewXY(0, 1))  // N
	g.AddEdge(geom.NewXY(0, 0), geom.NewXY(-1, 0)) // W
	g.AddEdge(geom.NewXY(0, 0), geom.NewXY(1, 0))  // E
	g.AddEdge(geom.NewXY(0, 0), geom.NewXY(0, -1)) // S
	g.SortEdgesAroundNodes()

	origin := g.nodeFor(geom.NewXY(0, 0))
	out := g.Node(origin).Out
	if len(out) != 4 {
		t.Fatalf("expected 4 outgoing edges, got %d", len(out))
	}
	// CCW sweep starting just after due south: S, E, N, W.
	wantOrder := []geom.Coordinate{
		geom.NewXY(0, -1), geom.NewXY(1, 0), geom.NewXY(0, 1), geom.NewXY(-1, 0),
	}
	for i, e := range out {
		dest := g.Node(g.HalfEdge(e).Dest).Coord
		if !dest.Equals2D(wantOrder[i]) {
			t.Errorf("out[%d] dest = %v, want %v", i, dest, wantOrder[i])
		}
	}
}

func TestTraverseFaceClosesOnSquare(t *testing.T) {
	g := NewGraph()
	p := []geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(1, 0), geom.NewXY(1, 1), geom.NewXY(0, 1),
	}
	var first EdgeID
	for i := 0; i < 4; i++ {
		e := g.AddEdge(p[i], p[(i+1)%4])
		if i == 0 {
			first = e
		}
	}
	g.SortEdgesAroundNodes()
	ring := g.TraverseFace(first)
	if ring == nil {
		t.Fatal("TraverseFace did not close")
	}
	if len(ring) != 4 {
		t.Fatalf("expected a 4-edge face, got %d", len(ring))
	}
}

func TestPropagateLabelsFillsConsistentSides(t *testing.T) {
	g := NewGraph()
	e := g.AddEdge(geom.NewXY(0, 0), geom.NewXY(1, 0))
	lbl := NewLabel()
	lbl.SetLocation(0, Left, kernel.Interior)
	lbl.SetLocation(0, Right, kernel.Exterior)
	g.SetLabel(e, lbl)
	// Close the CCW triangle so every node sees a consistent
	// Interior/Exterior alternation around it.
	g.SetLabel(g.AddEdge(geom.NewXY(1, 0), geom.NewXY(0, 1)), lbl)
	g.SetLabel(g.AddEdge(geom.NewXY(0, 1), geom.NewXY(0, 0)), lbl)

	if err := g.PropagateLabels(1); err != nil {
		t.Fatalf("PropagateLabels: %v", err)
	}
	sym := g.Sym(e)
	symLbl := g.Label(sym)
	if symLbl.Location(0, Left) != kernel.Exterior || symLbl.Location(0, Right) != kernel.Interior {
		t.Errorf("sym label not flipped: %+v", symLbl)
	}
}

func TestBoundaryNodeRules(t *testing.T) {
	cases := []struct {
		rule   BoundaryNodeRule
		degree int
		want   bool
	}{
		{ModTwoBoundaryNodeRule, 1, true},
		{ModTwoBoundaryNodeRule, 2, false},
		{EndpointBoundaryNodeRule, 1, true},
		{EndpointBoundaryNodeRule, 0, false},
		{MultivalentEndpointBoundaryNodeRule, 1, false},
		{MultivalentEndpointBoundaryNodeRule, 2, true},
		{MonovalentEndpointBoundaryNodeRule, 1, true},
		{MonovalentEndpointBoundaryNodeRule, 2, false},
	}
	for _, c := range cases {
		if got := c.rule.IsInBoundary(c.degree); got != c.want {
			t.Errorf("rule %T degree %d: got %v want %v", c.rule, c.degree, got, c.want)
		}
	}
}

func TestDepthNormalizeClampsToZeroOne(t *testing.T) {
	d := NewDepth()
	d.Set(0, Left, 3)
	d.Set(0, Right, 0)
	d.Normalize()
	if d.Get(0, Left) != 1 || d.Get(0, Right) != 0 {
		t.Errorf("normalize: got left=%d right=%d, want 1,0", d.Get(0, Left), d.Get(0, Right))
	}
}

func TestCompareDirectionOrdersByQuadrantThenOrientation(t *testing.T) {
	origin := geom.NewXY(0, 0)
	e := geom.NewXY(1, 0)
	ne1 := geom.NewXY(1, 1)
	ne2 := geom.NewXY(2, 1)
	if compareDirection(origin, e, ne1) >= 0 {
		t.Errorf("expected E to sort before NE")
	}
	// Both ne1, ne2 in NE quadrant; ne2 has a shallower angle (more east).
	if compareDirection(origin, ne2, ne1) >= 0 {
		t.Errorf("expected shallower NE ray to sort before steeper one")
	}
}
