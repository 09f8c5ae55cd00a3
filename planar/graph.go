package planar

import (
	"sort"

	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// NodeID indexes Graph.nodes.
type NodeID int32

// EdgeID indexes a half-edge within Graph.edges. Half-edges of the same
// undirected edge are always allocated as a consecutive sym pair: for
// any EdgeID e, e^1 is its Sym (standard even/odd pairing).
type EdgeID int32

// Node is the equivalence class of every half-edge originating at the
// same coordinate, ordered CCW by angle.
//
// A node's edges keep local ordering CCW by
// angle" realized via compareDirection below.
type Node struct {
	Coord geom.Coordinate
	// Out lists the half-edges originating here, sorted CCW.
	Out []EdgeID
}

// halfEdge is one direction of an undirected edge.
//
// Grounded on golang-geo/s2/builder_graph.go's edge-as-indices idiom:
// Origin/Sym/Next/Prev are array indices, not pointers, so the whole
// graph tears down as a single slice drop.
type halfEdge struct {
	Origin NodeID
	Dest   NodeID
	Sym    EdgeID
	Next   EdgeID
	Prev   EdgeID
	Label  Label
	Depth  *Depth
	// Path is the edge's full coordinate shape from Origin to Dest,
	// inclusive of both endpoints; for a Sym pair, one is the exact
	// reverse of the other. Populated by AddEdgePath so that ring
	// extraction recovers real vertex geometry, not just a straight
	// chord between nodes.
	Path []geom.Coordinate
}

// Graph is the half-edge planar graph built from noded segment strings,
// It is not safe for concurrent use; construct one per
// goroutine (§5).
type Graph struct {
	nodes   []Node
	edges   []halfEdge
	nodeIdx map[[2]float64]NodeID
	sorted  bool
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{nodeIdx: map[[2]float64]NodeID{}}
}

func coordKey(c geom.Coordinate) [2]float64 { return [2]float64{c.X, c.Y} }

// nodeFor returns the NodeID for c, creating one if none exists yet.
func (g *Graph) nodeFor(c geom.Coordinate) NodeID {
	key := coordKey(c)
	if id, ok := g.nodeIdx[key]; ok {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{Coord: c})
	g.nodeIdx[key] = id
	return id
}

// AddEdge inserts the undirected edge p0-p1 as a sym pair of half-edges,
// returning the half-edge directed p0->p1.
func (g *Graph) AddEdge(p0, p1 geom.Coordinate) EdgeID {
	return g.AddEdgePath([]geom.Coordinate{p0, p1})
}

// AddEdgePath inserts the undirected edge whose shape is path (path[0]
// through path[len(path)-1]) as a sym pair of half-edges, returning the
// half-edge directed from path[0]. Degenerate edges (equal endpoints)
// are rejected by the caller before noding; AddEdgePath does not
// special-case them.
func (g *Graph) AddEdgePath(path []geom.Coordinate) EdgeID {
	g.sorted = false
	p0, p1 := path[0], path[len(path)-1]
	n0, n1 := g.nodeFor(p0), g.nodeFor(p1)
	fwd := EdgeID(len(g.edges))
	bwd := fwd + 1
	reversed := make([]geom.Coordinate, len(path))
	for i, c := range path {
		reversed[len(path)-1-i] = c
	}
	g.edges = append(g.edges,
		halfEdge{Origin: n0, Dest: n1, Sym: bwd, Depth: NewDepth(), Path: path},
		halfEdge{Origin: n1, Dest: n0, Sym: fwd, Depth: NewDepth(), Path: reversed},
	)
	g.nodes[n0].Out = append(g.nodes[n0].Out, fwd)
	g.nodes[n1].Out = append(g.nodes[n1].Out, bwd)
	return fwd
}

// Node returns node n's data.
func (g *Graph) Node(n NodeID) Node { return g.nodes[n] }

// NumNodes returns the number of distinct node coordinates.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumHalfEdges returns the total number of half-edges (always even: a
// Sym pair per AddEdgePath call).
func (g *Graph) NumHalfEdges() int { return len(g.edges) }

// HalfEdge returns half-edge e.
func (g *Graph) HalfEdge(e EdgeID) *halfEdge { return &g.edges[e] }

// Sym returns e's reverse direction.
func (g *Graph) Sym(e EdgeID) EdgeID { return g.edges[e].Sym }

// Next returns the next half-edge clockwise from e's Sym around e's
// destination node -- the standard half-edge "next" pointer used to
// walk a face boundary.
func (g *Graph) Next(e EdgeID) EdgeID { return g.edges[e].Next }

// Prev returns the half-edge whose Next is e.
func (g *Graph) Prev(e EdgeID) EdgeID { return g.edges[e].Prev }

// Label returns e's label.
func (g *Graph) Label(e EdgeID) Label { return g.edges[e].Label }

// Path returns e's full coordinate shape, Origin to Dest inclusive.
func (g *Graph) Path(e EdgeID) []geom.Coordinate { return g.edges[e].Path }

// MidPoint returns a point strictly interior to e's first segment,
// suitable for a side-of-edge point-in-ring test (an edge's label is
// constant along its whole length since nothing else noded through it).
func (g *Graph) MidPoint(e EdgeID) geom.Coordinate {
	path := g.edges[e].Path
	a, b := path[0], path[1]
	return geom.NewXY((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// SetLabel assigns e's label (and keeps e.Sym's label as its Left/Right
// flip, since the two half-edges look at the same edge from opposite
// sides).
func (g *Graph) SetLabel(e EdgeID, lbl Label) {
	g.edges[e].Label = lbl
	g.edges[g.edges[e].Sym].Label = lbl.Flip()
}

// quadrantOf classifies direction (origin -> p) into one of 4 buckets
// using the same sign-of-dx/dy dispatch as
// original_source/src/geomgraph/Quadrant.cpp, but numbered
// SE=0, NE=1, NW=2, SW=3 so that increasing quadrant number means
// increasing angle (a full CCW sweep from due south around to due
// south again), rather than GEOS's own NE=0/SE=1/SW=2/NW=3 numbering
// (which orders by compass label, not by angle, and pairs with a
// different comparison elsewhere) -- needed here since edge ordering
// calls for edges sorted CCW by angle around each node.
func quadrantOf(origin, p geom.Coordinate) int {
	dx, dy := p.X-origin.X, p.Y-origin.Y
	if dy < 0 {
		if dx >= 0 {
			return 0 // SE
		}
		return 3 // SW
	}
	if dx >= 0 {
		return 1 // NE
	}
	return 2 // NW
}

// compareDirection orders the rays origin->a and origin->b by quadrant,
// then (within a quadrant) by the robust orientation of the two points
// relative to origin -- using the "quadrant then
// compareDirection" ordering and original_source's EdgeEnd::compareDirection
// shape (quadrant.h / CGAlgorithms::computeOrientation).
func compareDirection(origin, a, b geom.Coordinate) int {
	if a.Equals2D(b) {
		return 0
	}
	qa, qb := quadrantOf(origin, a), quadrantOf(origin, b)
	if qa != qb {
		return qa - qb
	}
	switch kernel.OrientationIndex(origin, a, b) {
	case kernel.CounterClockwise:
		return -1
	case kernel.Clockwise:
		return 1
	default:
		return 0
	}
}

// SortEdgesAroundNodes orders every node's outgoing half-edges CCW and
// wires each half-edge's Next/Prev pointers so that, for a half-edge e
// arriving at a node, Next(e) is the next outgoing edge clockwise from
// e.Sym -- the standard "rotate to the right of the edge you came in on"
// rule used to trace minimal left-hand faces.
func (g *Graph) SortEdgesAroundNodes() {
	for ni := range g.nodes {
		node := &g.nodes[ni]
		origin := node.Coord
		sort.Slice(node.Out, func(i, j int) bool {
			a := g.edges[node.Out[i]].Path[1]
			b := g.edges[node.Out[j]].Path[1]
			return compareDirection(origin, a, b) < 0
		})
	}
	for ni := range g.nodes {
		out := g.nodes[ni].Out
		for i, e := range out {
			sym := g.edges[e].Sym
			// The half-edge clockwise-adjacent to e in Out is the one
			// immediately before it; arriving via sym and turning
			// maximally right means continuing along that neighbour.
			prevIdx := (i - 1 + len(out)) % len(out)
			next := out[prevIdx]
			g.edges[sym].Next = next
			g.edges[next].Prev = sym
		}
	}
	g.sorted = true
}

// PropagateLabels assigns the locations not directly determined at edge
// extraction time (e.g. for linear inputs) by carrying the known
// left/right labels of one half-edge around each node to its CCW
// neighbours; an edge whose both sides remain
// unset after propagation but whose input participates as area input
// signals an unreachable interior, which is only a topology error if the
// caller previously asserted every edge's area membership is derivable.
func (g *Graph) PropagateLabels(numGeoms int) error {
	if !g.sorted {
		g.SortEdgesAroundNodes()
	}
	for ni := range g.nodes {
		out := g.nodes[ni].Out
		if len(out) == 0 {
			continue
		}
		for gi := 0; gi < numGeoms; gi++ {
			if err := g.propagateAroundNode(out, gi); err != nil {
				return err
			}
		}
	}
	return nil
}

// propagateAroundNode walks the CCW-sorted outgoing edges at a node and
// fills any side left unset by carrying forward the last known side
// value, the standard "side labelling is consistent going around a
// node" rule: the region between an edge and its next CCW neighbour
// lies on the edge's Left and on the neighbour's Right, so the
// neighbour's Right side must equal the previous edge's Left side.
func (g *Graph) propagateAroundNode(out []EdgeID, geomIndex int) error {
	startIdx := -1
	for i, e := range out {
		if g.edges[e].Label.IsSet(geomIndex, Left) || g.edges[e].Label.IsSet(geomIndex, Right) {
			startIdx = i
			break
		}
	}
	if startIdx == -1 {
		return nil
	}
	n := len(out)
	currentSide := g.edges[out[startIdx]].Label.Location(geomIndex, Left)
	for step := 1; step <= n; step++ {
		idx := (startIdx + step) % n
		e := out[idx]
		lbl := &g.edges[e].Label
		if lbl.IsSet(geomIndex, Right) {
			if lbl.Location(geomIndex, Right) != currentSide {
				return gerr.NewTopologyError(
					"inconsistent side labels for geometry %d at node (%g,%g)",
					geomIndex, g.nodes[g.edges[e].Origin].Coord.X, g.nodes[g.edges[e].Origin].Coord.Y,
				)
			}
		} else {
			lbl.SetLocation(geomIndex, Right, currentSide)
		}
		if !lbl.IsSet(geomIndex, Left) {
			lbl.SetLocation(geomIndex, Left, currentSide)
		}
		currentSide = lbl.Location(geomIndex, Left)
	}
	return nil
}

// Degree returns how many half-edges originate at n, used by
// BoundaryNodeRule.
func (g *Graph) Degree(n NodeID) int { return len(g.nodes[n].Out) }

// IsBoundaryNode reports whether n is boundary under rule,
// §4.5's pluggable boundary-node rule.
func (g *Graph) IsBoundaryNode(n NodeID, rule BoundaryNodeRule) bool {
	return rule.IsInBoundary(g.Degree(n))
}

// TraverseFace follows Next pointers starting at start until it returns
// to start, the minimal-left-face walk used by polygonize. Returns nil if the walk
// does not close within the number of half-edges in the graph (a
// malformed or inconsistently-labelled graph).
func (g *Graph) TraverseFace(start EdgeID) []EdgeID {
	ring := []EdgeID{start}
	e := g.edges[start].Next
	limit := len(g.edges) + 1
	for e != start {
		if len(ring) > limit {
			return nil
		}
		ring = append(ring, e)
		e = g.edges[e].Next
	}
	return ring
}
