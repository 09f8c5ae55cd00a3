// Package quadtree implements an MX-CIF quadtree partitioned about the
// origin: Root dispatches to NE/NW/SE/SW subtrees based on the sign of an
// envelope's coordinates, each subtree growing upward (doubling) when an
// inserted item's envelope escapes its current extent, and subdividing
// downward to a minimum quadrant size (minExtent) below which
// zero/near-zero-extent envelopes are kept at the smallest existing quad
// rather than recursing forever.
//
// Grounded on original_source/source/index/quadtree/QuadTreeRoot.cpp (the
// origin-centered quadrant dispatch and insertContained/minExtent
// handling) and include/geos/index/quadtree/Quadtree.h.
package quadtree

import "github.com/gogeos/geos/geom"

// quadrant identifies one of the four quadrants around a center point.
type quadrant int

const (
	quadNE quadrant = iota
	quadNW
	quadSW
	quadSE
)

// subnodeIndex returns the quadrant of env relative to center, or -1 if
// env straddles the center's X or Y axis (and so cannot be fully
// contained by any single quadrant).
func subnodeIndex(env geom.Envelope, centerX, centerY float64) int {
	containsEast := env.MinX >= centerX
	containsWest := env.MaxX <= centerX
	if !containsEast && !containsWest {
		return -1
	}
	containsNorth := env.MinY >= centerY
	containsSouth := env.MaxY <= centerY
	if !containsNorth && !containsSouth {
		return -1
	}
	switch {
	case containsEast && containsNorth:
		return int(quadNE)
	case containsWest && containsNorth:
		return int(quadNW)
	case containsWest && containsSouth:
		return int(quadSW)
	default:
		return int(quadSE)
	}
}

type entry[T any] struct {
	env  geom.Envelope
	item T
}

// node is a single quadrant: env is its full extent, items holds entries
// that do not fit cleanly into one child quadrant (including every entry
// once the quadrant has shrunk below minExtent).
type node[T any] struct {
	env      geom.Envelope
	items    []entry[T]
	children [4]*node[T]
}

func newNode[T any](env geom.Envelope) *node[T] {
	return &node[T]{env: env}
}

func (n *node[T]) centerX() float64 { return n.env.CenterX() }
func (n *node[T]) centerY() float64 { return n.env.CenterY() }

// quadrantEnvelope returns the envelope of the given quadrant of n.
func quadrantEnvelope[T any](n *node[T], q quadrant) geom.Envelope {
	cx, cy := n.centerX(), n.centerY()
	switch q {
	case quadNE:
		return geom.NewEnvelope(cx, n.env.MaxX, cy, n.env.MaxY)
	case quadNW:
		return geom.NewEnvelope(n.env.MinX, cx, cy, n.env.MaxY)
	case quadSW:
		return geom.NewEnvelope(n.env.MinX, cx, n.env.MinY, cy)
	default:
		return geom.NewEnvelope(cx, n.env.MaxX, n.env.MinY, cy)
	}
}

// Tree is an MX-CIF quadtree over items of type T.
type Tree[T any] struct {
	// minExtent is the smallest quadrant side length the tree will
	// subdivide to; zero/near-zero envelopes are padded to this size
	// rather than recursing indefinitely.
	minExtent float64
	root      [4]*node[T] // one subtree per quadrant around the origin
	straddles []entry[T]  // items whose envelope straddles an axis
	size      int
}

// New returns an empty quadtree with the given minimum extent (the
// smallest quadrant side the tree will subdivide to). A minExtent of 0
// uses a small positive default.
func New[T any](minExtent float64) *Tree[T] {
	if minExtent <= 0 {
		minExtent = 1e-9
	}
	return &Tree[T]{minExtent: minExtent}
}

func padIfDegenerate(env geom.Envelope, minExtent float64) geom.Envelope {
	w, h := env.Width(), env.Height()
	if w > 0 && h > 0 {
		return env
	}
	cx, cy := env.CenterX(), env.CenterY()
	half := minExtent / 2
	minX, maxX := env.MinX, env.MaxX
	if w == 0 {
		minX, maxX = cx-half, cx+half
	}
	minY, maxY := env.MinY, env.MaxY
	if h == 0 {
		minY, maxY = cy-half, cy+half
	}
	return geom.NewEnvelope(minX, maxX, minY, maxY)
}

// Insert adds an item with the given envelope.
func (t *Tree[T]) Insert(env geom.Envelope, item T) {
	t.size++
	env = padIfDegenerate(env, t.minExtent)
	idx := subnodeIndex(env, 0, 0)
	if idx == -1 {
		t.straddles = append(t.straddles, entry[T]{env: env, item: item})
		return
	}
	q := quadrant(idx)
	if t.root[q] == nil {
		t.root[q] = newNode[T](initialQuadrantEnvelope(q, env, t.minExtent))
	}
	for !t.root[q].env.Contains(env) {
		t.root[q] = growNode(t.root[q], env, q)
	}
	insertContained(t.root[q], env, item, t.minExtent)
}

// initialQuadrantEnvelope returns a starting envelope for the given
// quadrant large enough to plausibly contain env.
func initialQuadrantEnvelope(q quadrant, env geom.Envelope, minExtent float64) geom.Envelope {
	size := minExtent
	for size < env.Width() || size < env.Height() {
		size *= 2
	}
	switch q {
	case quadNE:
		return geom.NewEnvelope(0, size, 0, size)
	case quadNW:
		return geom.NewEnvelope(-size, 0, 0, size)
	case quadSW:
		return geom.NewEnvelope(-size, 0, -size, 0)
	default:
		return geom.NewEnvelope(0, size, -size, 0)
	}
}

// oppositeQuadrant returns the quadrant diagonally opposite q.
func oppositeQuadrant(q quadrant) quadrant {
	switch q {
	case quadNE:
		return quadSW
	case quadNW:
		return quadSE
	case quadSW:
		return quadNE
	default:
		return quadNW
	}
}

// growNode doubles n's extent away from the origin (the only direction
// consistent with quadrant q always touching the origin) until it is a
// candidate to contain env; returns the new, larger node with n attached
// as its corresponding child.
func growNode[T any](n *node[T], env geom.Envelope, q quadrant) *node[T] {
	w := n.env.Width() * 2
	h := n.env.Height() * 2
	var bigger geom.Envelope
	switch q {
	case quadNE:
		bigger = geom.NewEnvelope(0, w, 0, h)
	case quadNW:
		bigger = geom.NewEnvelope(-w, 0, 0, h)
	case quadSW:
		bigger = geom.NewEnvelope(-w, 0, -h, 0)
	default:
		bigger = geom.NewEnvelope(0, w, -h, 0)
	}
	grown := newNode[T](bigger)
	// n occupies the half of bigger nearest the origin in both axes,
	// which -- relative to bigger's own center -- is the quadrant
	// diagonally opposite the direction bigger grew in.
	grown.children[oppositeQuadrant(q)] = n
	if !bigger.Contains(env) {
		// Keep growing; recursion terminates because each step doubles
		// the extent while env's size is fixed.
		return growNode(grown, env, q)
	}
	return grown
}

func insertContained[T any](n *node[T], env geom.Envelope, item T, minExtent float64) {
	for {
		if n.env.Width() <= minExtent || n.env.Height() <= minExtent {
			n.items = append(n.items, entry[T]{env: env, item: item})
			return
		}
		idx := subnodeIndex(env, n.centerX(), n.centerY())
		if idx == -1 {
			n.items = append(n.items, entry[T]{env: env, item: item})
			return
		}
		q := quadrant(idx)
		if n.children[q] == nil {
			n.children[q] = newNode[T](quadrantEnvelope(n, q))
		}
		n = n.children[q]
	}
}

// Query invokes visit for every item whose envelope intersects query.
func (t *Tree[T]) Query(query geom.Envelope, visit func(item T)) {
	for _, e := range t.straddles {
		if e.env.Intersects(query) {
			visit(e.item)
		}
	}
	for _, root := range t.root {
		queryNode(root, query, visit)
	}
}

func queryNode[T any](n *node[T], query geom.Envelope, visit func(item T)) {
	if n == nil || !n.env.Intersects(query) {
		return
	}
	for _, e := range n.items {
		if e.env.Intersects(query) {
			visit(e.item)
		}
	}
	for _, c := range n.children {
		queryNode(c, query, visit)
	}
}

// QueryAll returns every item intersecting query as a slice.
func (t *Tree[T]) QueryAll(query geom.Envelope) []T {
	var out []T
	t.Query(query, func(item T) { out = append(out, item) })
	return out
}

// Size returns the number of items inserted.
func (t *Tree[T]) Size() int { return t.size }

// Depth returns the maximum node depth across all four root quadrants.
func (t *Tree[T]) Depth() int {
	max := 0
	for _, root := range t.root {
		if d := depthOf(root); d > max {
			max = d
		}
	}
	return max
}

func depthOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.children {
		if d := depthOf(c); d > max {
			max = d
		}
	}
	return 1 + max
}

// Remove deletes the first item found with the given envelope for which
// equal returns true.
func (t *Tree[T]) Remove(env geom.Envelope, equal func(T) bool) bool {
	for i, e := range t.straddles {
		if equal(e.item) {
			t.straddles = append(t.straddles[:i], t.straddles[i+1:]...)
			t.size--
			return true
		}
	}
	for _, root := range t.root {
		if removeFrom(root, env, equal) {
			t.size--
			return true
		}
	}
	return false
}

func removeFrom[T any](n *node[T], env geom.Envelope, equal func(T) bool) bool {
	if n == nil || !n.env.Intersects(env) {
		return false
	}
	for i, e := range n.items {
		if equal(e.item) {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	for _, c := range n.children {
		if removeFrom(c, env, equal) {
			return true
		}
	}
	return false
}
