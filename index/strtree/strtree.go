// Package strtree implements a Sort-Tile-Recursive packed R-tree: build by
// sorting items by X, partitioning into sqrt(N) vertical slices, sorting
// each slice by Y and packing leaves of a fixed capacity, then recursing
// on the leaf envelopes until a single root remains. The tree builds
// lazily on first query and is frozen thereafter --
// grounded on original_source/include/geos/index/strtree/SimpleSTRtree.h
// and TemplateSTRtreeDistance.h (best-first nearest-neighbour search).
package strtree

import (
	"math"
	"sort"

	"github.com/gogeos/geos/geom"
)

// DefaultCapacity is the default leaf/node capacity (K=10).
const DefaultCapacity = 10

type entry[T any] struct {
	env  geom.Envelope
	item T
}

// node is an internal packed-tree node: either a leaf (children nil,
// entries populated) or an interior node (children populated, entries
// nil).
type node[T any] struct {
	env      geom.Envelope
	entries  []entry[T]
	children []*node[T]
}

func (n *node[T]) isLeaf() bool { return n.children == nil }

// Tree is a Sort-Tile-Recursive packed R-tree over items of type T.
type Tree[T any] struct {
	capacity int
	pending  []entry[T]
	root     *node[T]
	built    bool
}

// New returns a Tree with the default node capacity.
func New[T any]() *Tree[T] { return NewWithCapacity[T](DefaultCapacity) }

// NewWithCapacity returns a Tree with the given node capacity (clamped to
// a minimum of 2).
func NewWithCapacity[T any](capacity int) *Tree[T] {
	if capacity < 2 {
		capacity = 2
	}
	return &Tree[T]{capacity: capacity}
}

// Insert adds an item with the given envelope. Insert is only permitted
// before the first Query/Remove/NearestNeighbour call; calling it after
// the tree has been built panics.
func (t *Tree[T]) Insert(env geom.Envelope, item T) {
	if t.built {
		panic("strtree: Insert after tree has been built (queried)")
	}
	t.pending = append(t.pending, entry[T]{env: env, item: item})
}

// Size returns the number of items inserted.
func (t *Tree[T]) Size() int {
	if t.built {
		return t.countLeaves(t.root)
	}
	return len(t.pending)
}

func (t *Tree[T]) countLeaves(n *node[T]) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return len(n.entries)
	}
	total := 0
	for _, c := range n.children {
		total += t.countLeaves(c)
	}
	return total
}

func (t *Tree[T]) build() {
	if t.built {
		return
	}
	t.built = true
	if len(t.pending) == 0 {
		t.root = nil
		return
	}
	leaves := make([]*node[T], 0, (len(t.pending)+t.capacity-1)/t.capacity)
	for _, chunk := range packSTR(t.pending, t.capacity) {
		leaves = append(leaves, &node[T]{env: envelopeOfEntries(chunk), entries: chunk})
	}
	t.root = t.buildLevel(leaves)
	t.pending = nil
}

// buildLevel recursively packs a level of nodes into parents of at most
// capacity children, using the same STR slicing, until one root remains.
func (t *Tree[T]) buildLevel(level []*node[T]) *node[T] {
	if len(level) == 1 {
		return level[0]
	}
	asEntries := make([]entry[*node[T]], len(level))
	for i, n := range level {
		asEntries[i] = entry[*node[T]]{env: n.env, item: n}
	}
	var parents []*node[T]
	for _, chunk := range packSTR(asEntries, t.capacity) {
		children := make([]*node[T], len(chunk))
		env := geom.NullEnvelope()
		for i, e := range chunk {
			children[i] = e.item
			env = env.ExpandByEnvelope(e.env)
		}
		parents = append(parents, &node[T]{env: env, children: children})
	}
	return t.buildLevel(parents)
}

// packSTR implements the Sort-Tile-Recursive partitioning: sort by center
// X, split into ceil(sqrt(n/capacity)) vertical slices, sort each slice by
// center Y, and chunk into groups of at most capacity.
func packSTR[T any](items []entry[T], capacity int) [][]entry[T] {
	n := len(items)
	numLeaves := (n + capacity - 1) / capacity
	numSlices := int(math.Ceil(math.Sqrt(float64(numLeaves))))
	if numSlices < 1 {
		numSlices = 1
	}
	sliceCapacity := numSlices * capacity

	sorted := make([]entry[T], n)
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].env.CenterX() < sorted[j].env.CenterX()
	})

	var chunks [][]entry[T]
	for start := 0; start < n; start += sliceCapacity {
		end := start + sliceCapacity
		if end > n {
			end = n
		}
		slice := sorted[start:end]
		sort.Slice(slice, func(i, j int) bool {
			return slice[i].env.CenterY() < slice[j].env.CenterY()
		})
		for s := 0; s < len(slice); s += capacity {
			e := s + capacity
			if e > len(slice) {
				e = len(slice)
			}
			chunk := make([]entry[T], e-s)
			copy(chunk, slice[s:e])
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

func envelopeOfEntries[T any](entries []entry[T]) geom.Envelope {
	env := geom.NullEnvelope()
	for _, e := range entries {
		env = env.ExpandByEnvelope(e.env)
	}
	return env
}

// Query invokes visit for every inserted item whose envelope intersects
// query. Children are visited in the tree's packed order, which is
// deterministic but otherwise arbitrary.
func (t *Tree[T]) Query(query geom.Envelope, visit func(item T)) {
	t.build()
	if t.root == nil {
		return
	}
	t.queryNode(t.root, query, visit)
}

func (t *Tree[T]) queryNode(n *node[T], query geom.Envelope, visit func(item T)) {
	if !n.env.Intersects(query) {
		return
	}
	if n.isLeaf() {
		for _, e := range n.entries {
			if e.env.Intersects(query) {
				visit(e.item)
			}
		}
		return
	}
	for _, c := range n.children {
		t.queryNode(c, query, visit)
	}
}

// QueryAll is a convenience wrapper returning all matching items as a
// slice instead of invoking a visitor.
func (t *Tree[T]) QueryAll(query geom.Envelope) []T {
	var out []T
	t.Query(query, func(item T) { out = append(out, item) })
	return out
}

// Remove deletes the first item found with the given envelope for which
// equal returns true, without rebalancing the tree. It reports whether an
// item was removed.
func (t *Tree[T]) Remove(env geom.Envelope, equal func(T) bool) bool {
	t.build()
	if t.root == nil {
		return false
	}
	return removeFrom(t.root, env, equal)
}

func removeFrom[T any](n *node[T], env geom.Envelope, equal func(T) bool) bool {
	if !n.env.Intersects(env) {
		return false
	}
	if n.isLeaf() {
		for i, e := range n.entries {
			if equal(e.item) {
				n.entries = append(n.entries[:i], n.entries[i+1:]...)
				return true
			}
		}
		return false
	}
	for _, c := range n.children {
		if removeFrom(c, env, equal) {
			return true
		}
	}
	return false
}
