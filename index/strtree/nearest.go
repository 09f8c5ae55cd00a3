package strtree

import (
	"container/heap"
	"math"

	"github.com/gogeos/geos/geom"
)

// DistanceFunc computes the distance between two items of the tree's item
// type, used by NearestNeighbour to refine candidates found via the
// envelope lower bound.
type DistanceFunc[T any] func(a, b T) float64

// envelopeDistance is the minimum possible distance between two
// envelopes -- zero if they intersect.
func envelopeDistance(a, b geom.Envelope) float64 {
	if a.Intersects(b) {
		return 0
	}
	dx := 0.0
	if b.MinX > a.MaxX {
		dx = b.MinX - a.MaxX
	} else if a.MinX > b.MaxX {
		dx = a.MinX - b.MaxX
	}
	dy := 0.0
	if b.MinY > a.MaxY {
		dy = b.MinY - a.MaxY
	} else if a.MinY > b.MaxY {
		dy = a.MinY - b.MaxY
	}
	return math.Hypot(dx, dy)
}

type searchPair[T any] struct {
	env      geom.Envelope
	dist     float64
	node     *node[T]
	leafItem *T
}

type pairQueue[T any] []searchPair[T]

func (q pairQueue[T]) Len() int            { return len(q) }
func (q pairQueue[T]) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q pairQueue[T]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pairQueue[T]) Push(x any)         { *q = append(*q, x.(searchPair[T])) }
func (q *pairQueue[T]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// NearestNeighbour returns the item in the tree closest to query (by
// distFn) and its distance, using a best-first priority-queue search
// keyed by each candidate's envelope-distance lower bound. It reports
// false if the tree is empty.
func (t *Tree[T]) NearestNeighbour(query geom.Envelope, distFn DistanceFunc[T], queryItem T) (T, float64, bool) {
	return t.NearestWithin(query, distFn, queryItem, math.Inf(1))
}

// NearestWithin is NearestNeighbour with an additional maxDistance
// pruning bound: candidates whose envelope lower bound exceeds
// maxDistance are never expanded.
func (t *Tree[T]) NearestWithin(query geom.Envelope, distFn DistanceFunc[T], queryItem T, maxDistance float64) (T, float64, bool) {
	t.build()
	var zero T
	if t.root == nil {
		return zero, 0, false
	}

	pq := &pairQueue[T]{}
	heap.Init(pq)
	heap.Push(pq, searchPair[T]{env: t.root.env, dist: envelopeDistance(t.root.env, query), node: t.root})

	best := zero
	bestDist := math.Inf(1)
	found := false

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(searchPair[T])
		if cur.dist > maxDistance {
			break
		}
		if found && cur.dist >= bestDist {
			break
		}
		if cur.leafItem != nil {
			d := distFn(*cur.leafItem, queryItem)
			if d < bestDist {
				bestDist = d
				best = *cur.leafItem
				found = true
			}
			continue
		}
		n := cur.node
		if n.isLeaf() {
			for _, e := range n.entries {
				item := e.item
				heap.Push(pq, searchPair[T]{env: e.env, dist: envelopeDistance(e.env, query), leafItem: &item})
			}
			continue
		}
		for _, c := range n.children {
			heap.Push(pq, searchPair[T]{env: c.env, dist: envelopeDistance(c.env, query), node: c})
		}
	}
	if !found || bestDist > maxDistance {
		return zero, 0, false
	}
	return best, bestDist, true
}
