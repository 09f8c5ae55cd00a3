package kernel

import "github.com/gogeos/geos/geom"

// IsCCW reports whether a ring's coordinate sequence (closed, first ==
// last) is oriented counter-clockwise. It ignores runs of repeated
// points: rather than trust the raw shoelace sum (which can be
// thrown off by duplicate points at the extremum), it locates the highest
// point (max Y, tie-broken by max X) and classifies orientation from its
// two distinct neighbors -- the same "check the turn at the topmost
// vertex" strategy GEOS's Orientation::isCCW uses.
func IsCCW(seq *geom.Sequence) bool {
	n := seq.Len()
	if n < 4 {
		return false
	}
	// A closed ring repeats its first point as its last; work over the
	// n-1 distinct ring vertices.
	m := n - 1

	hiIndex := 0
	for i := 1; i < m; i++ {
		c := seq.Get(i)
		h := seq.Get(hiIndex)
		if c.Y > h.Y || (c.Y == h.Y && c.X > h.X) {
			hiIndex = i
		}
	}

	prevIndex := hiIndex
	for {
		prevIndex = prevIndex - 1
		if prevIndex < 0 {
			prevIndex = m - 1
		}
		if !seq.Get(prevIndex).Equals2D(seq.Get(hiIndex)) || prevIndex == hiIndex {
			break
		}
	}

	nextIndex := hiIndex
	for {
		nextIndex = (nextIndex + 1) % m
		if !seq.Get(nextIndex).Equals2D(seq.Get(hiIndex)) || nextIndex == hiIndex {
			break
		}
	}

	prev := seq.Get(prevIndex)
	hi := seq.Get(hiIndex)
	next := seq.Get(nextIndex)

	if prev.Equals2D(hi) || next.Equals2D(hi) || prev.Equals2D(next) {
		return false
	}

	disc := OrientationIndex(prev, hi, next)

	// If disc is Collinear and the three points are distinct, the three
	// are collinear so we check if the points are ordered CCW or CW by
	// comparing whether next is to the left or right of prev when both
	// are projected relative to hi -- equivalent to checking whether
	// prev.x > next.x (GEOS's "flat top" tie-break).
	if disc == Collinear {
		return prev.X > next.X
	}
	return disc == CounterClockwise
}
