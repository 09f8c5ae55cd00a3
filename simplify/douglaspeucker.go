// Package simplify reduces the vertex count of a geometry's coordinate
// sequences, grounded on
// original_source/src/simplify/DouglasPeuckerSimplifier.cpp's
// transformer shape: flatten every geometry variant down to its
// coordinate sequences, simplify each sequence independently, then
// rebuild through the same geometry type.
package simplify

import (
	"math"

	"github.com/gogeos/geos/geom"
)

// DouglasPeucker reduces seq to a subsequence such that every
// dropped point lies within tolerance of the line connecting its
// surviving neighbours, using the classic recursive max-deviation split.
// The first and last points are always kept.
func DouglasPeucker(seq *geom.Sequence, tolerance float64) *geom.Sequence {
	n := seq.Len()
	if n < 3 {
		return seq.Clone()
	}
	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true
	dpSimplifySection(seq, 0, n-1, tolerance, keep)

	out := make([]geom.Coordinate, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, seq.Get(i))
		}
	}
	result, err := geom.NewSequenceShape(out, seq.Shape())
	if err != nil {
		// out is built entirely from seq's own (already-valid) coordinates,
		// so NewSequenceShape cannot fail here.
		panic(err)
	}
	return result
}

func dpSimplifySection(seq *geom.Sequence, lo, hi int, tolerance float64, keep []bool) {
	if hi <= lo+1 {
		return
	}
	a, b := seq.Get(lo), seq.Get(hi)
	farthest := -1
	farthestDist := tolerance
	for i := lo + 1; i < hi; i++ {
		d := perpendicularDistance(seq.Get(i), a, b)
		if d > farthestDist {
			farthestDist = d
			farthest = i
		}
	}
	if farthest < 0 {
		return
	}
	keep[farthest] = true
	dpSimplifySection(seq, lo, farthest, tolerance, keep)
	dpSimplifySection(seq, farthest, hi, tolerance, keep)
}

// perpendicularDistance returns the distance from p to the infinite line
// through a and b, or the distance to a when a equals b.
func perpendicularDistance(p, a, b geom.Coordinate) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Distance(a)
	}
	num := dy*p.X - dx*p.Y + b.X*a.Y - b.Y*a.X
	return math.Abs(num) / math.Sqrt(lenSq)
}
