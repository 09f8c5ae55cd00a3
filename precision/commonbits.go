// Package precision implements the precision-reduction helpers used to
// make robustness-sensitive operations (overlay, buffer) safer: common
// bit removal, which shifts a whole geometry's coordinates to use fewer
// significant mantissa bits before a risky computation, and a hot-pixel
// index used by snap-rounding.
//
// Grounded on original_source/src/precision/CommonBitsOp.cpp (the
// remove-compute-restore workflow) and the classic JTS CommonBits
// bit-manipulation algorithm it wraps (same computation, re-derived here
// against Go's math.Float64bits since no JTS/GEOS source for the
// low-level CommonBits class itself was present in the reference pack).
package precision

import (
	"math"

	"github.com/gogeos/geos/geom"
)

// commonBits accumulates the common leading mantissa bits shared by every
// double added to it, following the classic algorithm: two values share
// no useful common bits unless their sign+exponent fields match exactly,
// and among values that do match, the common bits are whatever mantissa
// bits agree from the most significant downward.
type commonBits struct {
	isFirst    bool
	commonBits uint64
	signExp    uint64
}

func newCommonBits() *commonBits {
	return &commonBits{isFirst: true}
}

func signExpBits(bits uint64) uint64 { return bits >> 52 }

// numCommonMostSigMantissaBits returns how many of the top mantissa bits
// (bit 51 downward) agree between a and b.
func numCommonMostSigMantissaBits(a, b uint64) int {
	count := 0
	for i := 51; i >= 0; i-- {
		if getBit(a, i) != getBit(b, i) {
			return count
		}
		count++
	}
	return 52
}

func getBit(bits uint64, i int) uint64 {
	return (bits >> uint(i)) & 1
}

// zeroLowerBits clears the bottom nBits bits of bits.
func zeroLowerBits(bits uint64, nBits int) uint64 {
	if nBits <= 0 {
		return bits
	}
	if nBits >= 64 {
		return 0
	}
	mask := ^uint64(0) << uint(nBits)
	return bits & mask
}

func (c *commonBits) add(num float64) {
	bits := math.Float64bits(num)
	if c.isFirst {
		c.commonBits = bits
		c.signExp = signExpBits(bits)
		c.isFirst = false
		return
	}
	numSignExp := signExpBits(bits)
	if numSignExp != c.signExp {
		c.commonBits = 0
		return
	}
	commonCount := numCommonMostSigMantissaBits(c.commonBits, bits)
	c.commonBits = zeroLowerBits(c.commonBits, 64-(12+commonCount))
}

func (c *commonBits) common() float64 {
	return math.Float64frombits(c.commonBits)
}

// CommonBitsRemover computes, per-axis, the leading bits common to every
// X and every Y ordinate across a set of geometries, so that a
// translated copy with those common bits zeroed can be handed to a
// robustness-sensitive operation and the result translated back
// afterwards.
type CommonBitsRemover struct {
	x, y *commonBits
}

// NewCommonBitsRemover returns an empty remover.
func NewCommonBitsRemover() *CommonBitsRemover {
	return &CommonBitsRemover{x: newCommonBits(), y: newCommonBits()}
}

// Add folds every coordinate of seq into the running common-bits
// computation.
func (r *CommonBitsRemover) Add(seq *geom.Sequence) {
	for i := 0; i < seq.Len(); i++ {
		c := seq.Get(i)
		r.x.add(c.X)
		r.y.add(c.Y)
	}
}

// CommonCoordinate returns the common coordinate computed so far: the
// point that, subtracted from every added coordinate, removes their
// shared leading bits.
func (r *CommonBitsRemover) CommonCoordinate() geom.Coordinate {
	return geom.NewXY(r.x.common(), r.y.common())
}

// RemoveCommonBits returns a copy of seq with the common coordinate
// subtracted from every point.
func (r *CommonBitsRemover) RemoveCommonBits(seq *geom.Sequence) *geom.Sequence {
	common := r.CommonCoordinate()
	out := seq.Clone()
	out.FilterApply(func(c geom.Coordinate) geom.Coordinate {
		return geom.NewXY(c.X-common.X, c.Y-common.Y)
	})
	return out
}

// AddCommonBits returns a copy of seq with the common coordinate added
// back, the inverse of RemoveCommonBits.
func (r *CommonBitsRemover) AddCommonBits(seq *geom.Sequence) *geom.Sequence {
	common := r.CommonCoordinate()
	out := seq.Clone()
	out.FilterApply(func(c geom.Coordinate) geom.Coordinate {
		return geom.NewXY(c.X+common.X, c.Y+common.Y)
	})
	return out
}
