package geom

// Point is a geometry with zero or one coordinate.
type Point struct {
	base
	seq *Sequence
}

var _ Geometry = (*Point)(nil)

// GeometryType implements Geometry.
func (p *Point) GeometryType() Type { return TypePoint }

// IsEmpty implements Geometry.
func (p *Point) IsEmpty() bool { return p.seq.Len() == 0 }

// Envelope implements Geometry.
func (p *Point) Envelope() Envelope { return EnvelopeOfSequence(p.seq) }

// Dimension implements Geometry.
func (p *Point) Dimension() int { return 0 }

// NumGeometries implements Geometry.
func (p *Point) NumGeometries() int { return 1 }

// GeometryN implements Geometry.
func (p *Point) GeometryN(n int) Geometry { return p }

// Coordinate returns the point's single coordinate. Calling this on an
// empty point panics, matching the "ask for what isn't there" contract
// used throughout the pack's geometry accessors.
func (p *Point) Coordinate() Coordinate { return p.seq.Get(0) }

// Sequence returns the point's backing coordinate sequence (length 0 or 1).
func (p *Point) Sequence() *Sequence { return p.seq }

// X returns the point's X ordinate.
func (p *Point) X() float64 { return p.seq.GetX(0) }

// Y returns the point's Y ordinate.
func (p *Point) Y() float64 { return p.seq.GetY(0) }

// EqualsExact implements Geometry.
func (p *Point) EqualsExact(o Geometry, tol float64) bool {
	op, ok := o.(*Point)
	if !ok {
		return false
	}
	if p.IsEmpty() || op.IsEmpty() {
		return p.IsEmpty() == op.IsEmpty()
	}
	return seqEqualsExact(p.seq, op.seq, tol)
}
