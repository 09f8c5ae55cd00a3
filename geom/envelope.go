package geom

import "math"

// Envelope is a Cartesian bounding box. A "null" envelope (IsNull true)
// represents the envelope of an empty geometry and contains nothing.
type Envelope struct {
	MinX, MaxX, MinY, MaxY float64
	null                   bool
}

// NewEnvelope builds an envelope from two corner ordinates, normalizing
// min/max order.
func NewEnvelope(x1, x2, y1, y2 float64) Envelope {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Envelope{MinX: x1, MaxX: x2, MinY: y1, MaxY: y2}
}

// NullEnvelope returns the envelope of an empty geometry.
func NullEnvelope() Envelope {
	return Envelope{null: true}
}

// IsNull reports whether this is the empty envelope.
func (e Envelope) IsNull() bool { return e.null }

// Width returns MaxX-MinX, or 0 for a null envelope.
func (e Envelope) Width() float64 {
	if e.null {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns MaxY-MinY, or 0 for a null envelope.
func (e Envelope) Height() float64 {
	if e.null {
		return 0
	}
	return e.MaxY - e.MinY
}

// ExpandByPoint returns an envelope expanded to include (x, y).
func (e Envelope) ExpandByPoint(x, y float64) Envelope {
	if e.null {
		return Envelope{MinX: x, MaxX: x, MinY: y, MaxY: y}
	}
	return Envelope{
		MinX: math.Min(e.MinX, x), MaxX: math.Max(e.MaxX, x),
		MinY: math.Min(e.MinY, y), MaxY: math.Max(e.MaxY, y),
	}
}

// ExpandByEnvelope returns the union of two envelopes.
func (e Envelope) ExpandByEnvelope(o Envelope) Envelope {
	if o.null {
		return e
	}
	if e.null {
		return o
	}
	return Envelope{
		MinX: math.Min(e.MinX, o.MinX), MaxX: math.Max(e.MaxX, o.MaxX),
		MinY: math.Min(e.MinY, o.MinY), MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// ExpandBy returns the envelope padded outward by distance d on all sides.
func (e Envelope) ExpandBy(d float64) Envelope {
	if e.null {
		return e
	}
	return Envelope{MinX: e.MinX - d, MaxX: e.MaxX + d, MinY: e.MinY - d, MaxY: e.MaxY + d}
}

// Intersects reports whether two envelopes share at least one point.
func (e Envelope) Intersects(o Envelope) bool {
	if e.null || o.null {
		return false
	}
	return !(o.MinX > e.MaxX || o.MaxX < e.MinX || o.MinY > e.MaxY || o.MaxY < e.MinY)
}

// Intersection returns the overlapping envelope, or a null envelope if the
// two do not intersect.
func (e Envelope) Intersection(o Envelope) Envelope {
	if !e.Intersects(o) {
		return NullEnvelope()
	}
	return Envelope{
		MinX: math.Max(e.MinX, o.MinX), MaxX: math.Min(e.MaxX, o.MaxX),
		MinY: math.Max(e.MinY, o.MinY), MaxY: math.Min(e.MaxY, o.MaxY),
	}
}

// Contains reports whether o is entirely within e (boundary-inclusive).
func (e Envelope) Contains(o Envelope) bool {
	if e.null {
		return false
	}
	if o.null {
		return true
	}
	return o.MinX >= e.MinX && o.MaxX <= e.MaxX && o.MinY >= e.MinY && o.MaxY <= e.MaxY
}

// ContainsPoint reports whether (x, y) lies within e, inclusive of the
// boundary.
func (e Envelope) ContainsPoint(x, y float64) bool {
	if e.null {
		return false
	}
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}

// Equals reports exact equality of the four ordinates (or both null).
func (e Envelope) Equals(o Envelope) bool {
	if e.null || o.null {
		return e.null == o.null
	}
	return e.MinX == o.MinX && e.MaxX == o.MaxX && e.MinY == o.MinY && e.MaxY == o.MaxY
}

// Area returns the envelope's area, or 0 if null.
func (e Envelope) Area() float64 {
	if e.null {
		return 0
	}
	return e.Width() * e.Height()
}

// CenterX returns the envelope's horizontal midpoint.
func (e Envelope) CenterX() float64 { return (e.MinX + e.MaxX) / 2 }

// CenterY returns the envelope's vertical midpoint.
func (e Envelope) CenterY() float64 { return (e.MinY + e.MaxY) / 2 }

// EnvelopeOfSequence computes the bounding envelope of a Sequence's
// coordinates.
func EnvelopeOfSequence(s *Sequence) Envelope {
	if s.Len() == 0 {
		return NullEnvelope()
	}
	env := NullEnvelope()
	for i := 0; i < s.Len(); i++ {
		c := s.Get(i)
		env = env.ExpandByPoint(c.X, c.Y)
	}
	return env
}
