package geom

// LineString is a curve of zero, or at least two, coordinates. It is not
// necessarily simple (it may self-intersect).
type LineString struct {
	base
	seq *Sequence
}

var _ Geometry = (*LineString)(nil)

// GeometryType implements Geometry.
func (l *LineString) GeometryType() Type { return TypeLineString }

// IsEmpty implements Geometry.
func (l *LineString) IsEmpty() bool { return l.seq.Len() == 0 }

// Envelope implements Geometry.
func (l *LineString) Envelope() Envelope { return EnvelopeOfSequence(l.seq) }

// Dimension implements Geometry.
func (l *LineString) Dimension() int { return 1 }

// NumGeometries implements Geometry.
func (l *LineString) NumGeometries() int { return 1 }

// GeometryN implements Geometry.
func (l *LineString) GeometryN(n int) Geometry { return l }

// Sequence returns the linestring's backing coordinate sequence.
func (l *LineString) Sequence() *Sequence { return l.seq }

// NumPoints returns the number of coordinates.
func (l *LineString) NumPoints() int { return l.seq.Len() }

// PointN returns the n'th vertex's coordinate.
func (l *LineString) PointN(n int) Coordinate { return l.seq.Get(n) }

// IsClosed reports whether the first and last vertices coincide.
func (l *LineString) IsClosed() bool { return l.seq.IsClosed() }

// IsRing reports whether the linestring is closed and has at least 4
// points (the minimum to be a non-degenerate ring).
func (l *LineString) IsRing() bool { return l.IsClosed() && l.seq.Len() >= 4 }

// Reverse returns a new LineString with vertex order reversed.
func (l *LineString) Reverse() *LineString {
	return &LineString{base: l.base, seq: l.seq.Reversed()}
}

// EqualsExact implements Geometry.
func (l *LineString) EqualsExact(o Geometry, tol float64) bool {
	ol, ok := o.(*LineString)
	if !ok {
		return false
	}
	return seqEqualsExact(l.seq, ol.seq, tol)
}

// LinearRing is a closed, simple LineString with at least 4 coordinates
// (first == last). Simplicity is not verified at construction (that is an
// expensive global property); the factory only enforces closure and the
// minimum point count.
type LinearRing struct {
	base
	seq *Sequence
}

var _ Geometry = (*LinearRing)(nil)

// GeometryType implements Geometry.
func (r *LinearRing) GeometryType() Type { return TypeLinearRing }

// IsEmpty implements Geometry.
func (r *LinearRing) IsEmpty() bool { return r.seq.Len() == 0 }

// Envelope implements Geometry.
func (r *LinearRing) Envelope() Envelope { return EnvelopeOfSequence(r.seq) }

// Dimension implements Geometry.
func (r *LinearRing) Dimension() int { return 1 }

// NumGeometries implements Geometry.
func (r *LinearRing) NumGeometries() int { return 1 }

// GeometryN implements Geometry.
func (r *LinearRing) GeometryN(n int) Geometry { return r }

// Sequence returns the ring's backing coordinate sequence.
func (r *LinearRing) Sequence() *Sequence { return r.seq }

// NumPoints returns the number of coordinates, including the duplicated
// closing vertex.
func (r *LinearRing) NumPoints() int { return r.seq.Len() }

// AsLineString returns a LineString view sharing the same coordinates.
func (r *LinearRing) AsLineString() *LineString {
	return &LineString{base: r.base, seq: r.seq}
}

// Reverse returns a new LinearRing with vertex order (and therefore
// orientation) reversed.
func (r *LinearRing) Reverse() *LinearRing {
	return &LinearRing{base: r.base, seq: r.seq.Reversed()}
}

// EqualsExact implements Geometry.
func (r *LinearRing) EqualsExact(o Geometry, tol float64) bool {
	or, ok := o.(*LinearRing)
	if !ok {
		return false
	}
	return seqEqualsExact(r.seq, or.seq, tol)
}
