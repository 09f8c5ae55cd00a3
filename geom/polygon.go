package geom

// Polygon is an exterior LinearRing (the shell) plus zero or more interior
// LinearRings (holes). By canonical orientation the shell is CCW and holes
// are CW; rings are stored in the orientation they were given and are not
// reoriented here.
type Polygon struct {
	base
	shell *LinearRing
	holes []*LinearRing
}

var _ Geometry = (*Polygon)(nil)

// GeometryType implements Geometry.
func (p *Polygon) GeometryType() Type { return TypePolygon }

// IsEmpty implements Geometry.
func (p *Polygon) IsEmpty() bool { return p.shell == nil || p.shell.IsEmpty() }

// Envelope implements Geometry.
func (p *Polygon) Envelope() Envelope {
	if p.IsEmpty() {
		return NullEnvelope()
	}
	return p.shell.Envelope()
}

// Dimension implements Geometry.
func (p *Polygon) Dimension() int { return 2 }

// NumGeometries implements Geometry.
func (p *Polygon) NumGeometries() int { return 1 }

// GeometryN implements Geometry.
func (p *Polygon) GeometryN(n int) Geometry { return p }

// Shell returns the exterior ring.
func (p *Polygon) Shell() *LinearRing { return p.shell }

// NumHoles returns the number of interior rings.
func (p *Polygon) NumHoles() int { return len(p.holes) }

// HoleN returns the n'th interior ring.
func (p *Polygon) HoleN(n int) *LinearRing { return p.holes[n] }

// Holes returns all interior rings.
func (p *Polygon) Holes() []*LinearRing { return p.holes }

// EqualsExact implements Geometry.
func (p *Polygon) EqualsExact(o Geometry, tol float64) bool {
	op, ok := o.(*Polygon)
	if !ok {
		return false
	}
	if p.IsEmpty() || op.IsEmpty() {
		return p.IsEmpty() == op.IsEmpty()
	}
	if len(p.holes) != len(op.holes) {
		return false
	}
	if !p.shell.EqualsExact(op.shell, tol) {
		return false
	}
	for i, h := range p.holes {
		if !h.EqualsExact(op.holes[i], tol) {
			return false
		}
	}
	return true
}
