package geom

// MultiPoint is a homogeneous collection of Points.
type MultiPoint struct {
	base
	points []*Point
}

var _ Geometry = (*MultiPoint)(nil)

func (m *MultiPoint) GeometryType() Type      { return TypeMultiPoint }
func (m *MultiPoint) IsEmpty() bool           { return allEmpty(m.points) }
func (m *MultiPoint) Dimension() int          { return 0 }
func (m *MultiPoint) NumGeometries() int      { return len(m.points) }
func (m *MultiPoint) GeometryN(n int) Geometry { return m.points[n] }
func (m *MultiPoint) Points() []*Point        { return m.points }

func (m *MultiPoint) Envelope() Envelope {
	env := NullEnvelope()
	for _, p := range m.points {
		env = env.ExpandByEnvelope(p.Envelope())
	}
	return env
}

func (m *MultiPoint) EqualsExact(o Geometry, tol float64) bool {
	om, ok := o.(*MultiPoint)
	if !ok || len(m.points) != len(om.points) {
		return false
	}
	for i, p := range m.points {
		if !p.EqualsExact(om.points[i], tol) {
			return false
		}
	}
	return true
}

// MultiLineString is a homogeneous collection of LineStrings.
type MultiLineString struct {
	base
	lines []*LineString
}

var _ Geometry = (*MultiLineString)(nil)

func (m *MultiLineString) GeometryType() Type      { return TypeMultiLineString }
func (m *MultiLineString) IsEmpty() bool           { return allEmpty(m.lines) }
func (m *MultiLineString) Dimension() int          { return 1 }
func (m *MultiLineString) NumGeometries() int      { return len(m.lines) }
func (m *MultiLineString) GeometryN(n int) Geometry { return m.lines[n] }
func (m *MultiLineString) LineStrings() []*LineString { return m.lines }

func (m *MultiLineString) Envelope() Envelope {
	env := NullEnvelope()
	for _, l := range m.lines {
		env = env.ExpandByEnvelope(l.Envelope())
	}
	return env
}

func (m *MultiLineString) EqualsExact(o Geometry, tol float64) bool {
	om, ok := o.(*MultiLineString)
	if !ok || len(m.lines) != len(om.lines) {
		return false
	}
	for i, l := range m.lines {
		if !l.EqualsExact(om.lines[i], tol) {
			return false
		}
	}
	return true
}

// MultiPolygon is a homogeneous collection of Polygons.
type MultiPolygon struct {
	base
	polygons []*Polygon
}

var _ Geometry = (*MultiPolygon)(nil)

func (m *MultiPolygon) GeometryType() Type      { return TypeMultiPolygon }
func (m *MultiPolygon) IsEmpty() bool           { return allEmpty(m.polygons) }
func (m *MultiPolygon) Dimension() int          { return 2 }
func (m *MultiPolygon) NumGeometries() int      { return len(m.polygons) }
func (m *MultiPolygon) GeometryN(n int) Geometry { return m.polygons[n] }
func (m *MultiPolygon) Polygons() []*Polygon    { return m.polygons }

func (m *MultiPolygon) Envelope() Envelope {
	env := NullEnvelope()
	for _, p := range m.polygons {
		env = env.ExpandByEnvelope(p.Envelope())
	}
	return env
}

func (m *MultiPolygon) EqualsExact(o Geometry, tol float64) bool {
	om, ok := o.(*MultiPolygon)
	if !ok || len(m.polygons) != len(om.polygons) {
		return false
	}
	for i, p := range m.polygons {
		if !p.EqualsExact(om.polygons[i], tol) {
			return false
		}
	}
	return true
}

// GeometryCollection is a heterogeneous collection of geometries.
type GeometryCollection struct {
	base
	geoms []Geometry
}

var _ Geometry = (*GeometryCollection)(nil)

func (g *GeometryCollection) GeometryType() Type      { return TypeGeometryCollection }
func (g *GeometryCollection) NumGeometries() int      { return len(g.geoms) }
func (g *GeometryCollection) GeometryN(n int) Geometry { return g.geoms[n] }
func (g *GeometryCollection) Geometries() []Geometry  { return g.geoms }

func (g *GeometryCollection) IsEmpty() bool {
	for _, c := range g.geoms {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *GeometryCollection) Dimension() int {
	d := -1
	for _, c := range g.geoms {
		if c.Dimension() > d {
			d = c.Dimension()
		}
	}
	if d < 0 {
		return 0
	}
	return d
}

func (g *GeometryCollection) Envelope() Envelope {
	env := NullEnvelope()
	for _, c := range g.geoms {
		env = env.ExpandByEnvelope(c.Envelope())
	}
	return env
}

func (g *GeometryCollection) EqualsExact(o Geometry, tol float64) bool {
	og, ok := o.(*GeometryCollection)
	if !ok || len(g.geoms) != len(og.geoms) {
		return false
	}
	for i, c := range g.geoms {
		if !c.EqualsExact(og.geoms[i], tol) {
			return false
		}
	}
	return true
}

type emptier interface{ IsEmpty() bool }

func allEmpty[T emptier](items []T) bool {
	for _, it := range items {
		if !it.IsEmpty() {
			return false
		}
	}
	return true
}
