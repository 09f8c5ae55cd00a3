package geom

import "github.com/gogeos/geos/gerr"

// Factory constructs geometries sharing one precision model and SRID,
// validating each variant's invariants at construction time. A Factory is
// not safe for concurrent use building distinct geometries from separate
// goroutines; give each goroutine its own Factory.
type Factory struct {
	pm   *PrecisionModel
	srid int
}

// NewFactory builds a Factory with the given precision model and SRID.
// A nil precision model defaults to FLOATING.
func NewFactory(pm *PrecisionModel, srid int) *Factory {
	if pm == nil {
		pm = NewFloatingPrecisionModel()
	}
	return &Factory{pm: pm, srid: srid}
}

// PrecisionModel returns the factory's precision model.
func (f *Factory) PrecisionModel() *PrecisionModel { return f.pm }

// SRID returns the factory's spatial reference identifier.
func (f *Factory) SRID() int { return f.srid }

func (f *Factory) base() base { return base{pm: f.pm, srid: f.srid} }

// CreatePoint builds a Point from zero or one coordinates.
func (f *Factory) CreatePoint(coords ...Coordinate) (*Point, error) {
	if len(coords) > 1 {
		return nil, gerr.NewInvalidArgument("Point accepts at most one coordinate, got %d", len(coords))
	}
	seq, err := NewSequence(coords)
	if err != nil {
		return nil, err
	}
	return &Point{base: f.base(), seq: seq}, nil
}

// CreateEmptyPoint builds an empty Point of the given shape.
func (f *Factory) CreateEmptyPoint(s Shape) *Point {
	return &Point{base: f.base(), seq: EmptySequence(s)}
}

// CreateLineString builds a LineString. A non-empty LineString must have
// at least 2 coordinates.
func (f *Factory) CreateLineString(coords []Coordinate) (*LineString, error) {
	if len(coords) == 1 {
		return nil, gerr.NewInvalidArgument("LineString must be empty or have at least 2 points, got 1")
	}
	seq, err := NewSequence(coords)
	if err != nil {
		return nil, err
	}
	return &LineString{base: f.base(), seq: seq}, nil
}

// CreateLinearRing builds a LinearRing. Non-empty rings must be closed
// (first == last on X/Y) and have at least 4 coordinates.
func (f *Factory) CreateLinearRing(coords []Coordinate) (*LinearRing, error) {
	if len(coords) == 0 {
		return &LinearRing{base: f.base(), seq: EmptySequence(XY)}, nil
	}
	if len(coords) < 4 {
		return nil, gerr.NewInvalidArgument("LinearRing must have 0 or at least 4 points, got %d", len(coords))
	}
	if !coords[0].Equals2D(coords[len(coords)-1]) {
		return nil, gerr.NewInvalidArgument("LinearRing must be closed: first %v != last %v", coords[0], coords[len(coords)-1])
	}
	seq, err := NewSequence(coords)
	if err != nil {
		return nil, err
	}
	return &LinearRing{base: f.base(), seq: seq}, nil
}

// CreatePolygon builds a Polygon from a shell and zero or more holes. A
// non-empty shell is required if there are any non-empty holes.
func (f *Factory) CreatePolygon(shell *LinearRing, holes []*LinearRing) (*Polygon, error) {
	if shell == nil {
		shell, _ = f.CreateLinearRing(nil)
	}
	for _, h := range holes {
		if !h.IsEmpty() && shell.IsEmpty() {
			return nil, gerr.NewInvalidArgument("Polygon shell is empty but a hole is not")
		}
	}
	return &Polygon{base: f.base(), shell: shell, holes: holes}, nil
}

// CreateMultiPoint builds a MultiPoint from points; nil elements are
// rejected.
func (f *Factory) CreateMultiPoint(points []*Point) (*MultiPoint, error) {
	if err := checkNoNil(len(points), func(i int) bool { return points[i] == nil }); err != nil {
		return nil, err
	}
	return &MultiPoint{base: f.base(), points: points}, nil
}

// CreateMultiLineString builds a MultiLineString; nil elements are
// rejected.
func (f *Factory) CreateMultiLineString(lines []*LineString) (*MultiLineString, error) {
	if err := checkNoNil(len(lines), func(i int) bool { return lines[i] == nil }); err != nil {
		return nil, err
	}
	return &MultiLineString{base: f.base(), lines: lines}, nil
}

// CreateMultiPolygon builds a MultiPolygon; nil elements are rejected.
func (f *Factory) CreateMultiPolygon(polys []*Polygon) (*MultiPolygon, error) {
	if err := checkNoNil(len(polys), func(i int) bool { return polys[i] == nil }); err != nil {
		return nil, err
	}
	return &MultiPolygon{base: f.base(), polygons: polys}, nil
}

// CreateGeometryCollection builds a heterogeneous GeometryCollection; nil
// elements are rejected.
func (f *Factory) CreateGeometryCollection(geoms []Geometry) (*GeometryCollection, error) {
	if err := checkNoNil(len(geoms), func(i int) bool { return geoms[i] == nil }); err != nil {
		return nil, err
	}
	return &GeometryCollection{base: f.base(), geoms: geoms}, nil
}

func checkNoNil(n int, isNil func(int) bool) error {
	for i := 0; i < n; i++ {
		if isNil(i) {
			return gerr.NewInvalidArgument("collection element %d is nil", i)
		}
	}
	return nil
}
