// Package geomedit provides a visitor-pattern editor over a geometry's
// coordinate sequences, grounded on the
// visitor-style shape walking idiom in golang-geo/s2/shapeutil.go
// (dispatch by concrete shape type, one pass per component) adapted to
// rebuild edited geometries through a Factory instead of querying them.
package geomedit

import (
	"github.com/gogeos/geos/geom"
)

// CoordinateSequenceFilter computes replacement coordinates for one
// coordinate sequence (the Editor collects them into a new sequence and
// leaves the original untouched), signalling whether it changed anything
// and whether the walk should stop early.
type CoordinateSequenceFilter interface {
	// Filter returns the replacement for seq's i'th coordinate and
	// whether it differs from the original.
	Filter(seq *geom.Sequence, i int) (geom.Coordinate, bool)
	// Done reports whether the editor should stop visiting further
	// sequences/coordinates.
	Done() bool
}

// Editor rebuilds geometries by applying a CoordinateSequenceFilter to
// every coordinate sequence reachable from them (LineString, LinearRing,
// Point, and each component of Multi-geometries/collections), using
// factory to construct the replacements.
type Editor struct {
	factory *geom.Factory
}

// NewEditor builds an Editor constructing replacement geometries with
// factory.
func NewEditor(factory *geom.Factory) *Editor {
	return &Editor{factory: factory}
}

// Edit applies filter to g and returns the edited geometry.
func (e *Editor) Edit(g geom.Geometry, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	switch t := g.(type) {
	case *geom.Point:
		return e.editPoint(t, filter)
	case *geom.LineString:
		return e.editLineString(t, filter)
	case *geom.LinearRing:
		return e.editLinearRing(t, filter)
	case *geom.Polygon:
		return e.editPolygon(t, filter)
	case *geom.MultiPoint:
		return e.editMultiPoint(t, filter)
	case *geom.MultiLineString:
		return e.editMultiLineString(t, filter)
	case *geom.MultiPolygon:
		return e.editMultiPolygon(t, filter)
	case *geom.GeometryCollection:
		return e.editCollection(t, filter)
	default:
		return g, nil
	}
}

func (e *Editor) editSequence(seq *geom.Sequence, filter CoordinateSequenceFilter) (*geom.Sequence, bool, error) {
	coords := make([]geom.Coordinate, seq.Len())
	changed := false
	for i := 0; i < seq.Len(); i++ {
		c, didChange := filter.Filter(seq, i)
		coords[i] = c
		changed = changed || didChange
		if filter.Done() {
			for j := i + 1; j < seq.Len(); j++ {
				coords[j] = seq.Get(j)
			}
			break
		}
	}
	if !changed {
		return seq, false, nil
	}
	newSeq, err := geom.NewSequence(coords)
	return newSeq, true, err
}

func (e *Editor) editPoint(p *geom.Point, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	if p.IsEmpty() {
		return p, nil
	}
	newSeq, changed, err := e.editSequence(p.Sequence(), filter)
	if err != nil {
		return nil, err
	}
	if !changed {
		return p, nil
	}
	return e.factory.CreatePoint(newSeq.Get(0))
}

func (e *Editor) editLineString(l *geom.LineString, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	newSeq, changed, err := e.editSequence(l.Sequence(), filter)
	if err != nil {
		return nil, err
	}
	if !changed {
		return l, nil
	}
	return e.factory.CreateLineString(seqCoords(newSeq))
}

func (e *Editor) editLinearRing(r *geom.LinearRing, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	newSeq, changed, err := e.editSequence(r.Sequence(), filter)
	if err != nil {
		return nil, err
	}
	if !changed {
		return r, nil
	}
	return e.factory.CreateLinearRing(seqCoords(newSeq))
}

func (e *Editor) editPolygon(p *geom.Polygon, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	edited, err := e.editLinearRing(p.Shell(), filter)
	if err != nil {
		return nil, err
	}
	newShell := edited.(*geom.LinearRing)
	newHoles := make([]*geom.LinearRing, len(p.Holes()))
	for i, h := range p.Holes() {
		if filter.Done() {
			newHoles[i] = h
			continue
		}
		editedHole, err := e.editLinearRing(h, filter)
		if err != nil {
			return nil, err
		}
		newHoles[i] = editedHole.(*geom.LinearRing)
	}
	return e.factory.CreatePolygon(newShell, newHoles)
}

func (e *Editor) editMultiPoint(m *geom.MultiPoint, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	points := make([]*geom.Point, len(m.Points()))
	for i, p := range m.Points() {
		if filter.Done() {
			points[i] = p
			continue
		}
		edited, err := e.editPoint(p, filter)
		if err != nil {
			return nil, err
		}
		points[i] = edited.(*geom.Point)
	}
	return e.factory.CreateMultiPoint(points)
}

func (e *Editor) editMultiLineString(m *geom.MultiLineString, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	lines := make([]*geom.LineString, len(m.LineStrings()))
	for i, l := range m.LineStrings() {
		if filter.Done() {
			lines[i] = l
			continue
		}
		edited, err := e.editLineString(l, filter)
		if err != nil {
			return nil, err
		}
		lines[i] = edited.(*geom.LineString)
	}
	return e.factory.CreateMultiLineString(lines)
}

func (e *Editor) editMultiPolygon(m *geom.MultiPolygon, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	polys := make([]*geom.Polygon, len(m.Polygons()))
	for i, p := range m.Polygons() {
		if filter.Done() {
			polys[i] = p
			continue
		}
		edited, err := e.editPolygon(p, filter)
		if err != nil {
			return nil, err
		}
		polys[i] = edited.(*geom.Polygon)
	}
	return e.factory.CreateMultiPolygon(polys)
}

func (e *Editor) editCollection(c *geom.GeometryCollection, filter CoordinateSequenceFilter) (geom.Geometry, error) {
	geoms := make([]geom.Geometry, len(c.Geometries()))
	for i, g := range c.Geometries() {
		if filter.Done() {
			geoms[i] = g
			continue
		}
		edited, err := e.Edit(g, filter)
		if err != nil {
			return nil, err
		}
		geoms[i] = edited
	}
	return e.factory.CreateGeometryCollection(geoms)
}

func seqCoords(seq *geom.Sequence) []geom.Coordinate {
	out := make([]geom.Coordinate, seq.Len())
	for i := range out {
		out[i] = seq.Get(i)
	}
	return out
}
