package simplify

import "github.com/gogeos/geos/geom"

// Geometry simplifies every coordinate sequence in g using DouglasPeucker
// at the given tolerance, rebuilding g's own variant through a Factory
// derived from g's precision model and SRID. Points pass through
// unchanged; rings that collapse below 4 points after simplification
// keep their original coordinates rather than becoming an invalid ring.
func Geometry(g geom.Geometry, tolerance float64) (geom.Geometry, error) {
	f := geom.NewFactory(g.PrecisionModel(), g.SRID())
	return simplifyGeometry(f, g, tolerance)
}

func simplifyGeometry(f *geom.Factory, g geom.Geometry, tolerance float64) (geom.Geometry, error) {
	switch t := g.(type) {
	case *geom.Point:
		return t, nil
	case *geom.LineString:
		return f.CreateLineString(simplifyOpenSequence(t.Sequence(), tolerance).Coordinates())
	case *geom.LinearRing:
		return f.CreateLinearRing(simplifyRing(t.Sequence(), tolerance).Coordinates())
	case *geom.Polygon:
		return simplifyPolygon(f, t, tolerance)
	case *geom.MultiPoint:
		return t, nil
	case *geom.MultiLineString:
		lines := make([]*geom.LineString, len(t.LineStrings()))
		for i, l := range t.LineStrings() {
			ls, err := f.CreateLineString(simplifyOpenSequence(l.Sequence(), tolerance).Coordinates())
			if err != nil {
				return nil, err
			}
			lines[i] = ls
		}
		return f.CreateMultiLineString(lines)
	case *geom.MultiPolygon:
		polys := make([]*geom.Polygon, len(t.Polygons()))
		for i, p := range t.Polygons() {
			sp, err := simplifyPolygon(f, p, tolerance)
			if err != nil {
				return nil, err
			}
			polys[i] = sp.(*geom.Polygon)
		}
		return f.CreateMultiPolygon(polys)
	case *geom.GeometryCollection:
		geoms := make([]geom.Geometry, t.NumGeometries())
		for i := 0; i < t.NumGeometries(); i++ {
			sg, err := simplifyGeometry(f, t.GeometryN(i), tolerance)
			if err != nil {
				return nil, err
			}
			geoms[i] = sg
		}
		return f.CreateGeometryCollection(geoms)
	default:
		return g, nil
	}
}

func simplifyPolygon(f *geom.Factory, p *geom.Polygon, tolerance float64) (geom.Geometry, error) {
	if p.IsEmpty() {
		return f.CreatePolygon(nil, nil)
	}
	shell, err := f.CreateLinearRing(simplifyRing(p.Shell().Sequence(), tolerance).Coordinates())
	if err != nil {
		return nil, err
	}
	holes := make([]*geom.LinearRing, len(p.Holes()))
	for i, h := range p.Holes() {
		hr, err := f.CreateLinearRing(simplifyRing(h.Sequence(), tolerance).Coordinates())
		if err != nil {
			return nil, err
		}
		holes[i] = hr
	}
	return f.CreatePolygon(shell, holes)
}

func simplifyOpenSequence(seq *geom.Sequence, tolerance float64) *geom.Sequence {
	if seq.Len() < 3 {
		return seq.Clone()
	}
	return DouglasPeucker(seq, tolerance)
}

// simplifyRing simplifies a closed ring by running DouglasPeucker on its
// open form (dropping the closing duplicate) and re-closing the result,
// falling back to the original ring if simplification would leave fewer
// than 4 points (the minimum for a valid LinearRing).
func simplifyRing(seq *geom.Sequence, tolerance float64) *geom.Sequence {
	if seq.Len() < 4 {
		return seq.Clone()
	}
	open, err := geom.NewSequenceShape(seq.Coordinates()[:seq.Len()-1], seq.Shape())
	if err != nil {
		return seq.Clone()
	}
	simplified := DouglasPeucker(open, tolerance)
	if simplified.Len() < 3 {
		return seq.Clone()
	}
	closed := append(simplified.Coordinates(), simplified.Get(0))
	result, err := geom.NewSequenceShape(closed, seq.Shape())
	if err != nil {
		return seq.Clone()
	}
	return result
}
