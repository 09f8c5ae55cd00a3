package overlay

import "github.com/gogeos/geos/geom"

// pointOverlay runs the points-only fast path: with no area or line
// structure to node, op reduces to a set operation on the operands'
// rounded coordinates, preserving each surviving coordinate's first
// occurrence order (A's points, then B's) for a deterministic result.
func pointOverlay(a, b geom.Geometry, op Op, pm *geom.PrecisionModel, factory *geom.Factory) (geom.Geometry, error) {
	coordsA := roundedCoords(pointCoordinates(a), pm)
	coordsB := roundedCoords(pointCoordinates(b), pm)
	setA := coordSet(coordsA)
	setB := coordSet(coordsB)

	seen := map[[2]float64]bool{}
	var out []geom.Coordinate
	add := func(c geom.Coordinate) {
		k := coordKey(c)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, c)
	}

	switch op {
	case Intersection:
		for _, c := range coordsA {
			if setB[coordKey(c)] {
				add(c)
			}
		}
	case Union:
		for _, c := range coordsA {
			add(c)
		}
		for _, c := range coordsB {
			add(c)
		}
	case Difference:
		for _, c := range coordsA {
			if !setB[coordKey(c)] {
				add(c)
			}
		}
	case SymDifference:
		for _, c := range coordsA {
			if !setB[coordKey(c)] {
				add(c)
			}
		}
		for _, c := range coordsB {
			if !setA[coordKey(c)] {
				add(c)
			}
		}
	}
	return buildPuntalResult(out, factory)
}

func roundedCoords(coords []geom.Coordinate, pm *geom.PrecisionModel) []geom.Coordinate {
	out := make([]geom.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = pm.MakePreciseCoordinate(c)
	}
	return out
}

func coordSet(coords []geom.Coordinate) map[[2]float64]bool {
	set := make(map[[2]float64]bool, len(coords))
	for _, c := range coords {
		set[coordKey(c)] = true
	}
	return set
}

// pointCoordinates flattens every coordinate held by a Point or
// MultiPoint; any other geometry contributes nothing.
func pointCoordinates(g geom.Geometry) []geom.Coordinate {
	switch t := g.(type) {
	case *geom.Point:
		if t.IsEmpty() {
			return nil
		}
		return []geom.Coordinate{t.Coordinate()}
	case *geom.MultiPoint:
		var out []geom.Coordinate
		for _, p := range t.Points() {
			out = append(out, pointCoordinates(p)...)
		}
		return out
	default:
		return nil
	}
}

func buildPuntalResult(coords []geom.Coordinate, factory *geom.Factory) (geom.Geometry, error) {
	if len(coords) == 0 {
		return factory.CreateGeometryCollection(nil)
	}
	if len(coords) == 1 {
		return factory.CreatePoint(coords[0])
	}
	pts := make([]*geom.Point, len(coords))
	for i, c := range coords {
		p, err := factory.CreatePoint(c)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return factory.CreateMultiPoint(pts)
}
