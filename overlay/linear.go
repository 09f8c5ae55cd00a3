package overlay

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

// computeLinear runs the Line result-dimension path of OverlayNG: node
// both operands' lines together, label each noded piece against both
// operands (directly, for the operand it came from; via locateOnLinear
// for the other, catching exact collinear overlap), keep the pieces op
// selects, and dissolve the survivors into maximal LineStrings.
func computeLinear(a, b geom.Geometry, op Op, cfg *Config, factory *geom.Factory) (geom.Geometry, error) {
	edges := append(extractLinearEdges(a, 0), extractLinearEdges(b, 1)...)
	if len(edges) == 0 {
		return factory.CreateGeometryCollection(nil)
	}

	noded, err := nodeEdges(edges, cfg.PrecisionModel)
	if err != nil {
		return nil, err
	}

	operands := [2]geom.Geometry{a, b}
	var surviving [][]geom.Coordinate
	for _, ss := range noded {
		coords := dedupConsecutiveCoords(ss.Coordinates().Coordinates())
		if len(coords) < 2 {
			continue
		}
		ctx := ss.Context().(edgeContext)
		mid := geom.NewXY((coords[0].X+coords[1].X)/2, (coords[0].Y+coords[1].Y)/2)

		var locs [2]kernel.Location
		for gi := 0; gi < 2; gi++ {
			if gi == ctx.inputIndex {
				locs[gi] = kernel.Interior
				continue
			}
			loc := locateOnLinear(mid, operands[gi])
			if loc == kernel.Boundary {
				loc = kernel.Interior
			}
			locs[gi] = loc
		}
		if inResult(op, locs[0], locs[1]) {
			surviving = append(surviving, coords)
		}
	}

	lines, err := mergeLineChains(surviving, factory)
	if err != nil {
		return nil, err
	}
	return buildLinearResult(lines, factory)
}

func buildLinearResult(lines []*geom.LineString, factory *geom.Factory) (geom.Geometry, error) {
	if len(lines) == 0 {
		return factory.CreateGeometryCollection(nil)
	}
	if len(lines) == 1 {
		return lines[0], nil
	}
	return factory.CreateMultiLineString(lines)
}
