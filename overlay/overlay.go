package overlay

import (
	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
)

// Compute runs OverlayNG for op on operands a, b, dispatched on result
// dimension: area x area builds the topology graph and extracts rings,
// line x line nodes and dissolves surviving edges, point x point
// reduces to a coordinate-set operation. Mixed dimension (e.g. line x
// area) is not implemented; use UnaryUnion to combine heterogeneous
// collections, which unions within each dimension separately instead
// of requiring a mixed pairwise overlay.
func Compute(a, b geom.Geometry, op Op, opts ...Option) (geom.Geometry, error) {
	cfg := newConfig(opts)
	factory := geom.NewFactory(cfg.PrecisionModel, a.SRID())

	if fast, ok := preconditionFastPath(a, b, op, factory); ok {
		return fast, nil
	}

	switch {
	case isPointOrEmpty(a) && isPointOrEmpty(b):
		if cfg.AreaResultOnly {
			return nil, gerr.NewTopologyError("overlay: point x point operands cannot produce an area result")
		}
		return pointOverlay(a, b, op, cfg.PrecisionModel, factory)
	case isLinearOrEmpty(a) && isLinearOrEmpty(b):
		if cfg.AreaResultOnly {
			return nil, gerr.NewTopologyError("overlay: line x line operands cannot produce an area result")
		}
		return computeLinear(a, b, op, cfg, factory)
	case isArealOrEmpty(a) && isArealOrEmpty(b):
		return computeAreal(a, b, op, cfg, factory)
	default:
		return nil, gerr.NewUnsupportedOperation("overlay: mixed-dimension overlay of %s x %s is not implemented", a.GeometryType(), b.GeometryType())
	}
}

func computeAreal(a, b geom.Geometry, op Op, cfg *Config, factory *geom.Factory) (geom.Geometry, error) {
	edges := append(extractAreaEdges(a, 0), extractAreaEdges(b, 1)...)
	if len(edges) == 0 {
		return factory.CreateGeometryCollection(nil)
	}

	noded, err := nodeEdges(edges, cfg.PrecisionModel)
	if err != nil {
		return nil, err
	}

	g, err := buildGraph(noded, [2]geom.Geometry{a, b})
	if err != nil {
		return nil, err
	}
	g.SortEdgesAroundNodes()

	candidates := resultEdges(g, g.NumHalfEdges(), op)
	rings := extractRings(g, candidates, factory)
	return assemblePolygons(rings, factory)
}

// preconditionFastPath handles the empty-operand short circuit;
// Compute's dimension switch handles the points-only, line, and area
// cases once both operands are known non-empty.
func preconditionFastPath(a, b geom.Geometry, op Op, factory *geom.Factory) (geom.Geometry, bool) {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	if !aEmpty && !bEmpty {
		return nil, false
	}
	switch op {
	case Intersection:
		g, _ := factory.CreateGeometryCollection(nil)
		return g, true
	case Union:
		if aEmpty {
			return b, true
		}
		return a, true
	case Difference:
		if aEmpty {
			g, _ := factory.CreateGeometryCollection(nil)
			return g, true
		}
		return a, true
	case SymDifference:
		if aEmpty && bEmpty {
			g, _ := factory.CreateGeometryCollection(nil)
			return g, true
		}
		if aEmpty {
			return b, true
		}
		return a, true
	default:
		return nil, false
	}
}
