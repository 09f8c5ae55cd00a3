package overlay

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/index/strtree"
	"github.com/gogeos/geos/kernel"
)

// UnaryUnion computes the union of every part of g: a heterogeneous
// GeometryCollection dissolves within each dimension (areal parts
// merged with areal, linear with linear, puntal with puntal) via
// cascaded pairwise overlay, and whatever dimensions survive are
// assembled back into one result.
func UnaryUnion(g geom.Geometry, opts ...Option) (geom.Geometry, error) {
	cfg := newConfig(opts)
	factory := geom.NewFactory(cfg.PrecisionModel, g.SRID())

	var areal, linear, puntal []geom.Geometry
	collectByDimension(g, &areal, &linear, &puntal)

	arealResult, err := cascadedUnion(areal, opts)
	if err != nil {
		return nil, err
	}
	linearResult, err := cascadedUnion(linear, opts)
	if err != nil {
		return nil, err
	}
	puntalResult, err := cascadedUnion(puntal, opts)
	if err != nil {
		return nil, err
	}
	puntalResult = dropCoveredPoints(puntalResult, arealResult, linearResult, factory)

	var parts []geom.Geometry
	for _, r := range []geom.Geometry{arealResult, linearResult, puntalResult} {
		if r == nil || r.IsEmpty() {
			continue
		}
		parts = append(parts, r)
	}
	switch len(parts) {
	case 0:
		return factory.CreateGeometryCollection(nil)
	case 1:
		return parts[0], nil
	default:
		return factory.CreateGeometryCollection(parts)
	}
}

// collectByDimension flattens g's GeometryCollection structure into its
// areal, linear, and puntal parts, the per-dimension buckets UnaryUnion
// merges independently.
func collectByDimension(g geom.Geometry, areal, linear, puntal *[]geom.Geometry) {
	if t, ok := g.(*geom.GeometryCollection); ok {
		for i := 0; i < t.NumGeometries(); i++ {
			collectByDimension(t.GeometryN(i), areal, linear, puntal)
		}
		return
	}
	if g.IsEmpty() {
		return
	}
	switch g.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		*areal = append(*areal, g)
	case *geom.LineString, *geom.MultiLineString:
		*linear = append(*linear, g)
	case *geom.Point, *geom.MultiPoint:
		*puntal = append(*puntal, g)
	}
}

// cascadedUnion merges items pairwise in spatially-sorted order,
// halving the work list each round -- a cascaded binary tree of
// Compute(Union) calls rather than one long linear fold, grounded on
// the same index/strtree packed-order idiom triangulate/delaunay uses
// for insertion locality. Returns (nil, nil) for an empty items list.
func cascadedUnion(items []geom.Geometry, opts []Option) (geom.Geometry, error) {
	if len(items) == 0 {
		return nil, nil
	}
	current := spatiallyOrdered(items)
	for len(current) > 1 {
		next := make([]geom.Geometry, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 == len(current) {
				next = append(next, current[i])
				continue
			}
			merged, err := Compute(current[i], current[i+1], Union, opts...)
			if err != nil {
				return nil, err
			}
			next = append(next, merged)
		}
		current = next
	}
	return current[0], nil
}

func spatiallyOrdered(items []geom.Geometry) []geom.Geometry {
	tree := strtree.New[geom.Geometry]()
	full := geom.NullEnvelope()
	for _, g := range items {
		env := g.Envelope()
		tree.Insert(env, g)
		full = full.ExpandByEnvelope(env)
	}
	return tree.QueryAll(full)
}

// dropCoveredPoints removes any puntal coordinate already covered by
// areal or linear (the union already fully accounts for it), leaving
// only the points genuinely disjoint from both -- e.g. a standalone
// point surviving untouched because it lies outside the unioned
// polygons.
func dropCoveredPoints(puntal, areal, linear geom.Geometry, factory *geom.Factory) geom.Geometry {
	if puntal == nil || puntal.IsEmpty() {
		return puntal
	}
	coords := pointCoordinates(puntal)
	kept := make([]geom.Coordinate, 0, len(coords))
	for _, c := range coords {
		if areal != nil && !areal.IsEmpty() && locateInGeometry(c, areal) != kernel.Exterior {
			continue
		}
		if linear != nil && !linear.IsEmpty() && locateOnLinear(c, linear) != kernel.Exterior {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == len(coords) {
		return puntal
	}
	out, err := buildPuntalResult(kept, factory)
	if err != nil {
		return puntal
	}
	return out
}
