// Package buffer computes the Minkowski-sum-style offset region around a
// geometry: every point within a given distance of it (for a positive
// distance) or the original geometry's own interior for a zero distance.
//
// This package is a thin generator of offset curves that feeds
// overlay.Compute(..., overlay.Union): grounded on
// original_source/include/geos/triangulate/ sibling package style
// (compute simple local shapes, let a shared overlay/union pass
// reconcile them) and on golang-geo/s2/regioncoverer.go's incremental
// region-growing structure -- here growing a region outward one
// per-segment/per-vertex primitive at a time and folding the
// primitives together with a union fold, rather than a cell-covering
// search.
package buffer

import (
	"math"

	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/overlay"
)

// Params configures offset-curve generation.
type Params struct {
	// QuadrantSegments is the number of line segments used to
	// approximate a quarter-circle at a round join or cap. 0 uses a
	// default of 8.
	QuadrantSegments int
}

func (p Params) quadSegs() int {
	if p.QuadrantSegments <= 0 {
		return 8
	}
	return p.QuadrantSegments
}

// Compute returns the geometry within distance of g, rounding every
// join and cap. Only distance >= 0 is supported: negative-distance
// erosion requires self-intersection handling within the offset curve
// itself that this package does not implement (see DESIGN.md).
func Compute(g geom.Geometry, distance float64, params Params) (geom.Geometry, error) {
	if distance < 0 {
		return nil, gerr.NewUnsupportedOperation("buffer: negative distance (erosion) is not implemented")
	}
	f := geom.NewFactory(g.PrecisionModel(), g.SRID())
	if distance == 0 {
		return g, nil
	}

	pieces, err := offsetPieces(f, g, distance, params.quadSegs())
	if err != nil {
		return nil, err
	}
	if len(pieces) == 0 {
		return f.CreateGeometryCollection(nil)
	}

	result := geom.Geometry(pieces[0])
	for _, p := range pieces[1:] {
		result, err = overlay.Compute(result, p, overlay.Union)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// offsetPieces collects one convex polygon per primitive (circle
// around a point or vertex, offset quad around a segment) whose union
// is the buffered region, deferring all reconciliation to the caller's
// sequential union fold.
func offsetPieces(f *geom.Factory, g geom.Geometry, distance float64, quadSegs int) ([]*geom.Polygon, error) {
	switch t := g.(type) {
	case *geom.Point:
		if t.IsEmpty() {
			return nil, nil
		}
		c, err := circle(f, t.Coordinate(), distance, quadSegs)
		if err != nil {
			return nil, err
		}
		return []*geom.Polygon{c}, nil
	case *geom.LineString:
		return bufferSequence(f, t.Sequence(), distance, quadSegs)
	case *geom.LinearRing:
		return bufferSequence(f, t.Sequence(), distance, quadSegs)
	case *geom.Polygon:
		return bufferPolygon(f, t, distance, quadSegs)
	case *geom.MultiPoint:
		var out []*geom.Polygon
		for _, p := range t.Points() {
			ps, err := offsetPieces(f, p, distance, quadSegs)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
		return out, nil
	case *geom.MultiLineString:
		var out []*geom.Polygon
		for _, l := range t.LineStrings() {
			ps, err := offsetPieces(f, l, distance, quadSegs)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
		return out, nil
	case *geom.MultiPolygon:
		var out []*geom.Polygon
		for _, p := range t.Polygons() {
			ps, err := offsetPieces(f, p, distance, quadSegs)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
		return out, nil
	case *geom.GeometryCollection:
		var out []*geom.Polygon
		for i := 0; i < t.NumGeometries(); i++ {
			ps, err := offsetPieces(f, t.GeometryN(i), distance, quadSegs)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
		}
		return out, nil
	default:
		return nil, gerr.NewUnsupportedOperation("buffer: unsupported geometry type %T", g)
	}
}

// bufferPolygon buffers a polygon's shell outward and unions the result
// with the polygon itself, so the original interior is always
// preserved. Holes are left at their original size rather than eroded
// inward -- a documented simplification (see DESIGN.md).
func bufferPolygon(f *geom.Factory, p *geom.Polygon, distance float64, quadSegs int) ([]*geom.Polygon, error) {
	if p.IsEmpty() {
		return nil, nil
	}
	pieces, err := bufferSequence(f, p.Shell().Sequence(), distance, quadSegs)
	if err != nil {
		return nil, err
	}
	return append(pieces, p), nil
}

// bufferSequence generates one offset quad per segment and one circle
// per vertex of an open or closed coordinate sequence, which together
// cover every join (round) and, for an open sequence, every endpoint
// cap (also round).
func bufferSequence(f *geom.Factory, seq *geom.Sequence, distance float64, quadSegs int) ([]*geom.Polygon, error) {
	n := seq.Len()
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		c, err := circle(f, seq.Get(0), distance, quadSegs)
		if err != nil {
			return nil, err
		}
		return []*geom.Polygon{c}, nil
	}

	var pieces []*geom.Polygon
	for i := 0; i < n-1; i++ {
		quad, err := offsetQuad(f, seq.Get(i), seq.Get(i+1), distance)
		if err != nil {
			return nil, err
		}
		if quad != nil {
			pieces = append(pieces, quad)
		}
	}
	for i := 0; i < n; i++ {
		c, err := circle(f, seq.Get(i), distance, quadSegs)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, c)
	}
	return pieces, nil
}

// offsetQuad builds the rectangle spanning distance to either side of
// segment a-b, the straight-offset contribution of one segment to the
// buffered region; the round joins between quads are supplied
// separately by circle at each shared vertex. Returns nil for a
// degenerate (zero-length) segment.
func offsetQuad(f *geom.Factory, a, b geom.Coordinate, distance float64) (*geom.Polygon, error) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, nil
	}
	nx, ny := -dy/length*distance, dx/length*distance
	shell, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(a.X+nx, a.Y+ny),
		geom.NewXY(b.X+nx, b.Y+ny),
		geom.NewXY(b.X-nx, b.Y-ny),
		geom.NewXY(a.X-nx, a.Y-ny),
		geom.NewXY(a.X+nx, a.Y+ny),
	})
	if err != nil {
		return nil, err
	}
	return f.CreatePolygon(shell, nil)
}

// circle approximates a disc of the given radius around center with
// 4*quadSegs edges.
func circle(f *geom.Factory, center geom.Coordinate, radius float64, quadSegs int) (*geom.Polygon, error) {
	steps := 4 * quadSegs
	coords := make([]geom.Coordinate, steps+1)
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		coords[i] = geom.NewXY(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
	}
	coords[steps] = coords[0]
	shell, err := f.CreateLinearRing(coords)
	if err != nil {
		return nil, err
	}
	return f.CreatePolygon(shell, nil)
}
