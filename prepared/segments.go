package prepared

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/gogeos/geos/geom"
)

// segment is one edge of an indexed geometry, boxed for rtreego.Spatial.
type segment struct {
	p0, p1 geom.Coordinate
}

// Bounds implements rtreego.Spatial.
func (s segment) Bounds() rtreego.Rect {
	minX, maxX := math.Min(s.p0.X, s.p1.X), math.Max(s.p0.X, s.p1.X)
	minY, maxY := math.Min(s.p0.Y, s.p1.Y), math.Max(s.p0.Y, s.p1.Y)
	width, height := maxX-minX, maxY-minY
	if width == 0 {
		width = 1e-10
	}
	if height == 0 {
		height = 1e-10
	}
	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{width, height})
	return rect
}

func (s segment) envelope() geom.Envelope {
	return geom.NewEnvelope(
		math.Min(s.p0.X, s.p1.X), math.Max(s.p0.X, s.p1.X),
		math.Min(s.p0.Y, s.p1.Y), math.Max(s.p0.Y, s.p1.Y),
	)
}

// extractSegments walks any geometry into its constituent boundary
// segments, recursing through multi-geometries and collections.
func extractSegments(g geom.Geometry) []segment {
	var out []segment
	switch t := g.(type) {
	case *geom.LineString:
		out = append(out, segmentsOf(t.Sequence())...)
	case *geom.LinearRing:
		out = append(out, segmentsOf(t.Sequence())...)
	case *geom.Polygon:
		out = append(out, segmentsOf(t.Shell().Sequence())...)
		for _, h := range t.Holes() {
			out = append(out, segmentsOf(h.Sequence())...)
		}
	case *geom.MultiLineString:
		for _, l := range t.LineStrings() {
			out = append(out, extractSegments(l)...)
		}
	case *geom.MultiPolygon:
		for _, p := range t.Polygons() {
			out = append(out, extractSegments(p)...)
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, extractSegments(t.GeometryN(i))...)
		}
	}
	return out
}

func segmentsOf(seq *geom.Sequence) []segment {
	var out []segment
	for i := 0; i < seq.Len()-1; i++ {
		out = append(out, segment{seq.Get(i), seq.Get(i + 1)})
	}
	return out
}

// vertices returns every coordinate of g, used for containment's
// every-query-vertex-inside check.
func vertices(g geom.Geometry) []geom.Coordinate {
	var out []geom.Coordinate
	switch t := g.(type) {
	case *geom.Point:
		if !t.IsEmpty() {
			out = append(out, t.Coordinate())
		}
	case *geom.LineString:
		out = append(out, seqCoords(t.Sequence())...)
	case *geom.LinearRing:
		out = append(out, seqCoords(t.Sequence())...)
	case *geom.Polygon:
		out = append(out, seqCoords(t.Shell().Sequence())...)
		for _, h := range t.Holes() {
			out = append(out, seqCoords(h.Sequence())...)
		}
	case *geom.MultiPoint:
		for _, p := range t.Points() {
			out = append(out, vertices(p)...)
		}
	case *geom.MultiLineString:
		for _, l := range t.LineStrings() {
			out = append(out, vertices(l)...)
		}
	case *geom.MultiPolygon:
		for _, p := range t.Polygons() {
			out = append(out, vertices(p)...)
		}
	case *geom.GeometryCollection:
		for i := 0; i < t.NumGeometries(); i++ {
			out = append(out, vertices(t.GeometryN(i))...)
		}
	}
	return out
}

func seqCoords(seq *geom.Sequence) []geom.Coordinate {
	out := make([]geom.Coordinate, seq.Len())
	for i := range out {
		out[i] = seq.Get(i)
	}
	return out
}

func toRect(env geom.Envelope) rtreego.Rect {
	width, height := env.MaxX-env.MinX, env.MaxY-env.MinY
	if width <= 0 {
		width = 1e-10
	}
	if height <= 0 {
		height = 1e-10
	}
	rect, _ := rtreego.NewRect(rtreego.Point{env.MinX, env.MinY}, []float64{width, height})
	return rect
}
