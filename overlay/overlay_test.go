package overlay

import (
	"math"
	"testing"

	"github.com/gogeos/geos/geom"
)

func square(t *testing.T, f *geom.Factory, minX, minY, maxX, maxY float64) *geom.Polygon {
	t.Helper()
	ring, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(minX, minY), geom.NewXY(maxX, minY),
		geom.NewXY(maxX, maxY), geom.NewXY(minX, maxY),
		geom.NewXY(minX, minY),
	})
	if err != nil {
		t.Fatalf("CreateLinearRing: %v", err)
	}
	p, err := f.CreatePolygon(ring, nil)
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	return p
}

func polygonArea(p *geom.Polygon) float64 {
	area := ringArea(p.Shell().Sequence())
	for _, h := range p.Holes() {
		area -= ringArea(h.Sequence())
	}
	return area
}

func ringArea(seq *geom.Sequence) float64 {
	sum := 0.0
	n := seq.Len()
	for i := 0; i < n-1; i++ {
		a, b := seq.Get(i), seq.Get(i+1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

func geometryArea(g geom.Geometry) float64 {
	switch t := g.(type) {
	case *geom.Polygon:
		return polygonArea(t)
	case *geom.MultiPolygon:
		sum := 0.0
		for i := 0; i < t.NumGeometries(); i++ {
			sum += geometryArea(t.GeometryN(i))
		}
		return sum
	default:
		return 0
	}
}

func TestIntersectionOfOverlappingSquares(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 2, 2)
	b := square(t, f, 1, 1, 3, 3)
	out, err := Compute(a, b, Intersection)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := geometryArea(out); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("intersection area = %v, want 1", got)
	}
}

func TestUnionOfOverlappingSquares(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 2, 2)
	b := square(t, f, 1, 1, 3, 3)
	out, err := Compute(a, b, Union)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := geometryArea(out); math.Abs(got-7.0) > 1e-6 {
		t.Errorf("union area = %v, want 7", got)
	}
}

func TestDifferenceOfOverlappingSquares(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 2, 2)
	b := square(t, f, 1, 1, 3, 3)
	out, err := Compute(a, b, Difference)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := geometryArea(out); math.Abs(got-3.0) > 1e-6 {
		t.Errorf("difference area = %v, want 3", got)
	}
}

func TestSymDifferenceOfOverlappingSquares(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 2, 2)
	b := square(t, f, 1, 1, 3, 3)
	out, err := Compute(a, b, SymDifference)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := geometryArea(out); math.Abs(got-6.0) > 1e-6 {
		t.Errorf("symdifference area = %v, want 6", got)
	}
}

func TestIntersectionOfDisjointSquaresIsEmpty(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 1, 1)
	b := square(t, f, 5, 5, 6, 6)
	out, err := Compute(a, b, Intersection)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("expected empty intersection, got area %v", geometryArea(out))
	}
}

func TestUnionWithEmptyOperandReturnsOther(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 2, 2)
	empty := f.CreateEmptyPoint(geom.XY)
	out, err := Compute(a, empty, Union)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if math.Abs(geometryArea(out)-4.0) > 1e-6 {
		t.Errorf("union with empty = %v, want 4", geometryArea(out))
	}
}

func TestFixedPrecisionModelSnapRounds(t *testing.T) {
	pm := geom.NewFixedPrecisionModel(10)
	f := geom.NewFactory(pm, 0)
	a := square(t, f, 0, 0, 2, 2)
	b := square(t, f, 1, 1, 3, 3)
	out, err := Compute(a, b, Intersection, WithPrecisionModel(pm))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := geometryArea(out); math.Abs(got-1.0) > 0.1 {
		t.Errorf("intersection area under FIXED precision = %v, want ~1", got)
	}
}
