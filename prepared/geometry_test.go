package prepared

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func ring(t *testing.T, f *geom.Factory, coords ...float64) *geom.LinearRing {
	t.Helper()
	var cs []geom.Coordinate
	for i := 0; i < len(coords); i += 2 {
		cs = append(cs, geom.NewXY(coords[i], coords[i+1]))
	}
	r, err := f.CreateLinearRing(cs)
	if err != nil {
		t.Fatalf("CreateLinearRing: %v", err)
	}
	return r
}

func TestContainsInteriorPoint(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell := ring(t, f, 0, 0, 4, 0, 4, 4, 0, 4, 0, 0)
	poly, err := f.CreatePolygon(shell, nil)
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	prepared := NewGeometry(poly)

	pt, err := f.CreatePoint(geom.NewXY(2, 2))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	if !prepared.Contains(pt) {
		t.Error("expected interior point to be contained")
	}

	outside, _ := f.CreatePoint(geom.NewXY(10, 10))
	if prepared.Contains(outside) {
		t.Error("expected exterior point to not be contained")
	}
}

func TestIntersectsCrossingLine(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell := ring(t, f, 0, 0, 4, 0, 4, 4, 0, 4, 0, 0)
	poly, _ := f.CreatePolygon(shell, nil)
	prepared := NewGeometry(poly)

	line, err := f.CreateLineString([]geom.Coordinate{geom.NewXY(-2, 2), geom.NewXY(2, 2)})
	if err != nil {
		t.Fatalf("CreateLineString: %v", err)
	}
	if !prepared.Intersects(line) {
		t.Error("expected crossing line to intersect")
	}
	if !prepared.Crosses(line) {
		t.Error("expected line entering and exiting the polygon to cross")
	}
}

func TestDisjointFarApart(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell := ring(t, f, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0)
	poly, _ := f.CreatePolygon(shell, nil)
	prepared := NewGeometry(poly)

	other := ring(t, f, 10, 10, 11, 10, 11, 11, 10, 11, 10, 10)
	otherPoly, _ := f.CreatePolygon(other, nil)

	if !prepared.Disjoint(otherPoly) {
		t.Error("expected far-apart polygons to be disjoint")
	}
	if prepared.Intersects(otherPoly) {
		t.Error("expected far-apart polygons to not intersect")
	}
}

func TestDistanceBetweenDisjointSquares(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell := ring(t, f, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0)
	poly, _ := f.CreatePolygon(shell, nil)
	prepared := NewGeometry(poly)

	other := ring(t, f, 4, 0, 5, 0, 5, 1, 4, 1, 4, 0)
	otherPoly, _ := f.CreatePolygon(other, nil)

	if got := prepared.Distance(otherPoly); got != 3 {
		t.Errorf("distance = %v, want 3", got)
	}
	if !prepared.IsWithinDistance(otherPoly, 3.5) {
		t.Error("expected squares to be within distance 3.5")
	}
	if prepared.IsWithinDistance(otherPoly, 2) {
		t.Error("expected squares to not be within distance 2")
	}
}

func TestPrepareIsIdempotent(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell := ring(t, f, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0)
	poly, _ := f.CreatePolygon(shell, nil)
	prepared := NewGeometry(poly)
	prepared.Prepare()
	prepared.Prepare()
	if prepared.segTree == nil {
		t.Error("expected segment index to be built after Prepare")
	}
}
