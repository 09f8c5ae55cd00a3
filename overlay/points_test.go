package overlay

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func multiPoint(t *testing.T, f *geom.Factory, coords ...float64) *geom.MultiPoint {
	t.Helper()
	if len(coords)%2 != 0 {
		t.Fatalf("odd coordinate count")
	}
	pts := make([]*geom.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		p, err := f.CreatePoint(geom.NewXY(coords[i], coords[i+1]))
		if err != nil {
			t.Fatalf("CreatePoint: %v", err)
		}
		pts = append(pts, p)
	}
	mp, err := f.CreateMultiPoint(pts)
	if err != nil {
		t.Fatalf("CreateMultiPoint: %v", err)
	}
	return mp
}

func multiPointCoords(g geom.Geometry) []geom.Coordinate {
	switch t := g.(type) {
	case *geom.Point:
		if t.IsEmpty() {
			return nil
		}
		return []geom.Coordinate{t.Coordinate()}
	case *geom.MultiPoint:
		var out []geom.Coordinate
		for _, p := range t.Points() {
			out = append(out, p.Coordinate())
		}
		return out
	default:
		return nil
	}
}

func TestUnionOfMultiPointWithOverlappingPoint(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := multiPoint(t, f, 1, 1, 2, 2)
	b, err := f.CreatePoint(geom.NewXY(2, 2))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}

	out, err := Compute(a, b, Union)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	got := multiPointCoords(out)
	want := []geom.Coordinate{geom.NewXY(1, 1), geom.NewXY(2, 2)}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equals2D(want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIntersectionOfPointsKeepsOnlySharedCoordinate(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := multiPoint(t, f, 1, 1, 2, 2)
	b := multiPoint(t, f, 2, 2, 3, 3)

	out, err := Compute(a, b, Intersection)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	p, ok := out.(*geom.Point)
	if !ok {
		t.Fatalf("expected *geom.Point, got %T", out)
	}
	if c := p.Coordinate(); !c.Equals2D(geom.NewXY(2, 2)) {
		t.Errorf("intersection point = %v, want (2, 2)", c)
	}
}

func TestDifferenceOfPointsRemovesSharedCoordinate(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := multiPoint(t, f, 1, 1, 2, 2)
	b, err := f.CreatePoint(geom.NewXY(2, 2))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}

	out, err := Compute(a, b, Difference)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	p, ok := out.(*geom.Point)
	if !ok {
		t.Fatalf("expected *geom.Point, got %T", out)
	}
	if c := p.Coordinate(); !c.Equals2D(geom.NewXY(1, 1)) {
		t.Errorf("difference point = %v, want (1, 1)", c)
	}
}
