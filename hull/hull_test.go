package hull

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func mkPoint(t *testing.T, f *geom.Factory, x, y float64) *geom.Point {
	t.Helper()
	p, err := f.CreatePoint(geom.NewXY(x, y))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	return p
}

func TestComputeOfSquareWithInteriorPoint(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	pts := []*geom.Point{
		mkPoint(t, f, 0, 0), mkPoint(t, f, 10, 0), mkPoint(t, f, 10, 10), mkPoint(t, f, 0, 10),
		mkPoint(t, f, 5, 5), // interior, must not appear on the hull
	}
	mp, err := f.CreateMultiPoint(pts)
	if err != nil {
		t.Fatalf("CreateMultiPoint: %v", err)
	}
	out, err := Compute(mp)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	poly, ok := out.(*geom.Polygon)
	if !ok {
		t.Fatalf("expected a Polygon, got %T", out)
	}
	ring := poly.Shell().Sequence()
	if ring.Len() != 5 { // 4 corners + closing point
		t.Fatalf("expected a 4-vertex hull ring (5 with closure), got %d points", ring.Len())
	}
	for _, c := range ring.Coordinates() {
		if c.X == 5 && c.Y == 5 {
			t.Error("interior point leaked onto the hull")
		}
	}
}

func TestComputeOfCollinearPointsReturnsLineString(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	ls, err := f.CreateLineString([]geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(5, 5), geom.NewXY(10, 10),
	})
	if err != nil {
		t.Fatalf("CreateLineString: %v", err)
	}
	out, err := Compute(ls)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	line, ok := out.(*geom.LineString)
	if !ok {
		t.Fatalf("expected a LineString for collinear input, got %T", out)
	}
	if line.Sequence().Len() != 2 {
		t.Errorf("expected the hull of collinear points to collapse to 2 endpoints, got %d", line.Sequence().Len())
	}
}

func TestComputeOfSinglePointReturnsPoint(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	p := mkPoint(t, f, 3, 4)
	out, err := Compute(p)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	pt, ok := out.(*geom.Point)
	if !ok {
		t.Fatalf("expected a Point, got %T", out)
	}
	if !pt.Coordinate().Equals2D(geom.NewXY(3, 4)) {
		t.Errorf("unexpected hull point: %v", pt.Coordinate())
	}
}

func TestComputeOfEmptyGeometryReturnsEmptyPoint(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	empty := f.CreateEmptyPoint(geom.XY)
	out, err := Compute(empty)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !out.IsEmpty() {
		t.Error("expected an empty result for empty input")
	}
}

func TestComputeOfPolygonUsesOuterVertices(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(20, 0), geom.NewXY(20, 20), geom.NewXY(0, 20), geom.NewXY(0, 0),
	})
	if err != nil {
		t.Fatalf("CreateLinearRing: %v", err)
	}
	hole, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(5, 5), geom.NewXY(15, 5), geom.NewXY(15, 15), geom.NewXY(5, 15), geom.NewXY(5, 5),
	})
	if err != nil {
		t.Fatalf("CreateLinearRing (hole): %v", err)
	}
	poly, err := f.CreatePolygon(shell, []*geom.LinearRing{hole})
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	out, err := Compute(poly)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	outPoly, ok := out.(*geom.Polygon)
	if !ok {
		t.Fatalf("expected a Polygon, got %T", out)
	}
	if outPoly.Shell().Sequence().Len() != 5 {
		t.Errorf("expected the hull to match the outer shell's 4 corners, got %d points", outPoly.Shell().Sequence().Len())
	}
}
