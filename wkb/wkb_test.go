package wkb

import (
	"bytes"
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestPointRoundTrip(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	pt, err := f.CreatePoint(geom.NewXY(3.5, -2.25))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, pt); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf, f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gotPt, ok := got.(*geom.Point)
	if !ok {
		t.Fatalf("expected *geom.Point, got %T", got)
	}
	if !gotPt.Sequence().Get(0).Equals2D(pt.Sequence().Get(0)) {
		t.Errorf("round trip mismatch: %v != %v", gotPt.Sequence().Get(0), pt.Sequence().Get(0))
	}
}

func TestPointZRoundTrip(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	pt, err := f.CreatePoint(geom.NewXYZ(1, 2, 3))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, pt); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf, f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	c := got.(*geom.Point).Sequence().Get(0)
	if c.X != 1 || c.Y != 2 || c.Z != 3 {
		t.Errorf("unexpected XYZ round trip: %v", c)
	}
}

func TestEmptyPointRoundTrip(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	pt := f.CreateEmptyPoint(geom.XY)
	var buf bytes.Buffer
	if err := Write(&buf, pt); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf, f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !got.IsEmpty() {
		t.Error("expected empty point after round trip")
	}
}

func TestLineStringRoundTrip(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	ls, err := f.CreateLineString([]geom.Coordinate{geom.NewXY(0, 0), geom.NewXY(1, 1), geom.NewXY(2, 0)})
	if err != nil {
		t.Fatalf("CreateLineString: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, ls); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf, f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gotLS, ok := got.(*geom.LineString)
	if !ok {
		t.Fatalf("expected *geom.LineString, got %T", got)
	}
	if gotLS.Sequence().Len() != 3 {
		t.Errorf("expected 3 coordinates, got %d", gotLS.Sequence().Len())
	}
}

func TestPolygonWithHoleRoundTrip(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(0, 0),
	})
	if err != nil {
		t.Fatalf("CreateLinearRing shell: %v", err)
	}
	hole, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(2, 2), geom.NewXY(2, 4), geom.NewXY(4, 4), geom.NewXY(4, 2), geom.NewXY(2, 2),
	})
	if err != nil {
		t.Fatalf("CreateLinearRing hole: %v", err)
	}
	poly, err := f.CreatePolygon(shell, []*geom.LinearRing{hole})
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, poly); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf, f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gotPoly, ok := got.(*geom.Polygon)
	if !ok {
		t.Fatalf("expected *geom.Polygon, got %T", got)
	}
	if len(gotPoly.Holes()) != 1 {
		t.Errorf("expected 1 hole, got %d", len(gotPoly.Holes()))
	}
}

func TestMultiPolygonRoundTrip(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	mkPoly := func(x0, y0 float64) *geom.Polygon {
		shell, err := f.CreateLinearRing([]geom.Coordinate{
			geom.NewXY(x0, y0), geom.NewXY(x0+1, y0), geom.NewXY(x0+1, y0+1), geom.NewXY(x0, y0+1), geom.NewXY(x0, y0),
		})
		if err != nil {
			t.Fatalf("CreateLinearRing: %v", err)
		}
		p, err := f.CreatePolygon(shell, nil)
		if err != nil {
			t.Fatalf("CreatePolygon: %v", err)
		}
		return p
	}
	mp, err := f.CreateMultiPolygon([]*geom.Polygon{mkPoly(0, 0), mkPoly(5, 5)})
	if err != nil {
		t.Fatalf("CreateMultiPolygon: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, mp); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf, f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gotMP, ok := got.(*geom.MultiPolygon)
	if !ok {
		t.Fatalf("expected *geom.MultiPolygon, got %T", got)
	}
	if gotMP.NumGeometries() != 2 {
		t.Errorf("expected 2 polygons, got %d", gotMP.NumGeometries())
	}
}

func TestGeometryCollectionRoundTrip(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	pt, _ := f.CreatePoint(geom.NewXY(0, 0))
	ls, _ := f.CreateLineString([]geom.Coordinate{geom.NewXY(1, 1), geom.NewXY(2, 2)})
	gc, err := f.CreateGeometryCollection([]geom.Geometry{pt, ls})
	if err != nil {
		t.Fatalf("CreateGeometryCollection: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, gc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf, f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	gotGC, ok := got.(*geom.GeometryCollection)
	if !ok {
		t.Fatalf("expected *geom.GeometryCollection, got %T", got)
	}
	if gotGC.NumGeometries() != 2 {
		t.Errorf("expected 2 members, got %d", gotGC.NumGeometries())
	}
}
