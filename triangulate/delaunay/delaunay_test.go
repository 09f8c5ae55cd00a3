package delaunay

import (
	"testing"

	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
)

func mkPoint(t *testing.T, f *geom.Factory, x, y float64) *geom.Point {
	t.Helper()
	p, err := f.CreatePoint(geom.NewXY(x, y))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	return p
}

func TestTriangulateOfSquareProducesTwoTriangles(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	mp, err := f.CreateMultiPoint([]*geom.Point{
		mkPoint(t, f, 0, 0), mkPoint(t, f, 10, 0), mkPoint(t, f, 10, 10), mkPoint(t, f, 0, 10),
	})
	if err != nil {
		t.Fatalf("CreateMultiPoint: %v", err)
	}
	tris, err := Triangulate(mp)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles for a square, got %d", len(tris))
	}
	totalArea := 0.0
	for _, tri := range tris {
		totalArea += triangleArea(tri)
	}
	if totalArea < 99 || totalArea > 101 {
		t.Errorf("expected total triangulated area near 100, got %v", totalArea)
	}
}

func TestTriangulateRespectsDelaunayEmptyCircumcircleProperty(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	mp, err := f.CreateMultiPoint([]*geom.Point{
		mkPoint(t, f, 0, 0), mkPoint(t, f, 10, 0), mkPoint(t, f, 10, 10), mkPoint(t, f, 0, 10), mkPoint(t, f, 5, 5),
	})
	if err != nil {
		t.Fatalf("CreateMultiPoint: %v", err)
	}
	tris, err := Triangulate(mp)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 4 {
		t.Fatalf("expected 4 triangles around the center point, got %d", len(tris))
	}
	allVerts := []geom.Coordinate{geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(5, 5)}
	for _, tri := range tris {
		for _, v := range allVerts {
			if v.Equals2D(tri.A) || v.Equals2D(tri.B) || v.Equals2D(tri.C) {
				continue
			}
			if kernel.InCircle(tri.A, tri.B, tri.C, v) {
				t.Errorf("vertex %v lies inside the circumcircle of triangle %v,%v,%v, violating the Delaunay property", v, tri.A, tri.B, tri.C)
			}
		}
	}
}

func TestTriangulateTooFewPointsErrors(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	mp, err := f.CreateMultiPoint([]*geom.Point{mkPoint(t, f, 0, 0), mkPoint(t, f, 1, 1)})
	if err != nil {
		t.Fatalf("CreateMultiPoint: %v", err)
	}
	if _, err := Triangulate(mp); err == nil {
		t.Error("expected an error for fewer than 3 points")
	}
}

func triangleArea(t Tri) float64 {
	return 0.5 * ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y))
}
