package overlay

import (
	"math"
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestUnaryUnionOfOverlappingSquaresMatchesPairwiseUnion(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 5, 5, 15, 15)

	pairwise, err := Compute(a, b, Union)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	coll, err := f.CreateGeometryCollection([]geom.Geometry{a, b})
	if err != nil {
		t.Fatalf("CreateGeometryCollection: %v", err)
	}
	out, err := UnaryUnion(coll)
	if err != nil {
		t.Fatalf("UnaryUnion: %v", err)
	}

	if math.Abs(geometryArea(out)-geometryArea(pairwise)) > 1e-6 {
		t.Errorf("UnaryUnion area = %v, want %v (pairwise)", geometryArea(out), geometryArea(pairwise))
	}
}

func TestUnaryUnionOfMixedCollectionKeepsDisjointPoint(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 10, 10)
	b := square(t, f, 5, 5, 15, 15)
	pt, err := f.CreatePoint(geom.NewXY(20, 20))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}

	coll, err := f.CreateGeometryCollection([]geom.Geometry{a, b, pt})
	if err != nil {
		t.Fatalf("CreateGeometryCollection: %v", err)
	}
	out, err := UnaryUnion(coll)
	if err != nil {
		t.Fatalf("UnaryUnion: %v", err)
	}

	result, ok := out.(*geom.GeometryCollection)
	if !ok {
		t.Fatalf("expected *geom.GeometryCollection, got %T", out)
	}
	if result.NumGeometries() != 2 {
		t.Fatalf("got %d parts, want 2 (areal + puntal): %v", result.NumGeometries(), result.Geometries())
	}

	var sawArea, sawPoint bool
	for i := 0; i < result.NumGeometries(); i++ {
		switch g := result.GeometryN(i).(type) {
		case *geom.Polygon, *geom.MultiPolygon:
			sawArea = true
			if math.Abs(geometryArea(g)-175.0) > 1e-6 {
				t.Errorf("areal part area = %v, want 175", geometryArea(g))
			}
		case *geom.Point:
			sawPoint = true
			if c := g.Coordinate(); !c.Equals2D(geom.NewXY(20, 20)) {
				t.Errorf("puntal part = %v, want (20, 20)", c)
			}
		}
	}
	if !sawArea || !sawPoint {
		t.Errorf("expected both an areal and a puntal part, sawArea=%v sawPoint=%v", sawArea, sawPoint)
	}
}

func TestUnaryUnionDropsPointCoveredByArealResult(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := square(t, f, 0, 0, 10, 10)
	pt, err := f.CreatePoint(geom.NewXY(5, 5))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}

	coll, err := f.CreateGeometryCollection([]geom.Geometry{a, pt})
	if err != nil {
		t.Fatalf("CreateGeometryCollection: %v", err)
	}
	out, err := UnaryUnion(coll)
	if err != nil {
		t.Fatalf("UnaryUnion: %v", err)
	}

	if _, ok := out.(*geom.GeometryCollection); ok {
		t.Fatalf("expected the covered point to be dropped, leaving a single areal result, got %T", out)
	}
	if math.Abs(geometryArea(out)-100.0) > 1e-6 {
		t.Errorf("area = %v, want 100", geometryArea(out))
	}
}
