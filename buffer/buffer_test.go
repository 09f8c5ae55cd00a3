package buffer

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestComputeBufferOfPointIsRoughlyCircular(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	p, err := f.CreatePoint(geom.NewXY(0, 0))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	out, err := Compute(p, 10, Params{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	poly, ok := out.(*geom.Polygon)
	if !ok {
		t.Fatalf("expected a Polygon, got %T", out)
	}
	env := poly.Envelope()
	if env.Width() < 19.5 || env.Width() > 20.5 {
		t.Errorf("expected envelope width near 20, got %v", env.Width())
	}
}

func TestComputeBufferOfLineStringCoversSegment(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	ls, err := f.CreateLineString([]geom.Coordinate{geom.NewXY(0, 0), geom.NewXY(10, 0)})
	if err != nil {
		t.Fatalf("CreateLineString: %v", err)
	}
	out, err := Compute(ls, 2, Params{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if out.IsEmpty() {
		t.Fatal("expected a non-empty buffered region")
	}
	env := out.Envelope()
	if env.Width() < 13.5 {
		t.Errorf("expected the envelope to span the segment plus round caps, got width %v", env.Width())
	}
}

func TestComputeZeroDistanceReturnsInputUnchanged(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	p, err := f.CreatePoint(geom.NewXY(1, 2))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	out, err := Compute(p, 0, Params{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if out != geom.Geometry(p) {
		t.Error("expected the exact same geometry back for a zero distance")
	}
}

func TestComputeNegativeDistanceIsUnsupported(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	p, err := f.CreatePoint(geom.NewXY(0, 0))
	if err != nil {
		t.Fatalf("CreatePoint: %v", err)
	}
	if _, err := Compute(p, -1, Params{}); err == nil {
		t.Error("expected an error for negative buffer distance")
	}
}

func TestComputeBufferOfPolygonContainsOriginal(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(0, 0),
	})
	if err != nil {
		t.Fatalf("CreateLinearRing: %v", err)
	}
	poly, err := f.CreatePolygon(shell, nil)
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	out, err := Compute(poly, 2, Params{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	env := out.Envelope()
	if env.Width() < 13.5 || env.Height() < 13.5 {
		t.Errorf("expected the buffered envelope to extend outward, got %v x %v", env.Width(), env.Height())
	}
}
