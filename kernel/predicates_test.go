package kernel

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestOrientationIndexBasic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, q    geom.Coordinate
		want       Orientation
	}{
		{"ccw-left-turn", geom.NewXY(0, 0), geom.NewXY(1, 0), geom.NewXY(1, 1), CounterClockwise},
		{"cw-right-turn", geom.NewXY(0, 0), geom.NewXY(1, 0), geom.NewXY(1, -1), Clockwise},
		{"collinear", geom.NewXY(0, 0), geom.NewXY(1, 0), geom.NewXY(2, 0), Collinear},
	}
	for _, tt := range tests {
		if got := OrientationIndex(tt.a, tt.b, tt.q); got != tt.want {
			t.Errorf("%s: OrientationIndex = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOrientationIndexAntisymmetric(t *testing.T) {
	a, b, c := geom.NewXY(0, 0), geom.NewXY(5, 5), geom.NewXY(3, 1)
	if OrientationIndex(a, b, c) != -OrientationIndex(b, a, c) {
		t.Error("OrientationIndex(a,b,c) should equal -OrientationIndex(b,a,c)")
	}
}

func TestOrientationIndexNearlyCollinear(t *testing.T) {
	// Forces the triage stage to be inconclusive so stable/exact kick in.
	a := geom.NewXY(1000000.0, 1000000.0)
	b := geom.NewXY(2000000.0, 2000000.0)
	q := geom.NewXY(1500000.0, 1500000.0+1e-8)
	got := OrientationIndex(a, b, q)
	if got != CounterClockwise {
		t.Errorf("nearly-collinear orientation = %v, want CounterClockwise", got)
	}
}

func TestSignOfDet2x2(t *testing.T) {
	if got := SignOfDet2x2(1, 0, 0, 1); got != 1 {
		t.Errorf("SignOfDet2x2(1,0,0,1) = %d, want 1", got)
	}
	if got := SignOfDet2x2(0, 1, 1, 0); got != -1 {
		t.Errorf("SignOfDet2x2(0,1,1,0) = %d, want -1", got)
	}
	if got := SignOfDet2x2(2, 4, 1, 2); got != 0 {
		t.Errorf("SignOfDet2x2(2,4,1,2) = %d, want 0", got)
	}
}

func square(f *geom.Factory) *geom.LinearRing {
	r, _ := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(0, 0),
	})
	return r
}

func TestIsCCWDetectsOrientation(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	ccwRing := square(f)
	if !IsCCW(ccwRing.Sequence()) {
		t.Error("expected square built CCW to report IsCCW true")
	}
	cwRing := ccwRing.Reverse()
	if IsCCW(cwRing.Sequence()) {
		t.Error("expected reversed square to report IsCCW false")
	}
}

func TestPointInRing(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	ring := square(f)
	tests := []struct {
		name string
		p    geom.Coordinate
		want Location
	}{
		{"interior", geom.NewXY(5, 5), Interior},
		{"exterior", geom.NewXY(20, 20), Exterior},
		{"vertex", geom.NewXY(0, 0), Boundary},
		{"edge", geom.NewXY(5, 0), Boundary},
	}
	for _, tt := range tests {
		if got := PointInRing(tt.p, ring.Sequence()); got != tt.want {
			t.Errorf("%s: PointInRing(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestSegmentIntersectorProperCrossing(t *testing.T) {
	res := SegmentIntersector(geom.NewXY(0, 0), geom.NewXY(10, 10), geom.NewXY(0, 10), geom.NewXY(10, 0))
	if res.Kind != PointIntersection {
		t.Fatalf("Kind = %v, want PointIntersection", res.Kind)
	}
	want := geom.NewXY(5, 5)
	if !res.Points[0].Equals2D(want) {
		t.Errorf("Points[0] = %v, want %v", res.Points[0], want)
	}
}

func TestSegmentIntersectorEndpointTouchIsExact(t *testing.T) {
	p2 := geom.NewXY(5, 5)
	res := SegmentIntersector(geom.NewXY(0, 0), p2, geom.NewXY(5, 5), geom.NewXY(10, 0))
	if res.Kind != PointIntersection {
		t.Fatalf("Kind = %v, want PointIntersection", res.Kind)
	}
	if !res.Points[0].Equals2D(p2) {
		t.Errorf("endpoint touch must be exact: got %v, want %v", res.Points[0], p2)
	}
}

func TestSegmentIntersectorNoIntersection(t *testing.T) {
	res := SegmentIntersector(geom.NewXY(0, 0), geom.NewXY(1, 0), geom.NewXY(0, 5), geom.NewXY(1, 5))
	if res.Kind != NoIntersection {
		t.Errorf("Kind = %v, want NoIntersection", res.Kind)
	}
}

func TestSegmentIntersectorCollinearOverlap(t *testing.T) {
	res := SegmentIntersector(geom.NewXY(0, 0), geom.NewXY(10, 0), geom.NewXY(5, 0), geom.NewXY(15, 0))
	if res.Kind != CollinearIntersection {
		t.Fatalf("Kind = %v, want CollinearIntersection", res.Kind)
	}
	if !res.Points[0].Equals2D(geom.NewXY(5, 0)) || !res.Points[1].Equals2D(geom.NewXY(10, 0)) {
		t.Errorf("overlap = %v..%v, want (5,0)..(10,0)", res.Points[0], res.Points[1])
	}
}
