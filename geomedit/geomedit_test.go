package geomedit

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestEditorTranslatesLineString(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	ls, err := f.CreateLineString([]geom.Coordinate{geom.NewXY(0, 0), geom.NewXY(1, 1)})
	if err != nil {
		t.Fatalf("CreateLineString: %v", err)
	}
	e := NewEditor(f)
	out, err := e.Edit(ls, &TranslateFilter{Dx: 2, Dy: 3})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	got := out.(*geom.LineString).Sequence()
	if !got.Get(0).Equals2D(geom.NewXY(2, 3)) || !got.Get(1).Equals2D(geom.NewXY(3, 4)) {
		t.Errorf("unexpected translated coordinates: %v, %v", got.Get(0), got.Get(1))
	}
}

func TestEditorScalesPolygon(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	shell, err := f.CreateLinearRing([]geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(1, 0), geom.NewXY(1, 1), geom.NewXY(0, 1), geom.NewXY(0, 0),
	})
	if err != nil {
		t.Fatalf("CreateLinearRing: %v", err)
	}
	poly, err := f.CreatePolygon(shell, nil)
	if err != nil {
		t.Fatalf("CreatePolygon: %v", err)
	}
	e := NewEditor(f)
	out, err := e.Edit(poly, &ScaleFilter{Sx: 2, Sy: 2})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	scaled := out.(*geom.Polygon).Shell().Sequence()
	if !scaled.Get(2).Equals2D(geom.NewXY(2, 2)) {
		t.Errorf("expected (2,2) after scaling, got %v", scaled.Get(2))
	}
}

func TestClipSegmentEntirelyOutsideIsRejected(t *testing.T) {
	r := ClippingRectangle{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	_, _, ok := r.ClipSegment(geom.NewXY(5, 5), geom.NewXY(6, 6))
	if ok {
		t.Error("expected segment entirely outside rectangle to be rejected")
	}
}

func TestClipSegmentCrossingIsTrimmed(t *testing.T) {
	r := ClippingRectangle{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	p0, p1, ok := r.ClipSegment(geom.NewXY(-5, 5), geom.NewXY(15, 5))
	if !ok {
		t.Fatal("expected crossing segment to survive clipping")
	}
	if p0.X != 0 || p1.X != 10 {
		t.Errorf("expected clipped endpoints at x=0 and x=10, got %v, %v", p0, p1)
	}
}

func TestClipRingAgainstSmallerRectangle(t *testing.T) {
	r := ClippingRectangle{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	square := []geom.Coordinate{
		geom.NewXY(0, 0), geom.NewXY(4, 0), geom.NewXY(4, 4), geom.NewXY(0, 4), geom.NewXY(0, 0),
	}
	clipped := r.ClipRing(square)
	if len(clipped) == 0 {
		t.Fatal("expected nonempty clipped ring")
	}
	for _, c := range clipped {
		if c.X < r.MinX-1e-9 || c.X > r.MaxX+1e-9 || c.Y < r.MinY-1e-9 || c.Y > r.MaxY+1e-9 {
			t.Errorf("clipped point %v falls outside rectangle", c)
		}
	}
}
