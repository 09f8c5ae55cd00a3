package overlay

import (
	"sort"
	"testing"

	"github.com/gogeos/geos/geom"
)

func lineString(t *testing.T, f *geom.Factory, coords ...float64) *geom.LineString {
	t.Helper()
	if len(coords)%2 != 0 {
		t.Fatalf("odd coordinate count")
	}
	pts := make([]geom.Coordinate, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		pts = append(pts, geom.NewXY(coords[i], coords[i+1]))
	}
	ls, err := f.CreateLineString(pts)
	if err != nil {
		t.Fatalf("CreateLineString: %v", err)
	}
	return ls
}

// sortedSegments returns each line's two endpoints as a sorted-pair key,
// order-independent, so the dissolve result can be compared regardless of
// which direction each merged chain happens to run.
func sortedSegments(g geom.Geometry) [][2]geom.Coordinate {
	var lines []*geom.LineString
	switch t := g.(type) {
	case *geom.LineString:
		lines = []*geom.LineString{t}
	case *geom.MultiLineString:
		lines = t.LineStrings()
	}
	var out [][2]geom.Coordinate
	for _, l := range lines {
		seq := l.Sequence()
		n := seq.Len()
		for i := 0; i < n-1; i++ {
			a, b := seq.Get(i), seq.Get(i+1)
			if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
				a, b = b, a
			}
			out = append(out, [2]geom.Coordinate{a, b})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0].X != out[j][0].X {
			return out[i][0].X < out[j][0].X
		}
		return out[i][0].Y < out[j][0].Y
	})
	return out
}

func TestUnionOfCrossingLinesNodesAndDissolvesToFourSegments(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := lineString(t, f, 0, 0, 10, 10)
	b := lineString(t, f, 0, 10, 10, 0)

	out, err := Compute(a, b, Union)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	segs := sortedSegments(out)
	want := [][2]geom.Coordinate{
		{geom.NewXY(0, 0), geom.NewXY(5, 5)},
		{geom.NewXY(5, 5), geom.NewXY(10, 10)},
		{geom.NewXY(5, 5), geom.NewXY(10, 0)},
		{geom.NewXY(0, 10), geom.NewXY(5, 5)},
	}
	sort.Slice(want, func(i, j int) bool {
		if want[i][0].X != want[j][0].X {
			return want[i][0].X < want[j][0].X
		}
		return want[i][0].Y < want[j][0].Y
	})

	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d: %v", len(segs), len(want), segs)
	}
	for i := range segs {
		if !segs[i][0].Equals2D(want[i][0]) || !segs[i][1].Equals2D(want[i][1]) {
			t.Errorf("segment %d = %v, want %v", i, segs[i], want[i])
		}
	}
}

func TestIntersectionOfCrossingLinesWithNoCollinearOverlapIsEmpty(t *testing.T) {
	f := geom.NewFactory(nil, 0)
	a := lineString(t, f, 0, 0, 10, 10)
	b := lineString(t, f, 0, 10, 10, 0)

	out, err := Compute(a, b, Intersection)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !out.IsEmpty() {
		t.Errorf("expected empty intersection (crossing at a single point is not a Line result), got %v", sortedSegments(out))
	}
}
