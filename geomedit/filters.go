package geomedit

import "github.com/gogeos/geos/geom"

// TranslateFilter offsets every coordinate by a fixed (Dx, Dy).
type TranslateFilter struct {
	Dx, Dy float64
}

func (f *TranslateFilter) Filter(seq *geom.Sequence, i int) (geom.Coordinate, bool) {
	c := seq.Get(i)
	return geom.NewXY(c.X+f.Dx, c.Y+f.Dy), f.Dx != 0 || f.Dy != 0
}

func (f *TranslateFilter) Done() bool { return false }

// ScaleFilter scales every coordinate about the origin by (Sx, Sy).
type ScaleFilter struct {
	Sx, Sy float64
}

func (f *ScaleFilter) Filter(seq *geom.Sequence, i int) (geom.Coordinate, bool) {
	c := seq.Get(i)
	return geom.NewXY(c.X*f.Sx, c.Y*f.Sy), f.Sx != 1 || f.Sy != 1
}

func (f *ScaleFilter) Done() bool { return false }

// PrecisionReduceFilter snaps every coordinate to pm's grid, the
// coordinate-level counterpart to geom.PrecisionModel.MakePrecise used
// when re-materializing a geometry under a new precision model.
type PrecisionReduceFilter struct {
	PM *geom.PrecisionModel
}

func (f *PrecisionReduceFilter) Filter(seq *geom.Sequence, i int) (geom.Coordinate, bool) {
	c := seq.Get(i)
	r := f.PM.MakePreciseCoordinate(c)
	return r, !r.Equals2D(c)
}

func (f *PrecisionReduceFilter) Done() bool { return false }
