package kernel

import (
	"testing"

	"github.com/gogeos/geos/geom"
)

func TestInCircleDetectsPointInsideUnitCircle(t *testing.T) {
	a := geom.NewXY(1, 0)
	b := geom.NewXY(0, 1)
	c := geom.NewXY(-1, 0)
	inside := geom.NewXY(0, 0.5)
	outside := geom.NewXY(0, 5)
	if !InCircle(a, b, c, inside) {
		t.Error("expected a point near the center to be reported inside")
	}
	if InCircle(a, b, c, outside) {
		t.Error("expected a distant point to be reported outside")
	}
}

func TestInCircleRejectsPointOnCircle(t *testing.T) {
	a := geom.NewXY(1, 0)
	b := geom.NewXY(0, 1)
	c := geom.NewXY(-1, 0)
	onCircle := geom.NewXY(0, -1)
	if InCircle(a, b, c, onCircle) {
		t.Error("expected a cocircular point not to be reported strictly inside")
	}
}
