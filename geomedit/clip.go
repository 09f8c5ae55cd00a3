package geomedit

import "github.com/gogeos/geos/geom"

// ClippingRectangle clips line segments and closed rings against a fixed
// axis-aligned rectangle (segments with the Cohen-Sutherland outcode
// test, rings with Sutherland-Hodgman polygon clipping), per
// the rectangle-clipping fast path used ahead of full noding (folded into this
// package rather than overlay, since it is a general-purpose coordinate
// transform in the same family as the other geomedit filters, not part
// of OverlayNG's own noding/labelling pipeline).
type ClippingRectangle struct {
	MinX, MinY, MaxX, MaxY float64
}

const (
	codeInside = 0
	codeLeft   = 1
	codeRight  = 2
	codeBottom = 4
	codeTop    = 8
)

func (r ClippingRectangle) outcode(c geom.Coordinate) int {
	code := codeInside
	switch {
	case c.X < r.MinX:
		code |= codeLeft
	case c.X > r.MaxX:
		code |= codeRight
	}
	switch {
	case c.Y < r.MinY:
		code |= codeBottom
	case c.Y > r.MaxY:
		code |= codeTop
	}
	return code
}

// ClipSegment clips segment p0-p1 against r using Cohen-Sutherland,
// returning the clipped endpoints and false if the segment lies
// entirely outside r.
func (r ClippingRectangle) ClipSegment(p0, p1 geom.Coordinate) (geom.Coordinate, geom.Coordinate, bool) {
	code0, code1 := r.outcode(p0), r.outcode(p1)
	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return p0, p1, false
		}
		var out int
		if code0 != 0 {
			out = code0
		} else {
			out = code1
		}
		var x, y float64
		switch {
		case out&codeTop != 0:
			x = p0.X + (p1.X-p0.X)*(r.MaxY-p0.Y)/(p1.Y-p0.Y)
			y = r.MaxY
		case out&codeBottom != 0:
			x = p0.X + (p1.X-p0.X)*(r.MinY-p0.Y)/(p1.Y-p0.Y)
			y = r.MinY
		case out&codeRight != 0:
			y = p0.Y + (p1.Y-p0.Y)*(r.MaxX-p0.X)/(p1.X-p0.X)
			x = r.MaxX
		case out&codeLeft != 0:
			y = p0.Y + (p1.Y-p0.Y)*(r.MinX-p0.X)/(p1.X-p0.X)
			x = r.MinX
		}
		if out == code0 {
			p0 = geom.NewXY(x, y)
			code0 = r.outcode(p0)
		} else {
			p1 = geom.NewXY(x, y)
			code1 = r.outcode(p1)
		}
	}
}

// ClipRing clips a closed ring's boundary against r, returning the
// surviving chain of points (possibly empty) using the Sutherland-
// Hodgman polygon-clipping algorithm -- run once per rectangle edge so
// the result stays a single simple closed polygon.
func (r ClippingRectangle) ClipRing(coords []geom.Coordinate) []geom.Coordinate {
	if len(coords) < 4 {
		return nil
	}
	poly := coords[:len(coords)-1] // drop the closing duplicate, re-close at the end
	edges := []struct {
		inside func(geom.Coordinate) bool
		x, y   float64
		vert   bool
	}{
		{func(c geom.Coordinate) bool { return c.X >= r.MinX }, r.MinX, 0, true},
		{func(c geom.Coordinate) bool { return c.X <= r.MaxX }, r.MaxX, 0, true},
		{func(c geom.Coordinate) bool { return c.Y >= r.MinY }, 0, r.MinY, false},
		{func(c geom.Coordinate) bool { return c.Y <= r.MaxY }, 0, r.MaxY, false},
	}
	for _, edge := range edges {
		if len(poly) == 0 {
			break
		}
		var out []geom.Coordinate
		for i := 0; i < len(poly); i++ {
			cur := poly[i]
			prev := poly[(i-1+len(poly))%len(poly)]
			curIn, prevIn := edge.inside(cur), edge.inside(prev)
			if curIn {
				if !prevIn {
					out = append(out, edgeIntersect(prev, cur, edge.x, edge.y, edge.vert))
				}
				out = append(out, cur)
			} else if prevIn {
				out = append(out, edgeIntersect(prev, cur, edge.x, edge.y, edge.vert))
			}
		}
		poly = out
	}
	if len(poly) == 0 {
		return nil
	}
	return append(append([]geom.Coordinate{}, poly...), poly[0])
}

func edgeIntersect(a, b geom.Coordinate, x, y float64, vert bool) geom.Coordinate {
	if vert {
		t := (x - a.X) / (b.X - a.X)
		return geom.NewXY(x, a.Y+t*(b.Y-a.Y))
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return geom.NewXY(a.X+t*(b.X-a.X), y)
}
