package precision

import (
	"math"

	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/index/strtree"
	"github.com/gogeos/geos/kernel"
)

// HotPixel is the snap target for one rounded vertex: a square of side
// size centred on center. Any other vertex or segment passing through
// this square must be snapped to its centre.
type HotPixel struct {
	Center geom.Coordinate
	Size   float64
}

// Envelope returns the hot pixel's square extent.
func (h HotPixel) Envelope() geom.Envelope {
	half := h.Size / 2
	return geom.NewEnvelope(h.Center.X-half, h.Center.X+half, h.Center.Y-half, h.Center.Y+half)
}

// Intersects reports whether segment p0-p1 passes through this pixel.
func (h HotPixel) Intersects(p0, p1 geom.Coordinate) bool {
	env := h.Envelope()
	segEnv := geom.NewEnvelope(p0.X, p1.X, p0.Y, p1.Y)
	if !env.Intersects(segEnv) {
		return false
	}
	if h.Center.Equals2D(p0) || h.Center.Equals2D(p1) {
		return true
	}
	corners := [4]geom.Coordinate{
		geom.NewXY(env.MinX, env.MinY), geom.NewXY(env.MaxX, env.MinY),
		geom.NewXY(env.MaxX, env.MaxY), geom.NewXY(env.MinX, env.MaxY),
	}
	for i := 0; i < 4; i++ {
		res := kernel.SegmentIntersector(p0, p1, corners[i], corners[(i+1)%4])
		if res.Kind != kernel.NoIntersection {
			return true
		}
	}
	return false
}

// HotPixelIndex is a spatial index of hot pixels on a uniform grid of
// the given size, backed by index/strtree.
type HotPixelIndex struct {
	size float64
	tree *strtree.Tree[HotPixel]
	seen map[[2]float64]bool
}

// NewHotPixelIndex returns an empty index snapping to a grid of the
// given cell size.
func NewHotPixelIndex(size float64) *HotPixelIndex {
	return &HotPixelIndex{size: size, tree: strtree.New[HotPixel](), seen: map[[2]float64]bool{}}
}

// Round maps a coordinate to the centre of the grid cell containing it.
func (idx *HotPixelIndex) Round(c geom.Coordinate) geom.Coordinate {
	return geom.NewXY(
		math.Round(c.X/idx.size)*idx.size,
		math.Round(c.Y/idx.size)*idx.size,
	)
}

// Add registers the hot pixel for c's grid cell, if not already present.
func (idx *HotPixelIndex) Add(c geom.Coordinate) HotPixel {
	rc := idx.Round(c)
	key := [2]float64{rc.X, rc.Y}
	hp := HotPixel{Center: rc, Size: idx.size}
	if !idx.seen[key] {
		idx.seen[key] = true
		idx.tree.Insert(hp.Envelope(), hp)
	}
	return hp
}

// Query returns every hot pixel whose envelope intersects env.
func (idx *HotPixelIndex) Query(env geom.Envelope) []HotPixel {
	return idx.tree.QueryAll(env)
}
