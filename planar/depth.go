package planar

import "github.com/gogeos/geos/kernel"

const depthNull = -1

// Depth accumulates a signed interior-crossing count for each side of an
// edge, for up to two input geometries, so that area labels can be
// normalized to the set {Exterior, Interior} regardless of how many
// overlapping rings crossed that side.
//
// Grounded verbatim on original_source/src/geomgraph/Depth.cpp's
// depth[2][3] counter array and its add/normalize/getDelta algorithm.
type Depth struct {
	depth [2][3]int
}

// NewDepth returns a depth counter with every entry at the null sentinel.
func NewDepth() *Depth {
	d := &Depth{}
	for i := range d.depth {
		for j := range d.depth[i] {
			d.depth[i][j] = depthNull
		}
	}
	return d
}

func depthAtLocation(loc kernel.Location) int {
	if loc == kernel.Exterior {
		return 0
	}
	if loc == kernel.Interior {
		return 1
	}
	return depthNull
}

// Get returns the raw counter for geomIndex's side.
func (d *Depth) Get(geomIndex int, side Side) int { return d.depth[geomIndex][side] }

// Set assigns the raw counter for geomIndex's side.
func (d *Depth) Set(geomIndex int, side Side, value int) { d.depth[geomIndex][side] = value }

// Location returns the counter reinterpreted as a Location: any positive
// count means Interior.
func (d *Depth) Location(geomIndex int, side Side) kernel.Location {
	if d.depth[geomIndex][side] <= 0 {
		return kernel.Exterior
	}
	return kernel.Interior
}

// Add increments geomIndex's side counter when loc is Interior, modelling
// one more ring boundary crossed into that geometry's interior.
func (d *Depth) Add(geomIndex int, side Side, loc kernel.Location) {
	if loc == kernel.Interior {
		d.depth[geomIndex][side]++
	}
}

// AddLabel folds every Interior side of lbl into the running counts.
func (d *Depth) AddLabel(lbl Label) {
	for g := 0; g < 2; g++ {
		for _, side := range [2]Side{Left, Right} {
			if lbl.IsSet(g, side) {
				d.Add(g, side, lbl.Location(g, side))
			}
		}
	}
}

// IsNull reports whether geomIndex has never been touched.
func (d *Depth) IsNull(geomIndex int) bool { return d.depth[geomIndex][Left] == depthNull }

// Delta returns the right-minus-left count for geomIndex, used to detect
// a net topology inconsistency (it must always be even for a closed
// ring set).
func (d *Depth) Delta(geomIndex int) int {
	return d.depth[geomIndex][Right] - d.depth[geomIndex][Left]
}

// Normalize reduces each geometry's Left/Right counts to the set {0,1},
// per original_source/src/geomgraph/Depth.cpp's normalize(): subtract
// the smaller of the two (floored at 0) from both, then clamp any
// remaining positive value to 1.
func (d *Depth) Normalize() {
	for i := 0; i < 2; i++ {
		if d.IsNull(i) {
			continue
		}
		minDepth := d.depth[i][Left]
		if d.depth[i][Right] < minDepth {
			minDepth = d.depth[i][Right]
		}
		if minDepth < 0 {
			minDepth = 0
		}
		for _, side := range [2]Side{Left, Right} {
			newValue := 0
			if d.depth[i][side] > minDepth {
				newValue = 1
			}
			d.depth[i][side] = newValue
		}
	}
}
