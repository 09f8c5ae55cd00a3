// Package planar builds the half-edge topology graph that overlay,
// relate, polygonize, and area-label validation all operate on: nodes
// are equivalence classes of half-edges sharing an origin, edges carry a
// Label recording each input geometry's Location on either side, and
// Depth accumulates signed interior-crossing counts so area labels can
// be normalized.
//
// Grounded on golang-geo/s2/builder_graph.go's arena-of-indices edge
// representation (slices + int32 indices instead of a pointer graph)
// and on original_source/src/geomgraph/{Quadrant,Depth}.cpp for the CCW
// edge ordering and depth-counter algorithms.
package planar

import "github.com/gogeos/geos/kernel"

// Side identifies one side of a directed half-edge, or the edge itself.
type Side int

const (
	On Side = iota
	Left
	Right
)

// Label records, for up to two input geometries, the kernel.Location of
// the edge itself and of its left/right sides.
//
// Grounded on original_source/src/geomgraph/Depth.cpp's [2][3] layout
// (geomIndex x {On,Left,Right}); unset entries read as Exterior, since
// an edge only ever touches the geometries it was extracted from.
type Label struct {
	loc [2][3]kernel.Location
	set [2][3]bool
}

// NewLabel returns a label with every entry unset (reads as Exterior).
func NewLabel() Label { return Label{} }

// SetLocation records loc for geomIndex's side.
func (l *Label) SetLocation(geomIndex int, side Side, loc kernel.Location) {
	l.loc[geomIndex][side] = loc
	l.set[geomIndex][side] = true
}

// Location returns the recorded location, or Exterior if never set.
func (l Label) Location(geomIndex int, side Side) kernel.Location {
	return l.loc[geomIndex][side]
}

// IsSet reports whether geomIndex's side has ever been assigned.
func (l Label) IsSet(geomIndex int, side Side) bool {
	return l.set[geomIndex][side]
}

// Flip swaps Left and Right for both geometries, as required when a
// half-edge's Sym is labelled from the same underlying edge.
func (l Label) Flip() Label {
	out := l
	for g := 0; g < 2; g++ {
		out.loc[g][Left], out.loc[g][Right] = out.loc[g][Right], out.loc[g][Left]
		out.set[g][Left], out.set[g][Right] = out.set[g][Right], out.set[g][Left]
	}
	return out
}

// IsArea reports whether geomIndex has any side labelled (i.e. this edge
// was extracted from an areal input and carries left/right information,
// as opposed to a purely linear input which only ever sets On).
func (l Label) IsArea(geomIndex int) bool {
	return l.set[geomIndex][Left] || l.set[geomIndex][Right]
}
