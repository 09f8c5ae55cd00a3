package relate

import (
	"github.com/gogeos/geos/geom"
	"github.com/gogeos/geos/kernel"
	"github.com/gogeos/geos/overlay"
	"github.com/gogeos/geos/planar"
)

// piece is one sampled representative of a geometry's interior or
// boundary locus, used to classify that locus against the other operand.
type piece struct {
	locus kernel.Location
	dim   Dim
	at    geom.Coordinate
}

// piecesOf samples g's boundary (for areal g) or interior+boundary (for
// linear/point g) as a finite set of representative points/segment-
// midpoints. Areal geometries contribute only boundary pieces here --
// their interior locus is handled separately in Compute, since a 2D
// interior cannot be faithfully represented by finitely many points the
// way a 1D or 0D locus can.
func piecesOf(g geom.Geometry, rule planar.BoundaryNodeRule) []piece {
	var out []piece
	switch g.Dimension() {
	case 2:
		for _, s := range polygonBoundarySegments(g) {
			out = append(out, piece{locus: kernel.Boundary, dim: Dim1, at: s.mid})
		}
	case 1:
		for _, s := range lineSegments(g) {
			out = append(out, piece{locus: kernel.Interior, dim: Dim1, at: s.mid})
		}
		for c, deg := range lineEndpoints(g) {
			loc := kernel.Interior
			if rule.IsInBoundary(deg) {
				loc = kernel.Boundary
			}
			out = append(out, piece{locus: loc, dim: Dim0, at: geom.NewXY(c[0], c[1])})
		}
	case 0:
		for _, c := range pointCoordinates(g) {
			out = append(out, piece{locus: kernel.Interior, dim: Dim0, at: c})
		}
	}
	return out
}

// classifyAgainst locates pt relative to g's Interior/Boundary/Exterior,
// dispatching on g's dimension.
func classifyAgainst(pt geom.Coordinate, g geom.Geometry, rule planar.BoundaryNodeRule) kernel.Location {
	switch g.Dimension() {
	case 2:
		return locateInAreal(pt, g)
	case 1:
		return locateOnLinear(pt, g, rule)
	default:
		for _, c := range pointCoordinates(g) {
			if c.Equals2D(pt) {
				return kernel.Interior
			}
		}
		return kernel.Exterior
	}
}

// Compute builds the DE-9IM matrix between a and b.
//
// Boundary and lower-dimension interior loci are classified by sampling
// each geometry's segments/vertices (piecesOf) and locating each
// representative against the other operand (classifyAgainst); two areal
// operands additionally get their Interior-Interior, Interior-Exterior,
// and Exterior-Interior cells from overlay.Compute (Intersection and
// Difference in both directions), since a 2D interior cannot be
// sampled as a finite point set the way boundary/linear/point loci can.
//
// Known simplification: piece sampling does not re-node the two
// geometries against each other first, so a segment of one operand that
// crosses the other's boundary strictly inside the sampled segment (not
// already at a shared vertex) is classified by its single midpoint
// rather than split at the true crossing -- the same edge-merge
// simplification documented for overlay.buildGraph.
func Compute(a, b geom.Geometry, rule planar.BoundaryNodeRule) (*Matrix, error) {
	if rule == nil {
		rule = planar.ModTwoBoundaryNodeRule
	}
	mx := NewMatrix()
	if a.IsEmpty() || b.IsEmpty() {
		return mx, nil
	}
	mx.Set(kernel.Exterior, kernel.Exterior, Dim2)

	for _, pc := range piecesOf(a, rule) {
		mx.Set(pc.locus, classifyAgainst(pc.at, b, rule), pc.dim)
	}
	for _, pc := range piecesOf(b, rule) {
		mx.Set(classifyAgainst(pc.at, a, rule), pc.locus, pc.dim)
	}

	switch {
	case a.Dimension() == 2 && b.Dimension() == 2:
		if err := computeArealInterior(mx, a, b); err != nil {
			return nil, err
		}
	case a.Dimension() == 2:
		mx.Set(kernel.Interior, kernel.Exterior, Dim2)
	case b.Dimension() == 2:
		mx.Set(kernel.Exterior, kernel.Interior, Dim2)
	}
	return mx, nil
}

// computeArealInterior fills II/IE/EI for two areal operands via
// overlay.Compute: a 2D interior can only be shown nonempty (and hence
// dimension 2, never 0 or 1) by an actual area computation, so this
// reuses the overlay engine rather than approximating from boundary
// samples alone.
func computeArealInterior(mx *Matrix, a, b geom.Geometry) error {
	inter, err := overlay.Compute(a, b, overlay.Intersection)
	if err != nil {
		return err
	}
	if !inter.IsEmpty() {
		mx.Set(kernel.Interior, kernel.Interior, Dim2)
	}
	aMinusB, err := overlay.Compute(a, b, overlay.Difference)
	if err != nil {
		return err
	}
	if !aMinusB.IsEmpty() {
		mx.Set(kernel.Interior, kernel.Exterior, Dim2)
	}
	bMinusA, err := overlay.Compute(b, a, overlay.Difference)
	if err != nil {
		return err
	}
	if !bMinusA.IsEmpty() {
		mx.Set(kernel.Exterior, kernel.Interior, Dim2)
	}
	return nil
}
