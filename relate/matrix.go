// Package relate computes the Dimensionally Extended 9-Intersection
// Model (DE-9IM) matrix between two geometries and evaluates the
// standard named predicates and pattern strings over it,
// §4.9.
package relate

import (
	"fmt"
	"strings"

	"github.com/gogeos/geos/kernel"
)

// Dim is one DE-9IM matrix entry: the dimension of the intersection of
// the corresponding locus pair, or DimFalse if they do not intersect.
type Dim int8

const (
	DimFalse Dim = -1
	Dim0     Dim = 0
	Dim1     Dim = 1
	Dim2     Dim = 2
)

func (d Dim) String() string {
	if d == DimFalse {
		return "F"
	}
	return fmt.Sprintf("%d", int(d))
}

func rowIndex(loc kernel.Location) int {
	switch loc {
	case kernel.Interior:
		return 0
	case kernel.Boundary:
		return 1
	default:
		return 2
	}
}

// Matrix is the 3x3 Interior/Boundary/Exterior x Interior/Boundary/
// Exterior intersection dimension grid.
type Matrix struct {
	m [3][3]Dim
}

// NewMatrix returns a matrix with every entry set to DimFalse.
func NewMatrix() *Matrix {
	mx := &Matrix{}
	for i := range mx.m {
		for j := range mx.m[i] {
			mx.m[i][j] = DimFalse
		}
	}
	return mx
}

// Set raises the entry at (locA, locB) to d if d is a higher dimension
// than what is already recorded there -- matrix entries only ever grow,
// since a locus pair's intersection dimension is the max over every
// witness found during Compute.
func (mx *Matrix) Set(locA, locB kernel.Location, d Dim) {
	i, j := rowIndex(locA), rowIndex(locB)
	if d > mx.m[i][j] {
		mx.m[i][j] = d
	}
}

// Get returns the entry at (locA, locB).
func (mx *Matrix) Get(locA, locB kernel.Location) Dim {
	return mx.m[rowIndex(locA)][rowIndex(locB)]
}

// String renders the matrix as the standard 9-character DE-9IM code,
// row-major over (Interior, Boundary, Exterior) x (Interior, Boundary,
// Exterior).
func (mx *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b.WriteString(mx.m[i][j].String())
		}
	}
	return b.String()
}

// Matches reports whether the matrix satisfies pattern, a 9-character
// DE-9IM pattern string using '0','1','2' (exact dimension), 'T' (any
// dimension present, i.e. not F), 'F' (not present), or '*' (don't care).
func (mx *Matrix) Matches(pattern string) bool {
	if len(pattern) != 9 {
		return false
	}
	code := mx.String()
	for i := 0; i < 9; i++ {
		p, c := pattern[i], code[i]
		switch p {
		case '*':
			continue
		case 'T':
			if c == 'F' {
				return false
			}
		case 'F':
			if c != 'F' {
				return false
			}
		case '0', '1', '2':
			if c != p {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Named predicates, per the standard OGC SFS pattern table.

func (mx *Matrix) Equals(dimA, dimB int) bool {
	if dimA != dimB {
		return false
	}
	return mx.Matches("T*F**FFF*")
}

func (mx *Matrix) Disjoint() bool {
	return mx.Matches("FF*FF****")
}

func (mx *Matrix) Intersects() bool {
	return !mx.Disjoint()
}

func (mx *Matrix) Touches() bool {
	return mx.Matches("FT*******") || mx.Matches("F**T*****") || mx.Matches("F***T****")
}

func (mx *Matrix) Within() bool {
	return mx.Matches("T*F**F***")
}

func (mx *Matrix) Contains() bool {
	return mx.Matches("T*****FF*")
}

func (mx *Matrix) Covers() bool {
	return mx.Matches("T*****FF*") || mx.Matches("*T****FF*") || mx.Matches("***T**FF*") || mx.Matches("****T*FF*")
}

func (mx *Matrix) CoveredBy() bool {
	return mx.Matches("T*F**F***") || mx.Matches("*TF**F***") || mx.Matches("**FT*F***") || mx.Matches("**F*TF***")
}

// Crosses applies the dimension-dependent crossing pattern: a/b of
// differing dimension uses the asymmetric "T*T******"/"T*****T**" forms,
// equal (linear) dimension uses "0*******" on the interior/interior cell.
func (mx *Matrix) Crosses(dimA, dimB int) bool {
	if dimA < dimB {
		return mx.Matches("T*T******")
	}
	if dimA > dimB {
		return mx.Matches("T*****T**")
	}
	if dimA == 1 && dimB == 1 {
		return mx.Get(kernel.Interior, kernel.Interior) == Dim0
	}
	return false
}

func (mx *Matrix) Overlaps(dimA, dimB int) bool {
	if dimA == dimB {
		if dimA == 2 || dimA == 0 {
			return mx.Matches("T*T***T**")
		}
		return mx.Matches("1*T***T**")
	}
	return false
}
