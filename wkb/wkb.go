// Package wkb reads and writes the OGC Well-Known Binary geometry format.
// Each geometry is one byte-order marker, a geometry
// type code with Z/M dimensionality folded into its high digits (the ISO
// SQL/MM convention: +1000 for Z, +2000 for M, +3000 for ZM), and the
// type's own binary body -- encoded with encoding/binary directly, since
// no third-party binary codec in the example pack fits a fixed, already-
// specified wire layout better than the standard library.
package wkb

import (
	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
)

type geomCode uint32

const (
	codePoint              geomCode = 1
	codeLineString         geomCode = 2
	codePolygon            geomCode = 3
	codeMultiPoint         geomCode = 4
	codeMultiLineString    geomCode = 5
	codeMultiPolygon       geomCode = 6
	codeGeometryCollection geomCode = 7
)

const (
	zFlag  = 1000
	mFlag  = 2000
	zmFlag = 3000
)

func baseCode(code uint32) (geomCode, geom.Shape) {
	switch {
	case code >= zmFlag+1 && code < zmFlag+8:
		return geomCode(code - zmFlag), geom.XYZM
	case code >= mFlag+1 && code < mFlag+8:
		return geomCode(code - mFlag), geom.XYM
	case code >= zFlag+1 && code < zFlag+8:
		return geomCode(code - zFlag), geom.XYZ
	default:
		return geomCode(code), geom.XY
	}
}

func encodedCode(c geomCode, shape geom.Shape) uint32 {
	base := uint32(c)
	switch shape {
	case geom.XYZ:
		return base + zFlag
	case geom.XYM:
		return base + mFlag
	case geom.XYZM:
		return base + zmFlag
	default:
		return base
	}
}

func errUnsupportedType(code uint32) error {
	return gerr.NewInvalidArgument("wkb: unsupported geometry type code %d", code)
}
