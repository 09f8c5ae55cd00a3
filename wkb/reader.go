package wkb

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
)

// Read decodes a single OGC Well-Known Binary geometry from r, building
// the result through factory.
func Read(r io.Reader, factory *geom.Factory) (geom.Geometry, error) {
	return readGeometry(r, factory)
}

func readByteOrder(r io.Reader) (binary.ByteOrder, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, err
	}
	if b[0] == 0 {
		return binary.BigEndian, nil
	}
	return binary.LittleEndian, nil
}

func readUint32(r io.Reader, bo binary.ByteOrder) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return bo.Uint32(buf[:]), nil
}

func readFloat64(r io.Reader, bo binary.ByteOrder) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(bo.Uint64(buf[:])), nil
}

func readHeader(r io.Reader) (binary.ByteOrder, geomCode, geom.Shape, error) {
	bo, err := readByteOrder(r)
	if err != nil {
		return nil, 0, 0, err
	}
	code, err := readUint32(r, bo)
	if err != nil {
		return nil, 0, 0, err
	}
	c, shape := baseCode(code)
	return bo, c, shape, nil
}

func readCoordinate(r io.Reader, bo binary.ByteOrder, shape geom.Shape) (geom.Coordinate, error) {
	x, err := readFloat64(r, bo)
	if err != nil {
		return geom.Coordinate{}, err
	}
	y, err := readFloat64(r, bo)
	if err != nil {
		return geom.Coordinate{}, err
	}
	switch shape {
	case geom.XYZ:
		z, err := readFloat64(r, bo)
		if err != nil {
			return geom.Coordinate{}, err
		}
		return geom.NewXYZ(x, y, z), nil
	case geom.XYM:
		m, err := readFloat64(r, bo)
		if err != nil {
			return geom.Coordinate{}, err
		}
		return geom.NewXYM(x, y, m), nil
	case geom.XYZM:
		z, err := readFloat64(r, bo)
		if err != nil {
			return geom.Coordinate{}, err
		}
		m, err := readFloat64(r, bo)
		if err != nil {
			return geom.Coordinate{}, err
		}
		return geom.NewXYZM(x, y, z, m), nil
	default:
		return geom.NewXY(x, y), nil
	}
}

func readSequence(r io.Reader, bo binary.ByteOrder, shape geom.Shape) ([]geom.Coordinate, error) {
	n, err := readUint32(r, bo)
	if err != nil {
		return nil, err
	}
	coords := make([]geom.Coordinate, n)
	for i := range coords {
		c, err := readCoordinate(r, bo, shape)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}

func readGeometry(r io.Reader, f *geom.Factory) (geom.Geometry, error) {
	bo, code, shape, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	switch code {
	case codePoint:
		return readPointBody(r, bo, shape, f)
	case codeLineString:
		coords, err := readSequence(r, bo, shape)
		if err != nil {
			return nil, err
		}
		return f.CreateLineString(coords)
	case codePolygon:
		return readPolygonBody(r, bo, shape, f)
	case codeMultiPoint:
		return readMultiPointBody(r, bo, f)
	case codeMultiLineString:
		return readMultiLineStringBody(r, bo, f)
	case codeMultiPolygon:
		return readMultiPolygonBody(r, bo, f)
	case codeGeometryCollection:
		return readGeometryCollectionBody(r, bo, f)
	default:
		return nil, errUnsupportedType(uint32(code))
	}
}

func readPointBody(r io.Reader, bo binary.ByteOrder, shape geom.Shape, f *geom.Factory) (geom.Geometry, error) {
	c, err := readCoordinate(r, bo, shape)
	if err != nil {
		return nil, err
	}
	if shape == geom.XY && math.IsNaN(c.X) && math.IsNaN(c.Y) {
		return f.CreateEmptyPoint(geom.XY), nil
	}
	return f.CreatePoint(c)
}

func readPolygonBody(r io.Reader, bo binary.ByteOrder, shape geom.Shape, f *geom.Factory) (geom.Geometry, error) {
	numRings, err := readUint32(r, bo)
	if err != nil {
		return nil, err
	}
	if numRings == 0 {
		return f.CreatePolygon(nil, nil)
	}
	shellCoords, err := readSequence(r, bo, shape)
	if err != nil {
		return nil, err
	}
	shell, err := f.CreateLinearRing(shellCoords)
	if err != nil {
		return nil, err
	}
	holes := make([]*geom.LinearRing, 0, numRings-1)
	for i := uint32(1); i < numRings; i++ {
		holeCoords, err := readSequence(r, bo, shape)
		if err != nil {
			return nil, err
		}
		hole, err := f.CreateLinearRing(holeCoords)
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	return f.CreatePolygon(shell, holes)
}

func readMultiPointBody(r io.Reader, bo binary.ByteOrder, f *geom.Factory) (geom.Geometry, error) {
	n, err := readUint32(r, bo)
	if err != nil {
		return nil, err
	}
	points := make([]*geom.Point, n)
	for i := range points {
		g, err := readGeometry(r, f)
		if err != nil {
			return nil, err
		}
		pt, ok := g.(*geom.Point)
		if !ok {
			return nil, gerr.NewInvalidArgument("wkb: MultiPoint member %d is not a Point", i)
		}
		points[i] = pt
	}
	return f.CreateMultiPoint(points)
}

func readMultiLineStringBody(r io.Reader, bo binary.ByteOrder, f *geom.Factory) (geom.Geometry, error) {
	n, err := readUint32(r, bo)
	if err != nil {
		return nil, err
	}
	lines := make([]*geom.LineString, n)
	for i := range lines {
		g, err := readGeometry(r, f)
		if err != nil {
			return nil, err
		}
		ls, ok := g.(*geom.LineString)
		if !ok {
			return nil, gerr.NewInvalidArgument("wkb: MultiLineString member %d is not a LineString", i)
		}
		lines[i] = ls
	}
	return f.CreateMultiLineString(lines)
}

func readMultiPolygonBody(r io.Reader, bo binary.ByteOrder, f *geom.Factory) (geom.Geometry, error) {
	n, err := readUint32(r, bo)
	if err != nil {
		return nil, err
	}
	polys := make([]*geom.Polygon, n)
	for i := range polys {
		g, err := readGeometry(r, f)
		if err != nil {
			return nil, err
		}
		p, ok := g.(*geom.Polygon)
		if !ok {
			return nil, gerr.NewInvalidArgument("wkb: MultiPolygon member %d is not a Polygon", i)
		}
		polys[i] = p
	}
	return f.CreateMultiPolygon(polys)
}

func readGeometryCollectionBody(r io.Reader, bo binary.ByteOrder, f *geom.Factory) (geom.Geometry, error) {
	n, err := readUint32(r, bo)
	if err != nil {
		return nil, err
	}
	geoms := make([]geom.Geometry, n)
	for i := range geoms {
		g, err := readGeometry(r, f)
		if err != nil {
			return nil, err
		}
		geoms[i] = g
	}
	return f.CreateGeometryCollection(geoms)
}
