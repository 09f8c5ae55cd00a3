package wkb

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
)

// Write encodes g as little-endian OGC Well-Known Binary to w.
func Write(w io.Writer, g geom.Geometry) error {
	return writeGeometry(w, g)
}

func writeGeometry(w io.Writer, g geom.Geometry) error {
	switch t := g.(type) {
	case *geom.Point:
		return writePoint(w, t)
	case *geom.LineString:
		return writeLineString(w, codeLineString, t.Sequence())
	case *geom.LinearRing:
		return writeLineString(w, codeLineString, t.Sequence())
	case *geom.Polygon:
		return writePolygon(w, t)
	case *geom.MultiPoint:
		return writeMultiPoint(w, t)
	case *geom.MultiLineString:
		return writeMultiLineString(w, t)
	case *geom.MultiPolygon:
		return writeMultiPolygon(w, t)
	case *geom.GeometryCollection:
		return writeGeometryCollection(w, t)
	default:
		return gerr.NewInvalidArgument("wkb: unsupported geometry type %T", g)
	}
}

func writeByteOrder(w io.Writer) error {
	_, err := w.Write([]byte{1}) // 1 == little endian, per the OGC marker byte
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeFloat64(w io.Writer, v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}

func writeHeader(w io.Writer, code geomCode, shape geom.Shape) error {
	if err := writeByteOrder(w); err != nil {
		return err
	}
	return writeUint32(w, encodedCode(code, shape))
}

func writeCoordinate(w io.Writer, c geom.Coordinate, shape geom.Shape) error {
	if err := writeFloat64(w, c.X); err != nil {
		return err
	}
	if err := writeFloat64(w, c.Y); err != nil {
		return err
	}
	if shape.HasZ() {
		if err := writeFloat64(w, c.Z); err != nil {
			return err
		}
	}
	if shape.HasM() {
		if err := writeFloat64(w, c.M); err != nil {
			return err
		}
	}
	return nil
}

func writeSequence(w io.Writer, seq *geom.Sequence) error {
	if err := writeUint32(w, uint32(seq.Len())); err != nil {
		return err
	}
	for i := 0; i < seq.Len(); i++ {
		if err := writeCoordinate(w, seq.Get(i), seq.Shape()); err != nil {
			return err
		}
	}
	return nil
}

func writePoint(w io.Writer, p *geom.Point) error {
	shape := p.Sequence().Shape()
	if p.IsEmpty() {
		shape = geom.XY
	}
	if err := writeHeader(w, codePoint, shape); err != nil {
		return err
	}
	if p.IsEmpty() {
		// Encoded as NaN ordinates, the common convention when no literal
		// "empty point" marker exists in the OGC WKB layout.
		return writeCoordinate(w, geom.NewXY(math.NaN(), math.NaN()), geom.XY)
	}
	return writeCoordinate(w, p.Sequence().Get(0), shape)
}

func writeLineString(w io.Writer, code geomCode, seq *geom.Sequence) error {
	shape := seq.Shape()
	if err := writeHeader(w, code, shape); err != nil {
		return err
	}
	return writeSequence(w, seq)
}

func writePolygon(w io.Writer, p *geom.Polygon) error {
	shape := geom.XY
	if !p.IsEmpty() {
		shape = p.Shell().Sequence().Shape()
	}
	if err := writeHeader(w, codePolygon, shape); err != nil {
		return err
	}
	if p.IsEmpty() {
		return writeUint32(w, 0)
	}
	if err := writeUint32(w, uint32(1+len(p.Holes()))); err != nil {
		return err
	}
	if err := writeSequence(w, p.Shell().Sequence()); err != nil {
		return err
	}
	for _, h := range p.Holes() {
		if err := writeSequence(w, h.Sequence()); err != nil {
			return err
		}
	}
	return nil
}

func writeMultiPoint(w io.Writer, m *geom.MultiPoint) error {
	if err := writeHeader(w, codeMultiPoint, geom.XY); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(m.Points()))); err != nil {
		return err
	}
	for _, p := range m.Points() {
		if err := writePoint(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writeMultiLineString(w io.Writer, m *geom.MultiLineString) error {
	if err := writeHeader(w, codeMultiLineString, geom.XY); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(m.LineStrings()))); err != nil {
		return err
	}
	for _, l := range m.LineStrings() {
		if err := writeLineString(w, codeLineString, l.Sequence()); err != nil {
			return err
		}
	}
	return nil
}

func writeMultiPolygon(w io.Writer, m *geom.MultiPolygon) error {
	if err := writeHeader(w, codeMultiPolygon, geom.XY); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(m.Polygons()))); err != nil {
		return err
	}
	for _, p := range m.Polygons() {
		if err := writePolygon(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writeGeometryCollection(w io.Writer, g *geom.GeometryCollection) error {
	if err := writeHeader(w, codeGeometryCollection, geom.XY); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(g.NumGeometries())); err != nil {
		return err
	}
	for _, c := range g.Geometries() {
		if err := writeGeometry(w, c); err != nil {
			return err
		}
	}
	return nil
}
