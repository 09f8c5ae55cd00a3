package wkt

import (
	"io"
	"strconv"
	"strings"

	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
)

// Write renders g as OGC Well-Known Text to w. Z/M/ZM
// dimensionality is carried per-coordinate-sequence, following the shape
// of that geometry's own sequence rather than a writer-wide setting.
func Write(w io.Writer, g geom.Geometry) error {
	var sb strings.Builder
	if err := writeGeometry(&sb, g); err != nil {
		return err
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteString renders g as OGC Well-Known Text and returns the result.
func WriteString(g geom.Geometry) (string, error) {
	var sb strings.Builder
	if err := writeGeometry(&sb, g); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeGeometry(sb *strings.Builder, g geom.Geometry) error {
	switch t := g.(type) {
	case *geom.Point:
		sb.WriteString("POINT")
		writeShapeTag(sb, t.Sequence().Shape())
		if t.IsEmpty() {
			sb.WriteString(" EMPTY")
			return nil
		}
		sb.WriteString(" (")
		writeCoordinate(sb, t.Sequence().Get(0))
		sb.WriteString(")")
		return nil
	case *geom.LineString:
		sb.WriteString("LINESTRING")
		return writeLineStringBody(sb, t.Sequence())
	case *geom.LinearRing:
		sb.WriteString("LINEARRING")
		return writeLineStringBody(sb, t.Sequence())
	case *geom.Polygon:
		sb.WriteString("POLYGON")
		return writePolygonBody(sb, t)
	case *geom.MultiPoint:
		sb.WriteString("MULTIPOINT")
		if t.IsEmpty() {
			sb.WriteString(" EMPTY")
			return nil
		}
		sb.WriteString(" (")
		for i, p := range t.Points() {
			if i > 0 {
				sb.WriteString(", ")
			}
			if p.IsEmpty() {
				sb.WriteString("EMPTY")
				continue
			}
			writeCoordinate(sb, p.Sequence().Get(0))
		}
		sb.WriteString(")")
		return nil
	case *geom.MultiLineString:
		sb.WriteString("MULTILINESTRING")
		if t.IsEmpty() {
			sb.WriteString(" EMPTY")
			return nil
		}
		sb.WriteString(" (")
		for i, l := range t.LineStrings() {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeCoordinateList(sb, l.Sequence())
		}
		sb.WriteString(")")
		return nil
	case *geom.MultiPolygon:
		sb.WriteString("MULTIPOLYGON")
		if t.IsEmpty() {
			sb.WriteString(" EMPTY")
			return nil
		}
		sb.WriteString(" (")
		for i, p := range t.Polygons() {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := writePolygonBody(sb, p); err != nil {
				return err
			}
		}
		sb.WriteString(")")
		return nil
	case *geom.GeometryCollection:
		sb.WriteString("GEOMETRYCOLLECTION")
		if t.IsEmpty() && t.NumGeometries() == 0 {
			sb.WriteString(" EMPTY")
			return nil
		}
		sb.WriteString(" (")
		for i, c := range t.Geometries() {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := writeGeometry(sb, c); err != nil {
				return err
			}
		}
		sb.WriteString(")")
		return nil
	default:
		return gerr.NewInvalidArgument("wkt: unsupported geometry type %T", g)
	}
}

func writeLineStringBody(sb *strings.Builder, seq *geom.Sequence) error {
	writeShapeTag(sb, seq.Shape())
	if seq.Len() == 0 {
		sb.WriteString(" EMPTY")
		return nil
	}
	sb.WriteString(" ")
	writeCoordinateList(sb, seq)
	return nil
}

func writePolygonBody(sb *strings.Builder, p *geom.Polygon) error {
	if p.IsEmpty() {
		writeShapeTag(sb, p.Shell().Sequence().Shape())
		sb.WriteString(" EMPTY")
		return nil
	}
	writeShapeTag(sb, p.Shell().Sequence().Shape())
	sb.WriteString(" (")
	writeCoordinateList(sb, p.Shell().Sequence())
	for _, h := range p.Holes() {
		sb.WriteString(", ")
		writeCoordinateList(sb, h.Sequence())
	}
	sb.WriteString(")")
	return nil
}

func writeCoordinateList(sb *strings.Builder, seq *geom.Sequence) {
	sb.WriteString("(")
	for i := 0; i < seq.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeCoordinate(sb, seq.Get(i))
	}
	sb.WriteString(")")
}

func writeCoordinate(sb *strings.Builder, c geom.Coordinate) {
	sb.WriteString(formatOrdinate(c.X))
	sb.WriteString(" ")
	sb.WriteString(formatOrdinate(c.Y))
	if !floatIsNaN(c.Z) {
		sb.WriteString(" ")
		sb.WriteString(formatOrdinate(c.Z))
	}
	if !floatIsNaN(c.M) {
		sb.WriteString(" ")
		sb.WriteString(formatOrdinate(c.M))
	}
}

func writeShapeTag(sb *strings.Builder, shape geom.Shape) {
	switch shape {
	case geom.XYZ:
		sb.WriteString(" Z")
	case geom.XYM:
		sb.WriteString(" M")
	case geom.XYZM:
		sb.WriteString(" ZM")
	}
}

func formatOrdinate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func floatIsNaN(v float64) bool { return v != v }
