package wkt

import (
	"strconv"

	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
)

type parser struct {
	tokens  []token
	current int
	factory *geom.Factory
}

func newParser(toks []token, factory *geom.Factory) *parser {
	return &parser{tokens: toks, factory: factory}
}

func (p *parser) peek() token { return p.tokens[p.current] }

func (p *parser) advance() token {
	t := p.tokens[p.current]
	if t.kind != tokEOF {
		p.current++
	}
	return t
}

func (p *parser) expect(kind tokenType, what string) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return token{}, gerr.NewInvalidArgument("wkt: expected %s, got %q", what, t.text)
	}
	return p.advance(), nil
}

// parseGeometryTaggedText parses "TYPE [Z|M|ZM] ( ... )" or "TYPE EMPTY".
func (p *parser) parseGeometryTaggedText() (geom.Geometry, error) {
	tag, err := p.expect(tokWord, "geometry type")
	if err != nil {
		return nil, err
	}
	typeName := normalizeKeyword(tag.text)

	shape := geom.XY
	if p.peek().kind == tokWord {
		switch normalizeKeyword(p.peek().text) {
		case "Z":
			shape = geom.XYZ
			p.advance()
		case "M":
			shape = geom.XYM
			p.advance()
		case "ZM":
			shape = geom.XYZM
			p.advance()
		}
	}

	if p.peek().kind == tokWord && normalizeKeyword(p.peek().text) == "EMPTY" {
		p.advance()
		return p.emptyGeometry(typeName, shape)
	}

	switch typeName {
	case "POINT":
		return p.parsePoint(shape)
	case "LINESTRING":
		return p.parseLineString(shape)
	case "POLYGON":
		return p.parsePolygon(shape)
	case "MULTIPOINT":
		return p.parseMultiPoint(shape)
	case "MULTILINESTRING":
		return p.parseMultiLineString(shape)
	case "MULTIPOLYGON":
		return p.parseMultiPolygon(shape)
	case "GEOMETRYCOLLECTION":
		return p.parseGeometryCollection()
	default:
		return nil, gerr.NewInvalidArgument("wkt: unknown geometry type %q", typeName)
	}
}

func (p *parser) emptyGeometry(typeName string, shape geom.Shape) (geom.Geometry, error) {
	switch typeName {
	case "POINT":
		return p.factory.CreateEmptyPoint(shape), nil
	case "LINESTRING":
		return p.factory.CreateLineString(nil)
	case "POLYGON":
		return p.factory.CreatePolygon(nil, nil)
	case "MULTIPOINT":
		return p.factory.CreateMultiPoint(nil)
	case "MULTILINESTRING":
		return p.factory.CreateMultiLineString(nil)
	case "MULTIPOLYGON":
		return p.factory.CreateMultiPolygon(nil)
	case "GEOMETRYCOLLECTION":
		return p.factory.CreateGeometryCollection(nil)
	default:
		return nil, gerr.NewInvalidArgument("wkt: unknown geometry type %q", typeName)
	}
}

func (p *parser) parseNumber() (float64, error) {
	t := p.peek()
	if t.kind != tokNumber {
		return 0, gerr.NewInvalidArgument("wkt: expected a number, got %q", t.text)
	}
	p.advance()
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, gerr.NewInvalidArgument("wkt: invalid number %q", t.text)
	}
	return v, nil
}

func (p *parser) parseCoordinate(shape geom.Shape) (geom.Coordinate, error) {
	x, err := p.parseNumber()
	if err != nil {
		return geom.Coordinate{}, err
	}
	y, err := p.parseNumber()
	if err != nil {
		return geom.Coordinate{}, err
	}
	switch shape {
	case geom.XYZ:
		z, err := p.parseNumber()
		if err != nil {
			return geom.Coordinate{}, err
		}
		return geom.NewXYZ(x, y, z), nil
	case geom.XYM:
		m, err := p.parseNumber()
		if err != nil {
			return geom.Coordinate{}, err
		}
		return geom.NewXYM(x, y, m), nil
	case geom.XYZM:
		z, err := p.parseNumber()
		if err != nil {
			return geom.Coordinate{}, err
		}
		m, err := p.parseNumber()
		if err != nil {
			return geom.Coordinate{}, err
		}
		return geom.NewXYZM(x, y, z, m), nil
	default:
		return geom.NewXY(x, y), nil
	}
}

func (p *parser) parseCoordinateList(shape geom.Shape) ([]geom.Coordinate, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var coords []geom.Coordinate
	for {
		c, err := p.parseCoordinate(shape)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return coords, nil
}

func (p *parser) parsePoint(shape geom.Shape) (geom.Geometry, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	c, err := p.parseCoordinate(shape)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return p.factory.CreatePoint(c)
}

func (p *parser) parseLineString(shape geom.Shape) (geom.Geometry, error) {
	coords, err := p.parseCoordinateList(shape)
	if err != nil {
		return nil, err
	}
	return p.factory.CreateLineString(coords)
}

func (p *parser) parseLinearRing(shape geom.Shape) (*geom.LinearRing, error) {
	coords, err := p.parseCoordinateList(shape)
	if err != nil {
		return nil, err
	}
	return p.factory.CreateLinearRing(coords)
}

func (p *parser) parsePolygon(shape geom.Shape) (geom.Geometry, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	shell, err := p.parseLinearRing(shape)
	if err != nil {
		return nil, err
	}
	var holes []*geom.LinearRing
	for p.peek().kind == tokComma {
		p.advance()
		h, err := p.parseLinearRing(shape)
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return p.factory.CreatePolygon(shell, holes)
}

func (p *parser) parseMultiPoint(shape geom.Shape) (geom.Geometry, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var points []*geom.Point
	for {
		var c geom.Coordinate
		var err error
		if p.peek().kind == tokLParen {
			p.advance()
			c, err = p.parseCoordinate(shape)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRParen, ")"); err != nil {
				return nil, err
			}
		} else {
			c, err = p.parseCoordinate(shape)
			if err != nil {
				return nil, err
			}
		}
		pt, err := p.factory.CreatePoint(c)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return p.factory.CreateMultiPoint(points)
}

func (p *parser) parseMultiLineString(shape geom.Shape) (geom.Geometry, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var lines []*geom.LineString
	for {
		g, err := p.parseLineString(shape)
		if err != nil {
			return nil, err
		}
		lines = append(lines, g.(*geom.LineString))
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return p.factory.CreateMultiLineString(lines)
}

func (p *parser) parseMultiPolygon(shape geom.Shape) (geom.Geometry, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var polys []*geom.Polygon
	for {
		g, err := p.parsePolygon(shape)
		if err != nil {
			return nil, err
		}
		polys = append(polys, g.(*geom.Polygon))
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return p.factory.CreateMultiPolygon(polys)
}

func (p *parser) parseGeometryCollection() (geom.Geometry, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var geoms []geom.Geometry
	for {
		g, err := p.parseGeometryTaggedText()
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g)
		if p.peek().kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return p.factory.CreateGeometryCollection(geoms)
}
