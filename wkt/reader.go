package wkt

import (
	"io"

	"github.com/gogeos/geos/gerr"
	"github.com/gogeos/geos/geom"
)

// Read parses a single OGC Well-Known Text geometry from r using factory
// to build the result.
func Read(r io.Reader, factory *geom.Factory) (geom.Geometry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ReadString(string(data), factory)
}

// ReadString parses a single OGC Well-Known Text geometry from s.
func ReadString(s string, factory *geom.Factory) (geom.Geometry, error) {
	toks, err := newLexer(s).tokenize()
	if err != nil {
		return nil, err
	}
	p := newParser(toks, factory)
	g, err := p.parseGeometryTaggedText()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, gerr.NewInvalidArgument("wkt: unexpected trailing input %q", p.peek().text)
	}
	return g, nil
}
