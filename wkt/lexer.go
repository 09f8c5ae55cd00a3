// Package wkt reads and writes the OGC Well-Known Text geometry format,
// The reader is a hand-rolled lexer plus recursive-
// descent parser, grounded on
// sentra-language-sentra/internal/parser/parser.go's token-stream/
// current-index parser shape (no parser generator).
package wkt

import (
	"strings"
	"unicode"

	"github.com/gogeos/geos/gerr"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokWord
	tokNumber
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenType
	text string
}

type lexer struct {
	runes []rune
	pos   int
}

func newLexer(s string) *lexer {
	return &lexer{runes: []rune(s)}
}

func (l *lexer) tokenize() ([]token, error) {
	var toks []token
	for {
		l.skipSpace()
		if l.pos >= len(l.runes) {
			toks = append(toks, token{kind: tokEOF})
			return toks, nil
		}
		c := l.runes[l.pos]
		switch {
		case c == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			l.pos++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			l.pos++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ","})
			l.pos++
		case unicode.IsLetter(c):
			start := l.pos
			for l.pos < len(l.runes) && unicode.IsLetter(l.runes[l.pos]) {
				l.pos++
			}
			toks = append(toks, token{kind: tokWord, text: string(l.runes[start:l.pos])})
		case c == '-' || c == '+' || unicode.IsDigit(c) || c == '.':
			start := l.pos
			l.pos++
			for l.pos < len(l.runes) && (unicode.IsDigit(l.runes[l.pos]) || l.runes[l.pos] == '.' || l.runes[l.pos] == 'e' || l.runes[l.pos] == 'E' || l.runes[l.pos] == '+' || l.runes[l.pos] == '-') {
				l.pos++
			}
			toks = append(toks, token{kind: tokNumber, text: string(l.runes[start:l.pos])})
		default:
			return nil, gerr.NewInvalidArgument("wkt: unexpected character %q at offset %d", c, l.pos)
		}
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.runes) && unicode.IsSpace(l.runes[l.pos]) {
		l.pos++
	}
}

func normalizeKeyword(s string) string {
	return strings.ToUpper(s)
}
