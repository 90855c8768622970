package unit

import (
	"unicode"
	"unicode/utf8"
)

// tokenType identifies a lexical token of a unit expression.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenSpace
	tokenStar
	tokenSlash
	tokenCaret
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "symbol"
	case tokenSpace:
		return "space"
	case tokenStar:
		return "'*'"
	case tokenSlash:
		return "'/'"
	case tokenCaret:
		return "'^'"
	}
	return "unknown"
}

// token is a lexical token with its byte offset.
type token struct {
	typ     tokenType
	literal string
	pos     int
}

// lexer splits a normalized unit expression into tokens. Any run of
// characters that is neither whitespace nor one of "*/^" is an identifier;
// this includes signed exponent digits, which the parser validates.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the next token.
func (l *lexer) next() token {
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, pos: l.pos}
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case r == '*':
		l.pos += size
		return token{typ: tokenStar, literal: "*", pos: start}
	case r == '/':
		l.pos += size
		return token{typ: tokenSlash, literal: "/", pos: start}
	case r == '^':
		l.pos += size
		return token{typ: tokenCaret, literal: "^", pos: start}
	case unicode.IsSpace(r):
		for l.pos < len(l.input) {
			r, size = utf8.DecodeRuneInString(l.input[l.pos:])
			if !unicode.IsSpace(r) {
				break
			}
			l.pos += size
		}
		return token{typ: tokenSpace, literal: l.input[start:l.pos], pos: start}
	}

	for l.pos < len(l.input) {
		r, size = utf8.DecodeRuneInString(l.input[l.pos:])
		if isDelimiter(r) {
			break
		}
		l.pos += size
	}
	return token{typ: tokenIdent, literal: l.input[start:l.pos], pos: start}
}

func isDelimiter(r rune) bool {
	return r == '*' || r == '/' || r == '^' || unicode.IsSpace(r)
}
