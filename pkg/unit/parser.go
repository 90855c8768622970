package unit

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/leapunit/pkg/notation"
)

// dimensionlessSymbol is the atom that stands for the empty product, as in "1/s".
const dimensionlessSymbol = "1"

// Parse parses a unit expression using the default registry.
func Parse(text string) (Unit, error) {
	return Default.Parse(text)
}

// ParseAs parses a unit expression using the default registry and names the
// result symbol, e.g. ParseAs("kg m s^-2", "N").
func ParseAs(text, symbol string) (Unit, error) {
	return Default.ParseAs(text, symbol)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Unit {
	u, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return u
}

// parser is a recursive descent parser over the tokens of one expression.
type parser struct {
	reg   *Registry
	input string
	lex   *lexer
	tok   token
}

func newParser(reg *Registry, text string) *parser {
	input := notation.NormalizeSuperscripts(text)
	p := &parser{reg: reg, input: input, lex: newLexer(input)}
	p.advance()
	return p
}

// parse reads the whole input as one quotient.
func (p *parser) parse() (Unit, error) {
	p.skipSpace()
	u, err := p.parseQuotient()
	if err != nil {
		return Unit{}, err
	}
	if p.tok.typ != tokenEOF {
		return Unit{}, p.unexpected()
	}
	return u, nil
}

// ---------- Token Helpers ----------

func (p *parser) advance() {
	p.tok = p.lex.next()
}

func (p *parser) skipSpace() {
	for p.tok.typ == tokenSpace {
		p.advance()
	}
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Input: p.input, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) unexpected() error {
	if p.tok.typ == tokenEOF {
		return p.errorf(p.tok.pos, errEmptyTerm)
	}
	return p.errorf(p.tok.pos, errUnexpectedChar, p.tok.literal)
}

// ---------- Grammar ----------

// parseQuotient parses: product [ '/' quotient ]
//
// Only the first '/' splits; the right hand side is parsed as a quotient of
// its own and inverted as a whole, so "m/s/s" reads as m·(s/s)^-1.
func (p *parser) parseQuotient() (Unit, error) {
	left, err := p.parseProduct()
	if err != nil {
		return Unit{}, err
	}
	if p.tok.typ != tokenSlash {
		return left, nil
	}
	p.advance()
	p.skipSpace()
	right, err := p.parseQuotient()
	if err != nil {
		return Unit{}, err
	}
	return left.Concat(right.Invert()), nil
}

// parseProduct parses: factor { ( ' '+ | '*' ) factor }
//
// A lone factor is returned as is, so "kg" stays a named unit. Two or more
// factors are folded into a composite.
func (p *parser) parseProduct() (Unit, error) {
	first, err := p.parseFactor()
	if err != nil {
		return Unit{}, err
	}
	product := first

	for {
		p.skipSpace()
		switch p.tok.typ {
		case tokenStar:
			p.advance()
			p.skipSpace()
		case tokenIdent:
		default:
			return product, nil
		}
		f, err := p.parseFactor()
		if err != nil {
			return Unit{}, err
		}
		product = product.Concat(f)
	}
}

// parseFactor parses: IDENT [ '^' INTEGER ]
func (p *parser) parseFactor() (Unit, error) {
	if p.tok.typ != tokenIdent {
		return Unit{}, p.unexpected()
	}
	symbol := p.tok.literal
	p.advance()

	exponent := 1
	if p.tok.typ == tokenCaret {
		caret := p.tok.pos
		p.advance()
		if p.tok.typ != tokenIdent {
			return Unit{}, p.errorf(caret, errMissingExponent)
		}
		n, err := strconv.Atoi(p.tok.literal)
		if err != nil {
			return Unit{}, &MalformedExponentError{Input: p.input, Pos: p.tok.pos, Exponent: p.tok.literal}
		}
		exponent = n
		p.advance()
	}

	if symbol == dimensionlessSymbol || exponent == 0 {
		return Dimensionless, nil
	}
	return p.reg.resolve(symbol, exponent), nil
}
