// Package parser re-parses and re-evaluates equations in the solver's
// output grammar, so solutions can be verified independently of the
// search that generated them.
package parser

import (
	"fmt"

	"github.com/plateparity/plateparity/plate"
)

// Equation is a parsed "LHS = RHS" pair.
type Equation struct {
	Left  Node
	Right Node
}

// Holds re-evaluates both sides and compares them under the same
// equality rule the solver uses.
func (eq *Equation) Holds(tol float64) (bool, error) {
	l, err := eq.Left.Eval()
	if err != nil {
		return false, fmt.Errorf("left side: %w", err)
	}
	r, err := eq.Right.Eval()
	if err != nil {
		return false, fmt.Errorf("right side: %w", err)
	}
	return plate.ValuesEqual(l, r, tol), nil
}

func (eq *Equation) String() string {
	return eq.Left.String() + " " + plate.SymEq + " " + eq.Right.String()
}

// ParseEquation parses an input of the form "<expr> = <expr>".
func ParseEquation(input string) (*Equation, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEquals); err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	return &Equation{Left: left, Right: right}, nil
}

// Parse parses a single expression with no equality sign.
func Parse(input string) (Node, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	return node, nil
}

// parser is a recursive descent parser over the token stream.
// Precedence, loosest first: + -, then × %, then ^ (right-associative),
// then postfix !, then literals and grouped forms. Solver output is
// fully parenthesized so precedence only matters for hand-typed input.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, fmt.Errorf("unexpected %s at position %d", describe(t.kind), t.pos)
	}
	return p.next(), nil
}

func (p *parser) parseExpr() (Node, error) {
	return p.parseAddSub()
}

func (p *parser) parseAddSub() (Node, error) {
	left, err := p.parseMulMod()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			right, err := p.parseMulMod()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: plate.SymPlus, Left: left, Right: right}
		case tokMinus:
			p.next()
			right, err := p.parseMulMod()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: plate.SymMinus, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseMulMod() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokTimes:
			p.next()
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: plate.SymTimes, Left: left, Right: right}
		case tokMod:
			p.next()
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &Binary{Op: plate.SymMod, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: plate.SymPow, Left: base, Right: exp}, nil
}

func (p *parser) parsePostfix() (Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokBang {
		p.next()
		node = &Fact{X: node}
	}
	return node, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		return &Number{Val: t.num}, nil
	case tokLParen:
		p.next()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return node, nil
	case tokPipe:
		p.next()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokPipe); err != nil {
			return nil, err
		}
		return &Abs{X: node}, nil
	}
	return nil, fmt.Errorf("unexpected %s at position %d", describe(t.kind), t.pos)
}

func describe(kind tokenKind) string {
	switch kind {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokTimes:
		return "'×'"
	case tokMod:
		return "'%'"
	case tokPow:
		return "'^'"
	case tokBang:
		return "'!'"
	case tokPipe:
		return "'|'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokEquals:
		return "'='"
	}
	return "token"
}
