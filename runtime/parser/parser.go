// Package parser turns a raw exponent expression into a small syntax tree.
//
// The grammar is deliberately tiny:
//
//	expr    := operand '^' expr | operand
//	operand := NUMBER | '(' expr ')'
//
// Chains are right-associative (2^3^2 is 2^(3^2)). The top level of an
// expression must be a power; a bare literal is rejected. Trailing content
// after a complete expression is an error rather than silently ignored.
package parser

import (
	"github.com/aledsdavies/pow/runtime/lexer"
)

type parser struct {
	input  string
	tokens []lexer.Token
	pos    int
}

// Parse parses one expression string and returns the root power node.
func Parse(input string) (*Power, error) {
	p := &parser{
		input:  input,
		tokens: lexer.New(input).Tokenize(),
	}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != lexer.EOF {
		return nil, p.errorf(KindMalformed, tok,
			"unrecognized operation syntax %q: unexpected %q at column %d",
			p.input, tok.Value, tok.Column)
	}

	root, ok := node.(*Power)
	if !ok {
		return nil, p.errorf(KindMalformed, p.peek(),
			"unrecognized operation syntax %q: no '^' operator", p.input)
	}
	return root, nil
}

func (p *parser) parseExpr() (Node, error) {
	if tok := p.peek(); tok.Type == lexer.CARET {
		// A caret with no left operand. Look past it to report whether the
		// right side is present too.
		p.next()
		if next := p.peek(); next.Type == lexer.NUMBER || next.Type == lexer.LPAREN {
			return nil, p.errorf(KindMissingBase, tok, "missing base operand in %q", p.input)
		}
		return nil, p.errorf(KindMissingBoth, tok, "missing base and exponent operands in %q", p.input)
	}

	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	if p.peek().Type != lexer.CARET {
		return left, nil
	}
	caret := p.next()

	if next := p.peek(); next.Type == lexer.EOF || next.Type == lexer.RPAREN {
		return nil, p.errorf(KindMissingExponent, caret, "missing exponent operand in %q", p.input)
	}

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Power{Base: left, Exponent: right}, nil
}

func (p *parser) parseOperand() (Node, error) {
	tok := p.next()
	switch tok.Type {
	case lexer.NUMBER:
		return &Literal{Text: tok.Value}, nil
	case lexer.LPAREN:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != lexer.RPAREN {
			return nil, p.errorf(KindMalformed, closing,
				"unrecognized operation syntax %q: unclosed '('", p.input)
		}
		return inner, nil
	case lexer.EOF:
		return nil, p.errorf(KindMalformed, tok,
			"unrecognized operation syntax %q: expected a number", p.input)
	default:
		return nil, p.errorf(KindMalformed, tok,
			"unrecognized operation syntax %q: unexpected %q at column %d",
			p.input, tok.Value, tok.Column)
	}
}

func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() lexer.Token {
	tok := p.tokens[p.pos]
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}
