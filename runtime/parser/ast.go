package parser

import "strings"

// Node is a node in the abstract syntax tree of an exponent expression.
type Node interface {
	String() string
}

// Literal is a flat numeric literal operand.
type Literal struct {
	Text string
}

func (l *Literal) String() string {
	return l.Text
}

// Power is one exponentiation with its two operands. Either operand may
// itself be a Power; chains are right-associative, so 2^3^2 parses as
// 2^(3^2).
type Power struct {
	Base     Node
	Exponent Node
}

func (p *Power) String() string {
	var b strings.Builder
	writeOperand(&b, p.Base)
	b.WriteString(" ^ ")
	writeOperand(&b, p.Exponent)
	return b.String()
}

func writeOperand(b *strings.Builder, n Node) {
	if nested, ok := n.(*Power); ok {
		b.WriteByte('(')
		b.WriteString(nested.String())
		b.WriteByte(')')
		return
	}
	b.WriteString(n.String())
}
