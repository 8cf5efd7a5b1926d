// Package eval evaluates parsed exponent expressions.
//
// Nested powers resolve depth-first: each nested operand is evaluated to a
// flat literal before the enclosing power is computed, and its rendered
// equation becomes the operand's display form. The numeric domain (float,
// signed, unsigned) is selected per pair of flat literals; see domain.go.
package eval

import (
	"fmt"

	"github.com/aledsdavies/pow/core/format"
	"github.com/aledsdavies/pow/runtime/parser"
)

// Result is one evaluated expression: the display line for the user and the
// bare result literal, which feeds any enclosing expression.
type Result struct {
	Display string
	Literal string
}

// Evaluate runs the full pipeline on one raw expression string.
func Evaluate(input string, style format.Style) (Result, error) {
	root, err := parser.Parse(input)
	if err != nil {
		return Result{}, err
	}
	return evalPower(root, style)
}

func evalPower(p *parser.Power, style format.Style) (Result, error) {
	base, err := resolve(p.Base, style)
	if err != nil {
		return Result{}, err
	}
	exponent, err := resolve(p.Exponent, style)
	if err != nil {
		return Result{}, err
	}

	literal, err := Compute(base.literal, exponent.literal)
	if err != nil {
		return Result{}, err
	}

	display := format.Equation(
		format.Operand{Text: base.display, Grouped: base.nested},
		format.Operand{Text: exponent.display, Grouped: exponent.nested},
		literal, style)

	return Result{Display: display, Literal: literal}, nil
}

// operand is one resolved side of a power: its display form, the flat
// literal used for computation, and whether resolution was recursive.
type operand struct {
	display string
	literal string
	nested  bool
}

func resolve(n parser.Node, style format.Style) (operand, error) {
	switch n := n.(type) {
	case *parser.Literal:
		return operand{display: n.Text, literal: n.Text}, nil
	case *parser.Power:
		res, err := evalPower(n, style)
		if err != nil {
			return operand{}, err
		}
		return operand{display: res.Display, literal: res.Literal, nested: true}, nil
	default:
		return operand{}, fmt.Errorf("unsupported expression node %T", n)
	}
}
