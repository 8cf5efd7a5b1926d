package parser

import (
	"fmt"

	"github.com/aledsdavies/pow/runtime/lexer"
)

// ErrorKind categorizes parse failures.
type ErrorKind int

const (
	// KindMalformed means the input has no recognizable operand^operand
	// shape: stray characters, unbalanced parentheses, a bare literal with
	// no operator, or trailing content after a complete expression.
	KindMalformed ErrorKind = iota
	// KindMissingBase means a '^' was found with nothing on its left.
	KindMissingBase
	// KindMissingExponent means a '^' was found with nothing on its right.
	KindMissingExponent
	// KindMissingBoth means a '^' was found with neither operand.
	KindMissingBoth
)

func (k ErrorKind) String() string {
	switch k {
	case KindMalformed:
		return "malformed expression"
	case KindMissingBase:
		return "missing base"
	case KindMissingExponent:
		return "missing exponent"
	case KindMissingBoth:
		return "missing base and exponent"
	default:
		return "parse error"
	}
}

// ParseError is a parse failure with the input and offending token attached.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Input   string
	Token   lexer.Token
}

func (e *ParseError) Error() string {
	return e.Message
}

func (p *parser) errorf(kind ErrorKind, tok lexer.Token, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Input:   p.input,
		Token:   tok,
	}
}
