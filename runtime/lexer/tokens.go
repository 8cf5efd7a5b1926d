package lexer

// TokenType represents the lexical tokens of an exponent expression.
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Operators and grouping
	CARET  // ^
	LPAREN // (
	RPAREN // )

	// Literals
	NUMBER // 123, -4, 2.5
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case CARET:
		return "CARET"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case NUMBER:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its position in the input.
type Token struct {
	Type   TokenType
	Value  string
	Column int // 1-based column in the expression
}

// String returns the token value (for testing and debugging).
func (t Token) String() string {
	return t.Value
}
