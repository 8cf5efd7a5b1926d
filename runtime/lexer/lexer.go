package lexer

import (
	"log/slog"
	"os"
)

// ASCII character lookup tables for fast classification
var (
	isWhitespace [128]bool
	isDigit      [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
		isDigit[i] = '0' <= ch && ch <= '9'
	}
}

// Lexer tokenizes a single exponent expression.
//
// The token stream it produces is tiny: NUMBER, CARET, LPAREN, RPAREN, plus
// ILLEGAL for anything the grammar does not know about. Numbers accept a run
// of leading '-' and embedded '.' characters without validating them; the
// evaluator's numeric conversion decides whether the literal is usable.
type Lexer struct {
	input    string
	position int
	column   int

	// Debug logger, enabled via POW_DEBUG_LEXER
	logger *slog.Logger
}

// New creates a Lexer over the given expression text.
func New(input string) *Lexer {
	l := &Lexer{input: input, column: 1}
	if os.Getenv("POW_DEBUG_LEXER") != "" {
		l.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return l
}

// Tokenize consumes the whole input and returns the token stream,
// terminated by an EOF token.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, 8)
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

func (l *Lexer) next() Token {
	l.skipWhitespace()

	start := l.column
	if l.position >= len(l.input) {
		return l.emit(Token{Type: EOF, Column: start})
	}

	ch := l.input[l.position]
	switch {
	case ch == '^':
		l.advance()
		return l.emit(Token{Type: CARET, Value: "^", Column: start})
	case ch == '(':
		l.advance()
		return l.emit(Token{Type: LPAREN, Value: "(", Column: start})
	case ch == ')':
		l.advance()
		return l.emit(Token{Type: RPAREN, Value: ")", Column: start})
	case ch == '-' || ch == '.' || ch < 128 && isDigit[ch]:
		return l.emit(l.lexNumber(start))
	default:
		l.advance()
		return l.emit(Token{Type: ILLEGAL, Value: string(ch), Column: start})
	}
}

// lexNumber consumes a numeric literal: an optional run of leading '-'
// followed by digits and '.' characters. A run of '-' with nothing numeric
// after it is not a number.
func (l *Lexer) lexNumber(start int) Token {
	begin := l.position
	for l.position < len(l.input) && l.input[l.position] == '-' {
		l.advance()
	}
	digits := l.position
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch >= 128 || !isDigit[ch] && ch != '.' {
			break
		}
		l.advance()
	}
	if l.position == digits {
		// Only dashes; hand them back as one illegal token.
		return Token{Type: ILLEGAL, Value: l.input[begin:l.position], Column: start}
	}
	return Token{Type: NUMBER, Value: l.input[begin:l.position], Column: start}
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		ch := l.input[l.position]
		if ch >= 128 || !isWhitespace[ch] {
			return
		}
		l.advance()
	}
}

func (l *Lexer) advance() {
	l.position++
	l.column++
}

func (l *Lexer) emit(tok Token) Token {
	if l.logger != nil {
		l.logger.Debug("token",
			"type", tok.Type.String(),
			"value", tok.Value,
			"column", tok.Column)
	}
	return tok
}
