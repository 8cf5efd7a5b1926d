package lexer

import (
	"testing"
)

func TestLexer_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
		values   []string
	}{
		{
			name:     "simple_power",
			input:    "2^3",
			expected: []TokenType{NUMBER, CARET, NUMBER, EOF},
			values:   []string{"2", "^", "3", ""},
		},
		{
			name:     "whitespace_around_caret",
			input:    "  2 ^ 3  ",
			expected: []TokenType{NUMBER, CARET, NUMBER, EOF},
			values:   []string{"2", "^", "3", ""},
		},
		{
			name:     "nested_chain",
			input:    "2^3^2",
			expected: []TokenType{NUMBER, CARET, NUMBER, CARET, NUMBER, EOF},
			values:   []string{"2", "^", "3", "^", "2", ""},
		},
		{
			name:     "parenthesized_base",
			input:    "(2^3)^2",
			expected: []TokenType{LPAREN, NUMBER, CARET, NUMBER, RPAREN, CARET, NUMBER, EOF},
			values:   []string{"(", "2", "^", "3", ")", "^", "2", ""},
		},
		{
			name:     "negative_base",
			input:    "-2^3",
			expected: []TokenType{NUMBER, CARET, NUMBER, EOF},
			values:   []string{"-2", "^", "3", ""},
		},
		{
			name:     "float_base",
			input:    "2.5^2",
			expected: []TokenType{NUMBER, CARET, NUMBER, EOF},
			values:   []string{"2.5", "^", "2", ""},
		},
		{
			name:     "leading_dot",
			input:    ".5^2",
			expected: []TokenType{NUMBER, CARET, NUMBER, EOF},
			values:   []string{".5", "^", "2", ""},
		},
		{
			name:     "double_dash_is_one_number",
			input:    "--5^2",
			expected: []TokenType{NUMBER, CARET, NUMBER, EOF},
			values:   []string{"--5", "^", "2", ""},
		},
		{
			name:     "bare_dashes_are_illegal",
			input:    "2^--",
			expected: []TokenType{NUMBER, CARET, ILLEGAL, EOF},
			values:   []string{"2", "^", "--", ""},
		},
		{
			name:     "letters_are_illegal",
			input:    "hi",
			expected: []TokenType{ILLEGAL, ILLEGAL, EOF},
			values:   []string{"h", "i", ""},
		},
		{
			name:     "empty_input",
			input:    "",
			expected: []TokenType{EOF},
			values:   []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := New(tt.input).Tokenize()

			if len(tokens) != len(tt.expected) {
				t.Fatalf("wrong number of tokens. expected=%d, got=%d\nTokens: %v",
					len(tt.expected), len(tokens), tokens)
			}

			for i, expectedType := range tt.expected {
				if tokens[i].Type != expectedType {
					t.Errorf("token[%d] wrong type. expected=%v, got=%v",
						i, expectedType, tokens[i].Type)
				}
				if tokens[i].Value != tt.values[i] {
					t.Errorf("token[%d] wrong value. expected=%q, got=%q",
						i, tt.values[i], tokens[i].Value)
				}
			}
		})
	}
}

func TestLexer_Columns(t *testing.T) {
	tokens := New(" (2^3) ").Tokenize()

	expected := []struct {
		typ    TokenType
		column int
	}{
		{LPAREN, 2},
		{NUMBER, 3},
		{CARET, 4},
		{NUMBER, 5},
		{RPAREN, 6},
		{EOF, 8},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, want := range expected {
		if tokens[i].Type != want.typ {
			t.Errorf("token[%d] wrong type. expected=%v, got=%v", i, want.typ, tokens[i].Type)
		}
		if tokens[i].Column != want.column {
			t.Errorf("token[%d] wrong column. expected=%d, got=%d", i, want.column, tokens[i].Column)
		}
	}
}
