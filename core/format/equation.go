// Package format renders evaluated equations for terminal display.
package format

import "strings"

// Style carries the presentation settings for rendered output. It is built
// once from the command-line flags and passed down explicitly; color never
// changes textual content, only its styling.
type Style struct {
	Quiet bool
	Color bool
}

// Operand is one side of a power expression, ready for display. Grouped is
// set when the operand was itself resolved from a nested expression; such
// operands render inside parentheses.
type Operand struct {
	Text    string
	Grouped bool
}

// Role colors for the parts of an equation.
const (
	colorOperand  = ColorYellow
	colorResult   = ColorGreen
	colorOperator = ColorGray
	colorBracket  = ColorCyan
)

// Equation assembles the display line `base ^ exponent = result`. In quiet
// mode only the result text is emitted.
func Equation(base, exponent Operand, result string, style Style) string {
	if style.Quiet {
		return Colorize(result, colorResult, style.Color)
	}

	var b strings.Builder
	writeOperand(&b, base, style)
	b.WriteByte(' ')
	b.WriteString(Colorize("^", colorOperator, style.Color))
	b.WriteByte(' ')
	writeOperand(&b, exponent, style)
	b.WriteByte(' ')
	b.WriteString(Colorize("=", colorOperator, style.Color))
	b.WriteByte(' ')
	b.WriteString(Colorize(result, colorResult, style.Color))
	return b.String()
}

func writeOperand(b *strings.Builder, op Operand, style Style) {
	if op.Grouped {
		// Nested equations arrive already styled; only the brackets are ours.
		b.WriteString(Colorize("(", colorBracket, style.Color))
		b.WriteString(op.Text)
		b.WriteString(Colorize(")", colorBracket, style.Color))
		return
	}
	b.WriteString(Colorize(op.Text, colorOperand, style.Color))
}
