package cli

import (
	"fmt"
	"io"

	"github.com/aledsdavies/pow/core/format"
	"github.com/aledsdavies/pow/runtime/eval"
	"github.com/aledsdavies/pow/runtime/parser"
)

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *parser.ParseError:
		formatParseError(w, e, useColor)
	case *eval.ConversionError:
		_, _ = fmt.Fprintf(w, "%s%s\n", format.Colorize("Error: ", format.ColorRed, useColor), e.Error())
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", format.Colorize("Error: ", format.ColorRed, useColor), err.Error())
	}
}

// formatParseError adds a usage hint for the common operand mistakes
func formatParseError(w io.Writer, err *parser.ParseError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", format.Colorize("Error: ", format.ColorRed, useColor), err.Message)

	if hint := parseHint(err.Kind); hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", format.Colorize("Hint: ", format.ColorYellow, useColor), hint)
	}
}

func parseHint(kind parser.ErrorKind) string {
	switch kind {
	case parser.KindMissingBase, parser.KindMissingExponent, parser.KindMissingBoth:
		return "write the operation as <N>^<EXP>, e.g. 2^10"
	case parser.KindMalformed:
		return "operations contain numbers, '^', and optional parentheses; separate operations with ','"
	default:
		return ""
	}
}
