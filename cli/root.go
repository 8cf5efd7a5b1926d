// Package cli wires the pow command line: flag handling, expression
// splitting, and error presentation. The evaluation itself lives under
// runtime/eval.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/pow/core/format"
	"github.com/aledsdavies/pow/runtime/eval"
)

// Version is the released version of pow.
const Version = "0.3.1"

// NewRootCommand builds the pow root command.
func NewRootCommand() *cobra.Command {
	var (
		quiet   bool
		noColor bool
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "pow [OPTIONS] <N>^<EXP>",
		Short: "Commandline exponent calculator",
		Long: `Commandline exponent calculator.

All parameters that are not options are concatenated together before they
are parsed. Operations are delimited using commas ','.`,
		Example:       "  pow 2^10\n  pow -q 2^3, 4^2\n  pow 2^3^2",
		Version:       Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, quiet, noColor, debug)
		},
	}

	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Prevents non-essential console output & formatting")
	rootCmd.Flags().BoolVarP(&noColor, "no-color", "n", false, "Disables the use of ANSI color escape sequences in console output")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.Flags().BoolP("version", "v", false, "Shows the current version number, then exits")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, quiet, noColor, debug bool) error {
	logger := newLogger(debug)
	style := format.Style{
		Quiet: quiet,
		Color: format.ShouldUseColor(noColor),
	}

	for _, expr := range SplitExpressions(args) {
		logger.Debug("evaluating expression", "expr", expr, "quiet", style.Quiet, "color", style.Color)
		res, err := eval.Evaluate(expr, style)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Display)
	}
	return nil
}

// SplitExpressions joins the positional arguments with spaces and splits
// the result on ',', one expression per unit of work. Empty pieces (from
// doubled or trailing commas) are dropped.
func SplitExpressions(args []string) []string {
	parts := strings.Split(strings.Join(args, " "), ",")
	exprs := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		exprs = append(exprs, part)
	}
	return exprs
}

// Execute runs the root command and returns the process exit code. The
// first failing expression aborts the batch; its error is formatted to
// stderr.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		noColor, _ := rootCmd.Flags().GetBool("no-color")
		FormatError(os.Stderr, err, format.ShouldUseColor(noColor))
		return 1
	}
	return 0
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
