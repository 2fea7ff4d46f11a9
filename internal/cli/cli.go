// Package cli implements the lindiff command line: compute the diff between
// two files and print it as a unified or side-by-side report.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lindiff/lindiff/internal/linediff"
)

var (
	flagIgnoreTrimWhitespace bool
	flagSubwords             bool
	flagTimeout              time.Duration
	flagColor                string
	flagSideBySide           bool
	flagContext              int
)

var rootCmd = &cobra.Command{
	Use:   "lindiff OLD NEW",
	Short: "Character-precise diff between two text files",
	Long: `lindiff compares two text files line by line, then refines each changed
region down to exact character ranges, so the report can emphasize what
actually changed within a line rather than the whole line.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagIgnoreTrimWhitespace, "ignore-trim-whitespace", "w", false, "Ignore leading and trailing whitespace changes")
	rootCmd.Flags().BoolVar(&flagSubwords, "subwords", false, "Extend short changes to subword boundaries (camelCase parts)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 5*time.Second, "Computation budget; 0 means unbounded")
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "Colorize output: auto, always, or never")
	rootCmd.Flags().BoolVarP(&flagSideBySide, "side-by-side", "y", false, "Two-column output instead of unified")
	rootCmd.Flags().IntVarP(&flagContext, "context", "C", 3, "Unchanged lines to show around each change")
}

// Execute runs the root command. It returns the process exit code: 0 when the
// inputs are identical, 1 when they differ, 2 on error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := err.(exitCode); ok {
			return int(code)
		}
		fmt.Fprintf(os.Stderr, "lindiff: %v\n", err)
		return 2
	}
	return 0
}

// exitCode signals a non-zero exit without an error message, following the
// diff(1) convention that differing inputs exit 1.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit %d", int(e)) }

func run(cmd *cobra.Command, oldPath, newPath string) error {
	original, err := readLines(oldPath)
	if err != nil {
		return err
	}
	modified, err := readLines(newPath)
	if err != nil {
		return err
	}

	setupColor(flagColor)

	diff := linediff.Compute(original, modified, linediff.Options{
		IgnoreTrimWhitespace: flagIgnoreTrimWhitespace,
		MaxComputationTime:   flagTimeout,
		ExtendToSubwords:     flagSubwords,
	})
	Logf("compute %s vs %s: %d changes, hitTimeout=%v", oldPath, newPath, len(diff.Changes), diff.HitTimeout)

	if len(diff.Changes) == 0 {
		return nil
	}

	r := renderer{
		out:      cmd.OutOrStdout(),
		original: original,
		modified: modified,
		diff:     diff,
		context:  flagContext,
	}
	if flagSideBySide {
		r.renderSideBySide(terminalWidth())
	} else {
		r.renderUnified()
	}
	if diff.HitTimeout {
		fmt.Fprintln(cmd.ErrOrStderr(), "lindiff: computation budget exceeded; result is coarse")
	}
	return exitCode(1)
}

// readLines loads a file and splits it on newlines. The final element is the
// (possibly empty) text after the last newline; carriage returns stay part of
// the line content.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

func setupColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 120
}
