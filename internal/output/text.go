package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jokarl/gitunjam/internal/types"
)

// TextRenderer renders the human-readable transcript
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the whole report as a transcript
func (r *TextRenderer) Render(w io.Writer, report *types.Report) error {
	r.renderHeader(w, report)
	for _, l := range report.Locks {
		r.renderLock(w, l)
	}
	for _, c := range report.Commands {
		r.renderCommand(w, c)
	}
	r.renderFooter(w, report)
	return nil
}

func (r *TextRenderer) renderHeader(w io.Writer, report *types.Report) {
	if report.DryRun {
		fmt.Fprintln(w, "Force-resolving Git lock and conflicts (dry run)...")
		return
	}
	fmt.Fprintln(w, "Force-resolving Git lock and conflicts...")
}

func (r *TextRenderer) renderLock(w io.Writer, l *types.LockRemoval) {
	switch l.Outcome {
	case types.OutcomeOK:
		if l.Source == types.LockSourceScan {
			fmt.Fprintf(w, "Removed lock file: %s\n", l.Path)
		} else {
			fmt.Fprintf(w, "Removed: %s\n", l.Path)
		}
	case types.OutcomeSkipped:
		fmt.Fprintf(w, "Would remove: %s\n", l.Path)
	default:
		fmt.Fprintf(w, "%s %s: %s\n", r.paint(color.FgRed, "Could not remove"), l.Path, l.Error)
	}
}

func (r *TextRenderer) renderCommand(w io.Writer, c *types.CommandResult) {
	line := c.CommandLine()
	switch c.Outcome {
	case types.OutcomeOK:
		fmt.Fprintf(w, "%s %s\n", r.paint(color.FgGreen, "✓"), line)
		if len(c.Args) > 0 && c.Args[len(c.Args)-1] == "status" {
			fmt.Fprintln(w, c.Stdout)
		}
	case types.OutcomeFailed:
		fmt.Fprintf(w, "%s %s: %s\n", r.paint(color.FgRed, "✗"), line, strings.TrimRight(c.Stderr, "\n"))
	case types.OutcomeTimeout:
		fmt.Fprintf(w, "%s %s\n", r.paint(color.FgYellow, "Timeout:"), line)
	case types.OutcomeSkipped:
		fmt.Fprintf(w, "- %s (skipped)\n", line)
	default:
		fmt.Fprintf(w, "%s %s: %s\n", r.paint(color.FgRed, "Error running"), line, c.Error)
	}
}

func (r *TextRenderer) renderFooter(w io.Writer, report *types.Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Git resolution attempt complete.")
	fmt.Fprintln(w, "Try running: git status")
}

// paint colors s when color output is enabled
func (r *TextRenderer) paint(attr color.Attribute, s string) string {
	if !r.ColorEnabled {
		return s
	}
	c := color.New(attr, color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}
