// Package console prints the operator-facing status lines.
package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes glyph-prefixed status lines. The wording is for humans;
// nothing downstream parses it.
type Reporter struct {
	w io.Writer
}

// New creates a reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Step announces work about to happen.
func (r *Reporter) Step(format string, args ...any) {
	r.line(color.CyanString("→"), format, args...)
}

// OK reports a completed action.
func (r *Reporter) OK(format string, args ...any) {
	r.line(color.GreenString("✓"), format, args...)
}

// Skip reports a guarded phase that found nothing to do.
func (r *Reporter) Skip(format string, args ...any) {
	r.line(color.HiBlackString("•"), format, args...)
}

// Warn draws the operator's attention to something needing action.
func (r *Reporter) Warn(format string, args ...any) {
	r.line(color.YellowString("⚠"), format, args...)
}

// Fail reports a phase that stopped the run.
func (r *Reporter) Fail(format string, args ...any) {
	r.line(color.RedString("✗"), format, args...)
}

// Print writes a plain line without a glyph.
func (r *Reporter) Print(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format+"\n", args...)
}

// Blank writes an empty line.
func (r *Reporter) Blank() {
	_, _ = fmt.Fprintln(r.w)
}

func (r *Reporter) line(glyph, format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, "%s %s\n", glyph, fmt.Sprintf(format, args...))
}
