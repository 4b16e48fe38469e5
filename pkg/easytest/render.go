package easytest

import (
	"fmt"
	"strings"
)

// Status glyphs used in the rendered report.
const (
	glyphPassed = "✓"
	glyphFailed = "✗"
	glyphOther  = "⚐"
)

// Glyph returns the one-character status marker for a result line.
func (s Status) Glyph() string {
	switch s {
	case StatusPassed:
		return glyphPassed
	case StatusFailed:
		return glyphFailed
	default:
		return glyphOther
	}
}

// RenderResult formats the single report line for one leaf:
// glyph, qualified name, outcome detail.
func RenderResult(r Result) string {
	var detail string

	switch r.Status {
	case StatusPassed:
		if r.Trials == 1 {
			detail = "passed 1 test"
		} else {
			detail = fmt.Sprintf("passed %d tests", r.Trials)
		}
	case StatusSkipped:
		detail = "skipped"
	case StatusGaveUp:
		detail = fmt.Sprintf("gave up after %d discards", r.Discards)
	case StatusFailed:
		detail = "failed: " + r.Message
	}

	return fmt.Sprintf("%s %s %s", r.Status.Glyph(), r.Name, detail)
}

// RenderFailure formats the detail block printed under a failed leaf: the
// recorded footnotes, the minimal counterexample when one was found, and a
// replay instruction embedding the exact seed the leaf ran under.
func RenderFailure(r Result) string {
	var b strings.Builder

	for _, note := range r.Notes {
		fmt.Fprintf(&b, "    note: %s\n", note)
	}
	if r.HasCounterexample {
		fmt.Fprintf(&b, "    minimal counterexample: %v\n", r.Counterexample)
	}
	fmt.Fprintf(&b, "    rerun with: RerunOnly(%q, MustParseSeed(%q))\n", r.Name, r.Seed.String())

	return b.String()
}

// RenderSummary formats the trailing aggregate line.
func RenderSummary(s Summary) string {
	line := fmt.Sprintf("%d failed, %d succeeded.", s.Failed, s.Passed)
	if s.Skipped > 0 || s.GaveUp > 0 {
		line += fmt.Sprintf(" (%d skipped, %d gave up)", s.Skipped, s.GaveUp)
	}
	return line
}

// Render produces the full textual report: one line per leaf in execution
// order, failure details, and the aggregate footer. It is a pure function of
// its inputs; writing the text anywhere is the caller's concern.
func Render(results []Result, summary Summary) string {
	var b strings.Builder

	for _, result := range results {
		b.WriteString(RenderResult(result))
		b.WriteByte('\n')
		if result.Status == StatusFailed {
			b.WriteString(RenderFailure(result))
		}
	}

	b.WriteString(RenderSummary(summary))
	b.WriteByte('\n')

	return b.String()
}
