// Package controller provides output controllers for displaying run results.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/pkg/easytest"
)

// UI defines the interface for displaying run progress and results.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// Report emits one leaf result as it is produced, for live progress.
	Report(result easytest.Result)
	// DisplaySummary renders the full report and the per-scope counts table.
	DisplaySummary(results []easytest.Result, summary easytest.Summary) error
	// DisplayRecords renders journaled records from a previous run.
	DisplayRecords(records []m.Record) error
}

// NewUI picks the interactive pager on a terminal and plain line output
// everywhere else.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(os.Stdout)
	}
	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// scopeKey returns the top-level scope of a qualified name, used to group
// the counts table.
func scopeKey(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return name
}
