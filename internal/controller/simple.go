package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/pkg/easytest"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Report prints one result line as it is produced.
func (s *SimpleUI) Report(result easytest.Result) {
	s.cmd.Println(easytest.RenderResult(result))
	if result.Status == easytest.StatusFailed {
		s.cmd.Print(easytest.RenderFailure(result))
	}
}

// DisplaySummary prints the per-scope counts table and the aggregate footer.
// The per-leaf lines were already emitted live through Report.
func (s *SimpleUI) DisplaySummary(results []easytest.Result, summary easytest.Summary) error {
	if len(results) > 0 {
		s.cmd.Println()
		s.cmd.Print(renderScopeTable(results))
	}

	s.cmd.Println()
	s.cmd.Println(easytest.RenderSummary(summary))

	return nil
}

// DisplayRecords re-renders journaled results from a previous run.
func (s *SimpleUI) DisplayRecords(records []m.Record) error {
	for _, record := range records {
		s.cmd.Println(renderRecord(record))
	}

	failed := 0
	passed := 0
	for _, record := range records {
		switch record.Status {
		case "failed":
			failed++
		case "passed":
			passed++
		}
	}

	s.cmd.Println()
	s.cmd.Printf("%d failed, %d succeeded.\n", failed, passed)

	return nil
}

// scopeCounts accumulates per-scope outcome counts for the table.
type scopeCounts struct {
	passed  int
	failed  int
	skipped int
	gaveUp  int
}

func renderScopeTable(results []easytest.Result) string {
	counts := make(map[string]*scopeCounts)
	for _, result := range results {
		key := scopeKey(result.Name)
		c, ok := counts[key]
		if !ok {
			c = &scopeCounts{}
			counts[key] = c
		}

		switch result.Status {
		case easytest.StatusPassed:
			c.passed++
		case easytest.StatusFailed:
			c.failed++
		case easytest.StatusSkipped:
			c.skipped++
		case easytest.StatusGaveUp:
			c.gaveUp++
		}
	}

	scopes := make([]string, 0, len(counts))
	for scope := range counts {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Scope", "Passed", "Failed", "Skipped", "Gave up"})

	for _, scope := range scopes {
		c := counts[scope]
		table.Append([]string{
			scope,
			strconv.Itoa(c.passed),
			strconv.Itoa(c.failed),
			strconv.Itoa(c.skipped),
			strconv.Itoa(c.gaveUp),
		})
	}

	table.Render()

	return buf.String()
}

func renderRecord(record m.Record) string {
	glyph := "⚐"
	detail := record.Status

	switch record.Status {
	case "passed":
		glyph = "✓"
		if record.Trials == 1 {
			detail = "passed 1 test"
		} else {
			detail = fmt.Sprintf("passed %d tests", record.Trials)
		}
	case "failed":
		glyph = "✗"
		detail = "failed: " + record.Message
		if record.Counterexample != "" {
			detail += fmt.Sprintf(" (minimal counterexample: %s, seed %s)", record.Counterexample, record.Seed)
		}
	case "gave up":
		detail = fmt.Sprintf("gave up after %d discards", record.Discards)
	}

	return fmt.Sprintf("%s %s %s", glyph, record.Name, detail)
}
