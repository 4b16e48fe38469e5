package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/pkg/easytest"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	return NewSimpleUI(cmd), out
}

func TestSimpleUIReport(t *testing.T) {
	ui, out := newTestUI()

	ui.Report(easytest.Result{Name: "a.b", Status: easytest.StatusPassed, Trials: 1})
	assert.Contains(t, out.String(), "✓ a.b passed 1 test")
}

func TestSimpleUIReportFailureIncludesReplay(t *testing.T) {
	ui, out := newTestUI()

	ui.Report(easytest.Result{
		Name:    "a.b",
		Status:  easytest.StatusFailed,
		Message: "x",
		Seed:    easytest.NewSeed(9),
	})

	output := out.String()
	assert.Contains(t, output, "✗ a.b failed: x")
	assert.Contains(t, output, "rerun with:")
}

func TestSimpleUIDisplaySummary(t *testing.T) {
	ui, out := newTestUI()

	results := []easytest.Result{
		{Name: "math.add", Status: easytest.StatusPassed, Trials: 1},
		{Name: "math.mul", Status: easytest.StatusFailed, Message: "x"},
		{Name: "strings.concat", Status: easytest.StatusPassed, Trials: 100},
	}
	summary := easytest.Summarize(results)

	require.NoError(t, ui.DisplaySummary(results, summary))

	output := out.String()
	assert.Contains(t, output, "math")
	assert.Contains(t, output, "strings")
	assert.Contains(t, output, "1 failed, 2 succeeded.")
}

func TestSimpleUIDisplayRecords(t *testing.T) {
	ui, out := newTestUI()

	records := []m.Record{
		{Name: "a", Status: "passed", Trials: 1, Seed: "1:3"},
		{Name: "b", Status: "failed", Message: "x", Seed: "5:7", Counterexample: "-1"},
		{Name: "c", Status: "gave up", Discards: 4, Seed: "9:11"},
	}

	require.NoError(t, ui.DisplayRecords(records))

	output := out.String()
	assert.Contains(t, output, "✓ a passed 1 test")
	assert.Contains(t, output, "✗ b failed: x (minimal counterexample: -1, seed 5:7)")
	assert.Contains(t, output, "⚐ c gave up after 4 discards")
	assert.Contains(t, output, "1 failed, 1 succeeded.")
}

func TestScopeKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"math.add.ex1", "math"},
		{"math", "math"},
		{"(unnamed)", "(unnamed)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scopeKey(tt.name))
	}
}
