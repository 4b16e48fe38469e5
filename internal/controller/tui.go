package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/bbarker/easytest/internal/model"
	"github.com/bbarker/easytest/pkg/easytest"
)

// TUI implements UI using Bubble Tea for interactive display. Results are
// collected during the run and shown in a scrollable pager at the end.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Report collects nothing: the pager shows the full report once the run ends.
func (p *TUI) Report(easytest.Result) {}

// DisplaySummary shows the report in a pager when it does not fit on screen,
// otherwise prints it directly.
func (p *TUI) DisplaySummary(results []easytest.Result, summary easytest.Summary) error {
	lines := reportLines(results, summary)
	return p.page(lines)
}

// DisplayRecords shows journaled records from a previous run.
func (p *TUI) DisplayRecords(records []m.Record) error {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, renderRecord(record))
	}
	return p.page(lines)
}

func (p *TUI) page(lines []string) error {
	pager := newReportModel(lines)

	// Get initial terminal size.
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			pager.height = height
			pager.width = width
		}
	}

	// If the report is small, just print and exit.
	if !pager.needsPagination() {
		_, err := fmt.Fprint(p.output, pager.View())
		return err
	}

	program := tea.NewProgram(pager, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func reportLines(results []easytest.Result, summary easytest.Summary) []string {
	var lines []string
	for _, result := range results {
		lines = append(lines, easytest.RenderResult(result))
		if result.Status == easytest.StatusFailed {
			block := strings.TrimRight(easytest.RenderFailure(result), "\n")
			lines = append(lines, strings.Split(block, "\n")...)
		}
	}
	lines = append(lines, "", easytest.RenderSummary(summary))
	return lines
}

// reportModel is the Bubble Tea model for paging through a report.
type reportModel struct {
	lines    []string
	height   int
	width    int
	offset   int // current scroll offset
	quitting bool
}

func newReportModel(lines []string) reportModel {
	return reportModel{lines: lines}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.height = msg.Height
		rm.width = msg.Width
		return rm, nil

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)
	}

	return rm, nil
}

func (rm reportModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		rm.quitting = true
		return rm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		rm.quitting = true
		return rm, tea.Quit

	case "down", "j":
		rm.offset = minInt(rm.offset+1, rm.maxOffset())
		return rm, nil

	case "up", "k":
		rm.offset = maxInt(rm.offset-1, 0)
		return rm, nil

	case "g", "home":
		rm.offset = 0
		return rm, nil

	case "G", "end":
		rm.offset = rm.maxOffset()
		return rm, nil

	case "d", "pgdown":
		rm.offset = minInt(rm.offset+rm.linesPerPage(), rm.maxOffset())
		return rm, nil

	case "u", "pgup":
		rm.offset = maxInt(rm.offset-rm.linesPerPage(), 0)
		return rm, nil
	}

	return rm, nil
}

func (rm reportModel) View() string {
	if rm.quitting {
		return ""
	}

	if !rm.needsPagination() {
		return strings.Join(rm.lines, "\n") + "\n"
	}

	end := minInt(rm.offset+rm.linesPerPage(), len(rm.lines))
	var b strings.Builder
	for _, line := range rm.lines[rm.offset:end] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\n[%d-%d/%d] j/k scroll · q quit\n", rm.offset+1, end, len(rm.lines))

	return b.String()
}

// linesPerPage reserves room for the footer.
func (rm reportModel) linesPerPage() int {
	if rm.height == 0 {
		return 20
	}

	available := rm.height - 3
	if available < 1 {
		return 1
	}
	return available
}

func (rm reportModel) maxOffset() int {
	offset := len(rm.lines) - rm.linesPerPage()
	if offset < 0 {
		return 0
	}
	return offset
}

func (rm reportModel) needsPagination() bool {
	return rm.height > 0 && len(rm.lines) > rm.linesPerPage()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
