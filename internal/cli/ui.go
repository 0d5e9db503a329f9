package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/layoutkit/pkg/constraint"
	"github.com/matzehuels/layoutkit/pkg/engine"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - installed
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - optional priorities
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCode     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleOptional = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconOn      = "●"
	iconOff     = "○"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message. Structured errors show their code.
func printError(err error) {
	fmt.Println(styleIconError.Render(iconError) + " " + errorLine(err))
}

// errorLine renders err as its code followed by the message chain.
func errorLine(err error) string {
	msg := lkerr.UserMessage(err)
	if code := lkerr.GetCode(err); code != "" {
		msg = styleCode.Render(string(code)) + " " + msg
	}
	return msg
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printStats prints engine counters on a single line.
func printStats(total int, s engine.Stats) {
	parts := []string{
		fmt.Sprintf("%d constraints", total),
		fmt.Sprintf("%d active", s.Active),
		fmt.Sprintf("%d batches", s.Batches),
	}
	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")))
}

// =============================================================================
// Constraint Tables
// =============================================================================

// constraintRow is one line of a constraint table.
type constraintRow struct {
	step int
	kind string
	c    *constraint.Constraint
}

// renderConstraintTable writes a bordered table with one row per
// constraint. cursor highlights the rows of one step; pass -1 for none.
func renderConstraintTable(w io.Writer, rows []constraintRow, cursor int) {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		state := iconOff
		if r.c.IsInstalled() {
			state = iconOn
		}
		cells[i] = []string{
			fmt.Sprint(r.step),
			r.kind,
			state,
			expression(r.c),
			r.c.Priority.String(),
			r.c.Identifier,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Op", "", "Constraint", "Priority", "Identifier").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(rows) {
				return styleHeader
			}
			r := rows[row]
			base := lipgloss.NewStyle().Padding(0, 1)
			if r.step == cursor {
				base = base.Bold(true)
			}
			switch {
			case col == 2 && r.c.IsInstalled():
				return base.Foreground(colorGreen)
			case col == 2:
				return base.Foreground(colorDim)
			case col == 4 && r.c.Priority != constraint.Required:
				return base.Inherit(styleOptional)
			case col == 0 || col == 1 || col == 5:
				return base.Foreground(colorGray)
			}
			return base
		})

	fmt.Fprintln(w, t.Render())
}

// expression renders c without its priority and identifier, which have
// their own columns.
func expression(c *constraint.Constraint) string {
	cp := *c
	cp.Priority = constraint.Required
	cp.Identifier = ""
	return cp.String()
}
