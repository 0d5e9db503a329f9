package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutkit/pkg/blueprint"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// browseCommand creates the browse command, an interactive view that
// installs and removes a blueprint's operations one at a time.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Toggle a blueprint's operations interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p, err := loadPlan(args[0], logger)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(NewStepListModel(p), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			m := final.(StepListModel)
			printInfo("%d of %d steps installed", m.installedSteps(), len(p.Steps))
			printStats(len(p.Constraints()), p.Engine.Stats())
			return nil
		},
	}
}

// =============================================================================
// StepListModel - Interactive step toggling
// =============================================================================

// StepListModel is the bubbletea model for browsing a built blueprint.
// Each row is one [[op]] table; toggling it installs or removes every
// constraint the op created.
type StepListModel struct {
	Plan   *blueprint.Plan
	Cursor int
	Height int
	Offset int
	Err    error
}

// NewStepListModel creates a new step list model.
func NewStepListModel(p *blueprint.Plan) StepListModel {
	return StepListModel{Plan: p, Height: 12}
}

func (m StepListModel) Init() tea.Cmd {
	return nil
}

func (m StepListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Plan.Steps)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "enter":
			if len(m.Plan.Steps) > 0 {
				_, m.Err = m.Plan.Toggle(m.Cursor)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height/2 - 4
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m StepListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Blueprint Steps"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Plan.Steps))
	for i := m.Offset; i < end; i++ {
		s := m.Plan.Steps[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s %2d  %-26s %-24s %s", cursor, stepIcon(s), s.Index, s.Kind,
			strings.Join(s.Views, ","), listDimStyle.Render(fmt.Sprintf("%d", len(s.Constraints))))
		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case len(s.Constraints) == 0:
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Cursor < len(m.Plan.Steps) {
		s := m.Plan.Steps[m.Cursor]
		if len(s.Constraints) > 0 {
			b.WriteString("\n")
			rows := make([]constraintRow, len(s.Constraints))
			for i, c := range s.Constraints {
				rows[i] = constraintRow{step: s.Index, kind: s.Kind, c: c}
			}
			renderConstraintTable(&b, rows, -1)
		}
	}

	stats := m.Plan.Engine.Stats()
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d active  %d conflicts",
		m.Cursor+1, len(m.Plan.Steps), stats.Active, len(m.Plan.Engine.Conflicts()))))
	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(listErrorStyle.Render("  " + m.Err.Error()))
	}
	return b.String()
}

// installedSteps counts steps whose constraints are all installed.
func (m StepListModel) installedSteps() int {
	n := 0
	for _, s := range m.Plan.Steps {
		if len(s.Constraints) > 0 && s.Constraints.Installed() {
			n++
		}
	}
	return n
}

func stepIcon(s blueprint.Step) string {
	installed := 0
	for _, c := range s.Constraints {
		if c.IsInstalled() {
			installed++
		}
	}
	switch {
	case len(s.Constraints) == 0:
		return listDimStyle.Render("·")
	case installed == len(s.Constraints):
		return StyleSuccess.Render(iconOn)
	case installed == 0:
		return listDimStyle.Render(iconOff)
	}
	return StyleWarning.Render("◐")
}
