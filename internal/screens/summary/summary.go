// Package summary displays the end-of-test results screen.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/apptitude/internal/router"
	"github.com/abhisek/apptitude/internal/screen"
	"github.com/abhisek/apptitude/internal/session"
	"github.com/abhisek/apptitude/internal/ui/layout"
	"github.com/abhisek/apptitude/internal/ui/theme"
)

// SummaryScreen displays the test summary.
type SummaryScreen struct {
	summary *session.Summary

	// restart builds a fresh test screen; 0 means "same level again".
	restart func(level int) screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished test.
func New(summary *session.Summary, restart func(level int) screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Test Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "r":
		if s.restart != nil {
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: s.restart(0)}
			}
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Test complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level %d   •   Time: %s", sum.Level, session.FormatElapsed(sum.Duration))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 40)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("Correct: %d", sum.Correct)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render(fmt.Sprintf("Wrong: %d", sum.Wrong)))
	if sum.Skipped > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Skipped: %d", sum.Skipped)))
	}
	b.WriteString("\n\n")

	graded := sum.Correct + sum.Wrong
	if graded > 0 {
		accuracy := float64(sum.Correct) / float64(graded)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Accuracy: %.0f%%", accuracy*100)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to play again, Esc for the menu."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
