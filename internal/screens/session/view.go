package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/apptitude/internal/session"
	"github.com/abhisek/apptitude/internal/ui/components"
	"github.com/abhisek/apptitude/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.startErr != "" {
		return renderError(width, s.startErr)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.ctrl.Phase() {
	case sess.PhaseAwaitingQuestion:
		if s.ctrl.InlineError() != "" {
			return s.renderFetchFailure(width)
		}
		return renderLoading(width)
	case sess.PhaseAwaitingAnswer, sess.PhaseAwaitingVerdict:
		return s.renderQuestion(width)
	case sess.PhaseResolved:
		return s.renderVerdict(width)
	case sess.PhaseEnded:
		return ""
	}
	return renderLoading(width)
}

// renderProgressLine shows position, score, and the elapsed clock.
func (s *SessionScreen) renderProgressLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.ctrl.Index(), s.ctrl.Total()))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s %d  ⏱ %s",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.ctrl.Correct(),
			lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
			s.ctrl.Wrong(),
			s.ctrl.Clock().Display(),
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}

	bar := components.NewProgressBar("", float64(s.ctrl.Index()-1)/float64(s.ctrl.Total()), false, width-8)

	return line + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
}

func (s *SessionScreen) renderQuestion(width int) string {
	q := s.ctrl.Question()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(s.renderProgressLine(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	if s.ctrl.Phase() == sess.PhaseAwaitingVerdict {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Checking your answer..."))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.notice))
	}

	// A grading failure leaves the question live with the error inline.
	if s.ctrl.InlineError() != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Couldn't check that answer: " + s.ctrl.InlineError()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to try again."))
	}

	if s.ctrl.SkipUnlocked() {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Stuck? Press Ctrl+S to skip this question."))
	}

	return b.String()
}

func (s *SessionScreen) renderVerdict(width int) string {
	v := s.ctrl.Verdict()
	q := s.ctrl.Question()

	var b strings.Builder
	b.WriteString(s.renderProgressLine(width))
	b.WriteString("\n\n")

	if v == nil {
		return b.String()
	}

	if v.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if q != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Correct answer: " + q.Answer))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(v.Feedback)))

	if v.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.TextDim).
				Render(v.Explanation)))
	}

	b.WriteString("\n\n")
	if s.ctrl.LastQuestion() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Wrapping up..."))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter for the next question."))
	}

	return b.String()
}

func (s *SessionScreen) renderFetchFailure(width int) string {
	var b strings.Builder
	b.WriteString(s.renderProgressLine(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Couldn't load a question"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.ctrl.InlineError()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("[R] Retry    [S] Skip this question"))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this test early?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end test"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Generating question...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
