// Package session implements the screen that runs a test: it owns the
// timers and network calls and feeds their results into the session
// controller, which decides what they mean.
package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/apptitude/internal/client"
	"github.com/abhisek/apptitude/internal/quiz"
	"github.com/abhisek/apptitude/internal/router"
	"github.com/abhisek/apptitude/internal/screen"
	sess "github.com/abhisek/apptitude/internal/session"
	"github.com/abhisek/apptitude/internal/screens/summary"
	"github.com/abhisek/apptitude/internal/ui/components"
	"github.com/abhisek/apptitude/internal/ui/layout"
)

// fetchTimeout bounds a single question or grading exchange.
const fetchTimeout = 90 * time.Second

// SessionScreen runs one test against the question service.
type SessionScreen struct {
	ctrl   *sess.Controller
	client *client.Client
	level  int

	input       components.TextInput
	quitConfirm bool
	notice      string // transient input-validation notice
	startErr    string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen for a test at the given level.
func New(c *client.Client, level int) *SessionScreen {
	return &SessionScreen{
		ctrl:   sess.NewController(sess.DefaultQuestionCount),
		client: c,
		level:  level,
		input:  components.NewTextInput("Type your answer...", false, 32),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	token, err := s.ctrl.Start(s.level)
	if err != nil {
		s.startErr = err.Error()
		return nil
	}
	return tea.Batch(
		s.fetchQuestion(token),
		tickCmd(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return "Test"
}

// HeaderStatus reports the level and running clock for the header bar.
func (s *SessionScreen) HeaderStatus() (int, string) {
	if s.ctrl.Phase() == sess.PhaseEnded || s.ctrl.Phase() == sess.PhaseIdle {
		return s.level, ""
	}
	return s.level, s.ctrl.Clock().Display()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End test"},
			{Key: "N", Description: "Keep going"},
		}
	}

	switch s.ctrl.Phase() {
	case sess.PhaseAwaitingQuestion:
		if s.ctrl.InlineError() != "" {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "S", Description: "Skip"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
	case sess.PhaseAwaitingAnswer:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
		if s.ctrl.SkipUnlocked() {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Skip"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	case sess.PhaseResolved:
		if s.ctrl.LastQuestion() {
			return nil
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionResultMsg:
		return s.handleQuestionResult(msg)

	case verdictResultMsg:
		return s.handleVerdictResult(msg)

	case clockTickMsg:
		if s.ctrl.Phase() == sess.PhaseEnded {
			return s, nil
		}
		return s, tickCmd()

	case skipUnlockMsg:
		s.ctrl.UnlockSkip(msg.Token)
		return s, nil

	case testDoneMsg:
		return s.finish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.Phase() == sess.PhaseAwaitingAnswer && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) handleQuestionResult(msg questionResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.ctrl.QuestionFailed(msg.Token, msg.Err)
		return s, nil
	}

	if !s.ctrl.QuestionReady(msg.Token, msg.Question) {
		return s, nil
	}

	s.input = components.NewTextInput("Type your answer...", false, 32)
	s.notice = ""
	return s, tea.Batch(
		s.input.Init(),
		skipUnlockCmd(msg.Token),
	)
}

func (s *SessionScreen) handleVerdictResult(msg verdictResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.ctrl.VerdictFailed(msg.Token, msg.Err)
		return s, nil
	}

	if !s.ctrl.VerdictReady(msg.Token, msg.Verdict) {
		return s, nil
	}

	// The final verdict stays on screen briefly, then the summary appears.
	if s.ctrl.LastQuestion() {
		return s, endDelayCmd()
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.startErr != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" && s.ctrl.Phase() != sess.PhaseEnded {
		s.quitConfirm = true
		return s, nil
	}

	switch s.ctrl.Phase() {
	case sess.PhaseAwaitingQuestion:
		switch key {
		case "r", "R":
			if token, err := s.ctrl.Retry(); err == nil {
				return s, s.fetchQuestion(token)
			}
		case "s", "S":
			return s.skip()
		}

	case sess.PhaseAwaitingAnswer:
		switch key {
		case "enter":
			return s.submit()
		case "ctrl+s":
			return s.skip()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case sess.PhaseResolved:
		if key == "enter" && !s.ctrl.LastQuestion() {
			if token, err := s.ctrl.Advance(); err == nil {
				return s, s.fetchQuestion(token)
			}
		}
	}

	return s, nil
}

func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	answer, token, err := s.ctrl.Submit(s.input.Value())
	if err != nil {
		if errors.Is(err, sess.ErrEmptyAnswer) {
			s.notice = "Type an answer first."
		}
		return s, nil
	}
	s.notice = ""
	return s, s.grade(token, s.ctrl.Question(), answer)
}

func (s *SessionScreen) skip() (screen.Screen, tea.Cmd) {
	token, err := s.ctrl.Skip()
	if err != nil {
		return s, nil
	}
	if s.ctrl.Phase() == sess.PhaseEnded {
		return s.finish()
	}
	s.input = components.NewTextInput("Type your answer...", false, 32)
	return s, s.fetchQuestion(token)
}

func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	if s.ctrl.Phase() == sess.PhaseResolved {
		if err := s.ctrl.Finish(); err != nil {
			return s, nil
		}
	}
	if s.ctrl.Phase() != sess.PhaseEnded {
		return s, nil
	}

	sum := sess.BuildSummary(s.ctrl)
	cl := s.client
	level := s.level
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, func(newLevel int) screen.Screen {
				if newLevel == 0 {
					newLevel = level
				}
				return New(cl, newLevel)
			}),
		}
	}
}

// fetchQuestion requests a question from the service.
func (s *SessionScreen) fetchQuestion(token int) tea.Cmd {
	cl := s.client
	level := s.level
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		q, err := cl.GetQuestion(ctx, level)
		return questionResultMsg{Token: token, Question: q, Err: err}
	}
}

// grade sends the answer to the service for evaluation.
func (s *SessionScreen) grade(token int, q *quiz.Question, answer string) tea.Cmd {
	cl := s.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		v, err := cl.CheckAnswer(ctx, q, answer)
		return verdictResultMsg{Token: token, Verdict: v, Err: err}
	}
}

// tickCmd returns a 1-second tick for the clock display.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// skipUnlockCmd arms the skip-unlock timer for the given question.
func skipUnlockCmd(token int) tea.Cmd {
	return tea.Tick(sess.SkipUnlockDelay, func(time.Time) tea.Msg {
		return skipUnlockMsg{Token: token}
	})
}

// endDelayCmd holds the final verdict on screen before the summary.
func endDelayCmd() tea.Cmd {
	return tea.Tick(sess.EndedDisplayDelay, func(time.Time) tea.Msg {
		return testDoneMsg{}
	})
}
