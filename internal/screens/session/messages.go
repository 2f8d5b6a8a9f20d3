package session

import (
	"time"

	"github.com/abhisek/apptitude/internal/quiz"
)

// questionResultMsg delivers the outcome of an asynchronous question fetch.
// Token identifies the fetch that produced it; the controller discards
// results whose token has gone stale.
type questionResultMsg struct {
	Token    int
	Question *quiz.Question
	Err      error
}

// verdictResultMsg delivers the outcome of an asynchronous grading request.
type verdictResultMsg struct {
	Token   int
	Verdict *quiz.Verdict
	Err     error
}

// clockTickMsg is sent every second to refresh the elapsed clock.
type clockTickMsg time.Time

// skipUnlockMsg fires when the skip-unlock delay has passed for the
// question identified by Token.
type skipUnlockMsg struct {
	Token int
}

// testDoneMsg fires after the end-of-test display delay.
type testDoneMsg struct{}
