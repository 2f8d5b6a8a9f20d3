// Package session implements the quiz session state machine: a fixed-length
// run of questions at a chosen difficulty, a pausable per-question clock,
// and the skip-unlock gate. The package is pure state logic; the screen
// layer owns timers and network calls and reports their results back here.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/apptitude/internal/quiz"
)

const (
	// DefaultQuestionCount is the number of questions per test.
	DefaultQuestionCount = 5

	// SkipUnlockDelay is how long a question must be on screen before the
	// skip action becomes available.
	SkipUnlockDelay = 60 * time.Second

	// EndedDisplayDelay is how long the final verdict stays on screen
	// before the summary appears.
	EndedDisplayDelay = 3 * time.Second
)

// Phase is the controller's position in the question lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingQuestion
	PhaseAwaitingAnswer
	PhaseAwaitingVerdict
	PhaseResolved
	PhaseEnded
)

// String returns the phase name for errors and logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingQuestion:
		return "awaiting-question"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseAwaitingVerdict:
		return "awaiting-verdict"
	case PhaseResolved:
		return "resolved"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Controller drives one test: a fixed sequence of questions at a chosen
// level. Exactly one question is active at a time. Asynchronous results
// (question fetch, verdict, skip unlock) carry the token that was current
// when they were initiated; a result whose token no longer matches is
// stale and is discarded.
type Controller struct {
	id      string
	level   int
	total   int
	index   int // 1-based, always within [1, total] while a test runs
	correct int
	wrong   int
	skipped int

	phase        Phase
	current      *quiz.Question
	verdict      *quiz.Verdict
	lastAnswer   string
	skipUnlocked bool
	inlineErr    string

	token     int
	clock     *Clock
	totalTime time.Duration
}

// NewController creates an idle controller for a test of total questions.
// A non-positive total falls back to DefaultQuestionCount.
func NewController(total int) *Controller {
	if total <= 0 {
		total = DefaultQuestionCount
	}
	return &Controller{
		total: total,
		clock: NewClock(),
	}
}

// ID returns the session identifier, empty while idle.
func (c *Controller) ID() string { return c.id }

// Level returns the difficulty chosen at Start.
func (c *Controller) Level() int { return c.level }

// Total returns the number of questions in the test.
func (c *Controller) Total() int { return c.total }

// Index returns the 1-based index of the current question.
func (c *Controller) Index() int { return c.index }

// Correct returns the count of correctly answered questions.
func (c *Controller) Correct() int { return c.correct }

// Wrong returns the count of incorrectly answered questions.
func (c *Controller) Wrong() int { return c.wrong }

// Skipped returns the count of skipped questions.
func (c *Controller) Skipped() int { return c.skipped }

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Question returns the active question, nil while none is loaded.
func (c *Controller) Question() *quiz.Question { return c.current }

// Verdict returns the grading result for the current question, nil before
// resolution.
func (c *Controller) Verdict() *quiz.Verdict { return c.verdict }

// LastAnswer returns the most recently submitted answer.
func (c *Controller) LastAnswer() string { return c.lastAnswer }

// SkipUnlocked reports whether the skip action is currently available.
func (c *Controller) SkipUnlocked() bool { return c.skipUnlocked }

// InlineError returns the error text shown in place of the question or
// feedback, empty when the last exchange succeeded.
func (c *Controller) InlineError() string { return c.inlineErr }

// Token returns the staleness token for the current question.
func (c *Controller) Token() int { return c.token }

// Clock returns the per-question stopwatch.
func (c *Controller) Clock() *Clock { return c.clock }

// TotalElapsed returns the accumulated active time across resolved and
// skipped questions.
func (c *Controller) TotalElapsed() time.Duration { return c.totalTime }

// LastQuestion reports whether the current question is the final one.
func (c *Controller) LastQuestion() bool { return c.index == c.total }

// AnsweredCount returns correct + wrong, i.e. questions graded so far.
func (c *Controller) AnsweredCount() int { return c.correct + c.wrong }

// Start begins a new test at the given level. Valid from Idle or Ended.
// Counters reset and the index returns to 1. The returned token identifies
// the first question fetch.
func (c *Controller) Start(level int) (int, error) {
	if c.phase != PhaseIdle && c.phase != PhaseEnded {
		return 0, &PhaseError{Op: "start", Phase: c.phase}
	}
	if !quiz.ValidLevel(level) {
		return 0, ErrInvalidLevel
	}

	c.id = uuid.New().String()
	c.level = level
	c.index = 1
	c.correct = 0
	c.wrong = 0
	c.skipped = 0
	c.totalTime = 0
	c.lastAnswer = ""
	c.phase = PhaseAwaitingQuestion
	return c.arm(), nil
}

// arm stamps a fresh token for a new question fetch and clears per-question
// state.
func (c *Controller) arm() int {
	c.token++
	c.current = nil
	c.verdict = nil
	c.skipUnlocked = false
	c.inlineErr = ""
	return c.token
}

// QuestionReady installs a fetched question. Returns false when the result
// is stale (the token no longer matches or the phase moved on), in which
// case the question is discarded.
func (c *Controller) QuestionReady(token int, q *quiz.Question) bool {
	if c.phase != PhaseAwaitingQuestion || token != c.token {
		return false
	}
	c.current = q
	c.inlineErr = ""
	c.skipUnlocked = false
	c.phase = PhaseAwaitingAnswer
	c.clock.Start()
	return true
}

// QuestionFailed records a fetch failure. The controller stays in
// AwaitingQuestion so the user may retry, and skip becomes available
// immediately, bypassing the unlock delay. The clock is not started.
func (c *Controller) QuestionFailed(token int, err error) bool {
	if c.phase != PhaseAwaitingQuestion || token != c.token {
		return false
	}
	c.inlineErr = err.Error()
	c.skipUnlocked = true
	return true
}

// Retry re-arms the current question fetch after a failure. Valid only in
// AwaitingQuestion with a recorded failure.
func (c *Controller) Retry() (int, error) {
	if c.phase != PhaseAwaitingQuestion || c.inlineErr == "" {
		return 0, &PhaseError{Op: "retry", Phase: c.phase}
	}
	return c.arm(), nil
}

// Submit validates and accepts a typed answer. The trimmed answer and the
// token to attach to the grading request are returned. An empty or
// whitespace-only answer is rejected with ErrEmptyAnswer: no state change,
// no network call.
func (c *Controller) Submit(raw string) (string, int, error) {
	if c.phase != PhaseAwaitingAnswer {
		return "", 0, &PhaseError{Op: "submit", Phase: c.phase}
	}
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return "", 0, ErrEmptyAnswer
	}
	c.lastAnswer = answer
	c.inlineErr = ""
	c.clock.Pause()
	c.phase = PhaseAwaitingVerdict
	return answer, c.token, nil
}

// VerdictReady installs a grading result, updating the counters. Stale
// results are discarded. Input stays disabled in Resolved; the screen either
// offers Advance or, on the last question, schedules Finish after
// EndedDisplayDelay.
func (c *Controller) VerdictReady(token int, v *quiz.Verdict) bool {
	if c.phase != PhaseAwaitingVerdict || token != c.token {
		return false
	}
	c.verdict = v
	if v.IsCorrect {
		c.correct++
	} else {
		c.wrong++
	}
	c.totalTime += c.clock.Elapsed()
	c.phase = PhaseResolved
	return true
}

// VerdictFailed records a grading failure. The controller returns to
// AwaitingAnswer with input re-enabled and the clock resumed from its
// paused value, so the user may submit again.
func (c *Controller) VerdictFailed(token int, err error) bool {
	if c.phase != PhaseAwaitingVerdict || token != c.token {
		return false
	}
	c.inlineErr = err.Error()
	c.phase = PhaseAwaitingAnswer
	c.clock.Resume()
	return true
}

// Advance moves to the next question. Valid only in Resolved and only
// before the last question.
func (c *Controller) Advance() (int, error) {
	if c.phase != PhaseResolved {
		return 0, &PhaseError{Op: "advance", Phase: c.phase}
	}
	if c.LastQuestion() {
		return 0, &PhaseError{Op: "advance", Phase: c.phase}
	}
	c.index++
	c.phase = PhaseAwaitingQuestion
	return c.arm(), nil
}

// Skip abandons the current question without grading; neither counter
// changes. It is valid in AwaitingAnswer once the unlock delay has fired,
// and in AwaitingQuestion after a fetch failure (where it is unlocked
// immediately). Skipping the last question ends the test; otherwise the
// returned token identifies the next fetch and the caller should check
// Phase for PhaseEnded before using it.
func (c *Controller) Skip() (int, error) {
	switch c.phase {
	case PhaseAwaitingAnswer:
		if !c.skipUnlocked {
			return 0, ErrSkipLocked
		}
		c.clock.Pause()
		c.totalTime += c.clock.Elapsed()
	case PhaseAwaitingQuestion:
		if c.inlineErr == "" {
			return 0, &PhaseError{Op: "skip", Phase: c.phase}
		}
	default:
		return 0, &PhaseError{Op: "skip", Phase: c.phase}
	}

	c.skipped++
	if c.LastQuestion() {
		c.current = nil
		c.verdict = nil
		c.phase = PhaseEnded
		return 0, nil
	}
	c.index++
	c.phase = PhaseAwaitingQuestion
	return c.arm(), nil
}

// UnlockSkip applies the skip-unlock timer's effect. The timer is advisory:
// when the question it was armed for is no longer current, the unlock is
// suppressed and UnlockSkip returns false. The unlock also lands while that
// question's grading is in flight, so a grading failure returns to
// AwaitingAnswer with skip available; Skip itself remains gated on phase.
func (c *Controller) UnlockSkip(token int) bool {
	if token != c.token {
		return false
	}
	switch c.phase {
	case PhaseAwaitingAnswer, PhaseAwaitingVerdict:
		c.skipUnlocked = true
		return true
	}
	return false
}

// Finish ends the test after the final question resolved.
func (c *Controller) Finish() error {
	if c.phase != PhaseResolved || !c.LastQuestion() {
		return &PhaseError{Op: "finish", Phase: c.phase}
	}
	c.current = nil
	c.phase = PhaseEnded
	return nil
}

// Restart returns an ended controller to Idle so a new test can start.
func (c *Controller) Restart() error {
	if c.phase != PhaseEnded {
		return &PhaseError{Op: "restart", Phase: c.phase}
	}
	c.id = ""
	c.level = 0
	c.index = 0
	c.correct = 0
	c.wrong = 0
	c.skipped = 0
	c.totalTime = 0
	c.current = nil
	c.verdict = nil
	c.lastAnswer = ""
	c.inlineErr = ""
	c.skipUnlocked = false
	c.phase = PhaseIdle
	return nil
}
