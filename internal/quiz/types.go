// Package quiz holds the domain types shared by the session controller,
// the HTTP client, and the question service.
package quiz

// Difficulty level bounds. Level 1 is the easiest, 5 the hardest.
const (
	MinLevel = 1
	MaxLevel = 5
)

// ValidLevel reports whether level is within the supported range.
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// Question is a single mental-math question as served by the question
// service. It is owned by the session for the duration of one question and
// replaced on every fetch; nothing caches it beyond current use.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Answer is the canonical correct answer as a string, e.g. "80" or "6.25".
	Answer string

	// Explanation is the step-by-step solution revealed with the verdict.
	Explanation string
}

// Verdict is the grading result for a submitted answer. It is transient:
// consumed immediately into session counters and the feedback display.
type Verdict struct {
	// IsCorrect reports whether the grader accepted the answer.
	IsCorrect bool

	// Feedback explains why the answer was right or wrong.
	Feedback string

	// Explanation is the worked solution, echoed back by the grader.
	Explanation string
}
