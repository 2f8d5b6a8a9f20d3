package session

import (
	"errors"
	"fmt"
)

// ErrEmptyAnswer is returned by Submit when the trimmed input is empty.
// No state changes and no grading request is issued.
var ErrEmptyAnswer = errors.New("answer is empty")

// PhaseError is returned when an operation is invoked in a phase that does
// not permit it (e.g. Advance outside Resolved, Skip before unlock).
type PhaseError struct {
	Op    string
	Phase Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s is not valid in phase %s", e.Op, e.Phase)
}

// ErrSkipLocked is returned by Skip while the unlock delay has not elapsed.
var ErrSkipLocked = errors.New("skip is still locked")

// ErrInvalidLevel is returned by Start for a level outside 1..5.
var ErrInvalidLevel = errors.New("level must be between 1 and 5")
