package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Level     int
	Questions int
	Correct   int
	Wrong     int
	Skipped   int
	Duration  time.Duration
}

// BuildSummary creates a Summary from the controller's final state.
func BuildSummary(c *Controller) *Summary {
	return &Summary{
		Level:     c.Level(),
		Questions: c.Total(),
		Correct:   c.Correct(),
		Wrong:     c.Wrong(),
		Skipped:   c.Skipped(),
		Duration:  c.TotalElapsed(),
	}
}
