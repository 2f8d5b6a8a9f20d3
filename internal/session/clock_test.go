package session

import (
	"testing"
	"time"
)

// fakeNow returns a controllable time source starting at a fixed instant.
func fakeNow() (*time.Time, func() time.Time) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &now, func() time.Time { return now }
}

func TestClock_ElapsedWhileRunning(t *testing.T) {
	now, src := fakeNow()
	c := newClockAt(src)

	c.Start()
	*now = now.Add(42 * time.Second)

	if got := c.Elapsed(); got != 42*time.Second {
		t.Fatalf("Elapsed = %v, want 42s", got)
	}
	if got := c.Display(); got != "00:42" {
		t.Fatalf("Display = %q, want 00:42", got)
	}
}

func TestClock_PauseFreezesElapsed(t *testing.T) {
	now, src := fakeNow()
	c := newClockAt(src)

	c.Start()
	*now = now.Add(10 * time.Second)
	c.Pause()
	*now = now.Add(999 * time.Second)

	if got := c.Elapsed(); got != 10*time.Second {
		t.Fatalf("Elapsed after pause = %v, want 10s", got)
	}
	if c.Running() {
		t.Fatal("clock should not be running after Pause")
	}
}

func TestClock_PauseIsIdempotent(t *testing.T) {
	now, src := fakeNow()
	c := newClockAt(src)

	c.Start()
	*now = now.Add(7 * time.Second)
	c.Pause()
	*now = now.Add(5 * time.Second)
	c.Pause() // repeated pause must not overwrite the recorded value
	c.Pause()

	if got := c.Elapsed(); got != 7*time.Second {
		t.Fatalf("Elapsed after repeated pause = %v, want 7s", got)
	}
}

func TestClock_ResumeContinuesFromPausedValue(t *testing.T) {
	now, src := fakeNow()
	c := newClockAt(src)

	c.Start()
	*now = now.Add(30 * time.Second)
	c.Pause()
	*now = now.Add(2 * time.Minute) // paused interval must not count
	c.Resume()
	*now = now.Add(15 * time.Second)

	// elapsed_after_resume_tick == elapsed_before_pause + seconds_since_resume
	if got := c.Elapsed(); got != 45*time.Second {
		t.Fatalf("Elapsed after resume = %v, want 45s", got)
	}
}

func TestClock_ResumeWhileRunningIsNoop(t *testing.T) {
	now, src := fakeNow()
	c := newClockAt(src)

	c.Start()
	*now = now.Add(20 * time.Second)
	c.Resume()

	if got := c.Elapsed(); got != 20*time.Second {
		t.Fatalf("Elapsed = %v, want 20s", got)
	}
}

func TestClock_StartClearsAccumulation(t *testing.T) {
	now, src := fakeNow()
	c := newClockAt(src)

	c.Start()
	*now = now.Add(50 * time.Second)
	c.Pause()
	c.Start()
	*now = now.Add(3 * time.Second)

	if got := c.Elapsed(); got != 3*time.Second {
		t.Fatalf("Elapsed after restart = %v, want 3s", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{59 * time.Second, "00:59"},
		{60 * time.Second, "01:00"},
		{61*time.Second + 900*time.Millisecond, "01:01"}, // floor to whole seconds
		{10*time.Minute + 5*time.Second, "10:05"},
		{-3 * time.Second, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatElapsed(tc.d); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
