package game

import "time"

// Stopwatch accumulates elapsed play time between pauses.
type Stopwatch struct {
	elapsed time.Duration
	paused  bool
}

// Tick adds dt to the elapsed time unless the stopwatch is paused.
// Negative durations are ignored.
func (s *Stopwatch) Tick(dt time.Duration) {
	if s.paused || dt <= 0 {
		return
	}
	s.elapsed += dt
}

// Elapsed returns the accumulated time.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Pause stops the stopwatch from accumulating time.
func (s *Stopwatch) Pause() {
	s.paused = true
}

// Unpause resumes accumulating time.
func (s *Stopwatch) Unpause() {
	s.paused = false
}

// Paused reports whether the stopwatch is paused.
func (s *Stopwatch) Paused() bool {
	return s.paused
}

// Reset clears the elapsed time. The paused flag is left as is.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
}
