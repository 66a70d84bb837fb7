package game

import (
	"testing"
	"time"
)

func TestStopwatch(t *testing.T) {
	var sw Stopwatch

	sw.Tick(time.Second)
	sw.Tick(-time.Second)
	if sw.Elapsed() != time.Second {
		t.Errorf("Expected 1s, got %v", sw.Elapsed())
	}

	sw.Pause()
	sw.Tick(time.Second)
	if !sw.Paused() || sw.Elapsed() != time.Second {
		t.Errorf("Paused stopwatch advanced to %v", sw.Elapsed())
	}

	sw.Unpause()
	sw.Tick(500 * time.Millisecond)
	if sw.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s, got %v", sw.Elapsed())
	}

	sw.Reset()
	if sw.Elapsed() != 0 {
		t.Errorf("Expected 0 after reset, got %v", sw.Elapsed())
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseMenu, "menu"},
		{PhasePlaying, "playing"},
		{PhasePaused, "paused"},
		{PhaseFinished, "finished"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}
