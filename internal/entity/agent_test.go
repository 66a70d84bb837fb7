package entity

import (
	"testing"

	"github.com/samdwyer/mazeband/internal/collision"
)

func TestAgentStep(t *testing.T) {
	a := NewAgent(collision.Vec{}, 10)

	// 6 widths per second for half a second, width 10
	got := a.Step(1, -1, 0.5)
	if got.X != 30 || got.Y != -30 {
		t.Errorf("Step(1,-1,0.5) = %+v, want {30 -30}", got)
	}

	// Directions are clamped to -1..1
	got = a.Step(5, 0, 0.5)
	if got.X != 30 || got.Y != 0 {
		t.Errorf("Step(5,0,0.5) = %+v, want {30 0}", got)
	}

	if got := a.Step(0, 0, 1); !got.IsZero() {
		t.Errorf("Idle step should be zero, got %+v", got)
	}
}

func TestAgentMoveAndRect(t *testing.T) {
	a := NewAgent(collision.Vec{X: 1, Y: 2}, 4)
	a.Move(collision.Vec{X: 3, Y: -1})

	r := a.Rect()
	if r.Center != (collision.Vec{X: 4, Y: 1}) {
		t.Errorf("Center = %+v", r.Center)
	}
	if r.Half != (collision.Vec{X: 2, Y: 2}) {
		t.Errorf("Half = %+v", r.Half)
	}

	if NewAgent(collision.Vec{}, -3).Width() != 0 {
		t.Error("Negative size should clamp to zero")
	}
}
