package game

import (
	"time"

	"github.com/samdwyer/mazeband/internal/world"
)

// Intent is the movement the player asks for this tick, -1, 0 or 1 per axis.
// Y grows northwards.
type Intent struct {
	X, Y int
}

// IntentFromKeys folds held direction keys into an Intent.
// Opposite keys cancel out.
func IntentFromKeys(up, down, left, right bool) Intent {
	var in Intent
	if up {
		in.Y++
	}
	if down {
		in.Y--
	}
	if left {
		in.X--
	}
	if right {
		in.X++
	}
	return in
}

// IsZero returns true if no direction is held.
func (i Intent) IsZero() bool {
	return i.X == 0 && i.Y == 0
}

// KeyState tracks which direction keys count as held. A press holds its
// direction for the hold window; key auto-repeat keeps extending it.
type KeyState struct {
	hold  time.Duration
	until map[world.Direction]time.Time
}

// NewKeyState creates a key tracker with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:  hold,
		until: make(map[world.Direction]time.Time, len(world.Directions)),
	}
}

// Press marks d as held from now until the hold window expires.
// Pressing a direction releases its opposite.
func (k *KeyState) Press(d world.Direction, now time.Time) {
	k.until[d] = now.Add(k.hold)
	delete(k.until, d.Opposite())
}

// Held returns true if d is still held at now.
func (k *KeyState) Held(d world.Direction, now time.Time) bool {
	until, ok := k.until[d]
	return ok && now.Before(until)
}

// Intent returns the Intent formed by the keys held at now.
func (k *KeyState) Intent(now time.Time) Intent {
	return IntentFromKeys(
		k.Held(world.North, now),
		k.Held(world.South, now),
		k.Held(world.West, now),
		k.Held(world.East, now),
	)
}

// Reset releases every key.
func (k *KeyState) Reset() {
	clear(k.until)
}
