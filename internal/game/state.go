// Package game provides the main game loop and maze session management.
package game

// Phase represents where the player is in the game.
type Phase int

const (
	// PhaseMenu is the difficulty selection screen.
	PhaseMenu Phase = iota
	// PhasePlaying is an active maze run; the agent moves every tick.
	PhasePlaying
	// PhasePaused freezes the run: no movement and no timer.
	PhasePaused
	// PhaseFinished is reached when the agent enters the end zone.
	PhaseFinished
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}
