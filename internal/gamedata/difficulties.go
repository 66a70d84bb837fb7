package gamedata

import "errors"

// ErrUnknownDifficulty is returned when a difficulty ID is not in the table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyDef defines a selectable maze difficulty loaded from JSON.
type DifficultyDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "easy")
	Name  string `json:"name"`  // Display name (e.g., "Easy")
	Key   string `json:"key"`   // Menu hotkey (e.g., "1")
	Size  int    `json:"size"`  // Maze side length in cells
	Coins int    `json:"coins"` // Coin budget handed to the generator
}

// KeyRune returns the menu hotkey as a rune.
func (d *DifficultyDef) KeyRune() rune {
	if len(d.Key) == 0 {
		return '?'
	}
	return rune(d.Key[0])
}

// DefaultCoinBudget returns the coin budget for a maze of the given size,
// (size + 9) / 4, which yields 5, 7 and 10 for the reference sizes.
func DefaultCoinBudget(size int) int {
	return (size + 9) / 4
}

// DifficultiesFile represents the structure of difficulties.json.
type DifficultiesFile struct {
	Difficulties []DifficultyDef `json:"difficulties"`
}

// LoadDifficulties loads difficulty definitions from the embedded difficulties.json file.
// Entries with a non-positive size are rejected; a missing coin budget is
// derived from the size.
func LoadDifficulties() ([]DifficultyDef, error) {
	file, err := Load[DifficultiesFile]("difficulties.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Difficulties {
		d := &file.Difficulties[i]
		if d.Size <= 0 {
			return nil, errors.New("difficulty " + d.ID + " has no size")
		}
		if d.Coins <= 0 {
			d.Coins = DefaultCoinBudget(d.Size)
		}
	}
	return file.Difficulties, nil
}

// MustLoadDifficulties loads difficulty definitions, panicking on error.
func MustLoadDifficulties() []DifficultyDef {
	difficulties, err := LoadDifficulties()
	if err != nil {
		panic(err)
	}
	return difficulties
}
