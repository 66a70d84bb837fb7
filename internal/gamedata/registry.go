package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// DifficultyRegistry holds loaded difficulty definitions in menu order.
type DifficultyRegistry struct {
	difficulties []DifficultyDef
	byID         map[string]*DifficultyDef
}

// NewDifficultyRegistry creates a registry from loaded difficulty definitions.
func NewDifficultyRegistry(difficulties []DifficultyDef) *DifficultyRegistry {
	registry := &DifficultyRegistry{
		difficulties: difficulties,
		byID:         make(map[string]*DifficultyDef, len(difficulties)),
	}
	for i := range difficulties {
		registry.byID[difficulties[i].ID] = &difficulties[i]
	}
	return registry
}

// LoadDifficultyRegistry loads and creates a registry from the embedded difficulties.json.
func LoadDifficultyRegistry() (*DifficultyRegistry, error) {
	difficulties, err := LoadDifficulties()
	if err != nil {
		return nil, err
	}
	if len(difficulties) == 0 {
		return nil, errors.New("no difficulties loaded from difficulties.json")
	}
	return NewDifficultyRegistry(difficulties), nil
}

// MustLoadDifficultyRegistry loads a registry, panicking on error.
func MustLoadDifficultyRegistry() *DifficultyRegistry {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the difficulty with the given ID (case-insensitive).
func (r *DifficultyRegistry) GetByID(id string) (*DifficultyDef, error) {
	if d, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, id)
}

// GetByKey returns the difficulty bound to a menu hotkey, or nil.
func (r *DifficultyRegistry) GetByKey(key rune) *DifficultyDef {
	for i := range r.difficulties {
		if r.difficulties[i].KeyRune() == key {
			return &r.difficulties[i]
		}
	}
	return nil
}

// Default returns the first difficulty in menu order.
func (r *DifficultyRegistry) Default() *DifficultyDef {
	if len(r.difficulties) == 0 {
		return nil
	}
	return &r.difficulties[0]
}

// All returns all difficulty definitions in menu order.
func (r *DifficultyRegistry) All() []DifficultyDef {
	return r.difficulties
}

// Count returns the number of difficulties in the registry.
func (r *DifficultyRegistry) Count() int {
	return len(r.difficulties)
}
