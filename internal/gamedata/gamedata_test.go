package gamedata

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadDifficulties(t *testing.T) {
	difficulties, err := LoadDifficulties()
	if err != nil {
		t.Fatalf("Failed to load difficulties: %v", err)
	}

	if len(difficulties) != 3 {
		t.Fatalf("Expected 3 difficulties, got %d", len(difficulties))
	}

	expected := []struct {
		id    string
		size  int
		coins int
	}{
		{"easy", 11, 5},
		{"medium", 21, 7},
		{"hard", 31, 10},
	}
	for i, want := range expected {
		d := difficulties[i]
		if d.ID != want.id || d.Size != want.size || d.Coins != want.coins {
			t.Errorf("Difficulty %d = %+v, want id=%s size=%d coins=%d",
				i, d, want.id, want.size, want.coins)
		}
		if d.Coins != DefaultCoinBudget(d.Size) {
			t.Errorf("%s: coin budget %d does not follow (size+9)/4", d.ID, d.Coins)
		}
	}
}

func TestDifficultyRegistry(t *testing.T) {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 difficulties, got %d", registry.Count())
	}

	hard, err := registry.GetByID("Hard")
	if err != nil {
		t.Fatalf("Hard not found by ID: %v", err)
	}
	if hard.Name != "Hard" || hard.Size != 31 {
		t.Errorf("Unexpected hard difficulty: %+v", hard)
	}

	if _, err := registry.GetByID("nightmare"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Expected ErrUnknownDifficulty, got %v", err)
	}

	if d := registry.GetByKey('2'); d == nil || d.ID != "medium" {
		t.Errorf("Key '2' should select medium, got %+v", d)
	}
	if d := registry.GetByKey('9'); d != nil {
		t.Errorf("Key '9' should select nothing, got %+v", d)
	}

	if registry.Default().ID != "easy" {
		t.Errorf("Default should be easy, got %s", registry.Default().ID)
	}

	if NewDifficultyRegistry(nil).Default() != nil {
		t.Error("Empty registry should have no default")
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	for name, hex := range map[string]string{
		"background": theme.Background,
		"wall":       theme.Wall,
		"text":       theme.Text,
		"player":     theme.Player,
		"coin":       theme.Coin,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			t.Errorf("Theme colour %s (%q) is invalid: %v", name, hex, err)
		}
	}

	if Glyph(theme.Glyphs.Player, '?') != '@' {
		t.Errorf("Expected player glyph '@', got %q", theme.Glyphs.Player)
	}
	if Glyph("", '#') != '#' {
		t.Error("Empty glyph should fall back")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"#FFF", true}, // Shorthand
		{"invalid", false},
		{"#GG0000", false},
		{"#FFFF", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	got, _ := ParseHexColor("#F80")
	if want := tcell.NewRGBColor(0xFF, 0x88, 0x00); got != want {
		t.Errorf("Shorthand #F80 = %v, want %v", got, want)
	}

	if Color("nope") != tcell.ColorDefault {
		t.Error("Malformed colour should fall back to the default")
	}
}
