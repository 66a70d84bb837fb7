package gamedata

import "github.com/gdamore/tcell/v2"

// ThemeDef holds the colour scheme and glyphs loaded from theme.json.
// Colours are hex strings; use Color to convert them.
type ThemeDef struct {
	Background     string    `json:"background"`
	Wall           string    `json:"wall"`
	Text           string    `json:"text"`
	Player         string    `json:"player"`
	Coin           string    `json:"coin"`
	Start          string    `json:"start"`
	End            string    `json:"end"`
	Gate           string    `json:"gate"`
	Button         string    `json:"button"`
	ButtonSelected string    `json:"buttonSelected"`
	Glyphs         GlyphsDef `json:"glyphs"`
}

// GlyphsDef holds the single-character symbols used to draw the maze.
type GlyphsDef struct {
	Wall   string `json:"wall"`
	Player string `json:"player"`
	Coin   string `json:"coin"`
	Gate   string `json:"gate"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Color converts a theme colour to a tcell.Color, falling back to the
// terminal default for malformed values.
func Color(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// Glyph returns the first rune of s, or fallback if s is empty.
func Glyph(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// LoadTheme loads the colour theme from the embedded theme.json file.
func LoadTheme() (ThemeDef, error) {
	return Load[ThemeDef]("theme.json")
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() ThemeDef {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}
