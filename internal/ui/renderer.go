package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/world"
)

const (
	// hudRows is the number of screen rows above the maze.
	hudRows = 2
	// chamberCols is the width in tiles of a start or end chamber,
	// including its outer wall.
	chamberCols = 4
)

// MazeView is everything needed to draw a run in progress.
type MazeView struct {
	Grid       *world.Grid
	HasCoin    func(world.Point) bool
	GateOpen   bool
	PlayerX    int // Tile column, see game.Layout.TileAt
	PlayerY    int // Tile row
	Difficulty string
	Elapsed    time.Duration
	Collected  int
	Total      int
	Paused     bool
}

// MenuView is the difficulty selection screen.
type MenuView struct {
	Options  []gamedata.DifficultyDef
	Selected int
}

// EndView is the screen shown after escaping a maze.
type EndView struct {
	Difficulty string
	Elapsed    time.Duration
	Collected  int
	Total      int
	Attempts   int
}

type styles struct {
	floor, wall, text, player, coin tcell.Style
	start, end, gate                tcell.Style
	button, selected                tcell.Style
}

type glyphs struct {
	wall, player, coin, gate, start, end rune
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	canvas Canvas
	style  styles
	glyph  glyphs
}

// NewRenderer creates a renderer drawing to canvas with the given theme.
func NewRenderer(canvas Canvas, theme gamedata.ThemeDef) *Renderer {
	bg := gamedata.Color(theme.Background)
	base := tcell.StyleDefault.Background(bg)

	return &Renderer{
		canvas: canvas,
		style: styles{
			floor:    base,
			wall:     base.Foreground(gamedata.Color(theme.Wall)).Background(gamedata.Color(theme.Wall)),
			text:     tcell.StyleDefault.Foreground(gamedata.Color(theme.Text)),
			player:   base.Foreground(gamedata.Color(theme.Player)).Bold(true),
			coin:     base.Foreground(gamedata.Color(theme.Coin)).Bold(true),
			start:    base.Foreground(gamedata.Color(theme.Start)),
			end:      base.Foreground(gamedata.Color(theme.End)),
			gate:     base.Foreground(gamedata.Color(theme.Text)).Background(gamedata.Color(theme.Gate)),
			button:   tcell.StyleDefault.Foreground(gamedata.Color(theme.Text)).Background(gamedata.Color(theme.Button)),
			selected: tcell.StyleDefault.Foreground(gamedata.Color(theme.Wall)).Background(gamedata.Color(theme.ButtonSelected)),
		},
		glyph: glyphs{
			wall:   gamedata.Glyph(theme.Glyphs.Wall, '#'),
			player: gamedata.Glyph(theme.Glyphs.Player, '@'),
			coin:   gamedata.Glyph(theme.Glyphs.Coin, '$'),
			gate:   gamedata.Glyph(theme.Glyphs.Gate, '='),
			start:  gamedata.Glyph(theme.Glyphs.Start, '.'),
			end:    gamedata.Glyph(theme.Glyphs.End, '.'),
		},
	}
}

// RenderMaze draws the maze, the player and the HUD. The view scrolls to
// keep the player visible when the maze is larger than the screen.
func (r *Renderer) RenderMaze(v MazeView) {
	r.canvas.Clear()
	width, height := r.canvas.Size()

	n := v.Grid.Size
	mid := v.Grid.MiddleRow()
	minX, maxX := -chamberCols, 2*n+chamberCols
	minY, maxY := min(0, 2*mid-2), max(2*n, 2*mid+4)

	ox := viewportOffset(v.PlayerX, minX, maxX, width)
	oy := viewportOffset(v.PlayerY, minY, maxY, height-hudRows)

	for ty := minY; ty <= maxY; ty++ {
		sy := ty - oy + hudRows
		if sy < hudRows || sy >= height {
			continue
		}
		for tx := minX; tx <= maxX; tx++ {
			sx := tx - ox
			if sx < 0 || sx >= width {
				continue
			}
			if ch, style, ok := r.tile(v, tx, ty); ok {
				r.canvas.SetContent(sx, sy, ch, style)
			}
		}
	}

	if sx, sy := v.PlayerX-ox, v.PlayerY-oy+hudRows; sx >= 0 && sx < width && sy >= hudRows && sy < height {
		r.canvas.SetContent(sx, sy, r.glyph.player, r.style.player)
	}

	hud := fmt.Sprintf("%s  Time %s  Coins %d/%d", v.Difficulty, FormatElapsed(v.Elapsed), v.Collected, v.Total)
	if v.Collected == v.Total {
		hud += "  Exit open"
	}
	r.drawText(0, 0, hud, r.style.text)

	if v.Paused {
		r.drawCentered(height/2-1, " PAUSED ", r.style.selected)
		r.drawCentered(height/2, " p resume  r restart  q menu ", r.style.button)
	}

	r.canvas.Show()
}

// tile returns what to draw at tile (tx, ty). Cell (x, y) is tile
// (2x+1, 2y+1); even rows and columns hold the walls between cells.
func (r *Renderer) tile(v MazeView, tx, ty int) (rune, tcell.Style, bool) {
	g := v.Grid
	n := g.Size
	mid := g.MiddleRow()

	if tx >= 0 && tx <= 2*n && ty >= 0 && ty <= 2*n {
		open := false
		switch {
		case tx%2 == 0 && ty%2 == 0:
			// Corner
		case tx%2 == 1 && ty%2 == 1:
			p := world.Point{X: tx / 2, Y: ty / 2}
			if v.HasCoin != nil && v.HasCoin(p) {
				return r.glyph.coin, r.style.coin, true
			}
			open = true
		case tx%2 == 0:
			y := ty / 2
			if tx == 2*n && y == mid && !v.GateOpen {
				return r.glyph.gate, r.style.gate, true
			}
			if tx/2 < n {
				open = g.Cell(world.Point{X: tx / 2, Y: y}).Has(world.West)
			} else {
				open = g.Cell(world.Point{X: n - 1, Y: y}).Has(world.East)
			}
		default:
			x := tx / 2
			if ty/2 < n {
				open = g.Cell(world.Point{X: x, Y: ty / 2}).Has(world.North)
			} else {
				open = g.Cell(world.Point{X: x, Y: n - 1}).Has(world.South)
			}
		}
		if open {
			return ' ', r.style.floor, true
		}
		return r.glyph.wall, r.style.wall, true
	}

	if ty < 2*mid-2 || ty > 2*mid+4 {
		return 0, tcell.StyleDefault, false
	}
	edge := ty == 2*mid-2 || ty == 2*mid+4
	switch {
	case tx >= -chamberCols && tx < 0:
		if edge || tx == -chamberCols {
			return r.glyph.wall, r.style.wall, true
		}
		return r.glyph.start, r.style.start, true
	case tx > 2*n && tx <= 2*n+chamberCols:
		if edge || tx == 2*n+chamberCols {
			return r.glyph.wall, r.style.wall, true
		}
		return r.glyph.end, r.style.end, true
	}
	return 0, tcell.StyleDefault, false
}

// viewportOffset returns the first tile shown in a span of screen cells so
// that focus stays visible. Content that fits is centred.
func viewportOffset(focus, lo, hi, span int) int {
	if span <= 0 {
		return lo
	}
	content := hi - lo + 1
	if content <= span {
		return lo - (span-content)/2
	}
	off := focus - span/2
	return max(lo, min(off, hi-span+1))
}

// RenderMenu draws the difficulty selection screen.
func (r *Renderer) RenderMenu(v MenuView) {
	r.canvas.Clear()
	_, height := r.canvas.Size()

	top := max(0, height/2-len(v.Options)-3)
	r.drawCentered(top, "M A Z E B A N D", r.style.text.Bold(true))
	r.drawCentered(top+1, "collect every coin, then reach the exit", r.style.text)

	for i, d := range v.Options {
		style := r.style.button
		if i == v.Selected {
			style = r.style.selected
		}
		label := fmt.Sprintf("  %s  %-6s  %dx%d  ", d.Key, d.Name, d.Size, d.Size)
		r.drawCentered(top+3+i*2, label, style)
	}

	r.drawCentered(top+4+len(v.Options)*2, "up/down select  enter start  q quit", r.style.text)
	r.canvas.Show()
}

// RenderEnd draws the result of a finished run.
func (r *Renderer) RenderEnd(v EndView) {
	r.canvas.Clear()
	_, height := r.canvas.Size()

	top := max(0, height/2-3)
	r.drawCentered(top, "You escaped!", r.style.text.Bold(true))
	r.drawCentered(top+2, fmt.Sprintf("%s maze in %s", v.Difficulty, FormatElapsed(v.Elapsed)), r.style.text)
	r.drawCentered(top+3, fmt.Sprintf("Coins %d/%d  Attempts %d", v.Collected, v.Total, v.Attempts), r.style.text)
	r.drawCentered(top+5, " r retry  m menu  q quit ", r.style.button)
	r.canvas.Show()
}

// RenderMessage displays a message at the bottom of the screen.
func (r *Renderer) RenderMessage(msg string) {
	_, height := r.canvas.Size()
	r.drawText(0, height-1, msg, r.style.text)
	r.canvas.Show()
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.canvas.SetContent(x+i, y, ch, style)
	}
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	width, _ := r.canvas.Size()
	r.drawText(max(0, (width-len([]rune(s)))/2), y, s, style)
}

// FormatElapsed renders a duration as seconds with two decimals.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
