package game

import (
	"math"

	"github.com/samdwyer/mazeband/internal/collision"
	"github.com/samdwyer/mazeband/internal/world"
)

const (
	// DefaultExtent is the side length of the maze in world units.
	DefaultExtent = 600.0
	// DefaultBorder is the thickness of a wall.
	DefaultBorder = 3.0
	// coinScale is the coin size relative to a cell.
	coinScale = 0.75
)

// Coin is a collectible placed in a maze cell.
type Coin struct {
	Cell world.Point
	Rect collision.Rect
}

// Layout places a Grid in world space. The maze is centred on the origin with
// y growing northwards; the start and end chambers sit outside the west and
// east faces, level with the entrance row.
type Layout struct {
	Extent   float64
	Border   float64
	CellSize float64
	Size     int

	Walls     []collision.Rect // One per closed passage of every cell
	Chambers  []collision.Rect // Walls enclosing the start and end chambers
	Gate      collision.Rect   // Closes the exit until every coin is collected
	StartZone collision.Rect
	EndZone   collision.Rect
	Coins     []Coin

	Spawn     collision.Vec // Agent start position
	AgentSize float64       // Agent side length
}

// NewLayout computes the world geometry of grid.
func NewLayout(grid *world.Grid, extent, border float64) *Layout {
	n := max(grid.Size, 1)
	cs := (extent - border*float64(n+1)) / float64(n)

	l := &Layout{
		Extent:    extent,
		Border:    border,
		CellSize:  cs,
		Size:      grid.Size,
		AgentSize: cs / 2,
	}

	half := extent / 2
	rowY := -l.offset(n / 2)

	for y, row := range grid.Cells {
		for x, cell := range row {
			p := world.Point{X: x, Y: y}
			l.Walls = append(l.Walls, l.cellWalls(p, cell)...)
			if cell.Coin {
				c := l.CellCenter(p)
				l.Coins = append(l.Coins, Coin{
					Cell: p,
					Rect: collision.NewRect(c.X, c.Y, cs*coinScale, cs*coinScale),
				})
			}
		}
	}

	for _, s := range []float64{-1, 1} {
		l.Chambers = append(l.Chambers,
			collision.NewRect(s*(half+2*cs), rowY, border, 2*cs+border),
			collision.NewRect(s*(half+cs), rowY+cs, 2*cs+border, border),
			collision.NewRect(s*(half+cs), rowY-cs, 2*cs+border, border),
		)
	}

	l.Gate = collision.NewRect(half-border/2, rowY, border, cs)
	l.StartZone = collision.NewRect(-(half + cs), rowY, 2*cs, 2*cs)
	l.EndZone = collision.NewRect(half+cs, rowY, 2*cs, 2*cs)
	l.Spawn = l.StartZone.Center

	return l
}

// offset is the distance from the maze's west (or north) face to the centre
// of cell index i, shifted so the maze is centred on the origin.
func (l *Layout) offset(i int) float64 {
	return l.Border + (l.CellSize+l.Border)*float64(i) - (l.Extent-l.CellSize)/2
}

// CellCenter returns the world position of a cell's centre.
func (l *Layout) CellCenter(p world.Point) collision.Vec {
	return collision.Vec{X: l.offset(p.X), Y: -l.offset(p.Y)}
}

// cellWalls returns one wall rectangle per closed passage of cell. Walls of
// neighbouring cells overlap exactly along the shared border.
func (l *Layout) cellWalls(p world.Point, cell world.Cell) []collision.Rect {
	c := l.CellCenter(p)
	d := l.CellSize/2 + l.Border/2
	long := l.CellSize + 2*l.Border

	var walls []collision.Rect
	for _, dir := range world.Directions {
		if cell.Has(dir) {
			continue
		}
		switch dir {
		case world.North:
			walls = append(walls, collision.NewRect(c.X, c.Y+d, long, l.Border))
		case world.South:
			walls = append(walls, collision.NewRect(c.X, c.Y-d, long, l.Border))
		case world.East:
			walls = append(walls, collision.NewRect(c.X+d, c.Y, l.Border, long))
		case world.West:
			walls = append(walls, collision.NewRect(c.X-d, c.Y, l.Border, long))
		}
	}
	return walls
}

// Obstacles returns every rectangle the agent collides with. The gate is
// included until it is opened.
func (l *Layout) Obstacles(gateOpen bool) []collision.Rect {
	obstacles := make([]collision.Rect, 0, len(l.Walls)+len(l.Chambers)+1)
	obstacles = append(obstacles, l.Walls...)
	obstacles = append(obstacles, l.Chambers...)
	if !gateOpen {
		obstacles = append(obstacles, l.Gate)
	}
	return obstacles
}

// pitch is the distance between neighbouring cell centres.
func (l *Layout) pitch() float64 {
	return l.CellSize + l.Border
}

// CellAt returns the cell containing pos. The second result is false when
// pos lies outside the maze.
func (l *Layout) CellAt(pos collision.Vec) (world.Point, bool) {
	p := world.Point{
		X: int(math.Floor((pos.X + l.Extent/2) / l.pitch())),
		Y: int(math.Floor((l.Extent/2 - pos.Y) / l.pitch())),
	}
	ok := p.X >= 0 && p.Y >= 0 && p.X < l.Size && p.Y < l.Size
	return p, ok
}

// TileAt maps pos onto a character grid where cell (x, y) is tile
// (2x+1, 2y+1) and the walls between cells are the even tiles. Positions in
// the chambers map to negative columns or columns past 2*Size.
func (l *Layout) TileAt(pos collision.Vec) (tx, ty int) {
	wallShare := l.Border / l.pitch()
	tile := func(u float64) int {
		cell := math.Floor(u)
		if u-cell < wallShare {
			return 2 * int(cell)
		}
		return 2*int(cell) + 1
	}
	return tile((pos.X + l.Extent/2) / l.pitch()), tile((l.Extent/2 - pos.Y) / l.pitch())
}
