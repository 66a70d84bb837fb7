package world

import "strings"

// Grid is a square maze of Size x Size cells, indexed [row][column].
// A generated grid is treated as immutable; use Clone to reuse it.
type Grid struct {
	Size  int
	Cells [][]Cell
}

// NewGrid creates a grid with every passage closed.
// Sizes below one produce an empty grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
	}
	return &Grid{Size: size, Cells: cells}
}

// InBounds returns true if p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Size && p.Y < g.Size
}

// Cell returns the cell at p, or a closed empty cell when p is out of bounds.
func (g *Grid) Cell(p Point) Cell {
	if !g.InBounds(p) {
		return Cell{}
	}
	return g.Cells[p.Y][p.X]
}

// MiddleRow returns the row holding the entrance and the exit.
func (g *Grid) MiddleRow() int {
	return g.Size / 2
}

// Entrance returns the cell whose west face opens onto the outside.
func (g *Grid) Entrance() Point {
	return Point{X: 0, Y: g.MiddleRow()}
}

// Exit returns the cell whose east face opens onto the outside.
func (g *Grid) Exit() Point {
	return Point{X: g.Size - 1, Y: g.MiddleRow()}
}

// carve opens the passage from p in direction d. If the neighbour lies
// inside the grid its opposite passage is opened too.
func (g *Grid) carve(p Point, d Direction) {
	if !g.InBounds(p) {
		return
	}
	g.Cells[p.Y][p.X].carve(d)

	n := p.Add(d.Delta())
	if g.InBounds(n) {
		g.Cells[n.Y][n.X].carve(d.Opposite())
	}
}

// DeadEnds returns every cell with exactly one open passage, in row-major order.
func (g *Grid) DeadEnds() []Point {
	var points []Point
	for y, row := range g.Cells {
		for x, cell := range row {
			if cell.IsDeadEnd() {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// CoinCells returns every cell holding a coin, in row-major order.
func (g *Grid) CoinCells() []Point {
	var points []Point
	for y, row := range g.Cells {
		for x, cell := range row {
			if cell.Coin {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// CoinCount returns the number of coins in the grid.
func (g *Grid) CoinCount() int {
	return len(g.CoinCells())
}

// PassageCount returns the number of open passages joining two cells.
// Boundary openings are not counted.
func (g *Grid) PassageCount() int {
	count := 0
	for y, row := range g.Cells {
		for x, cell := range row {
			if cell.Has(East) && x+1 < g.Size {
				count++
			}
			if cell.Has(South) && y+1 < g.Size {
				count++
			}
		}
	}
	return count
}

// neighbours returns the cells reachable from p through one open passage.
func (g *Grid) neighbours(p Point) []Point {
	cell := g.Cell(p)
	result := make([]Point, 0, 4)
	for _, d := range Directions {
		if !cell.Has(d) {
			continue
		}
		n := p.Add(d.Delta())
		if g.InBounds(n) && g.Cell(n).Has(d.Opposite()) {
			result = append(result, n)
		}
	}
	return result
}

// Reachable returns the number of cells reachable from start, start included.
func (g *Grid) Reachable(start Point) int {
	if !g.InBounds(start) {
		return 0
	}

	visited := make(map[Point]bool, g.Size*g.Size)
	visited[start] = true
	stack := []Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.neighbours(p) {
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(visited)
}

// IsConnected returns true if every cell can be reached from every other.
// An empty grid is trivially connected.
func (g *Grid) IsConnected() bool {
	if g.Size == 0 {
		return true
	}
	return g.Reachable(Point{}) == g.Size*g.Size
}

// ShortestPath returns the cells on the shortest route from start to end,
// both included, or nil if there is none. In a perfect maze the route is unique.
func (g *Grid) ShortestPath(start, end Point) []Point {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}

	queue := []Point{start}
	cameFrom := map[Point]Point{}
	visited := map[Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Point{curr}
			for curr != start {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, n := range g.neighbours(curr) {
			if !visited[n] {
				visited[n] = true
				cameFrom[n] = curr
				queue = append(queue, n)
			}
		}
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Size)
	for y := range g.Cells {
		copy(clone.Cells[y], g.Cells[y])
	}
	return clone
}

// Equal returns true if both grids have the same size, passages and coins.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Size != o.Size {
		return false
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] != o.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String draws the maze as ASCII art. Coins are shown as '$'.
func (g *Grid) String() string {
	if g.Size == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("+")
	for x := 0; x < g.Size; x++ {
		if g.Cells[0][x].Has(North) {
			b.WriteString("   +")
		} else {
			b.WriteString("---+")
		}
	}
	b.WriteString("\n")

	for y, row := range g.Cells {
		if row[0].Has(West) {
			b.WriteString(" ")
		} else {
			b.WriteString("|")
		}
		for _, cell := range row {
			if cell.Coin {
				b.WriteString(" $ ")
			} else {
				b.WriteString("   ")
			}
			if cell.Has(East) {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for _, cell := range g.Cells[y] {
			if cell.Has(South) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
