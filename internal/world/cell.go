// Package world provides maze generation and grid analysis.
package world

import "math/bits"

// Direction is a cardinal passage out of a cell. Directions are bit flags so
// a set of open passages fits in a single Direction value.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// Directions lists the four cardinal directions in a fixed order.
var Directions = [4]Direction{North, South, East, West}

// Delta returns the grid offset of the neighbour in direction d.
// Rows grow southwards.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case South:
		return Point{X: 0, Y: 1}
	case East:
		return Point{X: 1, Y: 0}
	case West:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return 0
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Point is an integer grid coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Cell is a single maze cell.
type Cell struct {
	Open Direction // Set of carved passages out of this cell
	Coin bool      // True if a coin sits in this cell
}

// Has returns true if the passage in direction d is open.
func (c Cell) Has(d Direction) bool {
	return c.Open&d != 0
}

// OpenCount returns the number of open passages.
func (c Cell) OpenCount() int {
	return bits.OnesCount8(uint8(c.Open))
}

// IsDeadEnd returns true if the cell has exactly one open passage.
func (c Cell) IsDeadEnd() bool {
	return c.OpenCount() == 1
}

// Visited returns true once any passage has been carved into the cell.
func (c Cell) Visited() bool {
	return c.Open != 0
}

func (c *Cell) carve(d Direction) {
	c.Open |= d
}
