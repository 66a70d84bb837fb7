// Package collision provides axis-aligned rectangle geometry and the
// per-axis movement resolver used to keep the player out of maze walls.
package collision

import "math"

// Epsilon is the tolerance used when deciding whether an agent starts
// clear of an obstacle face.
const Epsilon = 1e-9

// Vec is a 2D vector in world units. Y grows upwards.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// IsZero returns true if both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Valid returns true if both components are finite numbers.
func (v Vec) Valid() bool {
	return finite(v.X) && finite(v.Y)
}

// Rect is an axis-aligned rectangle described by its centre and half-extent.
type Rect struct {
	Center Vec
	Half   Vec
}

// NewRect creates a rectangle from a centre point and full width and height.
func NewRect(cx, cy, width, height float64) Rect {
	return Rect{
		Center: Vec{X: cx, Y: cy},
		Half:   Vec{X: width / 2, Y: height / 2},
	}
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec {
	return r.Center.Sub(r.Half)
}

// Max returns the top-right corner.
func (r Rect) Max() Vec {
	return r.Center.Add(r.Half)
}

// Size returns the full width and height.
func (r Rect) Size() Vec {
	return r.Half.Scale(2)
}

// Translate returns the rectangle moved by delta.
func (r Rect) Translate(delta Vec) Rect {
	return Rect{Center: r.Center.Add(delta), Half: r.Half}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := o.Min(), o.Max()
	minX, minY := math.Min(rMin.X, oMin.X), math.Min(rMin.Y, oMin.Y)
	maxX, maxY := math.Max(rMax.X, oMax.X), math.Max(rMax.Y, oMax.Y)
	return NewRect((minX+maxX)/2, (minY+maxY)/2, maxX-minX, maxY-minY)
}

// Overlaps returns true if the interiors of the two rectangles intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	rMin, rMax := r.Min(), r.Max()
	oMin, oMax := o.Min(), o.Max()
	return rMin.X < oMax.X && rMax.X > oMin.X &&
		rMin.Y < oMax.Y && rMax.Y > oMin.Y
}

// Contains returns true if the point lies inside the rectangle (edges included).
func (r Rect) Contains(p Vec) bool {
	rMin, rMax := r.Min(), r.Max()
	return p.X >= rMin.X && p.X <= rMax.X && p.Y >= rMin.Y && p.Y <= rMax.Y
}

// Valid returns true if the rectangle has finite coordinates and a
// non-negative half-extent.
func (r Rect) Valid() bool {
	return r.Center.Valid() && r.Half.Valid() && r.Half.X >= 0 && r.Half.Y >= 0
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
