package geom

import (
	"strconv"
)

// Dimensions is the number of axes of a Point.
const Dimensions = 2

const (
	AxisX = 0
	AxisY = 1
)

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Point is an immutable planar coordinate.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

func (p Point) Dimensions() int {
	return Dimensions
}

// Axis returns the X coordinate for idx 0 and the Y coordinate for any other idx.
func (p Point) Axis(idx int) float64 {
	if idx == AxisX {
		return p.X
	}
	return p.Y
}

func (p Point) Points() []float64 {
	return []float64{p.X, p.Y}
}

func (p Point) Sub(p1 Point) Point {
	return Point{X: p.X - p1.X, Y: p.Y - p1.Y}
}

func (p Point) Add(p1 Point) Point {
	return Point{X: p.X + p1.X, Y: p.Y + p1.Y}
}

func (p Point) Equal(p1 Point) bool {
	return p.X == p1.X && p.Y == p1.Y
}

// Less orders points by X, then by Y.
func (p Point) Less(p1 Point) bool {
	if p.X != p1.X {
		return p.X < p1.X
	}
	return p.Y < p1.Y
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}
