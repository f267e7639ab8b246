package advanced

import (
	"fmt"
	"math"
)

// Point2i and Vector2i are the integer grid counterparts of Point and Vector.
// Any operation taking a fractional input rounds its result to the nearest
// integer, halves rounding up.
type Point2i struct {
	X int
	Y int
}

type Vector2i struct {
	X int
	Y int
}

func (p *Point2i) Set(x, y int) {
	p.X = x
	p.Y = y
}

func (p *Point2i) SetFloat(x, y float64) {
	p.X = roundHalfUp(x)
	p.Y = roundHalfUp(y)
}

func (p Point2i) Add(v Vector2i) Point2i {
	return Point2i{p.X + v.X, p.Y + v.Y}
}

func (p Point2i) AddFloat(x, y float64) Point2i {
	return Point2i{roundHalfUp(float64(p.X) + x), roundHalfUp(float64(p.Y) + y)}
}

func (p Point2i) Sub(q Point2i) Vector2i {
	return Vector2i{p.X - q.X, p.Y - q.Y}
}

func (p Point2i) Float() Point {
	return Point{float64(p.X), float64(p.Y)}
}

func (p Point2i) DistanceSquared(q Point2i) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}

func (p Point2i) Distance(q Point2i) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

func (p Point2i) DistanceL1(q Point2i) float64 {
	return float64(absInt(p.X-q.X) + absInt(p.Y-q.Y))
}

func (p Point2i) DistanceLinf(q Point2i) float64 {
	dx := absInt(p.X - q.X)
	dy := absInt(p.Y - q.Y)
	if dx > dy {
		return float64(dx)
	}
	return float64(dy)
}

func (p Point2i) String() string {
	return fmt.Sprintf("(%d;%d)", p.X, p.Y)
}

// PointToGrid rounds a floating point position to the nearest grid point.
func PointToGrid(p Point) Point2i {
	return Point2i{roundHalfUp(p.X), roundHalfUp(p.Y)}
}

func (v *Vector2i) Set(x, y int) {
	v.X = x
	v.Y = y
}

func (v Vector2i) Add(w Vector2i) Vector2i {
	return Vector2i{v.X + w.X, v.Y + w.Y}
}

func (v Vector2i) Sub(w Vector2i) Vector2i {
	return Vector2i{v.X - w.X, v.Y - w.Y}
}

func (v Vector2i) Scale(s int) Vector2i {
	return Vector2i{v.X * s, v.Y * s}
}

func (v Vector2i) ScaleFloat(s float64) Vector2i {
	return Vector2i{roundHalfUp(float64(v.X) * s), roundHalfUp(float64(v.Y) * s)}
}

func (v Vector2i) Negate() Vector2i {
	return Vector2i{-v.X, -v.Y}
}

func (v Vector2i) Dot(w Vector2i) int {
	return v.X*w.X + v.Y*w.Y
}

func (v Vector2i) Perp(w Vector2i) int {
	return v.X*w.Y - v.Y*w.X
}

func (v Vector2i) LengthSquared() int {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2i) Length() float64 {
	return math.Sqrt(float64(v.LengthSquared()))
}

func (v Vector2i) Float() Vector {
	return Vector{float64(v.X), float64(v.Y)}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
