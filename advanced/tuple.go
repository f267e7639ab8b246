package advanced

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Points are plain values; shapes never hold
// a pointer to a caller's point, so mutating one never moves a shape.
type Point struct {
	X float64
	Y float64
}

// Vector is a displacement in the plane.
type Vector struct {
	X float64
	Y float64
}

func (p *Point) Set(x, y float64) {
	p.X = x
	p.Y = y
}

func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns the vector going from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y}
}

func (p Point) Vector() Vector {
	return Vector(p)
}

func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSquared(q))
}

// Manhattan distance
func (p Point) DistanceL1(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Chebyshev distance
func (p Point) DistanceLinf(q Point) float64 {
	return math.Max(math.Abs(p.X-q.X), math.Abs(p.Y-q.Y))
}

// Tolerance based equality
func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g;%g)", p.X, p.Y)
}

func (v *Vector) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Perp is the z component of the 3D cross product of v and w. It is positive
// when w is counterclockwise from v.
func (v Vector) Perp(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector with the same direction. The zero vector
// yields NaN components.
func (v Vector) Normalize() Vector {
	return v.Scale(1 / v.Length())
}

// SetLength rescales v so that its length is l. The direction of the zero
// vector is undefined, so it is returned untouched.
func (v Vector) SetLength(l float64) Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(l / length)
}

func (v Vector) Point() Point {
	return Point(v)
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g;%g>", v.X, v.Y)
}
