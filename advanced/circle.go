package advanced

import (
	"fmt"
	"math"
)

func ContainsCirclePoint(cx, cy, radius, px, py float64) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= radius*radius
}

// ContainsCircleRectangle tests the corner of the rectangle farthest from the
// center.
func ContainsCircleRectangle(cx, cy, radius, rxmin, rymin, rxmax, rymax float64) bool {
	rcx := (rxmin + rxmax) / 2
	rcy := (rymin + rymax) / 2
	farX := rxmin
	if cx <= rcx {
		farX = rxmax
	}
	farY := rymin
	if cy <= rcy {
		farY = rymax
	}
	return ContainsCirclePoint(cx, cy, radius, farX, farY)
}

func IntersectsCircleCircle(x1, y1, radius1, x2, y2, radius2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	r := radius1 + radius2
	return dx*dx+dy*dy < r*r
}

func IntersectsCircleRectangle(cx, cy, radius, rxmin, rymin, rxmax, rymax float64) bool {
	dx := cx - clamp(cx, rxmin, rxmax)
	dy := cy - clamp(cy, rymin, rymax)
	return dx*dx+dy*dy < radius*radius
}

func IntersectsCircleLine(cx, cy, radius, x1, y1, x2, y2 float64) bool {
	return DistanceSquaredLinePoint(x1, y1, x2, y2, cx, cy) < radius*radius
}

func IntersectsCircleSegment(cx, cy, radius, x1, y1, x2, y2 float64) bool {
	return DistanceSquaredSegmentPoint(x1, y1, x2, y2, cx, cy) < radius*radius
}

// Circle is a disc. The radius is never negative.
type Circle struct {
	center Point
	radius float64
}

func NewCircle(x, y, radius float64) *Circle {
	c := &Circle{}
	c.Set(x, y, radius)
	return c
}

func (c *Circle) Set(x, y, radius float64) {
	c.center = Point{x, y}
	c.SetRadius(radius)
}

func (c *Circle) SetCenter(p Point)        { c.center = p }
func (c *Circle) SetRadius(radius float64) { c.radius = max(0, radius) }
func (c *Circle) Center() Point            { return c.center }
func (c *Circle) Radius() float64          { return c.radius }
func (c *Circle) IsEmpty() bool            { return c.radius <= 0 }
func (c *Circle) Clone() *Circle           { d := *c; return &d }

func (c *Circle) BoundingBox() Rectangle {
	return *NewRectangleFromCorners(c.center.X-c.radius, c.center.Y-c.radius, c.center.X+c.radius, c.center.Y+c.radius)
}

func (c *Circle) Translate(dx, dy float64) {
	c.center.X += dx
	c.center.Y += dy
}

func (c *Circle) Contains(x, y float64) bool {
	return ContainsCirclePoint(c.center.X, c.center.Y, c.radius, x, y)
}

func (c *Circle) ContainsRect(r Rectangle) bool {
	return ContainsCircleRectangle(c.center.X, c.center.Y, c.radius, r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
}

func (c *Circle) ClosestPointTo(p Point) Point {
	v := p.Sub(c.center)
	l := v.LengthSquared()
	if l <= c.radius*c.radius {
		return p
	}
	return c.center.Add(v.Scale(c.radius / math.Sqrt(l)))
}

// FarthestPointTo picks the point of the circle opposite p. From the center,
// the point returned is the right-hand pole.
func (c *Circle) FarthestPointTo(p Point) Point {
	v := c.center.Sub(p)
	if v.LengthSquared() == 0 {
		return Point{c.center.X + c.radius, c.center.Y}
	}
	return c.center.Add(v.SetLength(c.radius))
}

func (c *Circle) DistanceSquared(p Point) float64 {
	d := max(0, p.Distance(c.center)-c.radius)
	return d * d
}

func (c *Circle) Distance(p Point) float64 {
	return max(0, p.Distance(c.center)-c.radius)
}

func (c *Circle) DistanceL1(p Point) float64   { return c.ClosestPointTo(p).DistanceL1(p) }
func (c *Circle) DistanceLinf(p Point) float64 { return c.ClosestPointTo(p).DistanceLinf(p) }

// PathIterator yields the same four cubic quarters as an ellipse with the
// circle's bounding box. A zero radius yields nothing.
func (c *Circle) PathIterator() PathIterator {
	if c.radius <= 0 {
		return &generatedIterator{}
	}
	return newEllipseIterator(c.center.X-c.radius, c.center.Y-c.radius, 2*c.radius, 2*c.radius)
}

func (c *Circle) String() string {
	return fmt.Sprintf("circle[%g;%g|%g]", c.center.X, c.center.Y, c.radius)
}

func (*Circle) isShape() {}
