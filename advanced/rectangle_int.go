package advanced

import (
	"fmt"
	"math"
)

// Rectangle2i is an axis aligned rectangle on the integer grid. Bounds are
// inclusive, and normalized like Rectangle.
type Rectangle2i struct {
	minX, minY int
	maxX, maxY int
}

func NewRectangle2i(x, y, width, height int) *Rectangle2i {
	return NewRectangle2iFromCorners(x, y, x+width, y+height)
}

func NewRectangle2iFromCorners(x1, y1, x2, y2 int) *Rectangle2i {
	r := &Rectangle2i{}
	r.SetFromCorners(x1, y1, x2, y2)
	return r
}

func (r *Rectangle2i) SetFromCorners(x1, y1, x2, y2 int) {
	r.minX, r.maxX = min(x1, x2), max(x1, x2)
	r.minY, r.maxY = min(y1, y2), max(y1, y2)
}

func (r Rectangle2i) MinX() int     { return r.minX }
func (r Rectangle2i) MinY() int     { return r.minY }
func (r Rectangle2i) MaxX() int     { return r.maxX }
func (r Rectangle2i) MaxY() int     { return r.maxY }
func (r Rectangle2i) Width() int    { return r.maxX - r.minX }
func (r Rectangle2i) Height() int   { return r.maxY - r.minY }
func (r Rectangle2i) IsEmpty() bool { return r.minX == r.maxX || r.minY == r.maxY }
func (r Rectangle2i) Float() Rectangle {
	return *NewRectangleFromCorners(float64(r.minX), float64(r.minY), float64(r.maxX), float64(r.maxY))
}

func (r *Rectangle2i) Add(p Point2i) {
	r.minX = min(r.minX, p.X)
	r.maxX = max(r.maxX, p.X)
	r.minY = min(r.minY, p.Y)
	r.maxY = max(r.maxY, p.Y)
}

func (r *Rectangle2i) Translate(dx, dy int) {
	r.minX += dx
	r.maxX += dx
	r.minY += dy
	r.maxY += dy
}

func (r Rectangle2i) Contains(x, y int) bool {
	return x >= r.minX && x <= r.maxX && y >= r.minY && y <= r.maxY
}

func (r Rectangle2i) ClosestPointTo(p Point2i) Point2i {
	return Point2i{min(max(p.X, r.minX), r.maxX), min(max(p.Y, r.minY), r.maxY)}
}

func (r Rectangle2i) gap(p Point2i) (dx, dy int) {
	c := r.ClosestPointTo(p)
	return absInt(p.X - c.X), absInt(p.Y - c.Y)
}

func (r Rectangle2i) DistanceSquared(p Point2i) float64 {
	dx, dy := r.gap(p)
	return float64(dx*dx + dy*dy)
}

func (r Rectangle2i) Distance(p Point2i) float64 {
	return math.Sqrt(r.DistanceSquared(p))
}

func (r Rectangle2i) DistanceL1(p Point2i) float64 {
	dx, dy := r.gap(p)
	return float64(dx + dy)
}

func (r Rectangle2i) DistanceLinf(p Point2i) float64 {
	dx, dy := r.gap(p)
	return float64(max(dx, dy))
}

func (r Rectangle2i) String() string {
	return fmt.Sprintf("[%d;%d;%d;%d]", r.minX, r.minY, r.maxX, r.maxY)
}
