package advanced

import (
	"fmt"
	"math"
)

// Region codes for Cohen-Sutherland clipping.
const (
	cohenSutherlandInside = 0
	cohenSutherlandLeft   = 1
	cohenSutherlandRight  = 2
	cohenSutherlandBottom = 4
	cohenSutherlandTop    = 8
)

func cohenSutherlandCode(px, py, rxmin, rymin, rxmax, rymax float64) int {
	code := cohenSutherlandInside
	if px < rxmin {
		code |= cohenSutherlandLeft
	} else if px > rxmax {
		code |= cohenSutherlandRight
	}
	if py < rymin {
		code |= cohenSutherlandBottom
	} else if py > rymax {
		code |= cohenSutherlandTop
	}
	return code
}

// Clips the segment to the rectangle. The returned code is 0 when a part of
// the segment survives, in which case the clipped ends are returned too.
func clipCohenSutherland(rxmin, rymin, rxmax, rymax, x1, y1, x2, y2 float64) (code int, p1, p2 Point) {
	code1 := cohenSutherlandCode(x1, y1, rxmin, rymin, rxmax, rymax)
	code2 := cohenSutherlandCode(x2, y2, rxmin, rymin, rxmax, rymax)
	for {
		if code1|code2 == 0 {
			return 0, Point{x1, y1}, Point{x2, y2}
		}
		if code1&code2 != 0 {
			return code1 & code2, Point{x1, y1}, Point{x2, y2}
		}
		// At least one end is outside, move it onto the rectangle edge.
		outside := code1
		if outside == 0 {
			outside = code2
		}
		var x, y float64
		switch {
		case outside&cohenSutherlandTop != 0:
			x = x1 + (x2-x1)*(rymax-y1)/(y2-y1)
			y = rymax
		case outside&cohenSutherlandBottom != 0:
			x = x1 + (x2-x1)*(rymin-y1)/(y2-y1)
			y = rymin
		case outside&cohenSutherlandRight != 0:
			y = y1 + (y2-y1)*(rxmax-x1)/(x2-x1)
			x = rxmax
		default:
			y = y1 + (y2-y1)*(rxmin-x1)/(x2-x1)
			x = rxmin
		}
		if outside == code1 {
			x1, y1 = x, y
			code1 = cohenSutherlandCode(x1, y1, rxmin, rymin, rxmax, rymax)
		} else {
			x2, y2 = x, y
			code2 = cohenSutherlandCode(x2, y2, rxmin, rymin, rxmax, rymax)
		}
	}
}

// IntersectsRectangleRectangle is strict: rectangles sharing only an edge do
// not intersect.
func IntersectsRectangleRectangle(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return x2 > x3 && x1 < x4 && y2 > y3 && y1 < y4
}

// IntersectsRectangleLine is true when the corners of the rectangle do not all
// lie on the same side of the line through (x3,y3) and (x4,y4).
func IntersectsRectangleLine(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	a := CCW(x3, y3, x4, y4, x1, y1, 0)
	b := CCW(x3, y3, x4, y4, x2, y1, 0)
	if a != b && b != 0 {
		return true
	}
	b = CCW(x3, y3, x4, y4, x2, y2, 0)
	if a != b && b != 0 {
		return true
	}
	b = CCW(x3, y3, x4, y4, x1, y2, 0)
	return a != b && b != 0
}

// IntersectsRectangleSegment clips the segment. A single point left on the
// border does not count.
func IntersectsRectangleSegment(rxmin, rymin, rxmax, rymax, x1, y1, x2, y2 float64) bool {
	code, p1, p2 := clipCohenSutherland(rxmin, rymin, rxmax, rymax, x1, y1, x2, y2)
	return code == 0 && p1 != p2
}

// ContainsRectangleRectangle is inclusive. A degenerate inner rectangle is
// never contained.
func ContainsRectangleRectangle(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	if x4-x3 <= 0 || y4-y3 <= 0 {
		return false
	}
	return x3 >= x1 && y3 >= y1 && x4 <= x2 && y4 <= y2
}

func ContainsRectanglePoint(rxmin, rymin, rxmax, rymax, px, py float64) bool {
	return px >= rxmin && px <= rxmax && py >= rymin && py <= rymax
}

// Rectangle is axis aligned, and normalized so that min <= max on both axes.
// The zero value is the empty rectangle at the origin.
type Rectangle struct {
	minX, minY float64
	maxX, maxY float64
}

func NewRectangle(x, y, width, height float64) *Rectangle {
	r := &Rectangle{}
	r.Set(x, y, width, height)
	return r
}

func NewRectangleFromCorners(x1, y1, x2, y2 float64) *Rectangle {
	r := &Rectangle{}
	r.SetFromCorners(x1, y1, x2, y2)
	return r
}

func (r *Rectangle) Set(x, y, width, height float64) {
	r.SetFromCorners(x, y, x+width, y+height)
}

func (r *Rectangle) SetFromCorners(x1, y1, x2, y2 float64) {
	r.minX, r.maxX = min(x1, x2), max(x1, x2)
	r.minY, r.maxY = min(y1, y2), max(y1, y2)
}

// The single bound setters swap the bounds when they would invert the
// rectangle.

func (r *Rectangle) SetMinX(x float64) { r.SetFromCorners(x, r.minY, r.maxX, r.maxY) }
func (r *Rectangle) SetMinY(y float64) { r.SetFromCorners(r.minX, y, r.maxX, r.maxY) }
func (r *Rectangle) SetMaxX(x float64) { r.SetFromCorners(r.minX, r.minY, x, r.maxY) }
func (r *Rectangle) SetMaxY(y float64) { r.SetFromCorners(r.minX, r.minY, r.maxX, y) }

func (r *Rectangle) SetWidth(width float64)   { r.SetMaxX(r.minX + width) }
func (r *Rectangle) SetHeight(height float64) { r.SetMaxY(r.minY + height) }

func (r Rectangle) MinX() float64   { return r.minX }
func (r Rectangle) MinY() float64   { return r.minY }
func (r Rectangle) MaxX() float64   { return r.maxX }
func (r Rectangle) MaxY() float64   { return r.maxY }
func (r Rectangle) Min() Point      { return Point{r.minX, r.minY} }
func (r Rectangle) Max() Point      { return Point{r.maxX, r.maxY} }
func (r Rectangle) Width() float64  { return r.maxX - r.minX }
func (r Rectangle) Height() float64 { return r.maxY - r.minY }
func (r Rectangle) Center() Point   { return Point{(r.minX + r.maxX) / 2, (r.minY + r.maxY) / 2} }

// IsEmpty is true when the rectangle has no area.
func (r Rectangle) IsEmpty() bool          { return r.minX == r.maxX || r.minY == r.maxY }
func (r Rectangle) Clone() *Rectangle      { return &r }
func (r Rectangle) BoundingBox() Rectangle { return r }
func (r Rectangle) Equal(other Rectangle) bool {
	return r == other
}

func (r *Rectangle) Clear() {
	*r = Rectangle{}
}

func (r *Rectangle) Translate(dx, dy float64) {
	r.minX += dx
	r.maxX += dx
	r.minY += dy
	r.maxY += dy
}

func (r Rectangle) Contains(x, y float64) bool {
	return ContainsRectanglePoint(r.minX, r.minY, r.maxX, r.maxY, x, y)
}

func (r Rectangle) ContainsRect(other Rectangle) bool {
	return ContainsRectangleRectangle(r.minX, r.minY, r.maxX, r.maxY, other.minX, other.minY, other.maxX, other.maxY)
}

// Per axis distance from p to the rectangle, zero inside.
func (r Rectangle) gap(p Point) (dx, dy float64) {
	if p.X < r.minX {
		dx = r.minX - p.X
	} else if p.X > r.maxX {
		dx = p.X - r.maxX
	}
	if p.Y < r.minY {
		dy = r.minY - p.Y
	} else if p.Y > r.maxY {
		dy = p.Y - r.maxY
	}
	return
}

func (r Rectangle) DistanceSquared(p Point) float64 {
	dx, dy := r.gap(p)
	return dx*dx + dy*dy
}

func (r Rectangle) Distance(p Point) float64 {
	return math.Sqrt(r.DistanceSquared(p))
}

func (r Rectangle) DistanceL1(p Point) float64 {
	dx, dy := r.gap(p)
	return dx + dy
}

func (r Rectangle) DistanceLinf(p Point) float64 {
	dx, dy := r.gap(p)
	return max(dx, dy)
}

func (r Rectangle) ClosestPointTo(p Point) Point {
	return Point{clamp(p.X, r.minX, r.maxX), clamp(p.Y, r.minY, r.maxY)}
}

// FarthestPointTo returns the corner opposite p relative to the center.
func (r Rectangle) FarthestPointTo(p Point) Point {
	c := r.Center()
	result := Point{r.minX, r.minY}
	if p.X <= c.X {
		result.X = r.maxX
	}
	if p.Y <= c.Y {
		result.Y = r.maxY
	}
	return result
}

// Add grows the rectangle to include the point.
func (r *Rectangle) Add(p Point) {
	r.minX = min(r.minX, p.X)
	r.maxX = max(r.maxX, p.X)
	r.minY = min(r.minY, p.Y)
	r.maxY = max(r.maxY, p.Y)
}

func (r Rectangle) Union(other Rectangle) *Rectangle {
	u := r.Clone()
	u.SetUnion(other)
	return u
}

func (r *Rectangle) SetUnion(other Rectangle) {
	r.SetFromCorners(
		min(r.minX, other.minX), min(r.minY, other.minY),
		max(r.maxX, other.maxX), max(r.maxY, other.maxY))
}

// Intersection of two disjoint rectangles is the empty rectangle at the origin.
func (r Rectangle) Intersection(other Rectangle) *Rectangle {
	i := r.Clone()
	i.SetIntersection(other)
	return i
}

func (r *Rectangle) SetIntersection(other Rectangle) {
	x1 := max(r.minX, other.minX)
	y1 := max(r.minY, other.minY)
	x2 := min(r.maxX, other.maxX)
	y2 := min(r.maxY, other.maxY)
	if x1 <= x2 && y1 <= y2 {
		r.SetFromCorners(x1, y1, x2, y2)
	} else {
		r.Clear()
	}
}

// AvoidCollisionWith moves the rectangle out of reference along the axis that
// needs the smallest move, and returns the displacement applied.
func (r *Rectangle) AvoidCollisionWith(reference Rectangle) Vector {
	dx1 := reference.maxX - r.minX
	dx2 := r.maxX - reference.minX
	dy1 := reference.maxY - r.minY
	dy2 := r.maxY - reference.minY
	absdx1 := math.Abs(dx1)
	absdx2 := math.Abs(dx2)
	absdy1 := math.Abs(dy1)
	absdy2 := math.Abs(dy2)

	var d Vector
	switch {
	case dx1 >= 0 && absdx1 <= absdx2 && absdx1 <= absdy1 && absdx1 <= absdy2:
		d.X = dx1
	case dx2 >= 0 && absdx2 <= absdx1 && absdx2 <= absdy1 && absdx2 <= absdy2:
		d.X = -dx2
	case dy1 >= 0 && absdy1 <= absdx1 && absdy1 <= absdx2 && absdy1 <= absdy2:
		d.Y = dy1
	default:
		d.Y = -dy2
	}
	r.Translate(d.X, d.Y)
	return d
}

// AvoidCollisionWithDirection moves the rectangle out of reference, with the
// signs of the move taken from direction. A zero direction falls back to
// AvoidCollisionWith.
func (r *Rectangle) AvoidCollisionWithDirection(reference Rectangle, direction Vector) Vector {
	if direction.LengthSquared() == 0 {
		return r.AvoidCollisionWith(reference)
	}
	d := Vector{
		min(math.Abs(reference.maxX-r.minX), math.Abs(reference.minX-r.maxX)),
		min(math.Abs(reference.maxY-r.minY), math.Abs(reference.minY-r.maxY)),
	}
	if direction.X < 0 {
		d.X = -d.X
	}
	if direction.Y < 0 {
		d.Y = -d.Y
	}
	r.Translate(d.X, d.Y)
	return d
}

// PathIterator yields the outline counterclockwise in a y-up frame, starting at
// the min corner. A rectangle with no area yields nothing.
func (r Rectangle) PathIterator() PathIterator {
	count := 6
	if r.IsEmpty() {
		count = 0
	}
	corners := [5]Point{
		{r.minX, r.minY},
		{r.maxX, r.minY},
		{r.maxX, r.maxY},
		{r.minX, r.maxY},
		{r.minX, r.minY},
	}
	return &generatedIterator{
		count:    count,
		polyline: true,
		generate: func(i int) PathElement {
			switch {
			case i == 0:
				return PathElement{Type: MoveTo, From: corners[0], To: corners[0]}
			case i < 5:
				return PathElement{Type: LineTo, From: corners[i-1], To: corners[i]}
			}
			return PathElement{Type: Close, From: corners[0], To: corners[0]}
		},
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("[%g;%g;%g;%g]", r.minX, r.minY, r.maxX, r.maxY)
}

func (*Rectangle) isShape() {}
