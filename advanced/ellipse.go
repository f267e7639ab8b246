package advanced

import (
	"fmt"
	"math"
)

// Bezier approximation of a quarter circle, in the unit box. Each row holds the
// two control points and the end point of one quarter, going counterclockwise
// from the right-hand pole in a y-up frame.
const ellipseControlValue = 0.5522847498307933

const (
	pcv = 0.5 + ellipseControlValue*0.5
	ncv = 0.5 - ellipseControlValue*0.5
)

var ellipseControlPoints = [4][6]float64{
	{1, pcv, pcv, 1, 0.5, 1},
	{ncv, 1, 0, pcv, 0, 0.5},
	{0, ncv, ncv, 0, 0.5, 0},
	{pcv, 0, 1, ncv, 1, 0.5},
}

// ContainsEllipsePoint tests the point against the ellipse inscribed in the box
// (ex,ey,ew,eh). Points on the boundary are outside.
func ContainsEllipsePoint(ex, ey, ew, eh, px, py float64) bool {
	if ew <= 0 || eh <= 0 {
		return false
	}
	normx := (px-ex)/ew - 0.5
	normy := (py-ey)/eh - 0.5
	return normx*normx+normy*normy < 0.25
}

// ContainsEllipseRectangle tests the rectangle corner farthest from the ellipse
// center.
func ContainsEllipseRectangle(ex, ey, ew, eh, rx, ry, rw, rh float64) bool {
	ecx := ex + ew/2
	ecy := ey + eh/2
	rcx := rx + rw/2
	rcy := ry + rh/2
	farX := rx
	if ecx <= rcx {
		farX = rx + rw
	}
	farY := ry
	if ecy <= rcy {
		farY = ry + rh
	}
	return ContainsEllipsePoint(ex, ey, ew, eh, farX, farY)
}

// Normalizes the box (x3,y3)-(x4,y4) into the frame where the ellipse
// (x1,y1)-(x2,y2) is a circle of radius 0.5 centered on the origin, and tests
// whether the nearest point of the box falls inside that circle.
func intersectsEllipseBox(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	boxw := math.Abs(x4 - x3)
	boxh := math.Abs(y4 - y3)
	ellw := math.Abs(x2 - x1)
	ellh := math.Abs(y2 - y1)
	if boxw <= 0 || boxh <= 0 {
		return false
	}
	if ellw <= 0 || ellh <= 0 {
		return false
	}
	normx0 := (x3-x1)/ellw - 0.5
	normx1 := normx0 + boxw/ellw
	normy0 := (y3-y1)/ellh - 0.5
	normy1 := normy0 + boxh/ellh
	var nearx, neary float64
	if normx0 > 0 {
		nearx = normx0
	} else if normx1 < 0 {
		nearx = normx1
	}
	if normy0 > 0 {
		neary = normy0
	} else if normy1 < 0 {
		neary = normy1
	}
	return nearx*nearx+neary*neary < 0.25
}

// IntersectsEllipseEllipse takes both ellipses by their corners. The second one
// is approximated by its bounding box.
func IntersectsEllipseEllipse(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return intersectsEllipseBox(x1, y1, x2, y2, x3, y3, x4, y4)
}

// IntersectsEllipseRectangle takes the ellipse and the rectangle by their
// corners.
func IntersectsEllipseRectangle(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return intersectsEllipseBox(x1, y1, x2, y2, x3, y3, x4, y4)
}

// Coefficients of the quadratic in t whose roots are where the line
// p1 + t*(p2-p1) meets the ellipse.
func ellipseLineQuadratic(ex, ey, ew, eh, x1, y1, x2, y2 float64) (a, b, c float64) {
	ra := ew / 2
	rb := eh / 2
	ecx := ex + ra
	ecy := ey + rb
	px1 := x1 - ecx
	py1 := y1 - ecy
	px2 := x2 - ecx
	py2 := y2 - ecy
	sqA := ra * ra
	sqB := rb * rb
	vx := px2 - px1
	vy := py2 - py1
	a = vx*vx/sqA + vy*vy/sqB
	b = 2*px1*vx/sqA + 2*py1*vy/sqB
	c = px1*px1/sqA + py1*py1/sqB - 1
	return
}

func IntersectsEllipseLine(ex, ey, ew, eh, x1, y1, x2, y2 float64) bool {
	if eh <= 0 || ew <= 0 {
		return false
	}
	a, b, c := ellipseLineQuadratic(ex, ey, ew, eh, x1, y1, x2, y2)
	return b*b-4*a*c >= 0
}

// IntersectsEllipseSegment is true when the segment touches the solid ellipse,
// boundary included.
func IntersectsEllipseSegment(ex, ey, ew, eh, x1, y1, x2, y2 float64) bool {
	if eh <= 0 || ew <= 0 {
		return false
	}
	a, b, c := ellipseLineQuadratic(ex, ey, ew, eh, x1, y1, x2, y2)
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}
	if discriminant == 0 {
		t := -b / 2 / a
		return t >= 0 && t <= 1
	}
	root := math.Sqrt(discriminant)
	t1 := (-b + root) / 2 / a
	t2 := (-b - root) / 2 / a
	return (t1 >= 0 || t2 >= 0) && (t1 <= 1 || t2 <= 1)
}

// Projection of p on the ellipse boundary along the ray from the center. ok is
// false when p is the center.
func ellipseRadialProjection(px, py, ex, ey, ew, eh, sign float64) (Point, bool) {
	a := ew / 2
	b := eh / 2
	x0 := px - (ex + a)
	y0 := py - (ey + b)
	denom := a*a*y0*y0 + b*b*x0*x0
	if denom == 0 {
		return Point{}, false
	}
	factor := sign * (a * b) / math.Sqrt(denom)
	return Point{factor*x0 + ex + a, factor*y0 + ey + b}, true
}

// ClosestPointToSolidEllipse returns p itself when it is inside the ellipse,
// and otherwise the point where the ray from the center to p leaves the
// ellipse. A degenerate ellipse collapses to its corner.
func ClosestPointToSolidEllipse(px, py, ex, ey, ew, eh float64) Point {
	if ew <= 0 || eh <= 0 {
		return Point{ex, ey}
	}
	if ContainsEllipsePoint(ex, ey, ew, eh, px, py) {
		return Point{px, py}
	}
	// Outside the ellipse, so p cannot be the center.
	result, _ := ellipseRadialProjection(px, py, ex, ey, ew, eh, 1)
	return result
}

// ClosestPointToShallowEllipse treats the ellipse as its outline only. Every
// boundary point is equally valid for the center, so ok is false there.
func ClosestPointToShallowEllipse(px, py, ex, ey, ew, eh float64) (Point, bool) {
	if ew <= 0 || eh <= 0 {
		return Point{ex, ey}, true
	}
	return ellipseRadialProjection(px, py, ex, ey, ew, eh, 1)
}

// FarthestPointToEllipse is the boundary point opposite the closest one. From
// the center, the end of the major axis is picked.
func FarthestPointToEllipse(px, py, ex, ey, ew, eh float64) Point {
	if ew <= 0 || eh <= 0 {
		return Point{ex, ey}
	}
	if result, ok := ellipseRadialProjection(px, py, ex, ey, ew, eh, -1); ok {
		return result
	}
	if ew >= eh {
		return Point{ex + ew, ey + eh/2}
	}
	return Point{ex + ew/2, ey + eh}
}

// Ellipse is the ellipse inscribed in an axis aligned box. Width and height are
// never negative.
type Ellipse struct {
	minX, minY    float64
	width, height float64
}

func NewEllipse(x, y, width, height float64) *Ellipse {
	e := &Ellipse{}
	e.Set(x, y, width, height)
	return e
}

func NewEllipseFromCorners(x1, y1, x2, y2 float64) *Ellipse {
	e := &Ellipse{}
	e.SetFromCorners(x1, y1, x2, y2)
	return e
}

func (e *Ellipse) Set(x, y, width, height float64) {
	e.SetFromCorners(x, y, x+width, y+height)
}

func (e *Ellipse) SetFromCorners(x1, y1, x2, y2 float64) {
	e.minX, e.width = min(x1, x2), math.Abs(x2-x1)
	e.minY, e.height = min(y1, y2), math.Abs(y2-y1)
}

// SetWidth keeps the min corner in place. Negative widths clamp to zero.
func (e *Ellipse) SetWidth(width float64) {
	e.width = max(0, width)
}

func (e *Ellipse) SetHeight(height float64) {
	e.height = max(0, height)
}

func (e *Ellipse) MinX() float64   { return e.minX }
func (e *Ellipse) MinY() float64   { return e.minY }
func (e *Ellipse) MaxX() float64   { return e.minX + e.width }
func (e *Ellipse) MaxY() float64   { return e.minY + e.height }
func (e *Ellipse) Width() float64  { return e.width }
func (e *Ellipse) Height() float64 { return e.height }
func (e *Ellipse) Center() Point   { return Point{e.minX + e.width/2, e.minY + e.height/2} }
func (e *Ellipse) IsEmpty() bool   { return e.width <= 0 || e.height <= 0 }
func (e *Ellipse) Clone() *Ellipse { c := *e; return &c }
func (e *Ellipse) BoundingBox() Rectangle {
	return *NewRectangle(e.minX, e.minY, e.width, e.height)
}

func (e *Ellipse) Translate(dx, dy float64) {
	e.minX += dx
	e.minY += dy
}

func (e *Ellipse) Contains(x, y float64) bool {
	return ContainsEllipsePoint(e.minX, e.minY, e.width, e.height, x, y)
}

func (e *Ellipse) ContainsRect(r Rectangle) bool {
	return ContainsEllipseRectangle(e.minX, e.minY, e.width, e.height, r.MinX(), r.MinY(), r.Width(), r.Height())
}

func (e *Ellipse) ClosestPointTo(p Point) Point {
	return ClosestPointToSolidEllipse(p.X, p.Y, e.minX, e.minY, e.width, e.height)
}

func (e *Ellipse) FarthestPointTo(p Point) Point {
	return FarthestPointToEllipse(p.X, p.Y, e.minX, e.minY, e.width, e.height)
}

func (e *Ellipse) DistanceSquared(p Point) float64 { return e.ClosestPointTo(p).DistanceSquared(p) }
func (e *Ellipse) Distance(p Point) float64        { return e.ClosestPointTo(p).Distance(p) }
func (e *Ellipse) DistanceL1(p Point) float64      { return e.ClosestPointTo(p).DistanceL1(p) }
func (e *Ellipse) DistanceLinf(p Point) float64    { return e.ClosestPointTo(p).DistanceLinf(p) }

// PathIterator yields a moveto, four cubic quarters and a close. A fully
// collapsed ellipse yields nothing.
func (e *Ellipse) PathIterator() PathIterator {
	return newEllipseIterator(e.minX, e.minY, e.width, e.height)
}

func newEllipseIterator(x, y, w, h float64) *generatedIterator {
	count := 6
	if w == 0 && h == 0 {
		count = 0
	}
	at := func(i int) Point {
		ctrls := ellipseControlPoints[CircularIndex(i-1, 4)]
		return Point{x + ctrls[4]*w, y + ctrls[5]*h}
	}
	return &generatedIterator{
		count: count,
		generate: func(i int) PathElement {
			start := at(0)
			switch {
			case i == 0:
				return PathElement{Type: MoveTo, From: start, To: start}
			case i < 5:
				ctrls := ellipseControlPoints[i-1]
				return PathElement{
					Type:  CurveTo,
					From:  at(i - 1),
					Ctrl1: Point{x + ctrls[0]*w, y + ctrls[1]*h},
					Ctrl2: Point{x + ctrls[2]*w, y + ctrls[3]*h},
					To:    at(i),
				}
			}
			return PathElement{Type: Close, From: start, To: start}
		},
	}
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("ellipse[%g;%g;%g;%g]", e.minX, e.minY, e.width, e.height)
}

func (*Ellipse) isShape() {}
