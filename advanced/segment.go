package advanced

import "fmt"

// Segment is directed: crossing counts change sign when the ends are swapped.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

func NewSegment(x1, y1, x2, y2 float64) *Segment {
	return &Segment{x1, y1, x2, y2}
}

func NewSegmentFromPoints(p1, p2 Point) *Segment {
	return &Segment{p1.X, p1.Y, p2.X, p2.Y}
}

func (s *Segment) Set(x1, y1, x2, y2 float64) {
	*s = Segment{x1, y1, x2, y2}
}

func (s *Segment) SetP1(p Point) { s.X1, s.Y1 = p.X, p.Y }
func (s *Segment) SetP2(p Point) { s.X2, s.Y2 = p.X, p.Y }
func (s *Segment) P1() Point     { return Point{s.X1, s.Y1} }
func (s *Segment) P2() Point     { return Point{s.X2, s.Y2} }
func (s *Segment) Clone() *Segment {
	c := *s
	return &c
}

// IsEmpty is true when both ends coincide.
func (s *Segment) IsEmpty() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}

func (s *Segment) Length() float64 {
	return s.P1().Distance(s.P2())
}

func (s *Segment) BoundingBox() Rectangle {
	return *NewRectangleFromCorners(s.X1, s.Y1, s.X2, s.Y2)
}

func (s *Segment) Translate(dx, dy float64) {
	s.X1 += dx
	s.Y1 += dy
	s.X2 += dx
	s.Y2 += dy
}

// Interpolate returns the point at factor t along the segment, P1 at 0 and P2
// at 1.
func (s *Segment) Interpolate(t float64) Point {
	return Interpolate(s.X1, s.Y1, s.X2, s.Y2, t)
}

// Contains is true for points within Tolerance of the segment.
func (s *Segment) Contains(x, y float64) bool {
	return DistanceSquaredSegmentPoint(s.X1, s.Y1, s.X2, s.Y2, x, y) <= Tolerance*Tolerance
}

// ContainsRect only holds for a rectangle with no area lying on the segment.
func (s *Segment) ContainsRect(r Rectangle) bool {
	return r.IsEmpty() && s.Contains(r.MinX(), r.MinY()) && s.Contains(r.MaxX(), r.MaxY())
}

// ClosestPointTo returns p itself when the segment contains it, so that
// containment and a zero distance always agree.
func (s *Segment) ClosestPointTo(p Point) Point {
	if s.Contains(p.X, p.Y) {
		return p
	}
	return ClosestPointToSegment(s.X1, s.Y1, s.X2, s.Y2, p.X, p.Y)
}

func (s *Segment) FarthestPointTo(p Point) Point {
	return FarthestPointToSegment(s.X1, s.Y1, s.X2, s.Y2, p.X, p.Y)
}

func (s *Segment) DistanceSquared(p Point) float64 { return s.ClosestPointTo(p).DistanceSquared(p) }
func (s *Segment) Distance(p Point) float64        { return s.ClosestPointTo(p).Distance(p) }
func (s *Segment) DistanceL1(p Point) float64      { return s.ClosestPointTo(p).DistanceL1(p) }
func (s *Segment) DistanceLinf(p Point) float64    { return s.ClosestPointTo(p).DistanceLinf(p) }

// ClipToRectangle shrinks the segment to its part inside the rectangle. It
// returns false, leaving the segment untouched, when nothing is inside.
func (s *Segment) ClipToRectangle(r Rectangle) bool {
	code, p1, p2 := clipCohenSutherland(r.MinX(), r.MinY(), r.MaxX(), r.MaxY(), s.X1, s.Y1, s.X2, s.Y2)
	if code != 0 {
		return false
	}
	s.SetP1(p1)
	s.SetP2(p2)
	return true
}

// PathIterator yields a moveto and a lineto, or nothing when the segment is
// empty.
func (s *Segment) PathIterator() PathIterator {
	count := 2
	if s.IsEmpty() {
		count = 0
	}
	p1, p2 := s.P1(), s.P2()
	return &generatedIterator{
		count:    count,
		polyline: true,
		generate: func(i int) PathElement {
			if i == 0 {
				return PathElement{Type: MoveTo, From: p1, To: p1}
			}
			return PathElement{Type: LineTo, From: p1, To: p2}
		},
	}
}

func (s *Segment) String() string {
	return fmt.Sprintf("[%g;%g|%g;%g]", s.X1, s.Y1, s.X2, s.Y2)
}

func (*Segment) isShape() {}
