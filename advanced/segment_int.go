package advanced

import (
	"fmt"
	"math"
)

// Segment2i is a segment on the integer grid. Its points are the pixels
// Bresenham's algorithm lights between the two ends.
type Segment2i struct {
	X1, Y1 int
	X2, Y2 int
}

func NewSegment2i(x1, y1, x2, y2 int) *Segment2i {
	return &Segment2i{x1, y1, x2, y2}
}

func (s *Segment2i) P1() Point2i { return Point2i{s.X1, s.Y1} }
func (s *Segment2i) P2() Point2i { return Point2i{s.X2, s.Y2} }

func (s *Segment2i) IsEmpty() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}

func (s *Segment2i) Float() *Segment {
	return NewSegment(float64(s.X1), float64(s.Y1), float64(s.X2), float64(s.Y2))
}

func (s *Segment2i) BoundingBox() Rectangle2i {
	return *NewRectangle2iFromCorners(s.X1, s.Y1, s.X2, s.Y2)
}

// Pixels returns every grid point of the rasterized segment, from P1 to P2.
func (s *Segment2i) Pixels() []Point2i {
	var pixels []Point2i
	it := NewLineRasterizer(s.X1, s.Y1, s.X2, s.Y2)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		pixels = append(pixels, p)
	}
	return pixels
}

// Contains is true when (x,y) is one of the pixels of the segment.
func (s *Segment2i) Contains(x, y int) bool {
	if x < min(s.X1, s.X2) || x > max(s.X1, s.X2) || y < min(s.Y1, s.Y2) || y > max(s.Y1, s.Y2) {
		return false
	}
	if s.X1 == s.X2 || s.Y1 == s.Y2 {
		return true
	}
	// Pixels get closer to (x,y) until the closest one, then farther.
	minDist := math.MaxInt
	it := NewLineRasterizer(s.X1, s.Y1, s.X2, s.Y2)
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		d := p.Sub(Point2i{x, y}).LengthSquared()
		if d == 0 {
			return true
		}
		if d > minDist {
			return false
		}
		minDist = d
	}
	return false
}

// ClosestPointTo walks the raster until the distance grows. The raster may
// step sideways and back, so one extra pixel is checked after the first
// increase:
//
//	5) | | | | | | | | | | |X|
//	4) | | |O| | | | | |X|X| |
//	3) | | | | | | |X|X| | | |
//	2) | | | | |X|X| | | | | |
//	1) | | |X|X| | | | | | | |
//	0) |X|X| | | | | | | | | |
//
// Here the closest pixel to O is (4;2), past (3;1) where the distance first
// increases.
func (s *Segment2i) ClosestPointTo(p Point2i) Point2i {
	minDist := math.MaxInt
	oneBestFound := false
	solution := s.P1()
	it := NewLineRasterizer(s.X1, s.Y1, s.X2, s.Y2)
	for cp, ok := it.Next(); ok; cp, ok = it.Next() {
		d := p.Sub(cp).LengthSquared()
		if d == 0 {
			return cp
		}
		if d > minDist {
			if oneBestFound {
				return solution
			}
			oneBestFound = true
		} else {
			minDist = d
			solution = cp
			if oneBestFound {
				return solution
			}
		}
	}
	return solution
}

func (s *Segment2i) DistanceSquared(p Point2i) float64 { return s.ClosestPointTo(p).DistanceSquared(p) }
func (s *Segment2i) Distance(p Point2i) float64        { return s.ClosestPointTo(p).Distance(p) }
func (s *Segment2i) DistanceL1(p Point2i) float64      { return s.ClosestPointTo(p).DistanceL1(p) }
func (s *Segment2i) DistanceLinf(p Point2i) float64    { return s.ClosestPointTo(p).DistanceLinf(p) }

func (s *Segment2i) String() string {
	return fmt.Sprintf("[%d;%d|%d;%d]", s.X1, s.Y1, s.X2, s.Y2)
}

// LineRasterizer yields the pixels of a segment with Bresenham's algorithm,
// starting at (x0,y0).
type LineRasterizer struct {
	steep          bool
	xstep, ystep   int
	deltax, deltay int
	x, y, xEnd     int
	err            int
}

func NewLineRasterizer(x0, y0, x1, y1 int) *LineRasterizer {
	steep := absInt(y1-y0) > absInt(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	it := &LineRasterizer{
		steep:  steep,
		deltax: absInt(x1 - x0),
		deltay: absInt(y1 - y0),
		x:      x0,
		y:      y0,
		xEnd:   x1,
		xstep:  -1,
		ystep:  -1,
	}
	it.err = it.deltax / 2
	if x0 < x1 {
		it.xstep = 1
	}
	if y0 < y1 {
		it.ystep = 1
	}
	return it
}

func (it *LineRasterizer) Next() (Point2i, bool) {
	if (it.xstep > 0 && it.x > it.xEnd) || (it.xstep < 0 && it.x < it.xEnd) {
		return Point2i{}, false
	}
	p := Point2i{it.x, it.y}
	if it.steep {
		p = Point2i{it.y, it.x}
	}
	it.err -= it.deltay
	if it.err < 0 {
		it.y += it.ystep
		it.err += it.deltax
	}
	it.x += it.xstep
	return p, true
}
