package advanced

import "math"

// Closed-form predicates on segments and lines, taking raw coordinates so the
// crossing kernels can call them without building shapes.

func perpProduct(x1, y1, x2, y2 float64) float64 {
	return x1*y2 - y1*x2
}

// SideLinePoint tells on which side of the directed line (x1,y1)->(x2,y2) the
// point lies: -1 for one side, 1 for the other, 0 if the point is within
// epsilon of the line.
func SideLinePoint(x1, y1, x2, y2, px, py, epsilon float64) int {
	cx2 := x2 - x1
	cy2 := y2 - y1
	cpx := px - x1
	cpy := py - y1
	side := cpx*cy2 - cpy*cx2
	if side != 0 && math.Abs(side) <= epsilon {
		side = 0
	}
	return sign(side)
}

// CCW is like SideLinePoint, except that collinear points are further
// classified: a point beyond (x2,y2) gives 1, a point before (x1,y1) gives -1,
// and a point on the segment gives 0.
func CCW(x1, y1, x2, y2, px, py, epsilon float64) int {
	cx2 := x2 - x1
	cy2 := y2 - y1
	cpx := px - x1
	cpy := py - y1
	ccw := cpx*cy2 - cpy*cx2
	if math.Abs(ccw) <= epsilon {
		ccw = cpx*cx2 + cpy*cy2
		if ccw > 0 {
			cpx -= cx2
			cpy -= cy2
			ccw = cpx*cx2 + cpy*cy2
			if ccw < 0 {
				ccw = 0
			}
		}
	}
	return sign(ccw)
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// ProjectedPointOnLine returns the factor t such that s1 + t*(s2-s1) is the
// orthogonal projection of p on the line. A degenerate line gives NaN.
func ProjectedPointOnLine(px, py, s1x, s1y, s2x, s2y float64) float64 {
	numerator := (px-s1x)*(s2x-s1x) + (py-s1y)*(s2y-s1y)
	denominator := (s2x-s1x)*(s2x-s1x) + (s2y-s1y)*(s2y-s1y)
	return numerator / denominator
}

// RelativeDistanceLinePoint is the signed distance from the point to the line.
func RelativeDistanceLinePoint(x1, y1, x2, y2, px, py float64) float64 {
	denominator := (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
	if denominator == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	s := ((y1-py)*(x2-x1) - (x1-px)*(y2-y1)) / denominator
	return s * math.Sqrt(denominator)
}

func DistanceSquaredLinePoint(x1, y1, x2, y2, px, py float64) float64 {
	denominator := (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
	if denominator == 0 {
		return (px-x1)*(px-x1) + (py-y1)*(py-y1)
	}
	s := ((y1-py)*(x2-x1) - (x1-px)*(y2-y1)) / denominator
	return s * s * denominator
}

func DistanceLinePoint(x1, y1, x2, y2, px, py float64) float64 {
	return math.Sqrt(DistanceSquaredLinePoint(x1, y1, x2, y2, px, py))
}

func DistanceSquaredSegmentPoint(x1, y1, x2, y2, px, py float64) float64 {
	denominator := (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
	if denominator == 0 {
		return (px-x1)*(px-x1) + (py-y1)*(py-y1)
	}
	ratio := ((px-x1)*(x2-x1) + (py-y1)*(y2-y1)) / denominator
	if ratio <= 0 {
		return (px-x1)*(px-x1) + (py-y1)*(py-y1)
	}
	if ratio >= 1 {
		return (px-x2)*(px-x2) + (py-y2)*(py-y2)
	}
	s := ((y1-py)*(x2-x1) - (x1-px)*(y2-y1)) / denominator
	return s * s * denominator
}

func DistanceSegmentPoint(x1, y1, x2, y2, px, py float64) float64 {
	return math.Sqrt(DistanceSquaredSegmentPoint(x1, y1, x2, y2, px, py))
}

// ClosestPointToSegment projects p on the segment, clamping to the endpoints.
func ClosestPointToSegment(x1, y1, x2, y2, px, py float64) Point {
	ratio := ProjectedPointOnLine(px, py, x1, y1, x2, y2)
	if math.IsNaN(ratio) || ratio <= 0 {
		return Point{x1, y1}
	}
	if ratio >= 1 {
		return Point{x2, y2}
	}
	return Point{x1 + (x2-x1)*ratio, y1 + (y2-y1)*ratio}
}

// FarthestPointToSegment is always one of the endpoints. Ties go to the first.
func FarthestPointToSegment(x1, y1, x2, y2, px, py float64) Point {
	d1 := (px-x1)*(px-x1) + (py-y1)*(py-y1)
	d2 := (px-x2)*(px-x2) + (py-y2)*(py-y2)
	if d1 >= d2 {
		return Point{x1, y1}
	}
	return Point{x2, y2}
}

func Interpolate(x1, y1, x2, y2, t float64) Point {
	return Point{x1 + (x2-x1)*t, y1 + (y2-y1)*t}
}

// LineLineIntersectionFactor gives the factor along the first line at which the
// two lines meet, or NaN if they are parallel.
func LineLineIntersectionFactor(x1, y1, x2, y2, x3, y3, x4, y4 float64) float64 {
	vx1 := x2 - x1
	vy1 := y2 - y1
	vx2 := x4 - x3
	vy2 := y4 - y3
	det := perpProduct(vx1, vy1, vx2, vy2)
	if det == 0 {
		return math.NaN()
	}
	return perpProduct(vx2, vy2, x1-x3, y1-y3) / det
}

func LineLineIntersection(x1, y1, x2, y2, x3, y3, x4, y4 float64) (Point, bool) {
	t := LineLineIntersectionFactor(x1, y1, x2, y2, x3, y3, x4, y4)
	if math.IsNaN(t) {
		return Point{}, false
	}
	return Interpolate(x1, y1, x2, y2, t), true
}

// SegmentSegmentIntersectionFactor gives the factor along the first segment at
// which the two segments meet, or NaN if they do not meet (or are parallel).
func SegmentSegmentIntersectionFactor(x1, y1, x2, y2, x3, y3, x4, y4 float64) float64 {
	vx1 := x2 - x1
	vy1 := y2 - y1
	vx2 := x4 - x3
	vy2 := y4 - y3
	det := perpProduct(vx1, vy1, vx2, vy2)
	if det == 0 {
		return math.NaN()
	}
	u := perpProduct(vx1, vy1, x1-x3, y1-y3) / det
	if u < 0 || u > 1 {
		return math.NaN()
	}
	u = perpProduct(vx2, vy2, x1-x3, y1-y3) / det
	if u < 0 || u > 1 {
		return math.NaN()
	}
	return u
}

func SegmentSegmentIntersection(x1, y1, x2, y2, x3, y3, x4, y4 float64) (Point, bool) {
	t := SegmentSegmentIntersectionFactor(x1, y1, x2, y2, x3, y3, x4, y4)
	if math.IsNaN(t) {
		return Point{}, false
	}
	return Interpolate(x1, y1, x2, y2, t), true
}

func IsParallelLines(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return IsEpsilonZero(perpProduct(x2-x1, y2-y1, x4-x3, y4-y3))
}

func IsCollinearPoints(x1, y1, x2, y2, x3, y3 float64) bool {
	return IsEpsilonZero(x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
}

func IntersectsLineLine(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	if IsParallelLines(x1, y1, x2, y2, x3, y3, x4, y4) {
		return IsCollinearPoints(x1, y1, x2, y2, x3, y3)
	}
	return true
}

// IntersectsSegmentLine reports whether the segment (x1,y1)-(x2,y2) touches the
// infinite line through (x3,y3) and (x4,y4).
func IntersectsSegmentLine(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return SideLinePoint(x3, y3, x4, y4, x1, y1, Tolerance)*
		SideLinePoint(x3, y3, x4, y4, x2, y2, Tolerance) <= 0
}

// Half test: does segment 2 straddle the line of segment 1, with touching
// endpoints counted when they project inside segment 1?
func intersectsSegmentSegmentWithEndsHalf(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	vx1 := x2 - x1
	vy1 := y2 - y1
	vx2a := x3 - x1
	vy2a := y3 - y1
	f1 := vx2a*vy1 - vy2a*vx1
	vx2b := x4 - x1
	vy2b := y4 - y1
	f2 := vx2b*vy1 - vy2b*vx1
	s := f1 * f2
	if s < 0 {
		return true
	}
	if s > 0 {
		return false
	}
	squaredLength := vx1*vx1 + vy1*vy1
	if f1 == 0 && f2 == 0 {
		f1 = (vx2a*vx1 + vy2a*vy1) / squaredLength
		f2 = (vx2b*vx1 + vy2b*vy1) / squaredLength
		return (f1 >= 0 || f2 >= 0) && (f1 <= 1 || f2 <= 1)
	}
	if f1 == 0 {
		f1 = (vx2a*vx1 + vy2a*vy1) / squaredLength
		return f1 >= 0 && f1 <= 1
	}
	if f2 == 0 {
		f2 = (vx2b*vx1 + vy2b*vy1) / squaredLength
		return f2 >= 0 && f2 <= 1
	}
	return false
}

// Same as above, except that touching endpoints never count, and collinear
// segments only count when they overlap on more than a point.
func intersectsSegmentSegmentWithoutEndsHalf(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	vx1 := x2 - x1
	vy1 := y2 - y1
	vx2a := x3 - x1
	vy2a := y3 - y1
	f1 := vx2a*vy1 - vy2a*vx1
	vx2b := x4 - x1
	vy2b := y4 - y1
	f2 := vx2b*vy1 - vy2b*vx1
	s := f1 * f2
	if s < 0 {
		return true
	}
	if s > 0 {
		return false
	}
	if f1 == 0 && f2 == 0 {
		squaredLength := vx1*vx1 + vy1*vy1
		f1 = (vx2a*vx1 + vy2a*vy1) / squaredLength
		f2 = (vx2b*vx1 + vy2b*vy1) / squaredLength
		return (f1 > 0 || f2 > 0) && (f1 < 1 || f2 < 1)
	}
	return false
}

// IntersectsSegmentSegmentWithEnds reports whether two segments share at least
// one point, endpoints included.
func IntersectsSegmentSegmentWithEnds(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return intersectsSegmentSegmentWithEndsHalf(x1, y1, x2, y2, x3, y3, x4, y4) &&
		intersectsSegmentSegmentWithEndsHalf(x3, y3, x4, y4, x1, y1, x2, y2)
}

// IntersectsSegmentSegmentWithoutEnds reports whether two segments properly
// cross. Segments that only touch at an endpoint do not.
func IntersectsSegmentSegmentWithoutEnds(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	return intersectsSegmentSegmentWithoutEndsHalf(x1, y1, x2, y2, x3, y3, x4, y4) &&
		intersectsSegmentSegmentWithoutEndsHalf(x3, y3, x4, y4, x1, y1, x2, y2)
}
