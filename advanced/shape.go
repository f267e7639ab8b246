package advanced

// Shape is one of *Segment, *Rectangle, *Ellipse, *Circle or *Path. The set is
// closed so that Intersects can cover every pair.
type Shape interface {
	Bounded
	Container
	Measurable
	PathIterable
	isShape()
}

type Bounded interface {
	BoundingBox() Rectangle
}

type Container interface {
	Contains(x, y float64) bool
	ContainsRect(r Rectangle) bool
}

// Measurable shapes give their distance to a point. A point the shape contains
// is at distance zero.
type Measurable interface {
	ClosestPointTo(p Point) Point
	FarthestPointTo(p Point) Point
	DistanceSquared(p Point) float64
	Distance(p Point) float64
	DistanceL1(p Point) float64
	DistanceLinf(p Point) float64
}

type PathIterable interface {
	PathIterator() PathIterator
}

// IntersectsRect tests the path against the rectangle under the path's winding
// rule.
func (p *Path) IntersectsRect(r Rectangle) bool {
	if r.IsEmpty() {
		return false
	}
	c := PathCrossingsFromRect(p.FlatPathIterator(), r.MinX(), r.MinY(), r.MaxX(), r.MaxY(), false, true)
	return p.windingRule.Overlaps(c)
}

func (p *Path) IntersectsEllipse(e *Ellipse) bool {
	c := PathCrossingsFromEllipse(p.FlatPathIterator(), e.minX, e.minY, e.width, e.height, false, true)
	return p.windingRule.Overlaps(c)
}

func (p *Path) IntersectsCircle(circle *Circle) bool {
	c := PathCrossingsFromCircle(p.FlatPathIterator(), circle.center.X, circle.center.Y, circle.radius, false, true)
	return p.windingRule.Overlaps(c)
}

func (p *Path) IntersectsSegment(s *Segment) bool {
	c := PathCrossingsFromSegment(p.FlatPathIterator(), s.X1, s.Y1, s.X2, s.Y2, false)
	return p.windingRule.Overlaps(c)
}

// IntersectsPath walks this path against the shadow of the other one. A path
// lying inside the other one without touching it is only seen from the
// enclosing side, so Intersects tries both orders.
func (p *Path) IntersectsPath(other *Path) bool {
	c := PathCrossingsFromPath(p.FlatPathIterator(), NewPathShadow(other), false, true)
	return p.windingRule.Overlaps(c)
}

// Intersects reports whether the two shapes share at least one point. Pairs of
// closed form shapes use the direct predicates. Any pair involving a path goes
// through the crossing computations of the path.
func Intersects(a, b Shape) bool {
	switch a := a.(type) {
	case *Segment:
		switch b := b.(type) {
		case *Segment:
			return IntersectsSegmentSegmentWithEnds(a.X1, a.Y1, a.X2, a.Y2, b.X1, b.Y1, b.X2, b.Y2)
		case *Rectangle:
			return IntersectsRectangleSegment(b.minX, b.minY, b.maxX, b.maxY, a.X1, a.Y1, a.X2, a.Y2)
		case *Ellipse:
			return IntersectsEllipseSegment(b.minX, b.minY, b.width, b.height, a.X1, a.Y1, a.X2, a.Y2)
		case *Circle:
			return IntersectsCircleSegment(b.center.X, b.center.Y, b.radius, a.X1, a.Y1, a.X2, a.Y2)
		case *Path:
			return b.IntersectsSegment(a)
		}
	case *Rectangle:
		switch b := b.(type) {
		case *Segment:
			return IntersectsRectangleSegment(a.minX, a.minY, a.maxX, a.maxY, b.X1, b.Y1, b.X2, b.Y2)
		case *Rectangle:
			return IntersectsRectangleRectangle(a.minX, a.minY, a.maxX, a.maxY, b.minX, b.minY, b.maxX, b.maxY)
		case *Ellipse:
			return IntersectsEllipseRectangle(b.minX, b.minY, b.MaxX(), b.MaxY(), a.minX, a.minY, a.maxX, a.maxY)
		case *Circle:
			return IntersectsCircleRectangle(b.center.X, b.center.Y, b.radius, a.minX, a.minY, a.maxX, a.maxY)
		case *Path:
			return b.IntersectsRect(*a)
		}
	case *Ellipse:
		switch b := b.(type) {
		case *Segment:
			return IntersectsEllipseSegment(a.minX, a.minY, a.width, a.height, b.X1, b.Y1, b.X2, b.Y2)
		case *Rectangle:
			return IntersectsEllipseRectangle(a.minX, a.minY, a.MaxX(), a.MaxY(), b.minX, b.minY, b.maxX, b.maxY)
		case *Ellipse:
			return IntersectsEllipseEllipse(a.minX, a.minY, a.MaxX(), a.MaxY(), b.minX, b.minY, b.MaxX(), b.MaxY())
		case *Circle:
			box := b.BoundingBox()
			return IntersectsEllipseEllipse(a.minX, a.minY, a.MaxX(), a.MaxY(), box.minX, box.minY, box.maxX, box.maxY)
		case *Path:
			return b.IntersectsEllipse(a)
		}
	case *Circle:
		switch b := b.(type) {
		case *Segment:
			return IntersectsCircleSegment(a.center.X, a.center.Y, a.radius, b.X1, b.Y1, b.X2, b.Y2)
		case *Rectangle:
			return IntersectsCircleRectangle(a.center.X, a.center.Y, a.radius, b.minX, b.minY, b.maxX, b.maxY)
		case *Ellipse:
			box := a.BoundingBox()
			return IntersectsEllipseEllipse(b.minX, b.minY, b.MaxX(), b.MaxY(), box.minX, box.minY, box.maxX, box.maxY)
		case *Circle:
			return IntersectsCircleCircle(a.center.X, a.center.Y, a.radius, b.center.X, b.center.Y, b.radius)
		case *Path:
			return b.IntersectsCircle(a)
		}
	case *Path:
		switch b := b.(type) {
		case *Segment:
			return a.IntersectsSegment(b)
		case *Rectangle:
			return a.IntersectsRect(*b)
		case *Ellipse:
			return a.IntersectsEllipse(b)
		case *Circle:
			return a.IntersectsCircle(b)
		case *Path:
			return a.IntersectsPath(b) || b.IntersectsPath(a)
		}
	}
	fatalf("unsupported shape pair %T and %T", a, b)
	return false
}
