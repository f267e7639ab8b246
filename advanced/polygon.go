package advanced

// Polygon is a closed polyline given by its vertices. The last vertex connects
// back to the first one.
type Polygon struct {
	Points []Point
}

func NewPolygon(points ...Point) Polygon {
	return Polygon{Points: append([]Point(nil), points...)}
}

// Even-odd point-in-polygon, straight from the vertex list. Prefer this over
// building a Path when checking a handful of points against a polygon that is
// never reused.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 != 0
}

// Signed crossing count of the ray cast from p toward +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		crossingCount += CrossingsFromPoint(p.X, p.Y, vertex.X, vertex.Y, nextVertex.X, nextVertex.Y)
	}
	return crossingCount
}

// Shoelace area. Positive for counterclockwise polygons in a y-up frame.
func (poly Polygon) SignedArea() float64 {
	area := 0.0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += vertex.Vector().Perp(nextVertex.Vector())
	}
	return area / 2
}

func (poly Polygon) IsCounterClockwise() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Path converts the polygon to a closed path. A polygon with no vertex gives an
// empty path.
func (poly Polygon) Path(rule WindingRule) *Path {
	path := NewPath(rule)
	for i, vertex := range poly.Points {
		if i == 0 {
			path.MoveTo(vertex.X, vertex.Y)
		} else {
			path.LineTo(vertex.X, vertex.Y)
		}
	}
	path.ClosePath()
	return path
}
