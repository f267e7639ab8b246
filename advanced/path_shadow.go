package advanced

// PathShadow is the shadow a path casts toward +X, used to compute the
// crossings of a query segment against a whole path. Queries first run against
// the bounding box of the path. Only a query that touches the box is tested
// edge by edge.
//
// A PathShadow keeps the iterator it was built from and restarts it for each
// exact query, so it is not safe for concurrent use.
type PathShadow struct {
	iterator PathIterator
	bounds   Rectangle
}

// NewPathShadow captures an iterator over the path and its bounding box.
func NewPathShadow(p *Path) *PathShadow {
	return &PathShadow{
		iterator: p.PathIterator(),
		bounds:   p.BoundingBox(),
	}
}

func NewPathShadowFromIterator(it PathIterator, bounds Rectangle) *PathShadow {
	return &PathShadow{iterator: it, bounds: bounds}
}

func (s *PathShadow) Bounds() Rectangle { return s.bounds }

// Crossings accumulates the crossings of the query segment (x0,y0)-(x1,y1)
// against the shadow of the path.
func (s *PathShadow) Crossings(crossings Crossings, x0, y0, x1, y1 float64) Crossings {
	b := s.bounds
	n := CrossingsFromRect(crossings, b.minX, b.minY, b.maxX, b.maxY, x0, y0, x1, y1)
	if !n.intersects || crossings.intersects {
		return n
	}
	return s.exactCrossings(crossings, x0, y0, x1, y1)
}

func (s *PathShadow) exactCrossings(crossings Crossings, x0, y0, x1, y1 float64) Crossings {
	data := newShadowData(s.bounds.minX, s.bounds.minY, s.bounds.maxY)
	s.iterator.Restart()
	rule := s.iterator.WindingRule()
	data.discretize(s.iterator, Segment{x0, y0, x1, y1})

	if rule.Overlaps(data.crossings) {
		return Intersecting()
	}
	inc := 0
	if data.hasX4ymin {
		inc++
	}
	if data.hasX4ymax {
		inc++
	}
	if y0 < y1 {
		return crossings.Add(inc)
	}
	return crossings.Add(-inc)
}

// State of an exact shadow computation. The shadow of the path is bounded by
// the horizontal lines at ymin and ymax of its box; for each of them, we keep
// the rightmost point where a path edge meets it.
type shadowData struct {
	crossings  Crossings
	hasX4ymin  bool
	hasX4ymax  bool
	x4ymin     float64
	x4ymax     float64
	ymin, ymax float64
}

func newShadowData(xmin, ymin, ymax float64) *shadowData {
	return &shadowData{
		x4ymin: xmin,
		x4ymax: xmin,
		ymin:   ymin,
		ymax:   ymax,
	}
}

func (d *shadowData) setCrossingCoordinateForYMax(x, y float64) {
	if compareEpsilon(y, d.ymax) >= 0 && x > d.x4ymax {
		d.x4ymax = x
		d.hasX4ymax = true
	}
}

func (d *shadowData) setCrossingCoordinateForYMin(x, y float64) {
	if compareEpsilon(y, d.ymin) <= 0 && x > d.x4ymin {
		d.x4ymin = x
		d.hasX4ymin = true
	}
}

func (d *shadowData) step(up bool) {
	if up {
		d.crossings = d.crossings.Add(1)
	} else {
		d.crossings = d.crossings.Add(-1)
	}
}

// Walks the path, treating each of its edges as a shadow caster for the
// query. Curves are flattened first. An open path ends with a zero count.
func (d *shadowData) discretize(it PathIterator, query Segment) {
	if !it.Next() || d.crossings.intersects {
		return
	}
	element := it.Element()
	if element.Type != MoveTo {
		fatalf("missing initial moveto in path definition")
	}
	mov := element.To
	cur := mov
	for !d.crossings.intersects && it.Next() {
		element = it.Element()
		switch element.Type {
		case MoveTo:
			mov = element.To
			cur = mov
		case LineTo:
			d.crossEdge(cur, element.To, query)
			if d.crossings.intersects {
				return
			}
			cur = element.To
		case QuadTo, CurveTo:
			element.From = cur
			d.discretize(NewFlatteningIterator(curveIterator(element), SplineApproximationRatio), query)
			if d.crossings.intersects {
				return
			}
			cur = element.To
		case Close:
			if cur != mov {
				d.crossEdge(cur, mov, query)
			}
			if !d.crossings.IsZero() {
				return
			}
			cur = mov
		}
	}
	if cur != mov {
		d.crossings = Count(0)
	}
}

// Crosses the query segment against the two horizontal lines bounding the
// shadow of a single path edge.
func (d *shadowData) crossEdge(e0, e1 Point, query Segment) {
	xmin := min(e0.X, e1.X)
	xmax := max(e0.X, e1.X)
	ymin := min(e0.Y, e1.Y)
	ymax := max(e0.Y, e1.Y)
	sx0, sy0, sx1, sy1 := query.X1, query.Y1, query.X2, query.Y2

	if sy0 < ymin && sy1 < ymin {
		return
	}
	if sy0 > ymax && sy1 > ymax {
		return
	}
	if sx0 < xmin && sx1 < xmin {
		return
	}
	if sx0 >= xmax && sx1 >= xmax {
		alpha := (sx1 - sx0) / (sy1 - sy0)
		if sy0 < sy1 {
			if sy0 <= ymin {
				d.setCrossingCoordinateForYMin(sx0+(ymin-sy0)*alpha, ymin)
				d.step(true)
			}
			if sy1 >= ymax {
				d.setCrossingCoordinateForYMax(sx0+(ymax-sy0)*alpha, ymax)
				d.step(true)
			}
		} else {
			if sy1 <= ymin {
				d.setCrossingCoordinateForYMin(sx0+(ymin-sy0)*alpha, ymin)
				d.step(false)
			}
			if sy0 >= ymax {
				d.setCrossingCoordinateForYMax(sx0+(ymax-sy0)*alpha, ymax)
				d.step(false)
			}
		}
		return
	}
	if IntersectsSegmentSegmentWithoutEnds(e0.X, e0.Y, e1.X, e1.Y, sx0, sy0, sx1, sy1) {
		d.crossings = Intersecting()
		return
	}

	// Order the edge bottom to top before testing the sides.
	up := e0.Y <= e1.Y
	bottom, top := e0, e1
	if !up {
		bottom, top = e1, e0
	}
	side1 := SideLinePoint(bottom.X, bottom.Y, top.X, top.Y, sx0, sy0, 0)
	side2 := SideLinePoint(bottom.X, bottom.Y, top.X, top.Y, sx1, sy1, 0)
	if side1 > 0 || side2 > 0 {
		d.crossShadowLine(top.X, ymax, query, up)
		d.crossShadowLine(bottom.X, ymin, query, !up)
	}
}

// Crosses the query segment against the horizontal ray starting at
// (shadowX, shadowY).
func (d *shadowData) crossShadowLine(shadowX, shadowY float64, query Segment, isMax bool) {
	sx0, sy0, sx1, sy1 := query.X1, query.Y1, query.X2, query.Y2
	if shadowY < sy0 && shadowY < sy1 {
		return
	}
	if shadowY > sy0 && shadowY > sy1 {
		return
	}
	if shadowX > sx0 && shadowX > sx1 {
		return
	}
	xintercept := sx0 + (shadowY-sy0)*(sx1-sx0)/(sy1-sy0)
	if shadowX > xintercept {
		return
	}
	if isMax {
		d.setCrossingCoordinateForYMax(xintercept, shadowY)
	} else {
		d.setCrossingCoordinateForYMin(xintercept, shadowY)
	}
	d.step(sy0 < sy1)
}
