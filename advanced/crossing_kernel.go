package advanced

// Crossing kernels for a single query segment (x0,y0)->(x1,y1) against a
// reference shape. Each kernel answers: how does the query segment cross the
// "shadow" the reference shape casts toward +X? The shadow of a shape is the
// set of points reachable by moving right from the shape, so summing the
// results over every edge of a closed path gives the winding of that path
// around the shape.
//
// Upward query segments (y0 < y1) count +1, downward count -1. Whenever the
// query segment touches the reference shape itself, counting is meaningless and
// the kernels return Intersecting(). An intersecting input is returned
// unchanged.

// CrossingsFromPoint counts how the segment crosses the ray cast from (px,py)
// toward +X. The ray covers the half-open span [ymin, ymax) of the segment, so
// a path vertex lying exactly on the ray is counted once, not twice.
func CrossingsFromPoint(px, py, x0, y0, x1, y1 float64) int {
	if py < y0 && py < y1 {
		return 0
	}
	if py >= y0 && py >= y1 {
		return 0
	}
	if px >= x0 && px >= x1 {
		return 0
	}
	if px < x0 && px < x1 {
		return upOrDown(y0, y1)
	}
	xintercept := x0 + (py-y0)*(x1-x0)/(y1-y0)
	if px >= xintercept {
		return 0
	}
	return upOrDown(y0, y1)
}

// Closed-span variant of CrossingsFromPoint, used for the second end of a
// segment shadow so that a query passing through both shadow rays at a shared
// y is still counted on both.
func crossingsFromPointInclusive(px, py, x0, y0, x1, y1 float64) int {
	if py < y0 && py < y1 {
		return 0
	}
	if py > y0 && py > y1 {
		return 0
	}
	if px > x0 && px > x1 {
		return 0
	}
	if px < x0 && px < x1 {
		return upOrDown(y0, y1)
	}
	xintercept := x0 + (py-y0)*(x1-x0)/(y1-y0)
	if px > xintercept {
		return 0
	}
	return upOrDown(y0, y1)
}

func upOrDown(y0, y1 float64) int {
	if y0 < y1 {
		return 1
	}
	return -1
}

// Shared handling of a query segment lying entirely to the right of a shadow
// whose vertical span is [ymin, ymax]: the segment crosses the bottom and top
// shadow lines independently.
func crossShadowSpan(n int, ymin, ymax, y0, y1 float64) int {
	if y0 < y1 {
		if y0 <= ymin {
			n++
		}
		if y1 >= ymax {
			n++
		}
	} else if y1 < y0 {
		if y1 <= ymin {
			n--
		}
		if y0 >= ymax {
			n--
		}
	}
	return n
}

// CrossingsFromSegment accumulates the crossings of the query segment against
// the shadow of the reference segment (sx1,sy1)-(sx2,sy2). Reversing the query
// segment negates the contribution.
func CrossingsFromSegment(crossings Crossings, sx1, sy1, sx2, sy2, x0, y0, x1, y1 float64) Crossings {
	if crossings.intersects {
		return crossings
	}
	n := crossings.n

	xmin := min(sx1, sx2)
	xmax := max(sx1, sx2)
	ymin := min(sy1, sy2)
	ymax := max(sy1, sy2)

	if y0 <= ymin && y1 <= ymin {
		return crossings
	}
	if y0 >= ymax && y1 >= ymax {
		return crossings
	}
	if x0 <= xmin && x1 <= xmin {
		return crossings
	}

	if x0 >= xmax && x1 >= xmax {
		return Count(crossShadowSpan(n, ymin, ymax, y0, y1))
	}
	if IntersectsSegmentSegmentWithoutEnds(x0, y0, x1, y1, sx1, sy1, sx2, sy2) {
		return Intersecting()
	}

	// The query passes beside the reference segment. Only the portion to the
	// right of it matters, which we get by testing the rays cast from each
	// reference endpoint, taken bottom to top.
	var side1, side2 int
	if sy1 <= sy2 {
		side1 = SideLinePoint(sx1, sy1, sx2, sy2, x0, y0, 0)
		side2 = SideLinePoint(sx1, sy1, sx2, sy2, x1, y1, 0)
	} else {
		side1 = SideLinePoint(sx2, sy2, sx1, sy1, x0, y0, 0)
		side2 = SideLinePoint(sx2, sy2, sx1, sy1, x1, y1, 0)
	}
	if side1 > 0 || side2 > 0 {
		n1 := CrossingsFromPoint(sx1, sy1, x0, y0, x1, y1)
		var n2 int
		if n1 != 0 {
			n2 = crossingsFromPointInclusive(sx2, sy2, x0, y0, x1, y1)
		} else {
			n2 = CrossingsFromPoint(sx2, sy2, x0, y0, x1, y1)
		}
		n += n1 + n2
	}
	return Count(n)
}

// CrossingsFromRect accumulates the crossings of the query segment against the
// shadow of an axis aligned rectangle.
func CrossingsFromRect(crossings Crossings, rxmin, rymin, rxmax, rymax, x0, y0, x1, y1 float64) Crossings {
	if crossings.intersects {
		return crossings
	}
	n := crossings.n

	if y0 >= rymax && y1 >= rymax {
		return crossings
	}
	if y0 <= rymin && y1 <= rymin {
		return crossings
	}
	if x0 <= rxmin && x1 <= rxmin {
		return crossings
	}
	if x0 >= rxmax && x1 >= rxmax {
		return Count(crossShadowSpan(n, rymin, rymax, y0, y1))
	}

	// An endpoint strictly inside the rectangle
	if (x0 > rxmin && x0 < rxmax && y0 > rymin && y0 < rymax) ||
		(x1 > rxmin && x1 < rxmax && y1 > rymin && y1 < rymax) {
		return Intersecting()
	}

	// Clip the query segment to the vertical span of the rectangle, and see
	// where it lands horizontally.
	xi0 := x0
	if y0 < rymin {
		xi0 += (rymin - y0) * (x1 - x0) / (y1 - y0)
	} else if y0 > rymax {
		xi0 += (rymax - y0) * (x1 - x0) / (y1 - y0)
	}
	xi1 := x1
	if y1 < rymin {
		xi1 += (rymin - y1) * (x0 - x1) / (y0 - y1)
	} else if y1 > rymax {
		xi1 += (rymax - y1) * (x0 - x1) / (y0 - y1)
	}
	if xi0 <= rxmin && xi1 <= rxmin {
		return crossings
	}
	if xi0 >= rxmax && xi1 >= rxmax {
		return Count(crossShadowSpan(n, rymin, rymax, y0, y1))
	}
	return Intersecting()
}

// CrossingsFromEllipse accumulates the crossings of the query segment against
// the shadow of the ellipse inscribed in the box (ex,ey,ew,eh).
func CrossingsFromEllipse(crossings Crossings, ex, ey, ew, eh, x0, y0, x1, y1 float64) Crossings {
	if crossings.intersects {
		return crossings
	}
	n := crossings.n

	xmin := ex
	ymin := ey
	xmax := ex + ew
	ymax := ey + eh

	if y0 <= ymin && y1 <= ymin {
		return crossings
	}
	if y0 >= ymax && y1 >= ymax {
		return crossings
	}
	if x0 <= xmin && x1 <= xmin {
		return crossings
	}

	if x0 >= xmax && x1 >= xmax {
		return Count(crossShadowSpan(n, ymin, ymax, y0, y1))
	}
	if IntersectsEllipseSegment(xmin, ymin, xmax-xmin, ymax-ymin, x0, y0, x1, y1) {
		return Intersecting()
	}
	// Beside the ellipse: the shadow boundary is cast by the two poles.
	xcenter := (xmin + xmax) / 2
	n += CrossingsFromPoint(xcenter, ymin, x0, y0, x1, y1)
	n += CrossingsFromPoint(xcenter, ymax, x0, y0, x1, y1)
	return Count(n)
}

// CrossingsFromCircle accumulates the crossings of the query segment against
// the shadow of a circle. A negative radius behaves like its absolute value
// for the vertical span.
func CrossingsFromCircle(crossings Crossings, cx, cy, radius, x0, y0, x1, y1 float64) Crossings {
	if crossings.intersects {
		return crossings
	}
	n := crossings.n

	r := abs(radius)
	xmin := cx - r
	ymin := cy - r
	ymax := cy + r

	if y0 <= ymin && y1 <= ymin {
		return crossings
	}
	if y0 >= ymax && y1 >= ymax {
		return crossings
	}
	if x0 <= xmin && x1 <= xmin {
		return crossings
	}

	if x0 >= cx+radius && x1 >= cx+radius {
		return Count(crossShadowSpan(n, ymin, ymax, y0, y1))
	}
	if IntersectsCircleSegment(cx, cy, radius, x0, y0, x1, y1) {
		return Intersecting()
	}
	n += CrossingsFromPoint(cx, ymin, x0, y0, x1, y1)
	n += CrossingsFromPoint(cx, ymax, x0, y0, x1, y1)
	return Count(n)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
