package advanced

// Crossing numbers of a whole path against a reference shape. The path is
// walked as a sequence of query segments, each one fed to the segment level
// kernel of the reference shape.
//
// Two flags control what happens to a path left open at the end:
// closeable adds the implicit closing edge, while onlyIntersectWhenOpen drops
// the count, so that an open path can only ever report an intersection.

// Accumulates the crossings of the query segment (x0,y0)-(x1,y1).
type edgeKernel func(c Crossings, x0, y0, x1, y1 float64) Crossings

type pathWalk struct {
	kernel                edgeKernel
	closeable             bool
	onlyIntersectWhenOpen bool
	// Return as soon as a closed subpath leaves a nonzero count.
	stopAtClose bool
}

func (w pathWalk) run(it PathIterator) Crossings {
	if !it.Next() {
		return Count(0)
	}
	element := it.Element()
	if element.Type != MoveTo {
		fatalf("missing initial moveto in path definition")
	}
	mov := element.To
	cur := mov
	crossings := Count(0)

	for it.Next() {
		element = it.Element()
		switch element.Type {
		case MoveTo:
			mov = element.To
			cur = mov
		case LineTo:
			crossings = w.kernel(crossings, cur.X, cur.Y, element.To.X, element.To.Y)
			if crossings.intersects {
				Logger().Debug("path crossing stopped on intersection", "element", element)
				return crossings
			}
			cur = element.To
		case QuadTo, CurveTo:
			element.From = cur
			sub := pathWalk{kernel: w.kernel}
			n := sub.run(NewFlatteningIterator(curveIterator(element), SplineApproximationRatio))
			crossings = crossings.Plus(n)
			if crossings.intersects {
				Logger().Debug("path crossing stopped on intersection", "element", element)
				return crossings
			}
			cur = element.To
		case Close:
			if cur != mov {
				crossings = w.kernel(crossings, cur.X, cur.Y, mov.X, mov.Y)
				if crossings.intersects {
					Logger().Debug("path crossing stopped on intersection", "element", element)
					return crossings
				}
			}
			if w.stopAtClose && !crossings.IsZero() {
				return crossings
			}
			cur = mov
		}
	}

	if cur != mov {
		if w.closeable {
			crossings = w.kernel(crossings, cur.X, cur.Y, mov.X, mov.Y)
		} else if w.onlyIntersectWhenOpen {
			crossings = Count(0)
		}
	}
	return crossings
}

// PathCrossingsFromPoint counts the crossings of the path around the ray cast
// from (px,py) toward +X. A path vertex at exactly (px,py) is an intersection.
func PathCrossingsFromPoint(it PathIterator, px, py float64, closeable, onlyIntersectWhenOpen bool) Crossings {
	return pathWalk{
		kernel: func(c Crossings, x0, y0, x1, y1 float64) Crossings {
			if x1 == px && y1 == py {
				return Intersecting()
			}
			return c.Add(CrossingsFromPoint(px, py, x0, y0, x1, y1))
		},
		closeable:             closeable,
		onlyIntersectWhenOpen: onlyIntersectWhenOpen,
	}.run(it)
}

// PathCrossingsFromSegment counts the crossings of the path around the shadow
// of the segment. An open path that is not closeable only reports
// intersections.
func PathCrossingsFromSegment(it PathIterator, x1, y1, x2, y2 float64, closeable bool) Crossings {
	return pathWalk{
		kernel: func(c Crossings, x0, y0, qx1, qy1 float64) Crossings {
			return CrossingsFromSegment(c, x1, y1, x2, y2, x0, y0, qx1, qy1)
		},
		closeable:             closeable,
		onlyIntersectWhenOpen: true,
		stopAtClose:           true,
	}.run(it)
}

func PathCrossingsFromRect(it PathIterator, rxmin, rymin, rxmax, rymax float64, closeable, onlyIntersectWhenOpen bool) Crossings {
	return pathWalk{
		kernel: func(c Crossings, x0, y0, x1, y1 float64) Crossings {
			return CrossingsFromRect(c, rxmin, rymin, rxmax, rymax, x0, y0, x1, y1)
		},
		closeable:             closeable,
		onlyIntersectWhenOpen: onlyIntersectWhenOpen,
		stopAtClose:           true,
	}.run(it)
}

func PathCrossingsFromEllipse(it PathIterator, ex, ey, ew, eh float64, closeable, onlyIntersectWhenOpen bool) Crossings {
	return pathWalk{
		kernel: func(c Crossings, x0, y0, x1, y1 float64) Crossings {
			return CrossingsFromEllipse(c, ex, ey, ew, eh, x0, y0, x1, y1)
		},
		closeable:             closeable,
		onlyIntersectWhenOpen: onlyIntersectWhenOpen,
	}.run(it)
}

func PathCrossingsFromCircle(it PathIterator, cx, cy, radius float64, closeable, onlyIntersectWhenOpen bool) Crossings {
	return pathWalk{
		kernel: func(c Crossings, x0, y0, x1, y1 float64) Crossings {
			return CrossingsFromCircle(c, cx, cy, radius, x0, y0, x1, y1)
		},
		closeable:             closeable,
		onlyIntersectWhenOpen: onlyIntersectWhenOpen,
	}.run(it)
}

// PathCrossingsFromPath counts the crossings of the path walked by it around
// the shadow of another path.
func PathCrossingsFromPath(it PathIterator, shadow *PathShadow, closeable, onlyIntersectWhenOpen bool) Crossings {
	return pathWalk{
		kernel:                shadow.Crossings,
		closeable:             closeable,
		onlyIntersectWhenOpen: onlyIntersectWhenOpen,
		stopAtClose:           true,
	}.run(it)
}

// ClosestPointOnPath projects p on every edge of a flattened path. A point
// inside a closed subpath is its own closest point. ok is false for a path
// with no elements.
func ClosestPointOnPath(it PathIterator, p Point) (closest Point, ok bool) {
	mask := -1
	if it.WindingRule() == EvenOdd {
		mask = 1
	}
	best := 0.0
	crossings := 0
	for it.Next() {
		element := it.Element()
		var candidate Point
		switch element.Type {
		case MoveTo:
			candidate = element.To
		case LineTo:
			candidate = ClosestPointToSegment(element.From.X, element.From.Y, element.To.X, element.To.Y, p.X, p.Y)
			crossings += CrossingsFromPoint(p.X, p.Y, element.From.X, element.From.Y, element.To.X, element.To.Y)
		case Close:
			crossings += CrossingsFromPoint(p.X, p.Y, element.From.X, element.From.Y, element.To.X, element.To.Y)
			if crossings&mask != 0 {
				return p, true
			}
			crossings = 0
			if element.IsEmpty() {
				continue
			}
			candidate = ClosestPointToSegment(element.From.X, element.From.Y, element.To.X, element.To.Y, p.X, p.Y)
		default:
			fatalf("cannot find the closest point on an unflattened %v", element.Type)
		}
		if d := candidate.DistanceSquared(p); !ok || d < best {
			best = d
			closest = candidate
			ok = true
		}
	}
	return
}

// FarthestPointOnPath is the vertex of the flattened path farthest from p.
func FarthestPointOnPath(it PathIterator, p Point) (farthest Point, ok bool) {
	best := 0.0
	for it.Next() {
		element := it.Element()
		var candidate Point
		switch element.Type {
		case MoveTo:
			candidate = element.To
		case LineTo, Close:
			candidate = FarthestPointToSegment(element.From.X, element.From.Y, element.To.X, element.To.Y, p.X, p.Y)
		default:
			fatalf("cannot find the farthest point on an unflattened %v", element.Type)
		}
		if d := candidate.DistanceSquared(p); !ok || d > best {
			best = d
			farthest = candidate
			ok = true
		}
	}
	return
}
