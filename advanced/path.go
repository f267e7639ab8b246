package advanced

import (
	"fmt"
	"strings"
)

// Path is a sequence of moveto, lineto, quadto, curveto and close elements,
// interpreted under a winding rule.
//
// Derived state (bounding boxes, emptiness, whether the path holds curves) is
// computed lazily and cached. The caches are updated without locking, so a
// Path must not be used from several goroutines at once, even for queries.
type Path struct {
	windingRule WindingRule
	types       []PathElementType
	coords      []float64
	// zero means SplineApproximationRatio
	flatness float64

	// nil when not computed yet
	graphicalBounds *Rectangle
	logicalBounds   *Rectangle
	isEmpty         *bool
	isPolyline      *bool
}

func NewPath(rule WindingRule) *Path {
	return &Path{windingRule: rule}
}

// NewPathFromIterator copies every element of the iterator into a new path
// using the iterator's winding rule.
func NewPathFromIterator(it PathIterator) *Path {
	p := NewPath(it.WindingRule())
	p.Add(it)
	return p
}

func (p *Path) WindingRule() WindingRule        { return p.windingRule }
func (p *Path) SetWindingRule(rule WindingRule) { p.windingRule = rule }

// Flatness is the largest distance allowed between a curve and the chords
// that stand for it in every query on the path.
func (p *Path) Flatness() float64 {
	if p.flatness <= 0 {
		return SplineApproximationRatio
	}
	return p.flatness
}

// SetFlatness changes the curve flatness. Zero or less restores the default.
func (p *Path) SetFlatness(flatness float64) {
	p.flatness = max(0, flatness)
	p.invalidateBounds("flatness")
}

// Number of elements.
func (p *Path) Size() int { return len(p.types) }

// Number of stored points, control points included.
func (p *Path) PointCount() int { return len(p.coords) / 2 }

func (p *Path) CoordAt(i int) float64 { return p.coords[i] }

func (p *Path) PointAt(i int) Point {
	return Point{p.coords[2*i], p.coords[2*i+1]}
}

// CurrentPoint is the last stored point. ok is false for an empty path.
func (p *Path) CurrentPoint() (Point, bool) {
	if len(p.coords) < 2 {
		return Point{}, false
	}
	return p.PointAt(p.PointCount() - 1), true
}

// Points returns a copy of every stored point, control points included.
func (p *Path) Points() []Point {
	points := make([]Point, p.PointCount())
	for i := range points {
		points[i] = p.PointAt(i)
	}
	return points
}

func (p *Path) ElementTypes() []PathElementType {
	return append([]PathElementType(nil), p.types...)
}

func (p *Path) invalidateBounds(reason string) {
	if p.graphicalBounds != nil || p.logicalBounds != nil {
		Logger().Debug("path bounds invalidated", "reason", reason, "size", len(p.types))
	}
	p.graphicalBounds = nil
	p.logicalBounds = nil
}

func (p *Path) invalidateAll(reason string) {
	p.invalidateBounds(reason)
	p.isEmpty = nil
	p.isPolyline = nil
}

func (p *Path) ensureMoveTo() {
	if len(p.types) == 0 {
		fatalf("missing initial moveto in path definition")
	}
}

// MoveTo starts a new subpath. Two movetos in a row collapse into the last one.
func (p *Path) MoveTo(x, y float64) {
	if n := len(p.types); n > 0 && p.types[n-1] == MoveTo {
		p.coords[len(p.coords)-2] = x
		p.coords[len(p.coords)-1] = y
	} else {
		p.types = append(p.types, MoveTo)
		p.coords = append(p.coords, x, y)
	}
	p.invalidateBounds("moveto")
}

func (p *Path) LineTo(x, y float64) {
	p.ensureMoveTo()
	p.types = append(p.types, LineTo)
	p.coords = append(p.coords, x, y)
	p.isEmpty = nil
	p.invalidateBounds("lineto")
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ensureMoveTo()
	p.types = append(p.types, QuadTo)
	p.coords = append(p.coords, cx, cy, x, y)
	p.isEmpty = nil
	p.setPolyline(false)
	p.invalidateBounds("quadto")
}

func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ensureMoveTo()
	p.types = append(p.types, CurveTo)
	p.coords = append(p.coords, c1x, c1y, c2x, c2y, x, y)
	p.isEmpty = nil
	p.setPolyline(false)
	p.invalidateBounds("curveto")
}

// ClosePath is a no-op on an empty path, and right after a moveto or another
// close.
func (p *Path) ClosePath() {
	n := len(p.types)
	if n == 0 || p.types[n-1] == Close || p.types[n-1] == MoveTo {
		return
	}
	p.types = append(p.types, Close)
}

func (p *Path) setPolyline(v bool) {
	p.isPolyline = &v
}

func (p *Path) Clear() {
	p.types = p.types[:0]
	p.coords = p.coords[:0]
	p.invalidateAll("clear")
}

// Add appends every element of the iterator.
func (p *Path) Add(it PathIterator) {
	for it.Next() {
		e := it.Element()
		switch e.Type {
		case MoveTo:
			p.MoveTo(e.To.X, e.To.Y)
		case LineTo:
			p.LineTo(e.To.X, e.To.Y)
		case QuadTo:
			p.QuadTo(e.Ctrl1.X, e.Ctrl1.Y, e.To.X, e.To.Y)
		case CurveTo:
			p.CurveTo(e.Ctrl1.X, e.Ctrl1.Y, e.Ctrl2.X, e.Ctrl2.Y, e.To.X, e.To.Y)
		case Close:
			p.ClosePath()
		}
	}
}

func (p *Path) RemoveLast() {
	n := len(p.types)
	if n == 0 {
		return
	}
	p.coords = p.coords[:len(p.coords)-p.types[n-1].coordCount()]
	p.types = p.types[:n-1]
	p.invalidateAll("remove last")
}

// SetLastPoint moves the last stored point.
func (p *Path) SetLastPoint(x, y float64) {
	if len(p.coords) < 2 {
		return
	}
	p.coords[len(p.coords)-2] = x
	p.coords[len(p.coords)-1] = y
	p.invalidateAll("set last point")
}

// Remove deletes the first element having (x,y) among its points, control
// points included. It reports whether an element was removed.
func (p *Path) Remove(x, y float64) bool {
	i := 0
	for j, t := range p.types {
		n := t.coordCount()
		for k := i; k < i+n; k += 2 {
			if p.coords[k] == x && p.coords[k+1] == y {
				p.coords = append(p.coords[:i], p.coords[i+n:]...)
				p.types = append(p.types[:j], p.types[j+1:]...)
				p.invalidateAll("remove")
				return true
			}
		}
		i += n
	}
	return false
}

func (p *Path) Clone() *Path {
	return &Path{
		windingRule: p.windingRule,
		types:       append([]PathElementType(nil), p.types...),
		coords:      append([]float64(nil), p.coords...),
		flatness:    p.flatness,
	}
}

// Translate shifts every point. The cached boxes are shifted too.
func (p *Path) Translate(dx, dy float64) {
	for i := 0; i < len(p.coords); i += 2 {
		p.coords[i] += dx
		p.coords[i+1] += dy
	}
	if p.graphicalBounds != nil {
		p.graphicalBounds.Translate(dx, dy)
	}
	if p.logicalBounds != nil {
		p.logicalBounds.Translate(dx, dy)
	}
}

// Transform maps every point, control points included, through f.
func (p *Path) Transform(f func(Point) Point) {
	for i := 0; i < len(p.coords); i += 2 {
		q := f(Point{p.coords[i], p.coords[i+1]})
		p.coords[i], p.coords[i+1] = q.X, q.Y
	}
	p.invalidateAll("transform")
}

// PathIterator walks a snapshot of the path: later changes to the path do not
// show through.
func (p *Path) PathIterator() PathIterator {
	return &pathIterator{
		rule:   p.windingRule,
		types:  append([]PathElementType(nil), p.types...),
		coords: append([]float64(nil), p.coords...),
	}
}

// FlatPathIterator walks the path with curves replaced by chords no farther
// than Flatness from them.
func (p *Path) FlatPathIterator() PathIterator {
	return NewFlatteningIterator(p.PathIterator(), p.Flatness())
}

// IsEmpty is true when no element of the path leaves any ink.
func (p *Path) IsEmpty() bool {
	if p.isEmpty == nil {
		empty := true
		it := p.PathIterator()
		for empty && it.Next() {
			if it.Element().IsDrawable() {
				empty = false
			}
		}
		p.isEmpty = &empty
	}
	return *p.isEmpty
}

// IsPolyline is true when the path holds no quad and no curve.
func (p *Path) IsPolyline() bool {
	if p.isPolyline == nil {
		polyline := true
		for _, t := range p.types {
			if t == QuadTo || t == CurveTo {
				polyline = false
				break
			}
		}
		p.isPolyline = &polyline
	}
	return *p.isPolyline
}

// BoundingBox is the box of the flattened path, so it hugs the curves rather
// than their control points. A path that draws nothing has an empty box.
func (p *Path) BoundingBox() Rectangle {
	if p.graphicalBounds == nil {
		box := graphicalBoundingBox(p.FlatPathIterator())
		p.graphicalBounds = &box
	}
	return *p.graphicalBounds
}

func graphicalBoundingBox(it PathIterator) Rectangle {
	var box Rectangle
	found := false
	for it.Next() {
		e := it.Element()
		if e.Type != LineTo {
			continue
		}
		if !found {
			box.SetFromCorners(e.From.X, e.From.Y, e.To.X, e.To.Y)
			found = true
			continue
		}
		box.Add(e.From)
		box.Add(e.To)
	}
	return box
}

// LogicalBoundingBox encloses every stored point, control points included.
func (p *Path) LogicalBoundingBox() Rectangle {
	if p.logicalBounds == nil {
		var box Rectangle
		for i := 0; i < p.PointCount(); i++ {
			if i == 0 {
				q := p.PointAt(0)
				box.SetFromCorners(q.X, q.Y, q.X, q.Y)
			} else {
				box.Add(p.PointAt(i))
			}
		}
		p.logicalBounds = &box
	}
	return *p.logicalBounds
}

// Length of the flattened path, closing edges included.
func (p *Path) Length() float64 {
	if p.IsEmpty() {
		return 0
	}
	length := 0.0
	it := p.FlatPathIterator()
	for it.Next() {
		e := it.Element()
		if e.Type == LineTo || e.Type == Close {
			length += e.From.Distance(e.To)
		}
	}
	return length
}

func (p *Path) Contains(x, y float64) bool {
	return p.windingRule.Inside(PathCrossingsFromPoint(p.FlatPathIterator(), x, y, false, true))
}

// ContainsRect is true when the rectangle lies fully inside the path without
// touching its outline. A rectangle with no area is never contained.
func (p *Path) ContainsRect(r Rectangle) bool {
	if r.Width() <= 0 || r.Height() <= 0 {
		return false
	}
	c := PathCrossingsFromRect(p.FlatPathIterator(), r.MinX(), r.MinY(), r.MaxX(), r.MaxY(), false, true)
	return p.windingRule.Encloses(c)
}

// ClosestPointTo returns p itself when it is inside the path. An empty path
// has no closest point, and gives p back.
func (p *Path) ClosestPointTo(q Point) Point {
	if closest, ok := ClosestPointOnPath(p.FlatPathIterator(), q); ok {
		return closest
	}
	return q
}

func (p *Path) FarthestPointTo(q Point) Point {
	if farthest, ok := FarthestPointOnPath(p.FlatPathIterator(), q); ok {
		return farthest
	}
	return q
}

func (p *Path) DistanceSquared(q Point) float64 { return p.ClosestPointTo(q).DistanceSquared(q) }
func (p *Path) Distance(q Point) float64        { return p.ClosestPointTo(q).Distance(q) }
func (p *Path) DistanceL1(q Point) float64      { return p.ClosestPointTo(q).DistanceL1(q) }
func (p *Path) DistanceLinf(q Point) float64    { return p.ClosestPointTo(q).DistanceLinf(q) }

func (p *Path) String() string {
	var b strings.Builder
	b.WriteString("[")
	i := 0
	for j, t := range p.types {
		if j > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.String())
		for k := 0; k < t.coordCount(); k += 2 {
			fmt.Fprintf(&b, " %g;%g", p.coords[i+k], p.coords[i+k+1])
		}
		i += t.coordCount()
	}
	b.WriteString("]")
	return b.String()
}

func (*Path) isShape() {}

type pathIterator struct {
	rule   WindingRule
	types  []PathElementType
	coords []float64

	typeIndex  int
	coordIndex int
	current    PathElement
	mov, cur   Point
}

func (it *pathIterator) point(k int) Point {
	return Point{it.coords[k], it.coords[k+1]}
}

func (it *pathIterator) Next() bool {
	if it.typeIndex >= len(it.types) {
		return false
	}
	t := it.types[it.typeIndex]
	k := it.coordIndex
	e := PathElement{Type: t, From: it.cur}
	switch t {
	case MoveTo:
		e.To = it.point(k)
		e.From = e.To
		it.mov = e.To
	case LineTo:
		e.To = it.point(k)
	case QuadTo:
		e.Ctrl1 = it.point(k)
		e.To = it.point(k + 2)
	case CurveTo:
		e.Ctrl1 = it.point(k)
		e.Ctrl2 = it.point(k + 2)
		e.To = it.point(k + 4)
	case Close:
		e.To = it.mov
	}
	it.cur = e.To
	it.current = e
	it.typeIndex++
	it.coordIndex += t.coordCount()
	return true
}

func (it *pathIterator) Element() PathElement { return it.current }

func (it *pathIterator) Restart() {
	it.typeIndex = 0
	it.coordIndex = 0
	it.mov = Point{}
	it.cur = Point{}
}

func (it *pathIterator) WindingRule() WindingRule { return it.rule }

func (it *pathIterator) IsPolyline() bool {
	for _, t := range it.types {
		if t == QuadTo || t == CurveTo {
			return false
		}
	}
	return true
}
