package advanced

// SplineApproximationRatio is the default flatness used when curves are
// replaced by polylines: the largest allowed distance between a curve and the
// chords that stand for it.
const SplineApproximationRatio = 0.1

// Subdivision depth cap. A curve is split into at most 2^10 chords.
const flatteningLimit = 10

// FlatteningIterator wraps another iterator and replaces quads and curves by
// line segments. The output only holds moveto, lineto and close elements.
type FlatteningIterator struct {
	source          PathIterator
	squaredFlatness float64
	limit           int

	current PathElement
	// Chord ends still to emit for the curve being flattened.
	pending []Point
	// Where the next emitted lineto starts.
	last Point
}

// NewFlatteningIterator flattens source with the given flatness. A flatness
// of zero or less uses SplineApproximationRatio.
func NewFlatteningIterator(source PathIterator, flatness float64) *FlatteningIterator {
	if flatness <= 0 {
		flatness = SplineApproximationRatio
	}
	return &FlatteningIterator{
		source:          source,
		squaredFlatness: flatness * flatness,
		limit:           flatteningLimit,
	}
}

func (it *FlatteningIterator) Next() bool {
	if len(it.pending) > 0 {
		it.emitPending()
		return true
	}
	if !it.source.Next() {
		return false
	}
	element := it.source.Element()
	switch element.Type {
	case QuadTo:
		it.pending = flattenQuad(it.pending[:0], element.From, element.Ctrl1, element.To, it.squaredFlatness, 0, it.limit)
		it.last = element.From
		it.emitPending()
	case CurveTo:
		it.pending = flattenCubic(it.pending[:0], element.From, element.Ctrl1, element.Ctrl2, element.To, it.squaredFlatness, 0, it.limit)
		it.last = element.From
		it.emitPending()
	default:
		it.current = element
		it.last = element.To
	}
	return true
}

func (it *FlatteningIterator) emitPending() {
	to := it.pending[0]
	it.pending = it.pending[1:]
	it.current = PathElement{Type: LineTo, From: it.last, To: to}
	it.last = to
}

func (it *FlatteningIterator) Element() PathElement { return it.current }

func (it *FlatteningIterator) Restart() {
	it.source.Restart()
	it.pending = it.pending[:0]
}

func (it *FlatteningIterator) WindingRule() WindingRule { return it.source.WindingRule() }
func (it *FlatteningIterator) IsPolyline() bool         { return true }

// Squared distance from the control point to the chord.
func quadFlatnessSquared(p0, c, p2 Point) float64 {
	return DistanceSquaredSegmentPoint(p0.X, p0.Y, p2.X, p2.Y, c.X, c.Y)
}

// Squared distance from the farther control point to the chord.
func cubicFlatnessSquared(p0, c1, c2, p3 Point) float64 {
	return max(
		DistanceSquaredSegmentPoint(p0.X, p0.Y, p3.X, p3.Y, c1.X, c1.Y),
		DistanceSquaredSegmentPoint(p0.X, p0.Y, p3.X, p3.Y, c2.X, c2.Y),
	)
}

func midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Appends the chord ends approximating the quad, p0 excluded.
func flattenQuad(out []Point, p0, c, p2 Point, squaredFlatness float64, level, limit int) []Point {
	if level >= limit || quadFlatnessSquared(p0, c, p2) < squaredFlatness {
		return append(out, p2)
	}
	c1 := midpoint(p0, c)
	c2 := midpoint(c, p2)
	mid := midpoint(c1, c2)
	out = flattenQuad(out, p0, c1, mid, squaredFlatness, level+1, limit)
	return flattenQuad(out, mid, c2, p2, squaredFlatness, level+1, limit)
}

// Appends the chord ends approximating the cubic, p0 excluded.
func flattenCubic(out []Point, p0, c1, c2, p3 Point, squaredFlatness float64, level, limit int) []Point {
	if level >= limit || cubicFlatnessSquared(p0, c1, c2, p3) < squaredFlatness {
		return append(out, p3)
	}
	// de Casteljau at t=0.5
	a := midpoint(p0, c1)
	b := midpoint(c1, c2)
	c := midpoint(c2, p3)
	ab := midpoint(a, b)
	bc := midpoint(b, c)
	mid := midpoint(ab, bc)
	out = flattenCubic(out, p0, a, ab, mid, squaredFlatness, level+1, limit)
	return flattenCubic(out, mid, bc, c, p3, squaredFlatness, level+1, limit)
}

// Iterator over a single curve starting at from. Used to flatten one element
// of a path on its own.
func curveIterator(element PathElement) PathIterator {
	return &generatedIterator{
		count: 2,
		generate: func(i int) PathElement {
			if i == 0 {
				return PathElement{Type: MoveTo, From: element.From, To: element.From}
			}
			return element
		},
	}
}
