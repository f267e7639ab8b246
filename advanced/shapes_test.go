package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPointInDelta(t *testing.T, expected, actual Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, Tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, Tolerance, msgAndArgs...)
}

func TestRectangleNormalization(t *testing.T) {
	r := NewRectangleFromCorners(5, 4, 1, 2)
	assert.Equal(t, "[1;2;5;4]", r.String())
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 2.0, r.Height())

	again := NewRectangleFromCorners(r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
	assert.True(t, r.Equal(*again))

	r.SetMinX(10)
	assert.Equal(t, "[5;2;10;4]", r.String())
	r.SetMaxY(-1)
	assert.Equal(t, "[5;-1;10;2]", r.String())

	r = NewRectangle(3, 3, -2, -2)
	assert.Equal(t, "[1;1;3;3]", r.String())
}

func TestRectangleQueries(t *testing.T) {
	r := NewRectangleFromCorners(1, 2, 5, 4)

	assert.True(t, r.Contains(1, 2))
	assert.True(t, r.Contains(5, 4))
	assert.True(t, r.Contains(3, 3))
	assert.False(t, r.Contains(5.1, 3))

	p := Point{8, 8}
	assert.Equal(t, Point{5, 4}, r.ClosestPointTo(p))
	assert.InDelta(t, 5, r.Distance(p), Tolerance)
	assert.InDelta(t, 25, r.DistanceSquared(p), Tolerance)
	assert.InDelta(t, 7, r.DistanceL1(p), Tolerance)
	assert.InDelta(t, 4, r.DistanceLinf(p), Tolerance)
	assert.Zero(t, r.Distance(Point{2, 3}))

	assert.Equal(t, Point{5, 4}, r.FarthestPointTo(Point{0, 0}))
	assert.Equal(t, Point{1, 2}, r.FarthestPointTo(Point{10, 10}))

	assert.True(t, r.ContainsRect(*NewRectangle(2, 2, 1, 1)))
	assert.False(t, r.ContainsRect(*NewRectangle(2, 2, 10, 1)))
	assert.False(t, r.ContainsRect(*NewRectangle(2, 2, 1, 0)))
}

func TestRectangleSetOperations(t *testing.T) {
	r := NewRectangleFromCorners(1, 2, 5, 4)
	assert.Equal(t, "[0;0;5;4]", r.Union(*NewRectangle(0, 0, 1, 1)).String())
	assert.Equal(t, "[4;3;5;4]", r.Intersection(*NewRectangleFromCorners(4, 3, 10, 10)).String())
	assert.True(t, r.Intersection(*NewRectangleFromCorners(10, 10, 11, 11)).IsEmpty())

	r.Add(Point{-1, 7})
	assert.Equal(t, "[-1;2;5;7]", r.String())

	t.Run("avoid collision", func(t *testing.T) {
		r := NewRectangleFromCorners(0, 0, 2, 2)
		d := r.AvoidCollisionWith(*NewRectangleFromCorners(1, 1, 5, 5))
		assert.Equal(t, Vector{-1, 0}, d)
		assert.Equal(t, "[-1;0;1;2]", r.String())
		assert.False(t, IntersectsRectangleRectangle(r.MinX(), r.MinY(), r.MaxX(), r.MaxY(), 1, 1, 5, 5))
	})

	t.Run("avoid collision with direction", func(t *testing.T) {
		r := NewRectangleFromCorners(0, 0, 2, 2)
		d := r.AvoidCollisionWithDirection(*NewRectangleFromCorners(1, 1, 5, 5), Vector{0, -1})
		assert.InDelta(t, -1, d.Y, Tolerance)
		assert.Equal(t, -1.0, r.MinY())
	})
}

func TestRectanglePredicates(t *testing.T) {
	assert.True(t, IntersectsRectangleSegment(0, 0, 1, 1, -1, .5, 2, .5))
	assert.False(t, IntersectsRectangleSegment(0, 0, 1, 1, -1, 2, 2, 2))
	// Touching a corner leaves a single point.
	assert.False(t, IntersectsRectangleSegment(0, 0, 1, 1, 1, 1, 2, 2))

	assert.True(t, IntersectsRectangleLine(0, 0, 1, 1, -5, .5, 5, .5))
	assert.False(t, IntersectsRectangleLine(0, 0, 1, 1, 5, -5, 5, 5))

	// Sharing an edge is not an intersection.
	assert.False(t, IntersectsRectangleRectangle(0, 0, 1, 1, 1, 0, 2, 1))
	assert.True(t, IntersectsRectangleRectangle(0, 0, 1, 1, .5, .5, 2, 2))
}

func TestRectanglePathIterator(t *testing.T) {
	elements := CollectElements(NewRectangle(0, 0, 2, 1).PathIterator())
	require.Len(t, elements, 6)
	assert.Equal(t, MoveTo, elements[0].Type)
	for _, e := range elements[1:5] {
		assert.Equal(t, LineTo, e.Type)
	}
	assert.Equal(t, Close, elements[5].Type)
	assert.Equal(t, Point{2, 1}, elements[2].To)

	assert.Empty(t, CollectElements(NewRectangle(0, 0, 2, 0).PathIterator()))
}

func TestSegment(t *testing.T) {
	s := NewSegment(0, 0, 4, 0)
	assert.Equal(t, 4.0, s.Length())
	assert.True(t, s.Contains(2, 0))
	assert.False(t, s.Contains(2, .1))
	assert.False(t, s.Contains(5, 0))

	assert.Equal(t, Point{2, 0}, s.ClosestPointTo(Point{2, 3}))
	assert.InDelta(t, 3, s.Distance(Point{2, 3}), Tolerance)

	p := Point{-3, 4}
	assert.Equal(t, Point{0, 0}, s.ClosestPointTo(p))
	assert.InDelta(t, 5, s.Distance(p), Tolerance)
	assert.InDelta(t, 25, s.DistanceSquared(p), Tolerance)
	assert.InDelta(t, 7, s.DistanceL1(p), Tolerance)
	assert.InDelta(t, 4, s.DistanceLinf(p), Tolerance)
	assert.Equal(t, Point{4, 0}, s.FarthestPointTo(Point{-1, 0}))

	near := Point{2, 1e-7}
	assert.True(t, s.Contains(near.X, near.Y))
	assert.Equal(t, near, s.ClosestPointTo(near))
	assert.Equal(t, 0.0, s.Distance(near), "contained points sit at distance zero")
	assert.Equal(t, 0.0, s.DistanceLinf(near))

	assert.True(t, s.ContainsRect(*NewRectangleFromCorners(1, 0, 3, 0)))
	assert.False(t, s.ContainsRect(*NewRectangleFromCorners(1, 0, 3, 1)))

	assert.Equal(t, Point{1, 0}, s.Interpolate(.25))
	assert.Equal(t, "[0;0|4;0]", s.String())
	assert.Equal(t, "[0;0;4;0]", s.BoundingBox().String())

	t.Run("clip", func(t *testing.T) {
		clipped := NewSegment(-5, .5, 5, .5)
		require.True(t, clipped.ClipToRectangle(*NewRectangle(0, 0, 1, 1)))
		assert.Equal(t, "[0;0.5|1;0.5]", clipped.String())

		outside := NewSegment(-5, 5, 5, 5)
		assert.False(t, outside.ClipToRectangle(*NewRectangle(0, 0, 1, 1)))
		assert.Equal(t, "[-5;5|5;5]", outside.String())
	})

	t.Run("path iterator", func(t *testing.T) {
		elements := CollectElements(s.PathIterator())
		require.Len(t, elements, 2)
		assert.Equal(t, MoveTo, elements[0].Type)
		assert.Equal(t, PathElement{Type: LineTo, From: Point{0, 0}, To: Point{4, 0}}, elements[1])
		assert.Empty(t, CollectElements(NewSegment(1, 1, 1, 1).PathIterator()))
	})
}

func TestEllipse(t *testing.T) {
	e := NewEllipse(0, 0, 2, 1)
	origin := Point{0, 0}

	assert.InDelta(t, 0.327464574, e.Distance(origin), Tolerance)
	assertPointInDelta(t, Point{0.292893219, 0.146446609}, e.ClosestPointTo(origin))
	assert.InDelta(t, 0.107233047, e.DistanceSquared(origin), Tolerance)
	assert.InDelta(t, 0.439339828, e.DistanceL1(origin), Tolerance)
	assert.InDelta(t, 0.292893219, e.DistanceLinf(origin), Tolerance)

	assertPointInDelta(t, Point{0.610360009, 0.039516374}, e.ClosestPointTo(Point{-2.3, -3.4}))
	assertPointInDelta(t, Point{1, 1}, e.ClosestPointTo(Point{1, 5.6}))

	assert.True(t, e.Contains(1, .5))
	assert.False(t, e.Contains(2, .5), "boundary is outside")
	assert.Equal(t, Point{1, .5}, e.ClosestPointTo(Point{1, .5}))
	assertPointInDelta(t, Point{0, .5}, e.FarthestPointTo(Point{3, .5}))

	assert.True(t, ContainsEllipseRectangle(0, 0, 1, 1, .25, .25, .5, .5))
	assert.False(t, ContainsEllipseRectangle(0, 0, 1, 1, 0, 0, 1, 1))

	t.Run("setters", func(t *testing.T) {
		e := NewEllipseFromCorners(4, 3, 0, 1)
		assert.Equal(t, "ellipse[0;1;4;2]", e.String())
		e.SetWidth(-3)
		assert.Zero(t, e.Width())
		assert.True(t, e.IsEmpty())
	})

	t.Run("path iterator", func(t *testing.T) {
		elements := CollectElements(e.PathIterator())
		require.Len(t, elements, 6)
		assert.Equal(t, Point{2, .5}, elements[0].To)
		for _, el := range elements[1:5] {
			assert.Equal(t, CurveTo, el.Type)
		}
		assert.Equal(t, Point{1, 1}, elements[1].To)
		assert.Equal(t, Close, elements[5].Type)
		assert.Empty(t, CollectElements(NewEllipse(3, 3, 0, 0).PathIterator()))
	})
}

func TestCircle(t *testing.T) {
	c := NewCircle(1, 1, 2)
	assert.True(t, c.Contains(3, 1), "boundary is inside")
	assert.False(t, c.Contains(3.1, 1))
	assert.InDelta(t, 3, c.Distance(Point{6, 1}), Tolerance)
	assert.InDelta(t, 9, c.DistanceSquared(Point{6, 1}), Tolerance)
	assertPointInDelta(t, Point{3, 1}, c.ClosestPointTo(Point{6, 1}))
	assertPointInDelta(t, Point{-1, 1}, c.FarthestPointTo(Point{6, 1}))
	assert.Equal(t, Point{3, 1}, c.FarthestPointTo(Point{1, 1}))
	assert.Zero(t, c.Distance(Point{1.5, 1.5}))

	assert.True(t, c.ContainsRect(*NewRectangle(0, 0, 2, 2)))
	assert.False(t, c.ContainsRect(*NewRectangle(0, 0, 3, 3)))

	c.SetRadius(-1)
	assert.Zero(t, c.Radius())
	assert.Empty(t, CollectElements(c.PathIterator()))
	assert.Equal(t, "circle[1;1|0]", c.String())
}

func TestDistanceProperties(t *testing.T) {
	shapes := []Shape{
		NewSegment(-1, -1, 2, 1),
		NewRectangle(-1, -.5, 2, 1.5),
		NewEllipse(-1, -.5, 2.5, 1.5),
		NewCircle(.2, .3, 1.1),
		NewPolygon(Point{-1, -1}, Point{1.5, -1}, Point{0, 1.2}).Path(NonZero),
	}
	for _, shape := range shapes {
		for y := -2.0; y <= 2; y += 0.25 {
			for x := -2.0; x <= 2; x += 0.25 {
				p := Point{x, y}
				d := shape.Distance(p)
				assert.InDelta(t, d*d, shape.DistanceSquared(p), Tolerance, "%v at %v", shape, p)
				assert.GreaterOrEqual(t, shape.DistanceL1(p)+Tolerance, d, "%v at %v", shape, p)
				assert.LessOrEqual(t, shape.DistanceLinf(p), d+Tolerance, "%v at %v", shape, p)
				if shape.Contains(x, y) {
					assert.Equal(t, 0.0, d, "%v contains %v", shape, p)
					assert.Equal(t, p, shape.ClosestPointTo(p), "%v contains %v", shape, p)
				}
			}
		}
	}
}
