package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatteningIterator(t *testing.T) {
	circle := NewCircle(0, 0, 5)
	it := NewFlatteningIterator(circle.PathIterator(), SplineApproximationRatio)
	assert.True(t, it.IsPolyline())
	assert.Equal(t, NonZero, it.WindingRule())

	elements := CollectElements(it)
	assert.Greater(t, len(elements), 8)
	assert.Equal(t, MoveTo, elements[0].Type)
	assert.Equal(t, Close, elements[len(elements)-1].Type)

	center := Point{0, 0}
	for i, e := range elements[1 : len(elements)-1] {
		assert.Equal(t, LineTo, e.Type)
		assert.Equal(t, elements[i].To, e.From, "chords are chained")
		assert.InDelta(t, 5, e.To.Distance(center), 0.01, "chord ends lie on the curve")
		mid := Point{(e.From.X + e.To.X) / 2, (e.From.Y + e.To.Y) / 2}
		assert.InDelta(t, 5, mid.Distance(center), SplineApproximationRatio, "chords stay close to the curve")
	}

	t.Run("restart", func(t *testing.T) {
		it.Restart()
		assert.Equal(t, elements, CollectElements(it))
	})

	t.Run("default flatness", func(t *testing.T) {
		defaulted := CollectElements(NewFlatteningIterator(circle.PathIterator(), 0))
		assert.Equal(t, elements, defaulted)
	})

	t.Run("finer flatness gives more chords", func(t *testing.T) {
		fine := CollectElements(NewFlatteningIterator(circle.PathIterator(), 0.001))
		assert.Greater(t, len(fine), len(elements))
	})

	t.Run("lines pass through", func(t *testing.T) {
		square := squarePath(EvenOdd, 0, 0, 3)
		flat := NewFlatteningIterator(square.PathIterator(), 0)
		assert.Equal(t, CollectElements(square.PathIterator()), CollectElements(flat))
		assert.Equal(t, EvenOdd, flat.WindingRule())
	})

	t.Run("quads", func(t *testing.T) {
		p := NewPath(NonZero)
		p.MoveTo(0, 0)
		p.QuadTo(5, 10, 10, 0)
		flat := CollectElements(p.FlatPathIterator())
		assert.Equal(t, Point{10, 0}, flat[len(flat)-1].To)
		for _, e := range flat[1:] {
			assert.Equal(t, LineTo, e.Type)
			// y = x(10-x)/5 on this parabola
			assert.InDelta(t, e.To.X*(10-e.To.X)/5, e.To.Y, 1e-9)
		}
	})

	t.Run("control point past the end of the chord", func(t *testing.T) {
		// x(t) = 40t - 30t² peaks at 40/3 for t = 2/3, beyond the end at 10.
		p := NewPath(NonZero)
		p.MoveTo(0, 0)
		p.QuadTo(20, 0, 10, 0)
		maxX := 0.0
		for _, e := range CollectElements(p.FlatPathIterator()) {
			maxX = max(maxX, e.To.X)
		}
		assert.InDelta(t, 40.0/3, maxX, 0.1)
		assert.InDelta(t, 40.0/3, p.BoundingBox().MaxX(), 0.1)
	})
}
