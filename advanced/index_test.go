package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shapesOf(entries []*IndexEntry) []Shape {
	var shapes []Shape
	for _, e := range entries {
		shapes = append(shapes, e.Shape)
	}
	return shapes
}

func TestShapeIndex(t *testing.T) {
	index := NewShapeIndex()
	assert.Nil(t, index.Nearest(0, 0))

	box := NewRectangle(0, 0, 10, 10)
	disc := NewCircle(20, 20, 2)
	wire := NewSegment(0, 30, 10, 30)
	square := squarePath(NonZero, 40, 0, 5)
	shapes := []Shape{box, disc, wire, square}
	entries := make(map[Shape]*IndexEntry)
	for _, shape := range shapes {
		entries[shape] = index.Insert(shape)
	}
	require.Equal(t, 4, index.Len())
	assert.Contains(t, entries[box].String(), box.String())

	t.Run("point queries", func(t *testing.T) {
		assert.Equal(t, []Shape{box}, shapesOf(index.ContainingPoint(5, 5)))
		assert.Equal(t, []Shape{disc}, shapesOf(index.ContainingPoint(20, 20)))
		assert.Empty(t, index.ContainingPoint(18.2, 18.2), "inside the box of the disc only")
		assert.Empty(t, index.ContainingPoint(100, 100))
		assert.Equal(t, []Shape{wire}, shapesOf(index.ContainingPoint(5, 30)), "flat box")
		assert.Equal(t, []Shape{box}, shapesOf(index.ContainingPoint(10, 10)), "box corner")
	})

	t.Run("flat and touching boxes reach the exact test", func(t *testing.T) {
		assert.Equal(t, []Shape{wire}, shapesOf(index.Query(NewSegment(2, 30, 8, 30))))
		assert.Equal(t, []Shape{box}, shapesOf(index.Query(NewSegment(10, -5, 10, 15))), "runs along the right side")
		assert.Empty(t, index.Query(NewRectangle(10, 3, 2, 2)), "rectangles sharing a side do not intersect")
	})

	t.Run("nearest box", func(t *testing.T) {
		assert.Equal(t, entries[square], index.Nearest(50, 2))
		assert.Equal(t, entries[box], index.Nearest(-3, 4))
	})

	t.Run("shape queries match a brute force scan", func(t *testing.T) {
		queries := []Shape{
			NewRectangle(8, 8, 4, 4),
			NewCircle(5, 30, 1),
			NewSegment(-10, -10, 60, 40),
			NewEllipse(35, -5, 10, 4),
			squarePath(NonZero, 41, 1, 1),
			NewRectangle(100, 100, 1, 1),
			NewSegment(2, 30, 8, 30),
			NewSegment(10, -5, 10, 15),
			NewRectangle(10, 3, 2, 2),
			NewRectangle(-2, -2, 2, 2),
			NewSegment(45, 5, 50, 5),
		}
		for _, query := range queries {
			var expected []Shape
			for _, shape := range shapes {
				if Intersects(query, shape) {
					expected = append(expected, shape)
				}
			}
			assert.ElementsMatch(t, expected, shapesOf(index.Query(query)), "%v", query)
		}
	})

	t.Run("remove", func(t *testing.T) {
		assert.True(t, index.Remove(entries[disc]))
		assert.False(t, index.Remove(entries[disc]))
		assert.Equal(t, 3, index.Len())
		assert.Empty(t, index.ContainingPoint(20, 20))
	})
}
