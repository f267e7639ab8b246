package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func starPolygon(outer, inner float64) Polygon {
	var points []Point
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i) * math.Pi / 5
		points = append(points, Point{r * math.Cos(angle), r * math.Sin(angle)})
	}
	return NewPolygon(points...)
}

// Walk a grid over the polygon's box and check that the path built from the
// polygon agrees with the raw vertex test on every sample.
func validatePathBySampling(t *testing.T, poly Polygon) {
	t.Helper()
	path := poly.Path(EvenOdd)
	box := path.BoundingBox()
	const samples = 60
	for i := 0; i <= samples; i++ {
		for j := 0; j <= samples; j++ {
			// Odd offsets keep the samples off the vertices.
			p := Point{
				X: box.MinX() - 1 + (box.Width()+2)*(float64(i)+0.013)/samples,
				Y: box.MinY() - 1 + (box.Height()+2)*(float64(j)+0.029)/samples,
			}
			expected := poly.ContainsPointByEvenOdd(p)
			if !assert.Equal(t, expected, path.Contains(p.X, p.Y), fmt.Sprintf("sample %v", p)) {
				return
			}
		}
	}
}

func TestPolygonArea(t *testing.T) {
	square := NewPolygon(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	assert.Equal(t, 1.0, square.SignedArea())
	assert.True(t, square.IsCounterClockwise())

	reversed := square.Reverse()
	assert.Equal(t, -1.0, reversed.SignedArea())
	assert.False(t, reversed.IsCounterClockwise())
	assert.Equal(t, Point{0, 1}, reversed.Points[0])
}

func TestPolygonCrossingCount(t *testing.T) {
	star := starPolygon(10, 4)
	assert.Equal(t, 1, star.CrossingCount(Point{0, .5}))
	assert.Equal(t, -1, star.Reverse().CrossingCount(Point{0, .5}))
	assert.Equal(t, 0, star.CrossingCount(Point{20, 0}))
	assert.True(t, star.ContainsPointByEvenOdd(Point{-2, -.5}))
	assert.False(t, star.ContainsPointByEvenOdd(Point{6, 6}), "between two tips")
}

func TestPolygonPath(t *testing.T) {
	assert.Equal(t, 0, NewPolygon().Path(NonZero).Size())

	square := NewPolygon(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	assert.Equal(t, "[moveto 0;0 lineto 1;0 lineto 1;1 lineto 0;1 close]", square.Path(NonZero).String())

	t.Run("star", func(t *testing.T) {
		validatePathBySampling(t, starPolygon(10, 4))
	})

	t.Run("self intersecting", func(t *testing.T) {
		// Pentagram: the center has a winding number of 2.
		var points []Point
		for i := 0; i < 5; i++ {
			angle := float64(2*i) * 2 * math.Pi / 5
			points = append(points, Point{10 * math.Cos(angle), 10 * math.Sin(angle)})
		}
		pentagram := NewPolygon(points...)
		validatePathBySampling(t, pentagram)
		assert.False(t, pentagram.Path(EvenOdd).Contains(0, .5))
		assert.True(t, pentagram.Path(NonZero).Contains(0, .5))
	})
}
