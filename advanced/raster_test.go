package advanced

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func alphaAt(mask *image.Alpha, col, row int) uint8 {
	return mask.AlphaAt(col, row).A
}

func assertInk(t *testing.T, mask *image.Alpha, col, row int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.GreaterOrEqual(t, alphaAt(mask, col, row), uint8(0xf0), msgAndArgs...)
}

func assertNoInk(t *testing.T, mask *image.Alpha, col, row int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Less(t, alphaAt(mask, col, row), uint8(0x10), msgAndArgs...)
}

func TestRasterizeMask(t *testing.T) {
	t.Run("rows go top down", func(t *testing.T) {
		triangle := NewPolygon(Point{0, 0}, Point{10, 0}, Point{0, 10}).Path(NonZero)
		mask := RasterizeMask(triangle, *NewRectangle(0, 0, 10, 10), 1)
		assert.Equal(t, 10, mask.Bounds().Dx())
		assert.Equal(t, 10, mask.Bounds().Dy())
		assertInk(t, mask, 1, 9)
		assertNoInk(t, mask, 8, 1)
	})

	t.Run("open subpaths are filled as closed", func(t *testing.T) {
		p := NewPath(NonZero)
		p.MoveTo(0, 0)
		p.LineTo(10, 0)
		p.LineTo(10, 10)
		mask := RasterizeMask(p, *NewRectangle(0, 0, 10, 10), 1)
		assertInk(t, mask, 8, 7)
		assertNoInk(t, mask, 1, 2)
	})

	t.Run("agrees with contains away from the outline", func(t *testing.T) {
		const scale = 4
		circle := NewCircle(5, 5, 5)
		bounds := circle.BoundingBox()
		mask := RasterizeMask(circle, bounds, scale)
		assert.Equal(t, 40, mask.Bounds().Dx())
		b := mask.Bounds()
		for row := b.Min.Y; row < b.Max.Y; row++ {
			for col := b.Min.X; col < b.Max.X; col++ {
				c := PixelCenter(bounds, scale, col, row)
				depth := 5 - c.Distance(Point{5, 5})
				switch {
				case depth > 0.5:
					assertInk(t, mask, col, row, "inside at %v", c)
				case depth < -0.5:
					assertNoInk(t, mask, col, row, "outside at %v", c)
				}
			}
		}
	})

	t.Run("even-odd", func(t *testing.T) {
		ring := ringPath(EvenOdd)
		mask := RasterizeMask(ring, ring.BoundingBox(), 1)
		assert.Equal(t, uint8(0xff), alphaAt(mask, 1, 5), "band")
		assert.Equal(t, uint8(0), alphaAt(mask, 5, 5), "hole")
	})

	t.Run("empty bounds", func(t *testing.T) {
		mask := RasterizeMask(NewCircle(0, 0, 1), Rectangle{}, 10)
		assert.True(t, mask.Bounds().Empty())
	})

	assert.Equal(t, Point{0.25, 9.75}, PixelCenter(*NewRectangle(0, 0, 10, 10), 2, 0, 0))
}
