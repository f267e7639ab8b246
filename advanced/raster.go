package advanced

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// RasterizeMask renders the interior of shape, inside bounds, into an alpha
// mask with scale pixels per unit. Row 0 of the mask is the top of bounds.
//
// Sub-paths are filled as if closed. The vector rasterizer only knows the
// non-zero rule, so even-odd paths are sampled pixel by pixel through
// Contains instead, without anti-aliasing.
func RasterizeMask(shape Shape, bounds Rectangle, scale float64) *image.Alpha {
	width := int(math.Ceil(bounds.Width() * scale))
	height := int(math.Ceil(bounds.Height() * scale))
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return mask
	}

	if path, ok := shape.(*Path); ok && path.WindingRule() == EvenOdd {
		sampleMask(mask, shape, bounds, scale)
		return mask
	}

	toPixel := func(p Point) (float32, float32) {
		return float32((p.X - bounds.MinX()) * scale), float32((bounds.MaxY() - p.Y) * scale)
	}
	z := vector.NewRasterizer(width, height)
	open := false
	it := shape.PathIterator()
	for it.Next() {
		e := it.Element()
		switch e.Type {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(toPixel(e.To))
			open = true
		case LineTo:
			z.LineTo(toPixel(e.To))
		case QuadTo:
			bx, by := toPixel(e.Ctrl1)
			cx, cy := toPixel(e.To)
			z.QuadTo(bx, by, cx, cy)
		case CurveTo:
			bx, by := toPixel(e.Ctrl1)
			cx, cy := toPixel(e.Ctrl2)
			dx, dy := toPixel(e.To)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func sampleMask(mask *image.Alpha, shape Shape, bounds Rectangle, scale float64) {
	b := mask.Bounds()
	for row := b.Min.Y; row < b.Max.Y; row++ {
		for col := b.Min.X; col < b.Max.X; col++ {
			if c := PixelCenter(bounds, scale, col, row); shape.Contains(c.X, c.Y) {
				mask.Pix[mask.PixOffset(col, row)] = 0xff
			}
		}
	}
}

// PixelCenter maps a mask pixel back to the coordinates of its center.
func PixelCenter(bounds Rectangle, scale float64, col, row int) Point {
	return Point{
		X: bounds.MinX() + (float64(col)+0.5)/scale,
		Y: bounds.MaxY() - (float64(row)+0.5)/scale,
	}
}
