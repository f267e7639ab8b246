package advanced

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const drawPadding = 20

// Fill colors, cycled over the shapes
var drawPalette = [][3]float64{
	{0.95, 0.45, 0.25},
	{0.30, 0.65, 0.95},
	{0.45, 0.85, 0.40},
	{0.90, 0.80, 0.25},
	{0.75, 0.45, 0.90},
}

func drawBounds(shapes []Shape) Rectangle {
	var bounds Rectangle
	for i, shape := range shapes {
		box := shape.BoundingBox()
		if i == 0 {
			bounds = box
		} else {
			bounds.SetUnion(box)
		}
	}
	return bounds
}

// NewDrawContext creates a gg context that maps bounds, scaled, onto the
// image, with the y axis pointing up.
func NewDrawContext(bounds Rectangle, scale float64) *gg.Context {
	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.MinX(), -bounds.MinY())
	return c
}

// DrawShape appends the outline of shape to the current path of c.
func DrawShape(c *gg.Context, shape PathIterable) {
	it := shape.PathIterator()
	for it.Next() {
		e := it.Element()
		switch e.Type {
		case MoveTo:
			c.MoveTo(e.To.X, e.To.Y)
		case LineTo:
			c.LineTo(e.To.X, e.To.Y)
		case QuadTo:
			c.QuadraticTo(e.Ctrl1.X, e.Ctrl1.Y, e.To.X, e.To.Y)
		case CurveTo:
			c.CubicTo(e.Ctrl1.X, e.Ctrl1.Y, e.Ctrl2.X, e.Ctrl2.Y, e.To.X, e.To.Y)
		case Close:
			c.ClosePath()
		}
	}
}

func fillRule(shape Shape) gg.FillRule {
	if path, ok := shape.(*Path); ok && path.WindingRule() == EvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleWinding
}

// Render draws the shapes, filled and outlined, and saves the result as a PNG.
func Render(shapes []Shape, scale float64, filename string) error {
	if len(shapes) == 0 {
		return errors.New("nothing to render")
	}
	c := NewDrawContext(drawBounds(shapes), scale)
	c.SetLineWidth(2)
	for i, shape := range shapes {
		color := drawPalette[i%len(drawPalette)]
		DrawShape(c, shape)
		c.SetFillRule(fillRule(shape))
		c.SetRGBA(color[0], color[1], color[2], 0.4)
		c.FillPreserve()
		c.SetRGB(color[0], color[1], color[2])
		c.Stroke()
	}
	return errors.Wrapf(c.SavePNG(filename), "saving %s", filename)
}

// RenderToTerminal renders the shapes to a temporary file and prints it inline
// (iTerm only).
func RenderToTerminal(shapes []Shape, scale float64) error {
	f, err := os.CreateTemp("", "geom2d-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	f.Close()
	defer os.Remove(f.Name())

	if err := Render(shapes, scale, f.Name()); err != nil {
		return err
	}
	return errors.Wrap(imgcat.CatFile(f.Name(), os.Stdout), "printing image")
}
