package advanced

import (
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "scene.png")
	shapes := []Shape{NewRectangle(0, 0, 10, 5), NewCircle(20, 2.5, 2), ringPath(EvenOdd)}
	require.NoError(t, Render(shapes, 10, filename))

	img, err := gg.LoadPNG(filename)
	require.NoError(t, err)
	// Union of the boxes is 0..22 x 0..10, plus the padding.
	assert.Equal(t, 260, img.Bounds().Dx())
	assert.Equal(t, 140, img.Bounds().Dy())

	r, _, _, _ := img.At(1, 1).RGBA()
	assert.Zero(t, r, "background")
	// Inside the rectangle, y flipped.
	r, _, _, _ = img.At(20+25, 140-20-25).RGBA()
	assert.NotZero(t, r)

	t.Run("nothing to draw", func(t *testing.T) {
		assert.Error(t, Render(nil, 10, filepath.Join(t.TempDir(), "empty.png")))
	})

	t.Run("unwritable file", func(t *testing.T) {
		err := Render(shapes, 1, filepath.Join(t.TempDir(), "missing", "scene.png"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "saving")
	})
}

func TestFillRule(t *testing.T) {
	assert.Equal(t, gg.FillRuleEvenOdd, fillRule(ringPath(EvenOdd)))
	assert.Equal(t, gg.FillRuleWinding, fillRule(ringPath(NonZero)))
	assert.Equal(t, gg.FillRuleWinding, fillRule(NewCircle(0, 0, 1)))
}
