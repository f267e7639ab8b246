package internal

import (
	"strings"
	"testing"

	"github.com/osuushi/geom2d/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePolygons(t *testing.T) {
	input := `0 0
10 0
10 10
0 10

3 3
3 7
7 7
7 3
`
	scene, err := DecodePolygons(strings.NewReader(input), advanced.NonZero)
	require.NoError(t, err)
	assert.Equal(t, []string{"path-0", "path-1"}, sceneNames(scene))

	outer := mustFind(t, scene, "path-0").(*advanced.Path)
	assert.Equal(t, "[moveto 0;0 lineto 10;0 lineto 10;10 lineto 0;10 close]", outer.String())

	// The clockwise square is a hole once both are in one path.
	combined := advanced.NewPath(advanced.NonZero)
	for _, shape := range scene.All() {
		combined.Add(shape.PathIterator())
	}
	assert.False(t, combined.Contains(5, 5))
	assert.True(t, combined.Contains(1, 5))

	t.Run("trailing blank lines", func(t *testing.T) {
		scene, err := DecodePolygons(strings.NewReader("\n\n0 0\n1 0\n0 1\n\n\n"), advanced.EvenOdd)
		require.NoError(t, err)
		require.Len(t, scene.Shapes, 1)
		assert.Equal(t, advanced.EvenOdd, scene.Shapes[0].Shape.(*advanced.Path).WindingRule())
	})

	t.Run("malformed lines", func(t *testing.T) {
		for _, input := range []string{"0 0\n1\n", "0 0\n1 x\n", "a 0\n"} {
			_, err := DecodePolygons(strings.NewReader(input), advanced.NonZero)
			assert.Error(t, err, input)
		}
		_, err := DecodePolygons(strings.NewReader("0 0\n1 2 3\n"), advanced.NonZero)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}
