package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/geom2d/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sceneNames(scene *Scene) []string {
	var names []string
	for _, named := range scene.Shapes {
		names = append(names, named.Name)
	}
	return names
}

func mustFind(t *testing.T, scene *Scene, name string) advanced.Shape {
	t.Helper()
	shape, ok := scene.Find(name)
	require.True(t, ok, "no shape %q", name)
	return shape
}

func TestFixtureNames(t *testing.T) {
	assert.Equal(t, []string{"mixed", "ring", "star"}, FixtureNames())
	for _, name := range FixtureNames() {
		scene, err := LoadFixture(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, scene.Name)
		assert.NotEmpty(t, scene.Shapes)
	}

	_, err := LoadFixture("nope")
	assert.Error(t, err)
}

func TestMixedFixture(t *testing.T) {
	scene, err := LoadFixture("mixed")
	require.NoError(t, err)
	assert.Equal(t, []string{"box", "disc", "oval", "cut", "tri", "lens", "blob"}, sceneNames(scene))
	assert.Equal(t, advanced.NonZero, scene.WindingRule)
	assert.Equal(t, 0.05, scene.Flatness)
	assert.Len(t, scene.All(), 7)

	assert.True(t, mustFind(t, scene, "box").Contains(5, 2.5))
	assert.True(t, mustFind(t, scene, "disc").Contains(20, 2.5))
	assert.True(t, mustFind(t, scene, "oval").Contains(1, 10.5))
	assert.True(t, mustFind(t, scene, "tri").Contains(5, 22))
	assert.True(t, mustFind(t, scene, "lens").Contains(15, 12.5))
	assert.False(t, mustFind(t, scene, "lens").Contains(15, 14.5))

	blob := mustFind(t, scene, "blob").(*advanced.Path)
	assert.Equal(t, advanced.EvenOdd, blob.WindingRule())
	assert.False(t, blob.IsPolyline())

	cut := mustFind(t, scene, "cut")
	assert.True(t, advanced.Intersects(cut, mustFind(t, scene, "box")))
	assert.True(t, advanced.Intersects(cut, mustFind(t, scene, "disc")))
	assert.False(t, advanced.Intersects(cut, mustFind(t, scene, "tri")))

	bounds := scene.Bounds()
	assert.Equal(t, -5.0, bounds.MinX())
	assert.Equal(t, 28.0, bounds.MaxY())

	it := scene.Iterator(blob)
	assert.True(t, it.IsPolyline())
	for it.Next() {
		assert.NotEqual(t, advanced.CurveTo, it.Element().Type)
	}
}

func TestSVGFixtures(t *testing.T) {
	ring, err := LoadFixture("ring")
	require.NoError(t, err)
	assert.Equal(t, []string{"ring", "hub", "spoke"}, sceneNames(ring))
	outline := mustFind(t, ring, "ring")
	assert.True(t, outline.Contains(5, 12))
	assert.False(t, outline.Contains(12, 12), "the hole")
	assert.True(t, mustFind(t, ring, "hub").Contains(12, 12))
	assert.True(t, advanced.Intersects(mustFind(t, ring, "spoke"), outline))

	star, err := LoadFixture("star")
	require.NoError(t, err)
	shape := mustFind(t, star, "star")
	assert.True(t, shape.Contains(0, .5))
	assert.False(t, shape.Contains(6, 6))
}

func TestDecodeScene(t *testing.T) {
	scene, err := DecodeScene(strings.NewReader(`
winding: evenodd
shapes:
  - rect: [0, 0, 1, 1]
  - circle: [0, 0, 1]
  - polygon: [[0, 0], [4, 0], [0, 4]]
  - path: M 0 0 L 4 0 L 0 4 Z
    winding: nonzero
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"rect-0", "circle-1", "path-2", "path-3"}, sceneNames(scene))
	assert.Equal(t, advanced.EvenOdd, scene.WindingRule)
	assert.Equal(t, advanced.EvenOdd, mustFind(t, scene, "path-2").(*advanced.Path).WindingRule())
	assert.Equal(t, advanced.NonZero, mustFind(t, scene, "path-3").(*advanced.Path).WindingRule())
	_, ok := scene.Find("nope")
	assert.False(t, ok)
}

func TestSceneFlatness(t *testing.T) {
	scene, err := DecodeScene(strings.NewReader(`
flatness: 0.05
shapes:
  - name: fine
    path: M 0 0 Q 10 20 20 0 Z
  - name: coarse
    flatness: 5
    path: M 0 0 Q 10 20 20 0 Z
`))
	require.NoError(t, err)
	fine := mustFind(t, scene, "fine").(*advanced.Path)
	coarse := mustFind(t, scene, "coarse").(*advanced.Path)
	assert.Equal(t, 0.05, fine.Flatness())
	assert.Equal(t, 5.0, coarse.Flatness())

	// The curve passes over (4;6.4). The coarse path cuts the corner with a
	// chord from (0;0) to (10;10).
	assert.True(t, fine.Contains(4, 5))
	assert.False(t, coarse.Contains(4, 5))
	assert.InDelta(t, 10, fine.BoundingBox().MaxY(), 0.05)

	wire := advanced.NewSegment(4, 5, 4, 5.5)
	assert.True(t, advanced.Intersects(fine, wire))
	assert.False(t, advanced.Intersects(coarse, wire))

	inside := advanced.PathCrossingsFromPoint(scene.Iterator(coarse), 4, 5, true, false)
	assert.True(t, inside.IsZero(), "the scene iterator keeps the path flatness")
}

func TestDecodeSceneErrors(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		message string
	}{
		{"unknown field", "shapes: [{square: [1]}]", "decoding scene"},
		{"two geometries", "shapes: [{rect: [0, 0, 1, 1], circle: [0, 0, 1]}]", "expected exactly one geometry, got 2"},
		{"no geometry", "shapes: [{name: empty}]", "expected exactly one geometry, got 0"},
		{"coordinate count", "shapes: [{rect: [0, 0, 1]}]", "rect needs 4 numbers, got 3"},
		{"polygon vertex", "shapes: [{polygon: [[0, 0], [1]]}]", "polygon vertex needs 2 numbers"},
		{"scene winding", "winding: sideways", `unknown winding rule "sideways"`},
		{"shape winding", "shapes: [{path: M 0 0 L 1 1, winding: sideways}]", `unknown winding rule "sideways"`},
		{"flatness", "flatness: -1", "flatness must not be negative"},
		{"shape flatness", "shapes: [{path: M 0 0 L 1 1, flatness: -1}]", "flatness must not be negative"},
		{"path data", "shapes: [{name: bad, path: L 1 1}]", `shape 0 ("bad")`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeScene(strings.NewReader(c.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.message)
		})
	}
}

func TestDecodeSVG(t *testing.T) {
	scene, err := DecodeSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
  <g>
    <ellipse id="e" cx="5" cy="5" rx="2" ry="1"/>
    <polyline id="zigzag" points="0,0 1,1 2,0"/>
  </g>
  <rect id="r" x="1" y="2" width="3" height="4"/>
</svg>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "zigzag", "r"}, sceneNames(scene))

	box := mustFind(t, scene, "e").BoundingBox()
	assert.Equal(t, "[3;4;7;6]", box.String())

	zigzag := mustFind(t, scene, "zigzag").(*advanced.Path)
	assert.Equal(t, []advanced.PathElementType{advanced.MoveTo, advanced.LineTo, advanced.LineTo}, zigzag.ElementTypes())

	assert.True(t, mustFind(t, scene, "r").Contains(2, 5))

	t.Run("errors", func(t *testing.T) {
		for _, doc := range []string{
			`<svg><circle id="c" cx="1" cy="1" r="abc"/></svg>`,
			`<svg><polygon id="p" points="0,0 1"/></svg>`,
			`<svg><path id="p" d="M 0 0 S 1 1 2 2"/></svg>`,
			`<svg><rect`,
		} {
			_, err := DecodeSVG(strings.NewReader(doc))
			assert.Error(t, err, doc)
		}
	})
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "tiles.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("shapes: [{name: a, rect: [0, 0, 1, 1]}]\n"), 0o644))
	scene, err := LoadScene(yamlFile)
	require.NoError(t, err)
	assert.Equal(t, "tiles", scene.Name)
	assert.Equal(t, []string{"a"}, sceneNames(scene))

	svgFile := filepath.Join(dir, "dots.SVG")
	require.NoError(t, os.WriteFile(svgFile, []byte(`<svg id="named"><circle id="c" cx="1" cy="1" r="1"/></svg>`), 0o644))
	scene, err = LoadScene(svgFile)
	require.NoError(t, err)
	assert.Equal(t, "named", scene.Name)

	ptsFile := filepath.Join(dir, "tri.pts")
	require.NoError(t, os.WriteFile(ptsFile, []byte("0 0\n4 0\n0 4\n"), 0o644))
	scene, err = LoadScene(ptsFile)
	require.NoError(t, err)
	assert.Equal(t, "tri", scene.Name)
	assert.True(t, mustFind(t, scene, "path-0").Contains(1, 1))

	_, err = LoadScene(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badFile := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badFile, []byte("flatness: -2\n"), 0o644))
	_, err = LoadScene(badFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading "+badFile)
}
