package internal

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Both .svg and .yaml files are scenes.

//go:embed fixtures
var fixtures embed.FS

// LoadFixture loads an embedded scene by name.
func LoadFixture(name string) (*Scene, error) {
	for _, ext := range []string{".yaml", ".svg"} {
		f, err := fixtures.Open("fixtures/" + name + ext)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "opening fixture %q", name)
		}
		defer f.Close()

		var scene *Scene
		if ext == ".svg" {
			scene, err = DecodeSVG(f)
		} else {
			scene, err = DecodeScene(f)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "loading fixture %q", name)
		}
		if scene.Name == "" {
			scene.Name = name
		}
		return scene, nil
	}
	return nil, errors.Errorf("no fixture named %q", name)
}

// FixtureNames lists the embedded scenes.
func FixtureNames() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		// The directory is embedded, so this can't happen.
		panic(err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names
}
