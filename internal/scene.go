package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/geom2d/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scene is a named list of shapes loaded from a YAML or SVG file.
type Scene struct {
	Name string
	// Rule for paths that don't set their own.
	WindingRule advanced.WindingRule
	// Flatness given to paths that don't set their own, and used by Iterator
	// for the other curved shapes. Zero means the kernel default.
	Flatness float64
	Shapes   []NamedShape
}

type NamedShape struct {
	Name  string
	Shape advanced.Shape
}

// Find returns the shape with the given name.
func (s *Scene) Find(name string) (advanced.Shape, bool) {
	for _, named := range s.Shapes {
		if named.Name == name {
			return named.Shape, true
		}
	}
	return nil, false
}

// All returns the shapes in scene order.
func (s *Scene) All() []advanced.Shape {
	shapes := make([]advanced.Shape, len(s.Shapes))
	for i, named := range s.Shapes {
		shapes[i] = named.Shape
	}
	return shapes
}

// Bounds is the union of the shape bounding boxes.
func (s *Scene) Bounds() advanced.Rectangle {
	var bounds advanced.Rectangle
	for i, named := range s.Shapes {
		if i == 0 {
			bounds = named.Shape.BoundingBox()
		} else {
			bounds.SetUnion(named.Shape.BoundingBox())
		}
	}
	return bounds
}

// Iterator walks a shape with its curves flattened. Paths keep their own
// flatness, other shapes get the scene's.
func (s *Scene) Iterator(shape advanced.Shape) advanced.PathIterator {
	if path, ok := shape.(*advanced.Path); ok {
		return path.FlatPathIterator()
	}
	return advanced.NewFlatteningIterator(shape.PathIterator(), s.Flatness)
}

func (s *Scene) add(name string, shape advanced.Shape) {
	if name == "" {
		name = defaultShapeName(shape, len(s.Shapes))
	}
	s.Shapes = append(s.Shapes, NamedShape{Name: name, Shape: shape})
}

func defaultShapeName(shape advanced.Shape, index int) string {
	kind := "shape"
	switch shape.(type) {
	case *advanced.Segment:
		kind = "segment"
	case *advanced.Rectangle:
		kind = "rect"
	case *advanced.Ellipse:
		kind = "ellipse"
	case *advanced.Circle:
		kind = "circle"
	case *advanced.Path:
		kind = "path"
	}
	return fmt.Sprintf("%s-%d", kind, index)
}

// YAML layout of a scene file.
type sceneFile struct {
	Name     string       `yaml:"name"`
	Winding  string       `yaml:"winding"`
	Flatness float64      `yaml:"flatness"`
	Shapes   []shapeEntry `yaml:"shapes"`
}

// Exactly one geometry field is set per shape.
type shapeEntry struct {
	Name    string      `yaml:"name,omitempty"`
	Segment []float64   `yaml:"segment,omitempty"`
	Rect    []float64   `yaml:"rect,omitempty"`
	Ellipse []float64   `yaml:"ellipse,omitempty"`
	Circle  []float64   `yaml:"circle,omitempty"`
	Polygon [][]float64 `yaml:"polygon,omitempty"`
	Path    string      `yaml:"path,omitempty"`
	Winding string      `yaml:"winding,omitempty"`
	// Only curved paths use it.
	Flatness float64 `yaml:"flatness,omitempty"`
}

func expectCoords(kind string, values []float64, n int) error {
	if len(values) != n {
		return errors.Errorf("%s needs %d numbers, got %d", kind, n, len(values))
	}
	return nil
}

func (entry shapeEntry) build(defaultRule advanced.WindingRule, defaultFlatness float64) (advanced.Shape, error) {
	if entry.Flatness < 0 {
		return nil, errors.Errorf("flatness must not be negative, got %v", entry.Flatness)
	}
	flatness := defaultFlatness
	if entry.Flatness > 0 {
		flatness = entry.Flatness
	}
	rule := defaultRule
	if entry.Winding != "" {
		var ok bool
		if rule, ok = advanced.ParseWindingRule(entry.Winding); !ok {
			return nil, errors.Errorf("unknown winding rule %q", entry.Winding)
		}
	}

	var shapes []advanced.Shape
	if entry.Segment != nil {
		if err := expectCoords("segment", entry.Segment, 4); err != nil {
			return nil, err
		}
		v := entry.Segment
		shapes = append(shapes, advanced.NewSegment(v[0], v[1], v[2], v[3]))
	}
	if entry.Rect != nil {
		if err := expectCoords("rect", entry.Rect, 4); err != nil {
			return nil, err
		}
		v := entry.Rect
		shapes = append(shapes, advanced.NewRectangle(v[0], v[1], v[2], v[3]))
	}
	if entry.Ellipse != nil {
		if err := expectCoords("ellipse", entry.Ellipse, 4); err != nil {
			return nil, err
		}
		v := entry.Ellipse
		shapes = append(shapes, advanced.NewEllipse(v[0], v[1], v[2], v[3]))
	}
	if entry.Circle != nil {
		if err := expectCoords("circle", entry.Circle, 3); err != nil {
			return nil, err
		}
		v := entry.Circle
		shapes = append(shapes, advanced.NewCircle(v[0], v[1], v[2]))
	}
	if entry.Polygon != nil {
		points := make([]advanced.Point, len(entry.Polygon))
		for i, pair := range entry.Polygon {
			if err := expectCoords("polygon vertex", pair, 2); err != nil {
				return nil, err
			}
			points[i] = advanced.Point{X: pair[0], Y: pair[1]}
		}
		shapes = append(shapes, advanced.NewPolygon(points...).Path(rule))
	}
	if entry.Path != "" {
		path, err := ParsePathData(entry.Path, rule)
		if err != nil {
			return nil, err
		}
		path.SetFlatness(flatness)
		shapes = append(shapes, path)
	}

	if len(shapes) != 1 {
		return nil, errors.Errorf("expected exactly one geometry, got %d", len(shapes))
	}
	return shapes[0], nil
}

// DecodeScene reads a YAML scene.
func DecodeScene(r io.Reader) (*Scene, error) {
	var file sceneFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}

	rule, ok := advanced.ParseWindingRule(file.Winding)
	if !ok {
		return nil, errors.Errorf("unknown winding rule %q", file.Winding)
	}
	if file.Flatness < 0 {
		return nil, errors.Errorf("flatness must not be negative, got %v", file.Flatness)
	}
	scene := &Scene{Name: file.Name, WindingRule: rule, Flatness: file.Flatness}
	for i, entry := range file.Shapes {
		shape, err := entry.build(rule, file.Flatness)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d (%q)", i, entry.Name)
		}
		scene.add(entry.Name, shape)
	}
	return scene, nil
}

// LoadScene reads a scene file. SVG files go through the SVG loader, .pts files
// are point lists (see DecodePolygons), anything else is read as YAML.
func LoadScene(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer f.Close()

	var scene *Scene
	switch ext := filepath.Ext(filename); {
	case strings.EqualFold(ext, ".svg"):
		scene, err = DecodeSVG(f)
	case strings.EqualFold(ext, ".pts"):
		scene, err = DecodePolygons(f, advanced.NonZero)
	default:
		scene, err = DecodeScene(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", filename)
	}
	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return scene, nil
}
