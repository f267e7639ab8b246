package internal

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/geom2d/advanced"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It collects the basic shapes and paths in
// document order and ignores transforms, styles and units. Coordinates are
// kept as written, so the y axis points down like in the SVG.

// DecodeSVG reads the shapes of an SVG document. Each shape is named by its id
// attribute when it has one.
func DecodeSVG(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	scene := &Scene{Name: root.Attributes["id"], WindingRule: advanced.NonZero}
	if err := scene.addSVGElement(root); err != nil {
		return nil, err
	}
	return scene, nil
}

func (s *Scene) addSVGElement(el *svgparser.Element) error {
	shape, err := svgShape(el)
	if err != nil {
		return errors.Wrapf(err, "<%s id=%q>", el.Name, el.Attributes["id"])
	}
	if shape != nil {
		s.add(el.Attributes["id"], shape)
	}
	for _, child := range el.Children {
		if err := s.addSVGElement(child); err != nil {
			return err
		}
	}
	return nil
}

// Returns nil for elements that are not shapes.
func svgShape(el *svgparser.Element) (advanced.Shape, error) {
	attrs := svgAttributes{el.Attributes, nil}
	rule := advanced.NonZero
	if el.Attributes["fill-rule"] == "evenodd" {
		rule = advanced.EvenOdd
	}

	var shape advanced.Shape
	switch el.Name {
	case "line":
		shape = advanced.NewSegment(attrs.get("x1"), attrs.get("y1"), attrs.get("x2"), attrs.get("y2"))
	case "rect":
		shape = advanced.NewRectangle(attrs.get("x"), attrs.get("y"), attrs.get("width"), attrs.get("height"))
	case "circle":
		shape = advanced.NewCircle(attrs.get("cx"), attrs.get("cy"), attrs.get("r"))
	case "ellipse":
		cx, cy := attrs.get("cx"), attrs.get("cy")
		rx, ry := attrs.get("rx"), attrs.get("ry")
		shape = advanced.NewEllipse(cx-rx, cy-ry, 2*rx, 2*ry)
	case "polygon", "polyline":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		if el.Name == "polygon" {
			shape = advanced.NewPolygon(points...).Path(rule)
		} else {
			path := advanced.NewPath(rule)
			for i, p := range points {
				if i == 0 {
					path.MoveTo(p.X, p.Y)
				} else {
					path.LineTo(p.X, p.Y)
				}
			}
			shape = path
		}
	case "path":
		path, err := ParsePathData(el.Attributes["d"], rule)
		if err != nil {
			return nil, err
		}
		shape = path
	default:
		return nil, nil
	}
	return shape, attrs.err
}

// Collects the first numeric attribute error so that shapes read straight
// through. Missing attributes are zero, as in SVG.
type svgAttributes struct {
	values map[string]string
	err    error
}

func (a *svgAttributes) get(name string) float64 {
	raw, ok := a.values[name]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && a.err == nil {
		a.err = errors.Wrapf(err, "attribute %s", name)
	}
	return v
}

func parsePoints(s string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}
