package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/geom2d/advanced"
	"github.com/pkg/errors"
)

// DecodePolygons reads newline separated points in the form "x y", with each
// polygon separated by an extra newline. Every polygon becomes a closed path
// under the given rule. Counterclockwise polygons are solid; a clockwise one
// cancels a solid one around it under the nonzero rule.
func DecodePolygons(r io.Reader, rule advanced.WindingRule) (*Scene, error) {
	scene := &Scene{WindingRule: rule}
	var points []advanced.Point
	flush := func() {
		if len(points) > 0 {
			scene.add("", advanced.NewPolygon(points...).Path(rule))
			points = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		// An empty line ends the polygon
		if line == "" {
			flush()
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}
	// Handle trailing polygon if any
	flush()
	return scene, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}
