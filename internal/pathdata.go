package internal

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/osuushi/geom2d/advanced"
	"github.com/pkg/errors"
)

// This reads the subset of SVG path data the kernel can represent: M, L, H, V,
// Q, C and Z, absolute or relative, with implicit repetition of the previous
// command. Arcs and smooth curves are rejected.

type pathDataScanner struct {
	data string
	pos  int
}

func (s *pathDataScanner) skipSeparators() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c != ',' && !unicode.IsSpace(rune(c)) {
			return
		}
		s.pos++
	}
}

func (s *pathDataScanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.data)
}

// Returns the next command letter, if the next token is one.
func (s *pathDataScanner) command() (byte, bool) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return 0, false
	}
	c := s.data[s.pos]
	if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
		if c == 'e' || c == 'E' {
			return 0, false
		}
		s.pos++
		return c, true
	}
	return 0, false
}

func (s *pathDataScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
		s.pos++
	}
	seenDot := false
scan:
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot:
			seenDot = true
		case (c == 'e' || c == 'E') && s.pos > start:
			s.pos++
			if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
				s.pos++
			}
			continue
		default:
			break scan
		}
		s.pos++
	}
	if start == s.pos {
		return 0, errors.Errorf("expected a number at offset %d", start)
	}
	v, err := strconv.ParseFloat(s.data[start:s.pos], 64)
	return v, errors.Wrapf(err, "invalid number at offset %d", start)
}

func (s *pathDataScanner) numbers(n int) ([]float64, error) {
	values := make([]float64, n)
	for i := range values {
		v, err := s.number()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// ParsePathData builds a path from SVG path data.
func ParsePathData(data string, rule advanced.WindingRule) (path *advanced.Path, err error) {
	// A drawing command before any moveto panics inside the path.
	defer func() {
		if recovered := advanced.HandlePanicRecover(recover()); recovered != nil {
			path, err = nil, errors.Wrapf(recovered, "invalid path data %q", data)
		}
	}()

	path = advanced.NewPath(rule)
	s := &pathDataScanner{data: strings.TrimSpace(data)}
	var current, start advanced.Point
	var cmd byte
	for !s.done() {
		if c, ok := s.command(); ok {
			cmd = c
		} else if cmd == 0 {
			return nil, errors.Errorf("expected a command at offset %d of %q", s.pos, data)
		}

		relative := cmd >= 'a' && cmd <= 'z'
		abs := func(x, y float64) (float64, float64) {
			if relative {
				return current.X + x, current.Y + y
			}
			return x, y
		}

		switch unicode.ToUpper(rune(cmd)) {
		case 'M':
			v, err := s.numbers(2)
			if err != nil {
				return nil, err
			}
			x, y := abs(v[0], v[1])
			path.MoveTo(x, y)
			current = advanced.Point{X: x, Y: y}
			start = current
			// Extra coordinate pairs after a moveto are linetos.
			if relative {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			v, err := s.numbers(2)
			if err != nil {
				return nil, err
			}
			x, y := abs(v[0], v[1])
			path.LineTo(x, y)
			current = advanced.Point{X: x, Y: y}
		case 'H':
			v, err := s.numbers(1)
			if err != nil {
				return nil, err
			}
			x := v[0]
			if relative {
				x += current.X
			}
			path.LineTo(x, current.Y)
			current.X = x
		case 'V':
			v, err := s.numbers(1)
			if err != nil {
				return nil, err
			}
			y := v[0]
			if relative {
				y += current.Y
			}
			path.LineTo(current.X, y)
			current.Y = y
		case 'Q':
			v, err := s.numbers(4)
			if err != nil {
				return nil, err
			}
			cx, cy := abs(v[0], v[1])
			x, y := abs(v[2], v[3])
			path.QuadTo(cx, cy, x, y)
			current = advanced.Point{X: x, Y: y}
		case 'C':
			v, err := s.numbers(6)
			if err != nil {
				return nil, err
			}
			c1x, c1y := abs(v[0], v[1])
			c2x, c2y := abs(v[2], v[3])
			x, y := abs(v[4], v[5])
			path.CurveTo(c1x, c1y, c2x, c2y, x, y)
			current = advanced.Point{X: x, Y: y}
		case 'Z':
			path.ClosePath()
			current = start
			// Z takes no arguments, so it cannot repeat.
			cmd = 0
		default:
			return nil, errors.Errorf("unsupported path command %q", cmd)
		}
	}
	return path, nil
}
