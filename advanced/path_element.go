package advanced

import "fmt"

type PathElementType int

const (
	MoveTo PathElementType = iota
	LineTo
	QuadTo
	CurveTo
	Close
)

func (t PathElementType) String() string {
	switch t {
	case MoveTo:
		return "moveto"
	case LineTo:
		return "lineto"
	case QuadTo:
		return "quadto"
	case CurveTo:
		return "curveto"
	case Close:
		return "close"
	}
	return fmt.Sprintf("PathElementType(%d)", int(t))
}

// Number of coordinates a stored element of this type carries.
func (t PathElementType) coordCount() int {
	switch t {
	case LineTo, MoveTo:
		return 2
	case QuadTo:
		return 4
	case CurveTo:
		return 6
	}
	return 0
}

// PathElement is one step of a path, with both of its ends resolved. For a
// Close element, From is the current point and To is the start of the subpath,
// so Close carries the closing edge. Ctrl1 is set for quads and curves, Ctrl2
// only for curves.
type PathElement struct {
	Type  PathElementType
	From  Point
	Ctrl1 Point
	Ctrl2 Point
	To    Point
}

// IsEmpty is true when the element covers no distance at all.
func (e PathElement) IsEmpty() bool {
	switch e.Type {
	case QuadTo:
		return e.From == e.To && e.From == e.Ctrl1
	case CurveTo:
		return e.From == e.To && e.From == e.Ctrl1 && e.From == e.Ctrl2
	}
	return e.From == e.To
}

// IsDrawable is true for elements that leave ink.
func (e PathElement) IsDrawable() bool {
	return e.Type != MoveTo && !e.IsEmpty()
}

func (e PathElement) String() string {
	switch e.Type {
	case MoveTo:
		return fmt.Sprintf("moveto %v", e.To)
	case QuadTo:
		return fmt.Sprintf("quadto %v %v %v", e.From, e.Ctrl1, e.To)
	case CurveTo:
		return fmt.Sprintf("curveto %v %v %v %v", e.From, e.Ctrl1, e.Ctrl2, e.To)
	}
	return fmt.Sprintf("%v %v %v", e.Type, e.From, e.To)
}

// PathIterator walks the elements of a shape outline. Iteration is lazy and
// finite. Restart rewinds to the first element.
//
//	for it.Next() {
//		element := it.Element()
//		...
//	}
type PathIterator interface {
	Next() bool
	Element() PathElement
	Restart()
	WindingRule() WindingRule
	// IsPolyline is true when the iterator never yields quads or curves.
	IsPolyline() bool
}

// Iterator over a fixed number of elements produced on demand. Shapes build
// their outlines with this, capturing their coordinates by value.
type generatedIterator struct {
	count    int
	index    int
	current  PathElement
	generate func(index int) PathElement
	polyline bool
}

func (it *generatedIterator) Next() bool {
	if it.index >= it.count {
		return false
	}
	it.current = it.generate(it.index)
	it.index++
	return true
}

func (it *generatedIterator) Element() PathElement     { return it.current }
func (it *generatedIterator) Restart()                 { it.index = 0 }
func (it *generatedIterator) WindingRule() WindingRule { return NonZero }
func (it *generatedIterator) IsPolyline() bool         { return it.polyline }

// CollectElements drains the iterator. Mostly useful for tests and debugging.
func CollectElements(it PathIterator) []PathElement {
	var elements []PathElement
	for it.Next() {
		elements = append(elements, it.Element())
	}
	return elements
}
