// Two dimensional shapes with exact containment, distance and intersection
// tests.
//
// Every test reduces to counting how many times a shape, or a ray cast from a
// point, crosses the boundary of another shape. Segments, rectangles,
// ellipses and circles are answered in closed form. Paths, which may hold
// quadratic and cubic curves, are walked element by element and flattened on
// the fly.
//
// The functions of this package recover the kernel's internal errors (for
// example a path that doesn't start with a moveto) and return them. Use the
// advanced package directly for the raw crossing counts.
package geom2d

import "github.com/osuushi/geom2d/advanced"

type Point = advanced.Point
type Vector = advanced.Vector
type Shape = advanced.Shape
type Segment = advanced.Segment
type Rectangle = advanced.Rectangle
type Ellipse = advanced.Ellipse
type Circle = advanced.Circle
type Path = advanced.Path
type PathIterator = advanced.PathIterator
type WindingRule = advanced.WindingRule
type Crossings = advanced.Crossings

const (
	NonZero = advanced.NonZero
	EvenOdd = advanced.EvenOdd
)

func recoverInto(err *error) {
	if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

// Contains reports whether the shape contains the point.
func Contains(shape Shape, p Point) (result bool, err error) {
	defer recoverInto(&err)
	return shape.Contains(p.X, p.Y), nil
}

// Intersects reports whether the two shapes share at least one point.
func Intersects(a, b Shape) (result bool, err error) {
	defer recoverInto(&err)
	return advanced.Intersects(a, b), nil
}

// Distance is the Euclidean distance from the point to the shape. It is zero
// for points inside the shape.
func Distance(shape Shape, p Point) (result float64, err error) {
	defer recoverInto(&err)
	return shape.Distance(p), nil
}

// ClosestPoint returns the point of the shape closest to p.
func ClosestPoint(shape Shape, p Point) (result Point, err error) {
	defer recoverInto(&err)
	return shape.ClosestPointTo(p), nil
}

// PathContains tests a point against an arbitrary path definition under the
// given winding rule. Curves are flattened with the default flatness.
func PathContains(it PathIterator, rule WindingRule, p Point) (result bool, err error) {
	defer recoverInto(&err)
	c := advanced.PathCrossingsFromPoint(advanced.NewFlatteningIterator(it, 0), p.X, p.Y, false, true)
	return rule.Inside(c), nil
}

// PathCrossings counts the signed crossings between the path and the ray cast
// from p toward +x.
func PathCrossings(it PathIterator, p Point) (result Crossings, err error) {
	defer recoverInto(&err)
	return advanced.PathCrossingsFromPoint(advanced.NewFlatteningIterator(it, 0), p.X, p.Y, true, false), nil
}
