package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// Crossings is the result of a crossing-number computation: either a signed
// count of boundary crossings along a ray cast toward +X, or the knowledge that
// the query actually touches the boundary, in which case counting is
// meaningless and every accumulation stops.
//
// The zero value is a count of zero.
type Crossings struct {
	n          int
	intersects bool
}

func Count(n int) Crossings {
	return Crossings{n: n}
}

func Intersecting() Crossings {
	return Crossings{intersects: true}
}

func (c Crossings) IsIntersecting() bool {
	return c.intersects
}

// N returns the count. ok is false when the result is intersecting, in which
// case there is no count.
func (c Crossings) N() (n int, ok bool) {
	if c.intersects {
		return 0, false
	}
	return c.n, true
}

// Add offsets the count. An intersecting result absorbs everything.
func (c Crossings) Add(delta int) Crossings {
	if c.intersects {
		return c
	}
	return Crossings{n: c.n + delta}
}

// Plus sums two results.
func (c Crossings) Plus(other Crossings) Crossings {
	if c.intersects || other.intersects {
		return Intersecting()
	}
	return Crossings{n: c.n + other.n}
}

func (c Crossings) IsZero() bool {
	return !c.intersects && c.n == 0
}

func (c Crossings) String() string {
	if c.intersects {
		return "intersects"
	}
	return fmt.Sprintf("%d", c.n)
}

// Colored renders the result for terminals: yellow when intersecting, green for
// a nonzero count, and plain gray for zero.
func (c Crossings) Colored() aurora.Value {
	switch {
	case c.intersects:
		return aurora.Yellow(c.String())
	case c.n != 0:
		return aurora.Green(c.String())
	default:
		return aurora.Gray(12, c.String())
	}
}

// WindingRule converts a crossing count into an inside/outside decision.
type WindingRule int

const (
	NonZero WindingRule = iota
	EvenOdd
)

func (r WindingRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	}
	return fmt.Sprintf("WindingRule(%d)", int(r))
}

// ParseWindingRule accepts the names returned by String.
func ParseWindingRule(s string) (WindingRule, bool) {
	switch s {
	case "nonzero", "non-zero", "":
		return NonZero, true
	case "evenodd", "even-odd":
		return EvenOdd, true
	}
	return NonZero, false
}

// Inside decides point containment from the crossings of a ray cast from the
// point. A point exactly on the boundary is inside under both rules.
func (r WindingRule) Inside(c Crossings) bool {
	if c.intersects {
		return true
	}
	if r == EvenOdd {
		return c.n&1 != 0
	}
	return c.n != 0
}

// Overlaps decides shape/path overlap from the crossings of a shape's shadow.
// A shadow crosses the path boundary twice for each winding under even-odd, so
// that rule tests bit 1 instead of bit 0.
func (r WindingRule) Overlaps(c Crossings) bool {
	if c.intersects {
		return true
	}
	if r == EvenOdd {
		return c.n&2 != 0
	}
	return c.n != 0
}

// Encloses is Overlaps without the intersecting case: a shape whose shadow
// touches the boundary is not enclosed.
func (r WindingRule) Encloses(c Crossings) bool {
	if c.intersects {
		return false
	}
	return r.Overlaps(c)
}
