package advanced

import "github.com/pkg/errors"

// Malformed paths are detected deep inside the iteration loops. Threading an
// error through every crossing accumulator would bury the arithmetic, so we
// panic instead, and the public API recovers to convert to an error.

// GeometryError is the only panic value HandlePanicRecover converts. Runtime
// errors (nil dereference, bad index) stay panics.
type GeometryError struct {
	cause error
}

func (e *GeometryError) Error() string { return e.cause.Error() }
func (e *GeometryError) Cause() error  { return e.cause }
func (e *GeometryError) Unwrap() error { return e.cause }

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(&GeometryError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(*GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
