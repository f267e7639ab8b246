package dbg

import (
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This turns pointers into random readable names, so that shapes in logs and
// debug drawings are easy to tell apart. Names are never released, which is
// fine for the handful of objects a debugging session looks at.

var (
	mu    sync.Mutex
	memo  = make(map[interface{}]string)
	title = cases.Title(language.English)
)

func init() {
	// Names are handed out in order of demand, so they are made random to
	// remind the reader that the same name doesn't refer to the same thing
	// between runs.
	petname.NonDeterministicMode()
}

// Name returns a stable name for obj for the life of the process. Nil pointers
// are named "Ø".
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return "Ø"
		}
	}
	if v := reflect.ValueOf(obj); !v.Type().Comparable() {
		return "Uncomparable"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[obj] = r
	return r
}
