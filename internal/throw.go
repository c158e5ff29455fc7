package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors up and down every insertion cycle of the hull and
// tetrahedralization builders would add a ton of noise to the code. Instead,
// fatal conditions panic with an error, and each builder's exported entry point
// recovers to convert back to an error.

// Panic with a formatted error.
func Fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with an existing error, typically one of the typed geometry errors.
// The stack is attached so the caller can print where construction gave up.
func Throw(err error) {
	panic(errors.WithStack(err))
}

// Turn a recovered value back into an error. Runtime errors (index out of
// range, nil dereference) and non-error panics are bugs, so they keep
// panicking.
func HandlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if _, ok := r.(runtime.Error); ok {
		panic(r)
	}
	if err, ok := r.(error); ok {
		return err
	}
	panic(r)
}
