package advanced

import "github.com/pkg/errors"

// A broken invariant means the boundary store is already corrupt, so there is
// nothing useful a caller could do with a returned error halfway through a
// cut. Instead, we panic with an *InvariantError, and the public API recovers
// to convert it to an error.

type InvariantError struct {
	cause error
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.cause.Error()
}

func (e *InvariantError) Unwrap() error {
	return e.cause
}

func invariantErrorf(format string, args ...interface{}) *InvariantError {
	return &InvariantError{errors.Errorf(format, args...)}
}

// Panic with an InvariantError.
func fatalf(format string, args ...interface{}) {
	panic(invariantErrorf(format, args...))
}

// Convert a recovered invariant panic into an error. Anything else is a real
// panic, and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if invariantError, ok := r.(*InvariantError); ok {
			return invariantError
		}
		panic(r)
	}
	return nil
}
