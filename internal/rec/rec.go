// Package rec turns recovered panics into ordinary error returns.
package rec

import (
	"fmt"
	"runtime/debug"
)

// toError formats a recovered panic value. It must not call recover
// itself: recover only works when called directly by the deferred
// function, so Error and Wrap own that call.
func toError(r any) error {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	return fmt.Errorf("recovered panic: %w\n%s", err, debug.Stack())
}

// Error assigns a recovered panic to the named error return. Deferred at
// the top of a function, it converts a panic from anywhere below into an
// ordinary error.
func Error(err *error) {
	if r := recover(); r != nil {
		*err = toError(r)
	}
}

// Wrap is Error with context: a recovered panic, or an error already set,
// is wrapped with the given format. The panic or previous error is appended
// to the format arguments.
func Wrap(err *error, format string, a ...any) {
	if r := recover(); r != nil {
		*err = fmt.Errorf(format, append(a, toError(r))...)
	} else if *err != nil {
		*err = fmt.Errorf(format, append(a, *err)...)
	}
}
