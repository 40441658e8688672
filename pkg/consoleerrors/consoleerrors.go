// Package consoleerrors provides the internal error type used for operator diagnostics.
package consoleerrors

import "fmt"

// InternalError carries the originating component, call site and wrapped cause.
type InternalError struct {
	file          string
	Function      string
	Call          string
	Message       string
	InnerTrace    string
	OriginalError error
}

// CreateConsoleError creates a new InternalError rooted at the given component name.
func CreateConsoleError(file string) InternalError {
	return InternalError{file: file}
}

// Error -.
func (e InternalError) Error() string {
	return fmt.Sprintf("%s - %s - %s: %s", e.file, e.Function, e.Call, e.Message)
}

// Wrap records where the error occurred and the underlying cause.
func (e *InternalError) Wrap(call, function string, err error) error {
	e.Function = function
	e.Call = call
	e.OriginalError = err

	if err != nil {
		e.InnerTrace = err.Error()
	}

	return e
}

// Unwrap -.
func (e InternalError) Unwrap() error {
	return e.OriginalError
}
