package typesys

import "fmt"

// Error is a type system configuration error: a required type or member is
// missing from the active backend.  These errors indicate that the backend is
// incompatible with the compiler, not that the markup is wrong, and so they are
// always fatal.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf creates a new type system error
func Errorf(msg string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(msg, args...)}
}

// TypeNotFound creates the error returned by `FindType` for unknown names.
func TypeNotFound(fullName string) *Error {
	return Errorf("type not found: %s", fullName)
}
