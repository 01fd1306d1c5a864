package duty

import (
	"errors"
	"fmt"
)

// Duty domain errors
var (
	ErrNoEventFiles = errors.New("no duty log files found")
)

// ParseError reports a row that could not be turned into an Event. It is
// scoped to the offending file and line; a load that hits one produces no
// partial results.
type ParseError struct {
	File  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid %s %q: %v", e.File, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
