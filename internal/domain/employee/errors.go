package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("no duty records found for employee")
)
