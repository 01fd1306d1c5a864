package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shiftlog/duty-dashboard-go/internal/domain/duty"
	"github.com/shiftlog/duty-dashboard-go/internal/domain/employee"
	"github.com/shiftlog/duty-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A malformed duty log row is reported with its file and line
	var parseErr *duty.ParseError
	if errors.As(err, &parseErr) {
		UnprocessableEntity(w, "Duty log contains a malformed row", map[string]string{
			"file":  parseErr.File,
			"line":  strconv.Itoa(parseErr.Line),
			"field": parseErr.Field,
			"error": parseErr.Err.Error(),
		})
		return
	}

	switch {
	// Duty domain errors
	case errors.Is(err, duty.ErrNoEventFiles):
		NotFound(w, "No duty log files found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found in duty log")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
