package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "count", "error": "must be at least 0" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "count").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the recognized application error.
//
// It is a plain {status, message} value. The six constructors in types.go are
// the only intended way to build one.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), used in logs.
//   - Message: human-friendly message, sent to the client.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors, logged but folded into Message for clients.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It only compares the type, not Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// WithFieldErrors returns a copy of this HTTPError carrying field errors.
func (e *HTTPError) WithFieldErrors(fieldErrors []FieldError) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.Status,
		Errors:  fieldErrors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
