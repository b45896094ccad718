package errs

import (
	"net/http"
)

// newHTTPError builds an HTTPError whose Code is derived from the status text,
// e.g. 409 -> "CONFLICT".
func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return newHTTPError(http.StatusForbidden, message)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewConflictError creates a 409 Conflict HTTPError.
func NewConflictError(message string) *HTTPError {
	return newHTTPError(http.StatusConflict, message)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Unlike an unrecognized error, the message given here is sent to the client
// as-is, so it must not leak internals.
func NewInternalServerError(message string) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, message)
}

// ValidationError converts a validation failure into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: " + err.Error())
}
