package errs

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// InternalServerErrorMessage is the only message a client ever sees for an
// unrecognized error.
const InternalServerErrorMessage = "Internal Server error"

// Response is the JSON body written for every failed request.
type Response struct {
	Error string `json:"error"`
}

// Translate maps any error to the status code and body sent to the client.
//
// Recognized errors (an *HTTPError anywhere in the chain) keep their status
// and message. Echo's own routing errors are normalized first, so an unknown
// route stays a 404 instead of becoming a 500. Everything else is a 500 with
// a fixed message.
func Translate(err error) (int, Response) {
	if httpErr := Recognize(err); httpErr != nil {
		return httpErr.Status, Response{Error: httpErr.Message}
	}

	return http.StatusInternalServerError, Response{Error: InternalServerErrorMessage}
}

// Recognize returns the *HTTPError carried by err, or nil when err is
// unrecognized.
func Recognize(err error) *HTTPError {
	if err == nil {
		return nil
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return NewNotFoundError("Route not found")
		}

		message, ok := echoErr.Message.(string)
		if !ok {
			message = http.StatusText(echoErr.Code)
		}
		return newHTTPError(echoErr.Code, message)
	}

	return nil
}
