package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/mock-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// InvalidRequestMessage is sent when binding fails for a reason the payload
// did not describe itself.
const InvalidRequestMessage = "invalid request parameters"

// Validatable is implemented by request payloads. Validate usually runs
// validator.Struct on the receiver.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a rule that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds path, query and body data into payload, then
// validates it. payload must be a pointer.
//
// A field type implementing echo.BindUnmarshaler may return an *errs.HTTPError
// from UnmarshalParam; that error reaches the client unchanged.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return errs.NewBadRequestError(InvalidRequestMessage)
	}

	if err := payload.Validate(); err != nil {
		fieldErrors := extractValidationErrors(err)
		if len(fieldErrors) == 0 {
			return errs.ValidationError(err)
		}

		summary := strings.Join(lo.Map(fieldErrors, func(fe errs.FieldError, _ int) string {
			return fe.Field + " " + fe.Error
		}), "; ")

		return errs.ValidationError(errors.New(summary)).WithFieldErrors(fieldErrors)
	}

	return nil
}

func extractValidationErrors(err error) []errs.FieldError {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		return lo.Map(custom, func(ce CustomValidationError, _ int) errs.FieldError {
			return errs.FieldError{Field: ce.Field, Error: ce.Message}
		})
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	return lo.Map(validationErrors, func(fe validator.FieldError, _ int) errs.FieldError {
		return errs.FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: describe(fe),
		}
	})
}

func describe(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	}

	if fe.Param() != "" {
		return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
