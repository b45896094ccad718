// Package dto holds the request payloads bound by the handlers.
package dto

import (
	"strconv"

	"github.com/deppfellow/mock-api/internal/errs"
	"github.com/go-playground/validator/v10"
)

const InvalidCountMessage = "invalid count: must be a whole number"

var validate = validator.New()

// Count is a batch size taken from the path. It only accepts base 10
// integers; anything else fails binding with a 400.
type Count int

// UnmarshalParam implements echo.BindUnmarshaler.
func (n *Count) UnmarshalParam(param string) error {
	v, err := strconv.Atoi(param)
	if err != nil {
		return errs.NewBadRequestError(InvalidCountMessage)
	}

	*n = Count(v)
	return nil
}

// ListRequest is the payload of GET /api/<collection>/:count.
type ListRequest struct {
	Count Count `param:"count" validate:"gte=0"`
}

func (r *ListRequest) Validate() error {
	return validate.Struct(r)
}

func NewListRequest() *ListRequest {
	return &ListRequest{}
}
