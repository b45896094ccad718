package dto_test

import (
	"net/http"
	"testing"

	"github.com/deppfellow/mock-api/internal/dto"
	"github.com/deppfellow/mock-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount_UnmarshalParam(t *testing.T) {
	valid := map[string]dto.Count{"0": 0, "5": 5, "-3": -3, "1000": 1000}
	for in, want := range valid {
		var n dto.Count
		require.NoError(t, n.UnmarshalParam(in), in)
		assert.Equal(t, want, n)
	}

	for _, in := range []string{"abc", "", "1.5", "5abc", "99999999999999999999"} {
		var n dto.Count
		err := n.UnmarshalParam(in)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, in)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, dto.InvalidCountMessage, httpErr.Message)
	}
}

func TestListRequest_Validate(t *testing.T) {
	assert.NoError(t, (&dto.ListRequest{Count: 0}).Validate())
	assert.NoError(t, (&dto.ListRequest{Count: 7}).Validate())
	assert.Error(t, (&dto.ListRequest{Count: -1}).Validate())
}
