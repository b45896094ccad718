package service

import (
	"fmt"

	"github.com/deppfellow/mock-api/internal/errs"
)

// checkCount rejects batch sizes the repositories should never see.
// A zero count is allowed and produces an empty batch.
func checkCount(count, maxCount int) error {
	if count < 0 {
		return errs.NewBadRequestError("count must not be negative")
	}
	if maxCount > 0 && count > maxCount {
		return errs.NewBadRequestError(fmt.Sprintf("count must not exceed %d", maxCount))
	}
	return nil
}
