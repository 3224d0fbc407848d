package postgres

import (
	"errors"

	"github.com/lib/pq"

	"eventsignup/internal/domain"
)

// mapConstraintErr translates postgres integrity violations (class 23) to
// domain.ErrConstraint so callers never see driver error details. Other
// errors pass through unchanged.
func mapConstraintErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return domain.ErrConstraint
	}
	return err
}
