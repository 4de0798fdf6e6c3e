package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"motorent-backend/internal/domain"
)

// wrapErr translates driver-level failures into the domain taxonomy so
// callers never branch on lib/pq internals. No rows means not found,
// exceeded deadlines surface as timeouts, anything else is a retryable
// store failure.
func wrapErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, domain.ErrTimeout)
	default:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrDataUnavailable, err)
	}
}
