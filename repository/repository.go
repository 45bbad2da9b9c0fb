package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// queryTimeout bounds every store access; a handler whose database call
// stalls fails instead of hanging the request.
const queryTimeout = 5 * time.Second

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned on unique-constraint violations.
	ErrDuplicate = errors.New("duplicate record")
)

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// translate maps gorm errors onto the repository error kinds so handlers
// never switch on raw driver codes.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
