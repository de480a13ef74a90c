package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/padex/internal/db"
	"github.com/kailas-cloud/padex/internal/domain"
)

// opErr tags a driver error with the operation name. Connectivity failures
// additionally carry domain.ErrStoreUnavailable so callers can tell a dead
// server apart from a bad query.
func opErr(op string, err error) error {
	if isUnavailable(err) {
		err = fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &db.Error{Op: op, Err: err}
}

func isUnavailable(err error) bool {
	return mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}
