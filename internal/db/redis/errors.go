package redis

import (
	"errors"
	"fmt"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/padex/internal/db"
	"github.com/kailas-cloud/padex/internal/domain"
)

// opErr tags a command error with the operation name. Anything that is not
// a server-side Redis error is a transport failure and additionally carries
// domain.ErrStoreUnavailable. Errors already tagged pass through unchanged.
func opErr(op string, err error) error {
	var tagged *db.Error
	if errors.As(err, &tagged) {
		return err
	}
	if _, ok := rueidis.IsRedisErr(err); !ok {
		err = fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &db.Error{Op: op, Err: err}
}
