package catalog

import (
	"context"

	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
	domdev "github.com/kailas-cloud/padex/internal/domain/device"
)

// Repository defines the storage contract for catalog records.
type Repository interface {
	List(ctx context.Context, f filter.Expression) ([]domdev.Device, error)
	Get(ctx context.Context, id string) (domdev.Device, error)
	Insert(ctx context.Context, dev *domdev.Device) (string, error)
	Count(ctx context.Context) (int64, error)
}
