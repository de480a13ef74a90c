// Package device persists catalog records through the db.Store gateway.
package device

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/padex/internal/db"
	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
	domdev "github.com/kailas-cloud/padex/internal/domain/device"
)

// Repository is a domain-native device repository over a document store.
type Repository struct {
	store      db.Store
	collection string
}

// New creates a device repository bound to one collection.
func New(store db.Store, collection string) *Repository {
	if collection == "" {
		collection = "ipad"
	}
	return &Repository{store: store, collection: collection}
}

// List returns devices matching the filter in store-native order.
func (r *Repository) List(ctx context.Context, f filter.Expression) ([]domdev.Device, error) {
	docs, err := r.store.Find(ctx, r.collection, f)
	if err != nil {
		return nil, fmt.Errorf("find devices: %w", err)
	}

	devices := make([]domdev.Device, 0, len(docs))
	for _, doc := range docs {
		dev, err := fromDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("decode device %s: %w", doc.ID, err)
		}
		devices = append(devices, dev)
	}
	return devices, nil
}

// Get returns a single device by identifier.
func (r *Repository) Get(ctx context.Context, id string) (domdev.Device, error) {
	doc, err := r.store.FindByID(ctx, r.collection, id)
	if err != nil {
		return domdev.Device{}, fmt.Errorf("get device: %w", err)
	}

	dev, err := fromDocument(doc)
	if err != nil {
		return domdev.Device{}, fmt.Errorf("decode device %s: %w", doc.ID, err)
	}
	return dev, nil
}

// Insert stores a new device and returns the store-assigned identifier.
func (r *Repository) Insert(ctx context.Context, dev *domdev.Device) (string, error) {
	fields, err := toFields(dev)
	if err != nil {
		return "", fmt.Errorf("encode device: %w", err)
	}

	id, err := r.store.Insert(ctx, r.collection, fields)
	if err != nil {
		return "", fmt.Errorf("insert device: %w", err)
	}
	return id, nil
}

// Count returns the number of devices in the collection.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	n, err := r.store.Count(ctx, r.collection)
	if err != nil {
		return 0, fmt.Errorf("count devices: %w", err)
	}
	return n, nil
}
