// Package db defines the storage gateway contract shared by all document
// store backends.
package db

import (
	"context"
	"time"

	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
)

// Document is a store record decoupled from any backend's native types.
// Fields never contains the native identifier; identifier-typed values are
// stringified before the document leaves the gateway.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the document store facade.
type Store interface {
	Pinger

	// Find returns documents matching the filter in store-native order.
	// A zero-match result is an empty slice, not an error.
	Find(ctx context.Context, collection string, f filter.Expression) ([]Document, error)

	// FindByID returns a single document. Malformed identifiers yield
	// domain.ErrInvalidID; missing documents yield domain.ErrNotFound.
	FindByID(ctx context.Context, collection, id string) (Document, error)

	// Insert stores the fields as a new document and returns the
	// store-assigned identifier.
	Insert(ctx context.Context, collection string, fields map[string]any) (string, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int64, error)

	// ListCollections returns up to limit collection names, for diagnostics.
	ListCollections(ctx context.Context, limit int) ([]string, error)

	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
