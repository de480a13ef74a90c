package health

import "context"

// StoreIntrospector exposes the store operations the diagnostics report
// needs: connectivity and collection listing.
type StoreIntrospector interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context, limit int) ([]string, error)
}
