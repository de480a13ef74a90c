// Package catalog implements the device catalog operations: list with
// filters, create, seed, and the two-record comparison heuristic.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/padex/internal/domain"
	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
	domdev "github.com/kailas-cloud/padex/internal/domain/device"
)

// Service handles catalog operations over a device repository.
type Service struct {
	repo Repository
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query holds the optional list filters. Nil/empty members impose no
// constraint.
type Query struct {
	Q          string
	Chip       string
	MinDisplay *float64
	MaxDisplay *float64
}

// List returns devices matching the query. Zero matches is a success with
// an empty slice. An inverted display range matches nothing.
func (s *Service) List(ctx context.Context, q Query) ([]domdev.Device, error) {
	f := filter.NewBuilder().
		Substring("name", q.Q).
		Equals("chip", q.Chip).
		Range("display_size", q.MinDisplay, q.MaxDisplay).
		Build()

	devices, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return devices, nil
}

// Create validates and inserts a record, returning the assigned id.
// No duplicate detection is performed.
func (s *Service) Create(ctx context.Context, dev *domdev.Device) (string, error) {
	if err := dev.Validate(); err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, dev)
	if err != nil {
		return "", fmt.Errorf("create device: %w", err)
	}
	return id, nil
}

// Scores carries the per-record comparability scores.
type Scores struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Comparison is the result of scoring two records against each other.
type Comparison struct {
	A           domdev.Device `json:"a"`
	B           domdev.Device `json:"b"`
	Scores      Scores        `json:"scores"`
	Recommended string        `json:"recommended"`
}

// Compare fetches both records, scores them, and recommends the higher.
// Ties recommend "A"; this mirrors the catalog's original behavior and is
// intentional.
func (s *Service) Compare(ctx context.Context, aID, bID string) (Comparison, error) {
	a, errA := s.repo.Get(ctx, aID)
	b, errB := s.repo.Get(ctx, bID)

	// Both identifiers are checked before the missing-record verdict: a
	// malformed id on either side outranks a missing record.
	switch {
	case errors.Is(errA, domain.ErrInvalidID):
		return Comparison{}, fmt.Errorf("fetch record a: %w", errA)
	case errors.Is(errB, domain.ErrInvalidID):
		return Comparison{}, fmt.Errorf("fetch record b: %w", errB)
	case errA != nil:
		return Comparison{}, fmt.Errorf("fetch record a: %w", errA)
	case errB != nil:
		return Comparison{}, fmt.Errorf("fetch record b: %w", errB)
	}

	cmp := Comparison{
		A:      a,
		B:      b,
		Scores: Scores{A: domdev.Score(&a), B: domdev.Score(&b)},
	}
	if cmp.Scores.A >= cmp.Scores.B {
		cmp.Recommended = "A"
	} else {
		cmp.Recommended = "B"
	}
	return cmp, nil
}

// Seed inserts the demo fixture if and only if the collection is empty.
// Returns the number of records inserted (0 or the full fixture size).
func (s *Service) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count devices: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for i := range demoDevices {
		if _, err := s.repo.Insert(ctx, &demoDevices[i]); err != nil {
			return inserted, fmt.Errorf("seed device %q: %w", demoDevices[i].Name, err)
		}
		inserted++
	}
	return inserted, nil
}
