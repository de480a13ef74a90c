package catalog

import (
	"context"

	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
	domdev "github.com/kailas-cloud/padex/internal/domain/device"
)

// mockRepo implements Repository for tests.
type mockRepo struct {
	listFn   func(ctx context.Context, f filter.Expression) ([]domdev.Device, error)
	getFn    func(ctx context.Context, id string) (domdev.Device, error)
	insertFn func(ctx context.Context, dev *domdev.Device) (string, error)
	countFn  func(ctx context.Context) (int64, error)

	inserted []domdev.Device
}

func (m *mockRepo) List(ctx context.Context, f filter.Expression) ([]domdev.Device, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return []domdev.Device{}, nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (domdev.Device, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domdev.Device{}, nil
}

func (m *mockRepo) Insert(ctx context.Context, dev *domdev.Device) (string, error) {
	m.inserted = append(m.inserted, *dev)
	if m.insertFn != nil {
		return m.insertFn(ctx, dev)
	}
	return "generated-id", nil
}

func (m *mockRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func boolPtrT(b bool) *bool { return &b }

func floatPtrT(f float64) *float64 { return &f }

func testDevice(name, chip string) domdev.Device {
	return domdev.Device{
		Name:           name,
		Generation:     chip + " (2024)",
		Chip:           chip,
		DisplaySize:    11.0,
		StorageOptions: []int{256, 512},
		BasePrice:      999.0,
		Colors:         []string{"Silver"},
		SupportsPencil: "Apple Pencil Pro",
		Cellular:       boolPtrT(true),
		ImageURL:       "https://example.com/" + name + ".png",
	}
}
