package health

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockStore implements StoreIntrospector for tests.
type mockStore struct {
	pingErr error
	listFn  func(ctx context.Context, limit int) ([]string, error)
}

func (m *mockStore) Ping(_ context.Context) error { return m.pingErr }

func (m *mockStore) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return []string{}, nil
}

func TestCheck_NoStore(t *testing.T) {
	svc := New(nil)

	report := svc.Check(context.Background())
	if report.Backend != "running" {
		t.Errorf("backend = %q, want running", report.Backend)
	}
	if report.Database != "not available" {
		t.Errorf("database = %q, want not available", report.Database)
	}
	if report.ConnectionStatus != "not connected" {
		t.Errorf("connection_status = %q", report.ConnectionStatus)
	}
	if report.Collections == nil || len(report.Collections) != 0 {
		t.Errorf("collections should be an empty slice, got %v", report.Collections)
	}
}

func TestCheck_Connected(t *testing.T) {
	store := &mockStore{
		listFn: func(_ context.Context, limit int) ([]string, error) {
			if limit != 10 {
				t.Errorf("expected collection cap of 10, got %d", limit)
			}
			return []string{"ipad"}, nil
		},
	}
	svc := New(store)

	report := svc.Check(context.Background())
	if report.Database != "connected and working" {
		t.Errorf("database = %q", report.Database)
	}
	if report.ConnectionStatus != "connected" {
		t.Errorf("connection_status = %q", report.ConnectionStatus)
	}
	if len(report.Collections) != 1 || report.Collections[0] != "ipad" {
		t.Errorf("collections = %v", report.Collections)
	}
}

func TestCheck_PingFailureIsReportedNotPropagated(t *testing.T) {
	store := &mockStore{pingErr: errors.New("dial tcp 10.0.0.1:27017: connect: connection refused and then some very long driver detail")}
	svc := New(store)

	report := svc.Check(context.Background())
	if !strings.HasPrefix(report.Database, "error: ") {
		t.Errorf("database = %q, want error prefix", report.Database)
	}
	embedded := strings.TrimPrefix(report.Database, "error: ")
	if len([]rune(embedded)) > 50 {
		t.Errorf("embedded error not truncated to 50 runes: %q", embedded)
	}
	if report.ConnectionStatus != "not connected" {
		t.Errorf("connection_status = %q", report.ConnectionStatus)
	}
}

func TestCheck_ListFailureKeepsConnectedStatus(t *testing.T) {
	store := &mockStore{
		listFn: func(_ context.Context, _ int) ([]string, error) {
			return nil, errors.New("listCollections not authorized")
		},
	}
	svc := New(store)

	report := svc.Check(context.Background())
	if !strings.HasPrefix(report.Database, "connected but error: ") {
		t.Errorf("database = %q", report.Database)
	}
	if report.ConnectionStatus != "connected" {
		t.Errorf("connection_status = %q", report.ConnectionStatus)
	}
}

func TestCheck_EnvStatus(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "")

	report := New(nil).Check(context.Background())
	if report.DatabaseURL != "set" {
		t.Errorf("database_url = %q, want set", report.DatabaseURL)
	}
	if report.DatabaseName != "not set" {
		t.Errorf("database_name = %q, want not set", report.DatabaseName)
	}
}
