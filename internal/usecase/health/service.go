// Package health builds the best-effort diagnostics report. It is purely
// observational: store failures are folded into the payload as truncated
// error strings, never propagated.
package health

import (
	"context"
	"os"
)

// maxCollections caps the collection names included in the report.
const maxCollections = 10

// maxErrLen caps embedded error strings.
const maxErrLen = 50

// Report is the diagnostics payload.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Service assembles diagnostics reports.
type Service struct {
	store StoreIntrospector
}

// New creates a health service. store may be nil when the process started
// without a configured store.
func New(store StoreIntrospector) *Service {
	return &Service{store: store}
}

// Check builds the report. It never returns an error.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
		DatabaseURL:      envStatus("DATABASE_URL"),
		DatabaseName:     envStatus("DATABASE_NAME"),
	}

	if s.store == nil {
		return report
	}

	if err := s.store.Ping(ctx); err != nil {
		report.Database = "error: " + truncate(err.Error(), maxErrLen)
		return report
	}
	report.Database = "available"
	report.ConnectionStatus = "connected"

	names, err := s.store.ListCollections(ctx, maxCollections)
	if err != nil {
		report.Database = "connected but error: " + truncate(err.Error(), maxErrLen)
		return report
	}
	report.Database = "connected and working"
	if names != nil {
		report.Collections = names
	}
	return report
}

func envStatus(name string) string {
	if os.Getenv(name) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
