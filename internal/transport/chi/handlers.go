package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	domdev "github.com/kailas-cloud/padex/internal/domain/device"
	cataloguc "github.com/kailas-cloud/padex/internal/usecase/catalog"
)

// Greeting handles GET /.
func (s *Server) Greeting(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the padex backend!"})
}

// GreetingAPI handles GET /api/hello.
func (s *Server) GreetingAPI(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

// Diagnostics handles GET /test. Always 200; failures are reported inside
// the payload.
func (s *Server) Diagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.health.Check(r.Context()))
}

// ListDevices handles GET /api/ipads with optional q, chip, min_display
// and max_display query parameters.
func (s *Server) ListDevices(w http.ResponseWriter, r *http.Request) {
	if !s.requireCatalog(w) {
		return
	}

	q := cataloguc.Query{
		Q:    r.URL.Query().Get("q"),
		Chip: r.URL.Query().Get("chip"),
	}

	var err error
	if q.MinDisplay, err = parseDisplayParam(r, "min_display"); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	if q.MaxDisplay, err = parseDisplayParam(r, "max_display"); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	devices, err := s.catalog.List(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

// CreateDevice handles POST /api/ipads.
func (s *Server) CreateDevice(w http.ResponseWriter, r *http.Request) {
	if !s.requireCatalog(w) {
		return
	}

	var dev domdev.Device
	if err := json.NewDecoder(r.Body).Decode(&dev); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	dev.ID = "" // the store assigns identifiers

	id, err := s.catalog.Create(r.Context(), &dev)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// CompareDevices handles POST /api/ipads/compare.
func (s *Server) CompareDevices(w http.ResponseWriter, r *http.Request) {
	if !s.requireCatalog(w) {
		return
	}

	var req struct {
		A string `json:"a"`
		B string `json:"b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cmp, err := s.catalog.Compare(r.Context(), req.A, req.B)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// SeedDevices handles POST /api/ipads/seed.
func (s *Server) SeedDevices(w http.ResponseWriter, r *http.Request) {
	if !s.requireCatalog(w) {
		return
	}

	inserted, err := s.catalog.Seed(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := map[string]any{"inserted": inserted}
	if inserted == 0 {
		resp["message"] = "Catalog already has data"
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseDisplayParam reads an optional non-negative float query parameter.
func parseDisplayParam(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &paramError{name: name, reason: "must be a number"}
	}
	if v < 0 {
		return nil, &paramError{name: name, reason: "must be >= 0"}
	}
	return &v, nil
}

type paramError struct {
	name   string
	reason string
}

func (e *paramError) Error() string { return e.name + " " + e.reason }
