// Package chi wires the catalog API onto a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/padex/internal/domain"
	"github.com/kailas-cloud/padex/internal/logger"
	cataloguc "github.com/kailas-cloud/padex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/padex/internal/usecase/health"
)

// ErrorCode identifies an API error class on the wire.
type ErrorCode string

const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeInvalidID          ErrorCode = "invalid_id"
	CodeNotFound           ErrorCode = "not_found"
	CodeValidationFailed   ErrorCode = "validation_failed"
	CodeStoreNotConfigured ErrorCode = "database_not_configured"
	CodeStoreUnavailable   ErrorCode = "database_unavailable"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes catalog and diagnostics operations over HTTP. catalog is
// nil when the process started without a configured store; affected routes
// then answer with a store-not-configured error.
type Server struct {
	catalog       *cataloguc.Service
	health        *healthuc.Service
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(catalog *cataloguc.Service, health *healthuc.Service) *Server {
	s := &Server{
		catalog: catalog,
		health:  health,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrInvalidID, http.StatusBadRequest, CodeInvalidID),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusInternalServerError, CodeStoreUnavailable),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Greeting)
	r.Get("/api/hello", s.GreetingAPI)
	r.Get("/test", s.Diagnostics)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/ipads", s.ListDevices)
	r.Post("/api/ipads", s.CreateDevice)
	r.Post("/api/ipads/compare", s.CompareDevices)
	r.Post("/api/ipads/seed", s.SeedDevices)
}

// requireCatalog guards store-backed routes when no store is configured.
func (s *Server) requireCatalog(w http.ResponseWriter) bool {
	if s.catalog != nil {
		return true
	}
	writeError(w, http.StatusInternalServerError, CodeStoreNotConfigured, "Database not configured")
	return false
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err, err.Error()) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// validationHandler maps ValidationError to 422 with per-field details.
func validationHandler(w http.ResponseWriter, err error, _ string) bool {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	type fieldError struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	}
	details := make([]fieldError, len(verr.Fields))
	for i, f := range verr.Fields {
		details[i] = fieldError{Field: f.Field, Reason: f.Reason}
	}

	writeJSON(w, http.StatusUnprocessableEntity, struct {
		Code    ErrorCode    `json:"code"`
		Message string       `json:"message"`
		Details []fieldError `json:"details"`
	}{CodeValidationFailed, "validation failed", details})
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
