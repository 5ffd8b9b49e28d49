// Package server exposes the pypi client over a small HTTP API.
//
// The server is a stateless pass-through: every request triggers fresh
// registry calls and nothing is cached or stored between requests.
//
// Routes:
//
//	GET /healthz
//	GET /api/v1/users/{username}/packages   profile listing
//	GET /api/v1/users/{username}/details    full aggregation
//	GET /api/v1/packages/{name}             single package detail
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	apperrors "github.com/matzehuels/pypiscope/pkg/errors"
	"github.com/matzehuels/pypiscope/pkg/pypi"
)

// Server handles HTTP requests by delegating to per-request pypi clients.
type Server struct {
	cfg    pypi.Config // base config; Username is taken from the URL
	logger *log.Logger
}

// New creates a Server. The Username field of cfg is ignored; each request
// names its user in the URL path.
func New(cfg pypi.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, logger: logger}
}

// Router builds the chi router with request-ID and logging middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users/{username}/packages", s.handleListPackages)
		r.Get("/users/{username}/details", s.handleUserDetails)
		r.Get("/packages/{name}", s.handlePackageDetail)
	})
	return r
}

// client builds a one-shot pypi client for the named user.
func (s *Server) client(username string) *pypi.Client {
	cfg := s.cfg
	cfg.Username = username
	return pypi.NewClient(cfg)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := apperrors.ValidateUsername(username); err != nil {
		s.writeError(w, r, err)
		return
	}

	packages, err := s.client(username).ListPackages(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, packages)
}

func (s *Server) handleUserDetails(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := apperrors.ValidateUsername(username); err != nil {
		s.writeError(w, r, err)
		return
	}

	details, err := s.client(username).FetchAll(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handlePackageDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	detail, err := s.client("").FetchPackage(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// writeError maps error codes to HTTP statuses. Upstream registry failures
// surface as 502 since this service acts as a gateway to PyPI.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeConfiguration, apperrors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.ErrCodeEmptyResult:
		status = http.StatusNotFound
	case apperrors.ErrCodeFetch, apperrors.ErrCodeParse, apperrors.ErrCodeDecode:
		status = http.StatusBadGateway
	}

	s.logger.Warn("request failed",
		"request_id", RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"err", err,
	)

	writeJSON(w, status, errorResponse{
		Code:  string(apperrors.GetCode(err)),
		Error: apperrors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
