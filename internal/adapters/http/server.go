// Package http exposes the operation registry as a small JSON API with
// prometheus instrumentation.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Showshin/dev-utils-plus/internal/logging"
	"github.com/Showshin/dev-utils-plus/pkg/registry"
)

// Server routes operation requests to the registry.
type Server struct {
	reg     *registry.Registry
	logger  *slog.Logger
	version string

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	metrics  http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithVersion stamps the version reported by /healthz.
func WithVersion(version string) Option {
	return func(s *Server) { s.version = version }
}

// NewHandler creates the HTTP handler for an operation registry.
//
// Routes: GET /healthz, GET /v1/ops, POST /v1/ops/{name}, GET /metrics.
// Each handler owns a private prometheus registry, so any number of handlers
// can coexist in one process.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	s := &Server{
		reg:    reg,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devutils_http_requests_total",
			Help: "Total operation requests served",
		},
		[]string{"op", "status"},
	)
	s.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "devutils_http_request_duration_seconds",
			Help: "Operation execution time",
		},
		[]string{"op"},
	)
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(s.requests, s.duration)
	s.metrics = promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})

	r := chi.NewRouter()
	r.Get("/healthz", s.getHealth)
	r.Get("/v1/ops", s.listOps)
	r.Post("/v1/ops/{name}", s.executeOp)
	r.Handle("/metrics", s.metrics)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getHealth handles the GET /healthz request.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

type opView struct {
	Name    string    `json:"name"`
	Group   string    `json:"group"`
	Summary string    `json:"summary"`
	Args    []argView `json:"args,omitempty"`
}

type argView struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Help     string `json:"help,omitempty"`
}

// listOps handles the GET /v1/ops request.
func (s *Server) listOps(w http.ResponseWriter, r *http.Request) {
	ops := s.reg.List()
	out := make([]opView, 0, len(ops))
	for _, op := range ops {
		view := opView{
			Name:    op.Name,
			Group:   op.Group,
			Summary: op.Summary,
		}
		for _, a := range op.Args {
			view.Args = append(view.Args, argView{
				Name:     a.Name,
				Type:     a.Type,
				Required: a.Required,
				Help:     a.Help,
			})
		}
		out = append(out, view)
	}
	s.writeJSON(w, http.StatusOK, out)
}

// executeOp handles the POST /v1/ops/{name} request. The JSON body supplies
// the operation arguments; an empty body means no arguments.
func (s *Server) executeOp(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, ok := s.reg.Get(name); !ok {
		s.count(name, http.StatusNotFound)
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown operation %q", name))
		return
	}

	args := map[string]any{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			s.logger.Warn("invalid request body", "op", name, "error", err)
			s.count(name, http.StatusBadRequest)
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	start := time.Now()
	result, err := s.reg.Execute(r.Context(), name, args)
	s.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		s.logger.Warn("operation failed", "op", name, "error", err)
		s.count(name, http.StatusBadRequest)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.count(name, http.StatusOK)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"op":     name,
		"result": result,
	})
}

func (s *Server) count(op string, status int) {
	s.requests.WithLabelValues(op, strconv.Itoa(status)).Inc()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
