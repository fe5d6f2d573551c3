// Package api exposes the questionnaire engine over HTTP/JSON.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/export"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/questionnaire"
	"github.com/kevinvandever/reservoir-mvp-sub000/internal/report"
)

// Server holds the handler dependencies.
type Server struct {
	svc       *questionnaire.Service
	generator *report.Generator
	exporters map[string]export.Exporter
	gate      bool
}

// Option configures the Server.
type Option func(*Server)

// WithExporter registers a named lead exporter for the report endpoint.
func WithExporter(name string, e export.Exporter) Option {
	return func(s *Server) {
		s.exporters[name] = e
	}
}

// WithoutAccessGate disables access-code validation on questionnaire routes.
func WithoutAccessGate() Option {
	return func(s *Server) {
		s.gate = false
	}
}

func NewServer(svc *questionnaire.Service, gen *report.Generator, opts ...Option) *Server {
	s := &Server{
		svc:       svc,
		generator: gen,
		exporters: make(map[string]export.Exporter),
		gate:      true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router assembles the chi route tree.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Access-Code"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.gate {
			r.Use(accessCode)
		}

		r.Route("/questionnaire", func(r chi.Router) {
			r.Post("/next-question", s.handleNextQuestion)
			r.Get("/progress", s.handleProgress)
			r.Post("/reset", s.handleReset)
			r.Post("/load-progress", s.handleLoadProgress)
		})
		r.Route("/ai", func(r chi.Router) {
			r.Post("/extract-business-intelligence", s.handleExtract)
			r.Post("/generate-question", s.handleGenerateQuestion)
		})
		r.Route("/report", func(r chi.Router) {
			r.Post("/generate", s.handleGenerateReport)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes v as the JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger logs each request at debug with method, path, and status.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Debug("api: request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
		)
	})
}
