// Package api provides the HTTP server for ParcelDesk.
// It exposes the customer registry, the week ledger, invoice downloads,
// and the form-based web UI.
package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/parceldesk/parceldesk/internal/invoice"
)

// Server is the ParcelDesk HTTP API server.
type Server struct {
	store          domain.Store
	renderer       *invoice.Renderer
	log            zerolog.Logger
	version        string
	metricsEnabled bool
	now            func() time.Time
}

// NewServer creates a new API server.
func NewServer(store domain.Store, renderer *invoice.Renderer, log zerolog.Logger) *Server {
	return &Server{
		store:    store,
		renderer: renderer,
		log:      log,
		version:  "0.1.0",
		now:      time.Now,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetVersion sets the version reported by /api/version.
func (s *Server) SetVersion(v string) { s.version = v }

// SetClock overrides the clock used to resolve the "current" week alias.
func (s *Server) SetClock(now func() time.Time) { s.now = now }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": s.version,
		})
	})

	// Registry and ledger endpoints
	r.Route("/api", func(r chi.Router) {
		r.Get("/customers", s.handleListCustomers)
		r.Post("/customers", s.handleAddCustomer)
		r.Delete("/customers/{customerID}", s.handleRemoveCustomer)
		r.Get("/customers/{customerID}/weeks", s.handleListWeeks)
		r.Get("/customers/{customerID}/weeks/{week}", s.handleGetWeek)
		r.Put("/customers/{customerID}/weeks/{week}", s.handleSaveWeek)
		r.Get("/customers/{customerID}/weeks/{week}/invoice", s.handleInvoice)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Form-based web UI
	webDir := findWebDir()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		if webDir != "" {
			http.ServeFile(w, req, filepath.Join(webDir, "index.html"))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ParcelDesk is running",
		})
	})
	if webDir != "" {
		fileServer := http.FileServer(http.Dir(webDir))
		r.Get("/*", fileServer.ServeHTTP)
	}

	return r
}

// findWebDir locates the web UI directory in various contexts.
func findWebDir() string {
	candidates := []string{
		"web",    // Running from project root
		"../web", // Running from build dir
		"/usr/share/parceldesk/web",
	}

	if home := os.Getenv("PARCELDESK_HOME"); home != "" {
		candidates = append(candidates, filepath.Join(home, "web"))
	}

	for _, dir := range candidates {
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
				return dir
			}
		}
	}
	return ""
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
