// Package observability defines the Prometheus collectors exported at
// /metrics. Collectors are package-level and registered on the default
// registry via promauto; handlers just bump them.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Registry Metrics ───────────────────────────────────────────────────────

// CustomersCreated tracks total customers registered.
var CustomersCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "parceldesk",
	Subsystem: "registry",
	Name:      "customers_created_total",
	Help:      "Total customers registered.",
})

// CustomersDeleted tracks total customers deleted.
var CustomersDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "parceldesk",
	Subsystem: "registry",
	Name:      "customers_deleted_total",
	Help:      "Total customers deleted, ledgers included.",
})

// ─── Ledger Metrics ─────────────────────────────────────────────────────────

// WeeksSaved tracks total week writes (each a full replace).
var WeeksSaved = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "parceldesk",
	Subsystem: "ledger",
	Name:      "weeks_saved_total",
	Help:      "Total week saves (full-replace writes).",
})

// ─── Invoice Metrics ────────────────────────────────────────────────────────

// InvoicesRendered tracks total invoices rendered to PDF.
var InvoicesRendered = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "parceldesk",
	Subsystem: "invoice",
	Name:      "rendered_total",
	Help:      "Total invoices rendered to PDF.",
})

// InvoiceRenderSeconds tracks render duration.
var InvoiceRenderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parceldesk",
	Subsystem: "invoice",
	Name:      "render_seconds",
	Help:      "Invoice render duration in seconds.",
	Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25},
})

// ObserveRender records one completed render and its duration.
func ObserveRender(start time.Time) {
	InvoicesRendered.Inc()
	InvoiceRenderSeconds.Observe(time.Since(start).Seconds())
}

// ─── HTTP Metrics ───────────────────────────────────────────────────────────

// HTTPRequests tracks requests by method, chi route pattern, and status class.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parceldesk",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route pattern, and status class.",
}, []string{"method", "route", "status"})
