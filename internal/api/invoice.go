package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/parceldesk/parceldesk/internal/infra/observability"
	"github.com/parceldesk/parceldesk/internal/invoice"
	"github.com/parceldesk/parceldesk/internal/logger"
)

// ─── Invoice API ────────────────────────────────────────────────────────────
//
// GET /api/customers/{customerID}/weeks/{week}/invoice — PDF download

// handleInvoice renders the stored week as a PDF attachment. An unsaved
// week renders an empty table with a zero pending balance.
func (s *Server) handleInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "customer id must be an integer")
		return
	}
	week, err := s.resolveWeek(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	customer, err := s.store.Customer(r.Context(), id)
	if err != nil {
		s.customerError(w, r, err)
		return
	}
	rows, err := s.store.Week(r.Context(), id, week)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	start := time.Now()
	pdf, err := s.renderer.Render(customer.Name, week, rows)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	observability.ObserveRender(start)

	logger.FromContext(r.Context()).Info().
		Str("customer", customer.Name).
		Str("week", domain.FormatWeek(week)).
		Int("bytes", len(pdf)).
		Msg("invoice rendered")

	filename := invoice.Filename(customer.Name, week)
	w.Header().Set("Content-Type", invoice.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
