package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/parceldesk/parceldesk/internal/infra/observability"
	"github.com/parceldesk/parceldesk/internal/logger"
)

// ─── Week Ledger API ────────────────────────────────────────────────────────
//
// GET /api/customers/{customerID}/weeks        — recorded weeks, newest first
// GET /api/customers/{customerID}/weeks/{week} — one week's edit grid
// PUT /api/customers/{customerID}/weeks/{week} — replace a week's rows
//
// {week} is a YYYY-MM-DD Monday date, or the alias "current" for the
// Monday of the running week.

// resolveWeek parses the {week} route parameter.
func (s *Server) resolveWeek(r *http.Request) (time.Time, error) {
	param := chi.URLParam(r, "week")
	if param == "current" {
		return domain.MondayOf(s.now()), nil
	}
	return domain.ParseWeek(param)
}

// handleListWeeks returns the recorded week-start dates for a customer.
// GET /api/customers/{customerID}/weeks
func (s *Server) handleListWeeks(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "customer id must be an integer")
		return
	}
	if _, err := s.store.Customer(r.Context(), id); err != nil {
		s.customerError(w, r, err)
		return
	}

	weeks, err := s.store.Weeks(r.Context(), id)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	formatted := make([]string, 0, len(weeks))
	for _, wk := range weeks {
		formatted = append(formatted, domain.FormatWeek(wk))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weeks": formatted,
	})
}

// handleGetWeek returns one week's rows. A never-saved week answers with
// the zeroed seven-day grid so the edit form always has rows to show.
// GET /api/customers/{customerID}/weeks/{week}
func (s *Server) handleGetWeek(w http.ResponseWriter, r *http.Request) {
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
	if _, err := s.store.Customer(r.Context(), id); err != nil {
		s.customerError(w, r, err)
		return
	}

	rows, err := s.store.Week(r.Context(), id, week)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	saved := len(rows) > 0
	if !saved {
		rows = domain.EmptyWeekRows()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"week":    domain.FormatWeek(week),
		"rows":    rows,
		"saved":   saved,
		"pending": domain.PendingTotal(rows),
	})
}

// handleSaveWeek replaces the rows stored for one week. Balances are
// recomputed from total and received before the write; a balance sent by
// the client is ignored.
// PUT /api/customers/{customerID}/weeks/{week}
func (s *Server) handleSaveWeek(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Rows []domain.PaymentRow `json:"rows"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	rows := domain.Recompute(req.Rows)

	err = s.store.SaveWeek(r.Context(), id, week, rows)
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownDay), errors.Is(err, domain.ErrNegativeAmount):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.serverError(w, r, err)
	default:
		observability.WeeksSaved.Inc()
		logger.FromContext(r.Context()).Info().
			Int64("customer", id).
			Str("week", domain.FormatWeek(week)).
			Int("rows", len(rows)).
			Msg("week saved")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"week":    domain.FormatWeek(week),
			"rows":    rows,
			"saved":   true,
			"pending": domain.PendingTotal(rows),
		})
	}
}

// customerError maps customer lookup failures onto status codes.
func (s *Server) customerError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrCustomerNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.serverError(w, r, err)
}
