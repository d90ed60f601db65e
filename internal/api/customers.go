package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/parceldesk/parceldesk/internal/infra/observability"
	"github.com/parceldesk/parceldesk/internal/logger"
)

// ─── Customer Registry API ──────────────────────────────────────────────────
//
// GET    /api/customers              — list customers, name order
// POST   /api/customers              — register a customer
// DELETE /api/customers/{customerID} — delete a customer and its ledger

// handleListCustomers returns all customers.
// GET /api/customers
func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.store.Customers(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
	})
}

// handleAddCustomer registers a new customer.
// POST /api/customers
func (s *Server) handleAddCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	c, err := s.store.AddCustomer(r.Context(), req.Name)
	switch {
	case errors.Is(err, domain.ErrEmptyName):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCustomerExists):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		s.serverError(w, r, err)
	default:
		observability.CustomersCreated.Inc()
		logger.FromContext(r.Context()).Info().
			Int64("id", c.ID).
			Str("name", c.Name).
			Msg("customer added")
		writeJSON(w, http.StatusCreated, c)
	}
}

// handleRemoveCustomer deletes a customer and every week recorded for it.
// DELETE /api/customers/{customerID}
func (s *Server) handleRemoveCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "customer id must be an integer")
		return
	}

	err = s.store.RemoveCustomer(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		s.serverError(w, r, err)
	default:
		observability.CustomersDeleted.Inc()
		logger.FromContext(r.Context()).Info().
			Int64("id", id).
			Msg("customer removed")
		w.WriteHeader(http.StatusNoContent)
	}
}

// customerID extracts the {customerID} route parameter.
func customerID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "customerID"), 10, 64)
}

// serverError logs err and answers with a generic 500.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
}
