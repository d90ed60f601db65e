package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. Stores translate
// driver-level failures into these so callers can branch with errors.Is.

var (
	// Customer errors
	ErrEmptyName        = errors.New("customer name must not be empty")
	ErrCustomerExists   = errors.New("customer name already registered")
	ErrCustomerNotFound = errors.New("customer not found")

	// Ledger errors
	ErrBadWeek        = errors.New("week must be a YYYY-MM-DD date")
	ErrUnknownDay     = errors.New("day label outside Mon…Sun")
	ErrNegativeAmount = errors.New("total and received must be non-negative")
)
