package domain

import (
	"context"
	"time"
)

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; the API and CLI layers depend on them.

// Store abstracts the customer registry and week ledger behind one
// persistence port. The SQLite store backs the daemon; an in-memory
// store backs tests.
type Store interface {
	// AddCustomer registers a customer under a unique, trimmed name.
	// Returns ErrEmptyName or ErrCustomerExists on rejection.
	AddCustomer(ctx context.Context, name string) (Customer, error)

	// Customer looks up a customer by id. Returns ErrCustomerNotFound.
	Customer(ctx context.Context, id int64) (Customer, error)

	// Customers lists all customers ordered by name.
	Customers(ctx context.Context) ([]Customer, error)

	// RemoveCustomer deletes a customer and every week recorded for it
	// in one transaction. Returns ErrCustomerNotFound.
	RemoveCustomer(ctx context.Context, id int64) error

	// SaveWeek replaces the full set of rows stored for (customer, week)
	// in one transaction — delete then insert, so dropping from seven
	// rows to three leaves exactly three. Rows are validated with
	// ValidateRows; the customer must exist.
	SaveWeek(ctx context.Context, customerID int64, weekStart time.Time, rows []PaymentRow) error

	// Weeks lists the distinct week-start dates recorded for a customer,
	// most recent first.
	Weeks(ctx context.Context, customerID int64) ([]time.Time, error)

	// Week loads the rows stored for (customer, week) in insertion
	// order. A never-saved week is not an error: it returns no rows.
	Week(ctx context.Context, customerID int64, weekStart time.Time) ([]PaymentRow, error)
}
