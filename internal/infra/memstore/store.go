// Package memstore provides an in-memory domain.Store with the same
// semantics as the SQLite store. Handler tests run against it so they
// never touch the filesystem.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/parceldesk/parceldesk/internal/domain"
)

// Store keeps the registry and ledger in maps guarded by one mutex.
type Store struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]domain.Customer
	ledger    map[int64]map[string][]domain.PaymentRow // customer → week → rows
}

var _ domain.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		customers: make(map[int64]domain.Customer),
		ledger:    make(map[int64]map[string][]domain.PaymentRow),
	}
}

// AddCustomer registers a customer under a unique, trimmed name.
func (s *Store) AddCustomer(ctx context.Context, name string) (domain.Customer, error) {
	trimmed, err := domain.NormalizeName(name)
	if err != nil {
		return domain.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.customers {
		if c.Name == trimmed {
			return domain.Customer{}, domain.ErrCustomerExists
		}
	}
	s.nextID++
	c := domain.Customer{ID: s.nextID, Name: trimmed}
	s.customers[c.ID] = c
	s.ledger[c.ID] = make(map[string][]domain.PaymentRow)
	return c, nil
}

// Customer looks up a customer by id.
func (s *Store) Customer(ctx context.Context, id int64) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return c, nil
}

// Customers lists all customers ordered by name.
func (s *Store) Customers(ctx context.Context) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// RemoveCustomer deletes a customer and its entire ledger.
func (s *Store) RemoveCustomer(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(s.customers, id)
	delete(s.ledger, id)
	return nil
}

// SaveWeek replaces the full set of rows stored for (customer, week).
func (s *Store) SaveWeek(ctx context.Context, customerID int64, weekStart time.Time, rows []domain.PaymentRow) error {
	if err := domain.ValidateRows(rows); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	weeks, ok := s.ledger[customerID]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	// An empty save clears the week from history, like delete-then-insert.
	if len(rows) == 0 {
		delete(weeks, domain.FormatWeek(weekStart))
		return nil
	}
	stored := make([]domain.PaymentRow, len(rows))
	copy(stored, rows)
	weeks[domain.FormatWeek(weekStart)] = stored
	return nil
}

// Weeks lists the distinct week-start dates recorded for a customer,
// most recent first.
func (s *Store) Weeks(ctx context.Context, customerID int64) ([]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	weeks, ok := s.ledger[customerID]
	if !ok {
		return nil, nil
	}
	keys := make([]string, 0, len(weeks))
	for w := range weeks {
		keys = append(keys, w)
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	result := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		t, err := domain.ParseWeek(k)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

// Week loads the rows stored for (customer, week). A never-saved week
// returns no rows and no error.
func (s *Store) Week(ctx context.Context, customerID int64, weekStart time.Time) ([]domain.PaymentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.ledger[customerID][domain.FormatWeek(weekStart)]
	result := make([]domain.PaymentRow, len(rows))
	copy(result, rows)
	return result, nil
}
