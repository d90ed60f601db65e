package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/parceldesk/parceldesk/internal/domain"
)

// ─── Customer Operations ────────────────────────────────────────────────────

// AddCustomer registers a customer under a unique, trimmed name.
func (db *DB) AddCustomer(ctx context.Context, name string) (domain.Customer, error) {
	trimmed, err := domain.NormalizeName(name)
	if err != nil {
		return domain.Customer{}, err
	}

	res, err := db.db.ExecContext(ctx, `
		INSERT INTO customers (name) VALUES (?)
	`, trimmed)
	if isUniqueViolation(err) {
		return domain.Customer{}, domain.ErrCustomerExists
	}
	if err != nil {
		return domain.Customer{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Customer{}, err
	}
	return domain.Customer{ID: id, Name: trimmed}, nil
}

// Customer looks up a customer by id.
func (db *DB) Customer(ctx context.Context, id int64) (domain.Customer, error) {
	var c domain.Customer
	err := db.db.QueryRowContext(ctx, `
		SELECT id, name FROM customers WHERE id = ?
	`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	if err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}

// Customers lists all customers ordered by name.
func (db *DB) Customers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := db.db.QueryContext(ctx, `
		SELECT id, name FROM customers ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// RemoveCustomer deletes a customer and every ledger row recorded for it
// in one transaction.
func (db *DB) RemoveCustomer(ctx context.Context, id int64) error {
	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM payments WHERE customer_id = ?
	`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM customers WHERE id = ?
	`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return tx.Commit()
}
