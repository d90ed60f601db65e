package sqlite

import (
	"context"
	"time"

	"github.com/parceldesk/parceldesk/internal/domain"
)

// ─── Week Ledger Operations ─────────────────────────────────────────────────

// SaveWeek replaces the full set of rows stored for (customer, week) in one
// transaction: delete then insert. Saving three rows over a seven-row week
// leaves exactly three.
func (db *DB) SaveWeek(ctx context.Context, customerID int64, weekStart time.Time, rows []domain.PaymentRow) error {
	if err := domain.ValidateRows(rows); err != nil {
		return err
	}
	week := domain.FormatWeek(weekStart)

	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var found int
	if err := tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM customers WHERE id = ?
	`, customerID).Scan(&found); err != nil {
		return err
	}
	if found == 0 {
		return domain.ErrCustomerNotFound
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM payments WHERE customer_id = ? AND week_start = ?
	`, customerID, week); err != nil {
		return err
	}

	for _, r := range rows {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO payments (customer_id, week_start, day, total, received, balance)
			VALUES (?, ?, ?, ?, ?, ?)
		`, customerID, week, r.Day, r.Total, r.Received, r.Balance); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Weeks lists the distinct week-start dates recorded for a customer,
// most recent first.
func (db *DB) Weeks(ctx context.Context, customerID int64) ([]time.Time, error) {
	rows, err := db.db.QueryContext(ctx, `
		SELECT DISTINCT week_start FROM payments
		WHERE customer_id = ? ORDER BY week_start DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []time.Time
	for rows.Next() {
		var week string
		if err := rows.Scan(&week); err != nil {
			return nil, err
		}
		t, err := domain.ParseWeek(week)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// Week loads the rows stored for (customer, week) in insertion order.
// A never-saved week returns no rows and no error.
func (db *DB) Week(ctx context.Context, customerID int64, weekStart time.Time) ([]domain.PaymentRow, error) {
	rows, err := db.db.QueryContext(ctx, `
		SELECT day, total, received, balance FROM payments
		WHERE customer_id = ? AND week_start = ? ORDER BY id
	`, customerID, domain.FormatWeek(weekStart))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PaymentRow
	for rows.Next() {
		var r domain.PaymentRow
		if err := rows.Scan(&r.Day, &r.Total, &r.Received, &r.Balance); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
