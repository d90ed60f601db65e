// SQLite persistence for the customer registry and the weekly payment
// ledger. One file per data home, WAL mode, single writer — the daemon is
// the only process that touches it.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parceldesk/parceldesk/internal/domain"
	sqlite3 "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// DBFile is the database filename inside the data home.
const DBFile = "parceldesk.db"

// DB wraps the SQLite handle and implements domain.Store.
type DB struct {
	db *sql.DB
}

var _ domain.Store = (*DB)(nil)

// Open creates (if needed) and opens the database under dir, applies
// pragmas, and runs migrations.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	handle, err := sql.Open("sqlite", filepath.Join(dir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps pragmas and the implicit write lock stable.
	handle.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA busy_timeout = 5000`,
		`PRAGMA synchronous = NORMAL`,
	} {
		if _, err := handle.Exec(pragma); err != nil {
			handle.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	db := &DB{db: handle}
	if err := db.migrate(); err != nil {
		handle.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// Close closes the underlying handle.
func (db *DB) Close() error {
	return db.db.Close()
}

// ─── Schema ─────────────────────────────────────────────────────────────────

// Migrations returns the schema migration statements.
// Each string is a single SQL statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		// Customer registry
		`CREATE TABLE IF NOT EXISTS customers (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,

		// Weekly payment ledger, one row per (customer, week, day) entry
		`CREATE TABLE IF NOT EXISTS payments (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			customer_id INTEGER NOT NULL,
			week_start  TEXT NOT NULL,
			day         TEXT NOT NULL,
			total       REAL NOT NULL DEFAULT 0,
			received    REAL NOT NULL DEFAULT 0,
			balance     REAL NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_customer_week ON payments(customer_id, week_start)`,
	}
}

func (db *DB) migrate() error {
	for _, stmt := range Migrations() {
		if _, err := db.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ─── Error Translation ──────────────────────────────────────────────────────

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	code := serr.Code()
	return code == sqlitelib.SQLITE_CONSTRAINT_UNIQUE || code == sqlitelib.SQLITE_CONSTRAINT
}
