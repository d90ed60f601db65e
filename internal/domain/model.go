// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of the application — it depends on nothing
// beyond the decimal money type.
package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format for week-start dates.
const DateLayout = "2006-01-02"

// ─── Customer Types ─────────────────────────────────────────────────────────

// Customer is a named account the parcel service bills weekly.
// Names are unique; there is no rename — a customer is created once and
// deleted (with all recorded weeks) when the relationship ends.
type Customer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ─── Ledger Types ───────────────────────────────────────────────────────────

// PaymentRow is one day's entry within a customer's week: the amount
// billed, the amount received, and the derived balance (total − received).
// Balance is stored redundantly; writers recompute it from total and
// received before every save rather than trusting client arithmetic.
type PaymentRow struct {
	Day      string          `json:"day"`
	Total    decimal.Decimal `json:"total"`
	Received decimal.Decimal `json:"received"`
	Balance  decimal.Decimal `json:"balance"`
}

// ─── Week Helpers ───────────────────────────────────────────────────────────

// A week is identified by the Monday date that begins it, carried as a bare
// date at midnight UTC. History keeps whatever date was recorded at save
// time; only the live-edit flow computes "this Monday".

// MondayOf returns the Monday of the week containing t.
// Sunday belongs to the week begun by the preceding Monday.
func MondayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 … Sunday=6
	return day.AddDate(0, 0, -offset)
}

// ParseWeek parses a YYYY-MM-DD week-start date.
func ParseWeek(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadWeek
	}
	return t, nil
}

// FormatWeek formats a week-start date as YYYY-MM-DD.
func FormatWeek(t time.Time) string {
	return t.Format(DateLayout)
}

// Days returns the seven day labels in ledger order, Monday first.
func Days() []string {
	return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
}

// KnownDay reports whether day is one of the seven canonical labels.
func KnownDay(day string) bool {
	switch day {
	case "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun":
		return true
	}
	return false
}

// EmptyWeekRows returns the seven zeroed rows a fresh edit grid starts from.
func EmptyWeekRows() []PaymentRow {
	days := Days()
	rows := make([]PaymentRow, len(days))
	for i, d := range days {
		rows[i] = PaymentRow{
			Day:      d,
			Total:    decimal.Zero,
			Received: decimal.Zero,
			Balance:  decimal.Zero,
		}
	}
	return rows
}

// ─── Validation ─────────────────────────────────────────────────────────────

// NormalizeName trims surrounding whitespace and rejects empty names.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return trimmed, nil
}

// ValidateRows rejects rows with unknown day labels or negative amounts.
// Duplicate days and partial weeks are permitted — row discipline beyond
// that is the caller's concern.
func ValidateRows(rows []PaymentRow) error {
	for _, r := range rows {
		if !KnownDay(r.Day) {
			return ErrUnknownDay
		}
		if r.Total.IsNegative() || r.Received.IsNegative() {
			return ErrNegativeAmount
		}
	}
	return nil
}
