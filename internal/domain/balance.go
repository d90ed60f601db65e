package domain

import "github.com/shopspring/decimal"

// ─── Balance Arithmetic ─────────────────────────────────────────────────────
// All money math lives here so the subtraction is written exactly once.
// Amounts are decimals, never binary floats: 0.10 + 0.20 must equal 0.30.

// Balance returns the amount still owed for one day: total − received.
// Overpayment yields a negative balance (credit), which is preserved.
func Balance(total, received decimal.Decimal) decimal.Decimal {
	return total.Sub(received)
}

// Recompute returns a copy of rows with every balance re-derived from its
// own total and received. Writers call this before persisting so a stale
// or hand-edited balance field can never reach the store.
func Recompute(rows []PaymentRow) []PaymentRow {
	out := make([]PaymentRow, len(rows))
	for i, r := range rows {
		r.Balance = Balance(r.Total, r.Received)
		out[i] = r
	}
	return out
}

// PendingTotal sums the stored balances of a week's rows. Negative
// balances offset positive ones, so a week can net to zero or a credit.
func PendingTotal(rows []PaymentRow) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Balance)
	}
	return sum
}
