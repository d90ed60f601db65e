package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		received string
		want     string
	}{
		{"partial payment", "100", "40", "60"},
		{"paid in full", "250", "250", "0"},
		{"nothing received", "80", "0", "80"},
		{"overpayment keeps credit", "50", "75", "-25"},
		{"paise precision", "99.95", "33.30", "66.65"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Balance(dec(tt.total), dec(tt.received))
			if !got.Equal(dec(tt.want)) {
				t.Errorf("Balance(%s, %s) = %s, want %s", tt.total, tt.received, got, tt.want)
			}
		})
	}
}

func TestBalanceExactDecimals(t *testing.T) {
	// The classic binary-float trap: 0.30 − 0.20 must be exactly 0.10.
	got := Balance(dec("0.30"), dec("0.20"))
	if got.String() != "0.1" {
		t.Errorf("Balance(0.30, 0.20) = %s, want 0.1", got)
	}
}

func TestRecompute(t *testing.T) {
	rows := []PaymentRow{
		{Day: "Mon", Total: dec("100"), Received: dec("40"), Balance: dec("999")},
		{Day: "Tue", Total: dec("50"), Received: dec("50"), Balance: dec("-1")},
	}
	got := Recompute(rows)

	if !got[0].Balance.Equal(dec("60")) {
		t.Errorf("Mon balance = %s, want 60", got[0].Balance)
	}
	if !got[1].Balance.Equal(dec("0")) {
		t.Errorf("Tue balance = %s, want 0", got[1].Balance)
	}
	// Input must stay untouched.
	if !rows[0].Balance.Equal(dec("999")) {
		t.Errorf("Recompute mutated its input: %s", rows[0].Balance)
	}
}

func TestPendingTotal(t *testing.T) {
	tests := []struct {
		name     string
		balances []string
		want     string
	}{
		{"single row", []string{"60"}, "60"},
		{"sums across days", []string{"60", "15", "25"}, "100"},
		{"credit offsets debt", []string{"60", "-10"}, "50"},
		{"empty week", nil, "0"},
		{"exact decimal sum", []string{"0.10", "0.20"}, "0.30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]PaymentRow, len(tt.balances))
			for i, b := range tt.balances {
				rows[i] = PaymentRow{Day: "Mon", Balance: dec(b)}
			}
			got := PendingTotal(rows)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("PendingTotal() = %s, want %s", got, tt.want)
			}
		})
	}
}
