package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/parceldesk/parceldesk/internal/domain"
	"github.com/shopspring/decimal"
)

func row(day string, total, received float64) domain.PaymentRow {
	t := decimal.NewFromFloat(total)
	r := decimal.NewFromFloat(received)
	return domain.PaymentRow{Day: day, Total: t, Received: r, Balance: t.Sub(r)}
}

func week(s string) time.Time {
	t, err := domain.ParseWeek(s)
	if err != nil {
		panic(err)
	}
	return t
}

// The memory store must track the SQLite store's semantics so handler
// tests exercise the same contract the daemon runs against.

func TestStore_CustomerLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	c, err := s.AddCustomer(ctx, "  Ravi ")
	if err != nil {
		t.Fatalf("AddCustomer() error: %v", err)
	}
	if c.Name != "Ravi" {
		t.Errorf("name = %q, want %q", c.Name, "Ravi")
	}

	if _, err := s.AddCustomer(ctx, "Ravi"); !errors.Is(err, domain.ErrCustomerExists) {
		t.Errorf("duplicate error = %v, want ErrCustomerExists", err)
	}
	if _, err := s.AddCustomer(ctx, " "); !errors.Is(err, domain.ErrEmptyName) {
		t.Errorf("empty name error = %v, want ErrEmptyName", err)
	}

	if err := s.RemoveCustomer(ctx, c.ID); err != nil {
		t.Fatalf("RemoveCustomer() error: %v", err)
	}
	if err := s.RemoveCustomer(ctx, c.ID); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("second remove error = %v, want ErrCustomerNotFound", err)
	}
}

func TestStore_RemoveCustomerDeletesLedger(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := s.AddCustomer(ctx, "Ravi")
	w := week("2024-06-03")

	if err := s.SaveWeek(ctx, c.ID, w, []domain.PaymentRow{row("Mon", 100, 40)}); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveCustomer(ctx, c.ID); err != nil {
		t.Fatalf("RemoveCustomer() error: %v", err)
	}

	rows, err := s.Week(ctx, c.ID, w)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("removed customer still has %d ledger rows", len(rows))
	}
	weeks, err := s.Weeks(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(weeks) != 0 {
		t.Errorf("removed customer still lists %d weeks", len(weeks))
	}
}

func TestStore_SaveWeekReplaces(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := s.AddCustomer(ctx, "Ravi")
	w := week("2024-06-03")

	seven := make([]domain.PaymentRow, 0, 7)
	for _, d := range domain.Days() {
		seven = append(seven, row(d, 10, 0))
	}
	if err := s.SaveWeek(ctx, c.ID, w, seven); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveWeek(ctx, c.ID, w, []domain.PaymentRow{row("Mon", 100, 40)}); err != nil {
		t.Fatal(err)
	}

	got, err := s.Week(ctx, c.ID, w)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("Week() returned %d rows, want 1", len(got))
	}
	if !got[0].Balance.Equal(decimal.NewFromInt(60)) {
		t.Errorf("balance = %s, want 60", got[0].Balance)
	}
}

func TestStore_EmptySaveClearsWeek(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := s.AddCustomer(ctx, "Ravi")
	w := week("2024-06-03")

	if err := s.SaveWeek(ctx, c.ID, w, []domain.PaymentRow{row("Mon", 10, 0)}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveWeek(ctx, c.ID, w, nil); err != nil {
		t.Fatalf("SaveWeek(nil rows) error: %v", err)
	}

	rows, err := s.Week(ctx, c.ID, w)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("Week() after clearing returned %d rows, want 0", len(rows))
	}
	weeks, err := s.Weeks(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(weeks) != 0 {
		t.Errorf("Weeks() after clearing returned %d, want 0", len(weeks))
	}
}

func TestStore_WeeksDescending(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := s.AddCustomer(ctx, "Ravi")

	for _, w := range []string{"2024-05-20", "2024-06-10", "2024-06-03"} {
		if err := s.SaveWeek(ctx, c.ID, week(w), []domain.PaymentRow{row("Mon", 10, 0)}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Weeks(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-06-10", "2024-06-03", "2024-05-20"}
	for i, w := range want {
		if domain.FormatWeek(got[i]) != w {
			t.Errorf("weeks[%d] = %s, want %s", i, domain.FormatWeek(got[i]), w)
		}
	}
}

func TestStore_SaveWeekValidates(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := s.AddCustomer(ctx, "Ravi")

	err := s.SaveWeek(ctx, c.ID, week("2024-06-03"), []domain.PaymentRow{row("Funday", 1, 0)})
	if !errors.Is(err, domain.ErrUnknownDay) {
		t.Errorf("error = %v, want ErrUnknownDay", err)
	}
	err = s.SaveWeek(ctx, 404, week("2024-06-03"), nil)
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Errorf("error = %v, want ErrCustomerNotFound", err)
	}
}
