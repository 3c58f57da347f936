package services

import (
	"testing"

	"bills/internal/core"
)

func TestSumAmountAndCount(t *testing.T) {
	if got := SumAmount(nil); got.Cents != 0 {
		t.Fatalf("SumAmount(nil) = %d, want 0", got.Cents)
	}
	if got := Count(nil); got != 0 {
		t.Fatalf("Count(nil) = %d, want 0", got)
	}

	x := []core.Bill{bill("a", ref, false, 1599), bill("b", ref, false, 120000)}
	y := []core.Bill{bill("c", ref, true, 8500)}
	all := append(append([]core.Bill(nil), x...), y...)

	if got, want := SumAmount(all), SumAmount(x).Add(SumAmount(y)); got != want {
		t.Fatalf("SumAmount not additive: %v != %v", got, want)
	}
	if got := SumAmount(all); got.Cents != 130099 {
		t.Fatalf("SumAmount = %d, want 130099", got.Cents)
	}
	if got := Count(all); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
}

func TestPaidThisMonth(t *testing.T) {
	bills := []core.Bill{
		bill("june-early", core.NewDate(2025, 6, 1), true, 100),
		bill("june-late", core.NewDate(2025, 6, 30), true, 200),
		bill("may", core.NewDate(2025, 5, 31), true, 400),
		bill("june-unpaid", core.NewDate(2025, 6, 10), false, 800),
		bill("last-june", core.NewDate(2024, 6, 10), true, 1600),
	}
	got := PaidThisMonth(bills, ref)
	if len(got) != 2 || got[0].ID != "june-late" || got[1].ID != "june-early" {
		t.Fatalf("PaidThisMonth() = %v", ids(got))
	}
	if total := SumAmount(got); total.Cents != 300 {
		t.Fatalf("paid this month total = %d, want 300", total.Cents)
	}
}

func TestSummarize(t *testing.T) {
	bills := []core.Bill{
		bill("today", ref, false, 1000),
		bill("soon", ref.AddDays(4), false, 2000),
		bill("late", ref.AddDays(-4), false, 4000),
		bill("paid", ref.AddDays(-2), true, 8000),
		bill("paid-last-month", core.NewDate(2025, 5, 30), true, 16000),
	}
	s := Summarize(bills, ref)

	want := core.Summary{
		DueToday:      core.BucketTotal{Count: 1, Total: core.Money{Cents: 1000}},
		Upcoming:      core.BucketTotal{Count: 2, Total: core.Money{Cents: 3000}},
		Overdue:       core.BucketTotal{Count: 1, Total: core.Money{Cents: 4000}},
		PaidThisMonth: core.BucketTotal{Count: 1, Total: core.Money{Cents: 8000}},
	}
	if s != want {
		t.Fatalf("Summarize() = %+v, want %+v", s, want)
	}

	if empty := Summarize(nil, ref); empty != (core.Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero", empty)
	}
}

func TestByCategory(t *testing.T) {
	bills := []core.Bill{
		{ID: "1", Amount: core.Money{Cents: 100}, Category: core.Utilities},
		{ID: "2", Amount: core.Money{Cents: 500}, Category: core.Housing},
		{ID: "3", Amount: core.Money{Cents: 250}, Category: core.Utilities},
	}
	got := ByCategory(bills)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %+v", got)
	}
	if got[0].Category != core.Housing || got[0].Amount.Cents != 500 || got[0].Count != 1 {
		t.Errorf("unexpected first entry %+v", got[0])
	}
	if got[1].Category != core.Utilities || got[1].Amount.Cents != 350 || got[1].Count != 2 {
		t.Errorf("unexpected second entry %+v", got[1])
	}
}
