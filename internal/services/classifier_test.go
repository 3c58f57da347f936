package services

import (
	"reflect"
	"testing"

	"bills/internal/core"
)

var ref = core.NewDate(2025, 6, 15)

func bill(id string, due core.Date, paid bool, cents int64) core.Bill {
	return core.Bill{
		ID:       id,
		Name:     "bill " + id,
		Amount:   core.Money{Cents: cents},
		DueDate:  due,
		IsPaid:   paid,
		Category: core.Other,
	}
}

func ids(bills []core.Bill) []string {
	out := make([]string, 0, len(bills))
	for _, b := range bills {
		out = append(out, b.ID)
	}
	return out
}

func fixture() []core.Bill {
	return []core.Bill{
		bill("late2", ref.AddDays(-1), false, 1000),
		bill("today", ref, false, 2000),
		bill("late10", ref.AddDays(-10), false, 3000),
		bill("soon", ref.AddDays(3), false, 4000),
		bill("edge", ref.AddDays(29), false, 5000),
		bill("far", ref.AddDays(30), false, 6000),
		bill("paidOld", ref.AddDays(-20), true, 7000),
		bill("paidNew", ref.AddDays(2), true, 8000),
		bill("today2", ref, false, 9000),
	}
}

func TestUpcoming(t *testing.T) {
	got := ids(Upcoming(fixture(), ref))
	want := []string{"today", "today2", "soon", "edge"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Upcoming() = %v, want %v", got, want)
	}
}

func TestUpcomingProperties(t *testing.T) {
	bills := fixture()
	limit := ref.AddDays(UpcomingWindowDays)
	up := Upcoming(bills, ref)
	for i, b := range up {
		if b.IsPaid {
			t.Errorf("%s is paid", b.ID)
		}
		if b.DueDate.IsBefore(ref) || !b.DueDate.IsBefore(limit) {
			t.Errorf("%s due %s outside [ref, ref+30d)", b.ID, b.DueDate)
		}
		if i > 0 && up[i-1].DueDate.IsAfter(b.DueDate) {
			t.Errorf("not sorted at %d", i)
		}
	}

	overdue := map[string]bool{}
	for _, b := range Overdue(bills, ref) {
		overdue[b.ID] = true
	}
	for _, b := range up {
		if overdue[b.ID] {
			t.Errorf("%s is both upcoming and overdue", b.ID)
		}
	}
}

func TestOverdue(t *testing.T) {
	got := ids(Overdue(fixture(), ref))
	want := []string{"late10", "late2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Overdue() = %v, want %v", got, want)
	}
}

func TestDueToday(t *testing.T) {
	got := ids(DueToday(fixture(), ref))
	want := []string{"today", "today2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DueToday() = %v, want %v", got, want)
	}
}

func TestPaid(t *testing.T) {
	bills := fixture()
	got := Paid(bills)
	if !reflect.DeepEqual(ids(got), []string{"paidNew", "paidOld"}) {
		t.Fatalf("Paid() = %v", ids(got))
	}
	if again := Paid(bills); !reflect.DeepEqual(again, got) {
		t.Fatalf("Paid() should be idempotent")
	}
}

func TestClassificationDoesNotMutateInput(t *testing.T) {
	bills := fixture()
	before := append([]core.Bill(nil), bills...)

	_ = Upcoming(bills, ref)
	_ = Overdue(bills, ref)
	_ = Paid(bills)
	sorted := Upcoming(bills, ref)
	sorted[0].Name = "changed"

	if !reflect.DeepEqual(bills, before) {
		t.Fatalf("input collection was modified")
	}
}

func TestScenarios(t *testing.T) {
	t.Run("bill due today is upcoming and due today, never overdue", func(t *testing.T) {
		bills := []core.Bill{bill("t", ref, false, 100)}
		if len(DueToday(bills, ref)) != 1 || len(Upcoming(bills, ref)) != 1 {
			t.Fatalf("expected bill in due today and upcoming")
		}
		if len(Overdue(bills, ref)) != 0 {
			t.Fatalf("bill due today must not be overdue")
		}
	})

	t.Run("bill due yesterday is overdue, not upcoming", func(t *testing.T) {
		bills := []core.Bill{bill("y", ref.AddDays(-1), false, 100)}
		if len(Overdue(bills, ref)) != 1 {
			t.Fatalf("expected bill in overdue")
		}
		if len(Upcoming(bills, ref)) != 0 {
			t.Fatalf("overdue bill must not be upcoming")
		}
	})

	t.Run("paid bills never land in date buckets", func(t *testing.T) {
		bills := []core.Bill{bill("p", ref, true, 100), bill("q", ref.AddDays(-3), true, 100)}
		if len(Upcoming(bills, ref))+len(Overdue(bills, ref))+len(DueToday(bills, ref)) != 0 {
			t.Fatalf("paid bills leaked into unpaid buckets")
		}
	})
}

func TestForDateAndDayStatus(t *testing.T) {
	day := ref.AddDays(-2)
	bills := []core.Bill{
		bill("o1", day, false, 100),
		bill("other", ref.AddDays(4), false, 100),
		bill("p", day, true, 100),
		bill("o2", day, false, 100),
	}

	got := ForDate(bills, day)
	if !reflect.DeepEqual(ids(got), []string{"o1", "p", "o2"}) {
		t.Fatalf("ForDate() = %v", ids(got))
	}
	if s := DayStatusFor(bills, day, ref); s != DayOverdue {
		t.Fatalf("DayStatusFor() = %v, want overdue", s)
	}

	tests := []struct {
		name  string
		bills []core.Bill
		date  core.Date
		want  DayStatus
	}{
		{"no bills", bills, ref.AddDays(1), DayEmpty},
		{"unpaid today", []core.Bill{bill("a", ref, false, 1)}, ref, DayDueToday},
		{"paid today", []core.Bill{bill("a", ref, true, 1)}, ref, DayHasBills},
		{"paid in the past", []core.Bill{bill("a", day, true, 1)}, day, DayHasBills},
		{"unpaid in the future", []core.Bill{bill("a", ref.AddDays(1), false, 1)}, ref.AddDays(1), DayHasBills},
		{"overdue beats paid", []core.Bill{bill("a", day, true, 1), bill("b", day, false, 1)}, day, DayOverdue},
		{"due today beats paid", []core.Bill{bill("a", ref, true, 1), bill("b", ref, false, 1)}, ref, DayDueToday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayStatusFor(tt.bills, tt.date, ref); got != tt.want {
				t.Errorf("DayStatusFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysWithBills(t *testing.T) {
	bills := []core.Bill{
		bill("a", core.NewDate(2025, 6, 20), false, 1),
		bill("b", core.NewDate(2025, 6, 3), true, 1),
		bill("c", core.NewDate(2025, 6, 20), false, 1),
		bill("d", core.NewDate(2025, 7, 1), false, 1),
		bill("e", core.NewDate(2024, 6, 10), false, 1),
	}
	got := DaysWithBills(bills, core.NewDate(2025, 6, 28))
	want := []core.Date{core.NewDate(2025, 6, 3), core.NewDate(2025, 6, 20)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DaysWithBills() = %v, want %v", got, want)
	}
	if got := DaysWithBills(nil, ref); len(got) != 0 {
		t.Fatalf("expected no days for empty collection, got %v", got)
	}
}

func TestDueSoonWarning(t *testing.T) {
	bills := []core.Bill{
		bill("now", ref, false, 1),
		bill("week", ref.AddDays(7), false, 1),
		bill("eight", ref.AddDays(8), false, 1),
		bill("paid", ref.AddDays(3), true, 1),
		bill("past", ref.AddDays(-1), false, 1),
	}
	tests := []struct {
		date core.Date
		want bool
	}{
		{ref, true},
		{ref.AddDays(7), true},
		{ref.AddDays(8), false},
		{ref.AddDays(3), false},
		{ref.AddDays(-1), false},
		{ref.AddDays(5), false},
	}
	for _, tt := range tests {
		if got := DueSoonWarning(bills, tt.date, ref); got != tt.want {
			t.Errorf("DueSoonWarning(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		b    core.Bill
		want BillStatus
	}{
		{bill("a", ref.AddDays(-1), true, 1), StatusPaid},
		{bill("b", ref.AddDays(-1), false, 1), StatusOverdue},
		{bill("c", ref, false, 1), StatusDueToday},
		{bill("d", ref.AddDays(1), false, 1), StatusPending},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.b, ref); got != tt.want {
			t.Errorf("StatusOf(%s) = %v, want %v", tt.b.ID, got, tt.want)
		}
	}
}

func TestDueWithin(t *testing.T) {
	got := ids(DueWithin(fixture(), ref, 3))
	want := []string{"today", "today2", "soon"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DueWithin() = %v, want %v", got, want)
	}
}
