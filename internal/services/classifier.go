// Package services provides the bill store and the pure functions that derive
// the bill overview from it.
//
// This file holds the classification engine: every function takes the
// reference day explicitly, never mutates its input and returns a fresh slice.
package services

import (
	"slices"

	"bills/internal/core"
)

const (
	// UpcomingWindowDays bounds the upcoming bucket: [ref, ref+30d).
	UpcomingWindowDays = 30
	// DueSoonWarningDays bounds the calendar warning: [ref, ref+7d].
	DueSoonWarningDays = 7
)

// BillStatus is the badge shown next to a single bill.
type BillStatus string

const (
	StatusPaid     BillStatus = "paid"
	StatusOverdue  BillStatus = "overdue"
	StatusDueToday BillStatus = "due_today"
	StatusPending  BillStatus = "pending"
)

// DayStatus is the highlight of a calendar day. Higher values win when
// several bills share the day.
type DayStatus int

const (
	DayEmpty DayStatus = iota
	DayHasBills
	DayDueToday
	DayOverdue
)

func (s DayStatus) String() string {
	switch s {
	case DayHasBills:
		return "has_bills"
	case DayDueToday:
		return "due_today"
	case DayOverdue:
		return "overdue"
	default:
		return "empty"
	}
}

// Upcoming returns unpaid bills due in [ref, ref+30d), earliest first.
func Upcoming(bills []core.Bill, ref core.Date) []core.Bill {
	limit := ref.AddDays(UpcomingWindowDays)
	out := filter(bills, func(b core.Bill) bool {
		return !b.IsPaid && !b.DueDate.IsBefore(ref) && b.DueDate.IsBefore(limit)
	})
	sortByDueDate(out, false)
	return out
}

// Overdue returns unpaid bills due strictly before ref, earliest first.
func Overdue(bills []core.Bill, ref core.Date) []core.Bill {
	out := filter(bills, func(b core.Bill) bool {
		return !b.IsPaid && b.DueDate.IsBefore(ref)
	})
	sortByDueDate(out, false)
	return out
}

// DueToday returns the upcoming bills due on ref itself.
func DueToday(bills []core.Bill, ref core.Date) []core.Bill {
	return filter(Upcoming(bills, ref), func(b core.Bill) bool {
		return b.DueDate.SameDay(ref)
	})
}

// Paid returns paid bills, most recently due first.
func Paid(bills []core.Bill) []core.Bill {
	out := filter(bills, func(b core.Bill) bool { return b.IsPaid })
	sortByDueDate(out, true)
	return out
}

// ForDate returns every bill due on date, in collection order.
func ForDate(bills []core.Bill, date core.Date) []core.Bill {
	return filter(bills, func(b core.Bill) bool { return b.IsDueOn(date) })
}

// DueWithin returns unpaid bills due in [ref, ref+days], earliest first.
func DueWithin(bills []core.Bill, ref core.Date, days int) []core.Bill {
	end := ref.AddDays(days)
	out := filter(bills, func(b core.Bill) bool {
		return !b.IsPaid && b.DueDate.Between(ref, end)
	})
	sortByDueDate(out, false)
	return out
}

// DaysWithBills lists, in ascending order, the days of monthAnchor's month on
// which at least one bill is due.
func DaysWithBills(bills []core.Bill, monthAnchor core.Date) []core.Date {
	present := make(map[int]bool)
	for _, b := range bills {
		if b.DueDate.SameMonth(monthAnchor) {
			present[b.DueDate.Day()] = true
		}
	}

	days := make([]core.Date, 0, len(present))
	start := monthAnchor.StartOfMonth()
	for i := 0; i < monthAnchor.DaysInMonth(); i++ {
		if present[i+1] {
			days = append(days, start.AddDays(i))
		}
	}
	return days
}

// DueSoonWarning is true when date lies in [ref, ref+7d] and at least one
// unpaid bill is due on it.
func DueSoonWarning(bills []core.Bill, date, ref core.Date) bool {
	if !date.Between(ref, ref.AddDays(DueSoonWarningDays)) {
		return false
	}
	for _, b := range bills {
		if !b.IsPaid && b.IsDueOn(date) {
			return true
		}
	}
	return false
}

// StatusOf classifies one bill relative to ref.
func StatusOf(b core.Bill, ref core.Date) BillStatus {
	switch {
	case b.IsPaid:
		return StatusPaid
	case b.DueDate.IsBefore(ref):
		return StatusOverdue
	case b.DueDate.SameDay(ref):
		return StatusDueToday
	default:
		return StatusPending
	}
}

// DayStatusFor computes the highlight of date. Paid bills only ever mark a
// day as having bills.
func DayStatusFor(bills []core.Bill, date, ref core.Date) DayStatus {
	status := DayEmpty
	for _, b := range bills {
		if !b.IsDueOn(date) {
			continue
		}
		s := DayHasBills
		if !b.IsPaid {
			switch {
			case date.IsBefore(ref):
				s = DayOverdue
			case date.SameDay(ref):
				s = DayDueToday
			}
		}
		if s > status {
			status = s
		}
	}
	return status
}

func filter(bills []core.Bill, keep func(core.Bill) bool) []core.Bill {
	out := make([]core.Bill, 0, len(bills))
	for _, b := range bills {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// sortByDueDate sorts in place, keeping collection order among equal days.
func sortByDueDate(bills []core.Bill, descending bool) {
	slices.SortStableFunc(bills, func(a, b core.Bill) int {
		if descending {
			return b.DueDate.Compare(a.DueDate)
		}
		return a.DueDate.Compare(b.DueDate)
	})
}
