package services

import "bills/internal/core"

// SumAmount adds up the amounts of bills; zero for an empty slice.
func SumAmount(bills []core.Bill) core.Money {
	var total core.Money
	for _, b := range bills {
		total = total.Add(b.Amount)
	}
	return total
}

func Count(bills []core.Bill) int {
	return len(bills)
}

// Total builds the count and sum of one bucket.
func Total(bills []core.Bill) core.BucketTotal {
	return core.BucketTotal{Count: Count(bills), Total: SumAmount(bills)}
}

// PaidThisMonth returns paid bills whose due date falls in ref's month.
// The due date stands in for the payment date, which is not recorded, so a
// bill paid late or early is counted in the month it was due.
func PaidThisMonth(bills []core.Bill, ref core.Date) []core.Bill {
	return filter(Paid(bills), func(b core.Bill) bool {
		return b.DueDate.SameMonth(ref)
	})
}

// Summarize computes the headline totals of the overview.
func Summarize(bills []core.Bill, ref core.Date) core.Summary {
	return core.Summary{
		DueToday:      Total(DueToday(bills, ref)),
		Upcoming:      Total(Upcoming(bills, ref)),
		Overdue:       Total(Overdue(bills, ref)),
		PaidThisMonth: Total(PaidThisMonth(bills, ref)),
	}
}

// ByCategory totals bills per category in the fixed category order, leaving
// out categories without bills.
func ByCategory(bills []core.Bill) []core.CategoryAmount {
	sums := make(map[core.Category]core.CategoryAmount)
	for _, b := range bills {
		ca := sums[b.Category]
		ca.Category = b.Category
		ca.Count++
		ca.Amount = ca.Amount.Add(b.Amount)
		sums[b.Category] = ca
	}

	out := make([]core.CategoryAmount, 0, len(sums))
	for _, c := range core.Categories() {
		if ca, ok := sums[c]; ok {
			out = append(out, ca)
		}
	}
	return out
}
