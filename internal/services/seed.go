package services

import "bills/internal/core"

// DemoBills is the first-run collection: five monthly bills due over the next
// three weeks.
func DemoBills(today core.Date, newID func() string) []core.Bill {
	demo := []struct {
		name     string
		amount   core.Money
		inDays   int
		category core.Category
	}{
		{"Rent", core.Money{Cents: 120000}, 5, core.Housing},
		{"Electricity", core.Money{Cents: 8500}, 12, core.Utilities},
		{"Internet", core.Money{Cents: 6000}, 8, core.Utilities},
		{"Car Insurance", core.Money{Cents: 15000}, 15, core.Insurance},
		{"Netflix", core.Money{Cents: 1599}, 20, core.Subscriptions},
	}

	bills := make([]core.Bill, 0, len(demo))
	for _, d := range demo {
		bills = append(bills, core.Bill{
			ID:            newID(),
			Name:          d.name,
			Amount:        d.amount,
			DueDate:       today.AddDays(d.inDays),
			IsRecurring:   true,
			RecurringType: core.Monthly,
			Category:      d.category,
		})
	}
	return bills
}
