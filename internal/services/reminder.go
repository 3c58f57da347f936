package services

import (
	"context"

	"bills/internal/core"
	"bills/internal/log"
)

// DefaultReminderDays is how far ahead the reminder check looks.
const DefaultReminderDays = 3

// Reminder reports unpaid bills that fall due within a few days.
type Reminder struct {
	Days   int
	logger *log.Logger
}

func NewReminder(days int, logger *log.Logger) *Reminder {
	if days <= 0 {
		days = DefaultReminderDays
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Reminder{Days: days, logger: logger.WithComponent(log.ComponentReminder)}
}

// Check logs every unpaid bill due in [ref, ref+Days] and returns them,
// earliest first.
func (r *Reminder) Check(ctx context.Context, bills []core.Bill, ref core.Date) []core.Bill {
	soon := DueWithin(bills, ref, r.Days)
	for _, b := range soon {
		fields := log.NewFields().WithBill(b)
		if b.DueDate.SameDay(ref) {
			r.logger.WarnContext(ctx, "Bill due today", fields.ToSlice()...)
			continue
		}
		r.logger.InfoContext(ctx, "Bill due soon", fields.ToSlice()...)
	}
	return soon
}
