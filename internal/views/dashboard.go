package views

import (
	"bills/internal/cache"
	"bills/internal/core"
	"bills/internal/log"
	"bills/internal/services"
)

const dashboardCacheSize = 8

// Dashboard is everything the list view shows for one reference day.
// Its slices are shared with the cache and must be treated as read-only.
type Dashboard struct {
	Ref        core.Date
	Summary    core.Summary
	DueToday   []core.Bill
	Upcoming   []core.Bill
	Overdue    []core.Bill
	Paid       []core.Bill
	ByCategory []core.CategoryAmount
	DueSoon    []core.Bill
}

type dashboardKey struct {
	version uint64
	ref     string
}

// ListView derives dashboards from a BillSource. Results are memoised per
// collection version and reference day, so a mutation invalidates them.
type ListView struct {
	source       BillSource
	reminderDays int
	cache        *cache.LRUCache[dashboardKey, Dashboard]
	logger       *log.Logger
}

func NewListView(source BillSource, reminderDays int, logger *log.Logger) *ListView {
	if reminderDays <= 0 {
		reminderDays = services.DefaultReminderDays
	}
	return &ListView{
		source:       source,
		reminderDays: reminderDays,
		cache:        cache.NewLRUCache[dashboardKey, Dashboard](dashboardCacheSize, 0),
		logger:       viewLogger(logger),
	}
}

// Dashboard returns the buckets and totals relative to ref.
func (v *ListView) Dashboard(ref core.Date) Dashboard {
	key := dashboardKey{version: v.source.Version(), ref: ref.String()}
	if d, ok := v.cache.Get(key); ok {
		return d
	}

	bills := v.source.Bills()
	d := Dashboard{
		Ref:        ref,
		Summary:    services.Summarize(bills, ref),
		DueToday:   services.DueToday(bills, ref),
		Upcoming:   services.Upcoming(bills, ref),
		Overdue:    services.Overdue(bills, ref),
		Paid:       services.Paid(bills),
		ByCategory: services.ByCategory(bills),
		DueSoon:    services.DueWithin(bills, ref, v.reminderDays),
	}
	v.cache.Set(key, d)
	v.logger.Debug("Dashboard computed",
		log.FieldRefDate, key.ref,
		log.FieldCount, len(bills),
		"version", key.version)
	return d
}

// CachedDashboards reports how many dashboards are memoised.
func (v *ListView) CachedDashboards() int {
	return v.cache.Size()
}
