package views

import (
	"fmt"
	"time"

	"bills/internal/core"
	"bills/internal/log"
	"bills/internal/services"
)

// Day is one cell of the month grid.
type Day struct {
	Date     core.Date
	Outside  bool
	Today    bool
	Selected bool
	Count    int
	Status   services.DayStatus
}

// MonthGrid is a month laid out in weeks starting on Sunday. Leading and
// trailing cells from neighbouring months are flagged Outside.
type MonthGrid struct {
	Title string
	Weeks [][7]Day
}

// Calendar holds the visible month and the selected day.
type Calendar struct {
	source   BillSource
	month    core.Date
	selected core.Date
	logger   *log.Logger
}

// NewCalendar opens on today's month with today selected.
func NewCalendar(source BillSource, today core.Date, logger *log.Logger) *Calendar {
	return &Calendar{
		source:   source,
		month:    today.StartOfMonth(),
		selected: today,
		logger:   viewLogger(logger),
	}
}

// Month returns the first day of the visible month.
func (c *Calendar) Month() core.Date { return c.month }

func (c *Calendar) Selected() core.Date { return c.selected }

func (c *Calendar) NextMonth() { c.ShowMonth(c.month.AddMonths(1)) }

func (c *Calendar) PrevMonth() { c.ShowMonth(c.month.AddMonths(-1)) }

// ShowMonth makes the month containing d visible without changing the selection.
func (c *Calendar) ShowMonth(d core.Date) {
	c.month = d.StartOfMonth()
	c.logger.Debug("Calendar month changed", "month", c.Title())
}

// Select picks a day and shows its month.
func (c *Calendar) Select(d core.Date) {
	c.selected = d
	c.month = d.StartOfMonth()
}

func (c *Calendar) Title() string {
	return fmt.Sprintf("%s %d", time.Month(c.month.Month()), c.month.Year())
}

// SelectedBills returns every bill due on the selected day, paid or not.
func (c *Calendar) SelectedBills() []core.Bill {
	return services.ForDate(c.source.Bills(), c.selected)
}

// DueSoon tells whether the selected day carries the due-soon warning.
func (c *Calendar) DueSoon(ref core.Date) bool {
	return services.DueSoonWarning(c.source.Bills(), c.selected, ref)
}

// DaysWithBills lists the days of the visible month that have bills.
func (c *Calendar) DaysWithBills() []core.Date {
	return services.DaysWithBills(c.source.Bills(), c.month)
}

// Grid lays out the visible month, colouring each day relative to ref.
func (c *Calendar) Grid(ref core.Date) MonthGrid {
	bills := c.source.Bills()
	first := c.month
	start := first.AddDays(-int(first.Weekday()))
	last := first.EndOfMonth()

	grid := MonthGrid{Title: c.Title()}
	for day := start; !day.IsAfter(last); {
		var week [7]Day
		for i := range week {
			onDay := services.ForDate(bills, day)
			week[i] = Day{
				Date:     day,
				Outside:  !day.SameMonth(first),
				Today:    day.SameDay(ref),
				Selected: day.SameDay(c.selected),
				Count:    len(onDay),
				Status:   services.DayStatusFor(onDay, day, ref),
			}
			day = day.AddDays(1)
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}
