package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bills/internal/core"
	"bills/internal/services"
	"bills/internal/views"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD54A"))
	paidStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	billsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
	selectStyle  = lipgloss.NewStyle().Reverse(true).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD54A")).Bold(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderDashboard(w io.Writer, d views.Dashboard) {
	s := d.Summary
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		summaryCard("Due today", s.DueToday, todayStyle),
		summaryCard("Upcoming", s.Upcoming, billsStyle),
		summaryCard("Overdue", s.Overdue, overdueStyle),
		summaryCard("Paid this month", s.PaidThisMonth, paidStyle),
	)
	fmt.Fprintln(w, titleStyle.Render("Bills for "+d.Ref.Format("January 2, 2006")))
	fmt.Fprintln(w, cards)

	if len(d.DueSoon) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d bill(s) due in the next few days", len(d.DueSoon))))
	}

	renderSection(w, "Overdue", d.Overdue, d.Ref, "No overdue bills.")
	renderSection(w, "Upcoming", d.Upcoming, d.Ref, "Nothing due in the next 30 days.")
	renderSection(w, "Paid", d.Paid, d.Ref, "No paid bills yet.")

	if len(d.ByCategory) > 0 {
		fmt.Fprintln(w, titleStyle.Render("By category"))
		for _, ca := range d.ByCategory {
			fmt.Fprintf(w, "  %s %s %s\n",
				labelStyle.Width(16).Render(string(ca.Category)),
				valueStyle.Width(12).Align(lipgloss.Right).Render(ca.Amount.String()),
				mutedStyle.Render(fmt.Sprintf("(%d)", ca.Count)))
		}
	}
}

func summaryCard(label string, b core.BucketTotal, accent lipgloss.Style) string {
	body := labelStyle.Render(label) + "\n" +
		accent.Bold(true).Render(b.Total.String()) + "\n" +
		mutedStyle.Render(fmt.Sprintf("%d bill(s)", b.Count))
	return boxStyle.BorderForeground(accent.GetForeground()).Width(18).Render(body)
}

func renderSection(w io.Writer, title string, bills []core.Bill, ref core.Date, empty string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	if len(bills) == 0 {
		fmt.Fprintln(w, "  "+mutedStyle.Render(empty))
		return
	}
	for _, b := range bills {
		fmt.Fprintln(w, "  "+billLine(b, ref))
	}
}

func billLine(b core.Bill, ref core.Date) string {
	var parts []string
	parts = append(parts,
		statusBadge(services.StatusOf(b, ref)),
		valueStyle.Width(20).Render(b.Name),
		labelStyle.Width(11).Align(lipgloss.Right).Render(b.Amount.String()),
		labelStyle.Render(b.DueDate.String()),
		mutedStyle.Render(string(b.Category)),
	)
	if b.IsRecurring {
		parts = append(parts, mutedStyle.Render("↻ "+string(b.RecurringType)))
	}
	if b.Notes != "" {
		parts = append(parts, mutedStyle.Italic(true).Render(b.Notes))
	}
	parts = append(parts, mutedStyle.Render("["+b.ID+"]"))
	return strings.Join(parts, " ")
}

func statusBadge(s services.BillStatus) string {
	style := labelStyle
	switch s {
	case services.StatusPaid:
		style = paidStyle
	case services.StatusOverdue:
		style = overdueStyle
	case services.StatusDueToday:
		style = todayStyle
	}
	return style.Width(10).Render(string(s))
}

func dayStyle(d views.Day) lipgloss.Style {
	var st lipgloss.Style
	switch d.Status {
	case services.DayOverdue:
		st = overdueStyle
	case services.DayDueToday:
		st = todayStyle
	case services.DayHasBills:
		st = billsStyle
	default:
		st = lipgloss.NewStyle()
	}
	if d.Outside {
		st = st.Faint(true)
	}
	if d.Today {
		st = st.Underline(true)
	}
	if d.Selected {
		st = st.Inherit(selectStyle)
	}
	return st
}

func renderCalendar(w io.Writer, cal *views.Calendar, ref core.Date) {
	grid := cal.Grid(ref)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(grid.Title) + "\n")
	for _, name := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		sb.WriteString(labelStyle.Width(4).Render(name))
	}
	sb.WriteString("\n")
	for _, week := range grid.Weeks {
		for _, d := range week {
			mark := " "
			if d.Count > 0 {
				mark = "•"
			}
			sb.WriteString(dayStyle(d).Render(fmt.Sprintf("%2d", d.Date.Day())) + mark + " ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(w, boxStyle.Render(strings.TrimRight(sb.String(), "\n")))
	fmt.Fprintln(w)

	sel := cal.Selected()
	fmt.Fprintln(w, titleStyle.Render("Bills for "+sel.Format("January 2, 2006")))
	if cal.DueSoon(ref) {
		fmt.Fprintln(w, warnStyle.Render("Due soon"))
	}
	bills := cal.SelectedBills()
	if len(bills) == 0 {
		fmt.Fprintln(w, "  "+mutedStyle.Render("No bills due on this date."))
		return
	}
	for _, b := range bills {
		fmt.Fprintln(w, "  "+billLine(b, ref))
	}
}
