package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"bills/internal/core"
	"bills/internal/log"
	"bills/internal/services"
	"bills/internal/storage"
	"bills/internal/views"
)

var errUsage = errors.New("usage error")

const usage = `usage: bills <command> [flags]

commands:
  list                         overview grouped by due status (default)
  calendar [-month YYYY-MM] [-day YYYY-MM-DD]
  add -name N -amount A -due YYYY-MM-DD [-category C] [-recurring monthly|yearly|none] [-notes T]
  edit <id> [same flags as add]
  pay <id>                     toggle paid
  rm <id>                      delete a bill
  reset                        forget every saved bill
`

type app struct {
	svc          *services.BillService
	store        storage.SnapshotStore
	out          io.Writer
	today        core.Date
	reminderDays int
	logger       *log.Logger
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	cmd := string(views.ModeList)
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case string(views.ModeList):
		return a.list()
	case string(views.ModeCalendar):
		return a.calendar(args)
	case "add":
		return a.add(ctx, args)
	case "edit":
		return a.edit(ctx, args)
	case "pay":
		return a.pay(ctx, args)
	case "rm":
		return a.remove(ctx, args)
	case "reset":
		return a.reset(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (a *app) list() error {
	lv := views.NewListView(a.svc, a.reminderDays, a.logger)
	renderDashboard(a.out, lv.Dashboard(a.today))
	return nil
}

func (a *app) calendar(args []string) error {
	fs := a.flagSet("calendar")
	month := fs.String("month", "", "month to show, YYYY-MM")
	day := fs.String("day", "", "day to select, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cal := views.NewCalendar(a.svc, a.today, a.logger)
	if *month != "" {
		t, err := time.Parse("2006-01", *month)
		if err != nil {
			return &core.ValidationError{Field: "month", Err: core.ErrInvalidDate}
		}
		cal.ShowMonth(core.DateOf(t))
	}
	if *day != "" {
		d, err := core.ParseDate(*day)
		if err != nil {
			return &core.ValidationError{Field: "day", Err: err}
		}
		cal.Select(d)
	}

	renderCalendar(a.out, cal, a.today)
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	fs := a.flagSet("add")
	df := bindDraftFlags(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	draft := core.Draft{Category: core.Other}
	if err := df.apply(fs, &draft); err != nil {
		return err
	}
	b, err := a.svc.Add(ctx, draft)
	if err != nil && !core.IsPersistence(err) {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s) due %s\n", b.Name, b.ID, b.DueDate)
	return err
}

func (a *app) edit(ctx context.Context, args []string) error {
	id, rest, err := idArg("edit", args)
	if err != nil {
		return err
	}
	current, err := a.svc.Get(id)
	if err != nil {
		return err
	}

	fs := a.flagSet("edit")
	df := bindDraftFlags(fs)
	if err := fs.Parse(rest); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	draft := current.Draft()
	if err := df.apply(fs, &draft); err != nil {
		return err
	}
	b, err := a.svc.Update(ctx, id, draft)
	if err != nil && !core.IsPersistence(err) {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s\n", b.Name)
	return err
}

func (a *app) pay(ctx context.Context, args []string) error {
	id, _, err := idArg("pay", args)
	if err != nil {
		return err
	}
	_, err = a.svc.TogglePaid(ctx, id)
	return err
}

func (a *app) remove(ctx context.Context, args []string) error {
	id, _, err := idArg("rm", args)
	if err != nil {
		return err
	}
	b, err := a.svc.Get(id)
	if err != nil {
		return err
	}
	if err := a.svc.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", b.Name)
	return nil
}

func (a *app) reset(ctx context.Context) error {
	d, ok := a.store.(storage.Deleter)
	if !ok {
		return fmt.Errorf("backend %T cannot delete its snapshot", a.store)
	}
	if err := d.Delete(ctx); err != nil {
		return &core.PersistenceError{Op: "delete", Err: err}
	}
	a.logger.InfoContext(ctx, "Saved bills removed", log.FieldOperation, "reset")
	fmt.Fprintln(a.out, "Saved bills removed")
	return nil
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func idArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("%w: %s needs a bill id", errUsage, cmd)
	}
	return args[0], args[1:], nil
}

// draftFlags are the bill fields settable from the command line. Only flags
// given explicitly are applied, so edit keeps every other field.
type draftFlags struct {
	name      *string
	amount    *string
	due       *string
	category  *string
	recurring *string
	notes     *string
}

func bindDraftFlags(fs *flag.FlagSet) draftFlags {
	return draftFlags{
		name:      fs.String("name", "", "bill name"),
		amount:    fs.String("amount", "", "amount, e.g. 15.99"),
		due:       fs.String("due", "", "due date, YYYY-MM-DD"),
		category:  fs.String("category", "", "one of "+categoryList()),
		recurring: fs.String("recurring", "", "monthly, yearly or none"),
		notes:     fs.String("notes", "", "free text"),
	}
}

func (f draftFlags) apply(fs *flag.FlagSet, d *core.Draft) error {
	var err error
	fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "name":
			d.Name = *f.name
		case "notes":
			d.Notes = *f.notes
		case "amount":
			var m core.Money
			if m, err = core.ParseMoney(*f.amount); err != nil {
				err = &core.ValidationError{Field: "amount", Err: err}
				return
			}
			d.Amount = m
		case "due":
			var due core.Date
			if due, err = core.ParseDate(*f.due); err != nil {
				err = &core.ValidationError{Field: "dueDate", Err: err}
				return
			}
			d.DueDate = due
		case "category":
			var c core.Category
			if c, err = core.ParseCategory(*f.category); err != nil {
				err = &core.ValidationError{Field: "category", Err: err}
				return
			}
			d.Category = c
		case "recurring":
			if strings.EqualFold(strings.TrimSpace(*f.recurring), "none") {
				d.IsRecurring, d.RecurringType = false, ""
				return
			}
			var r core.RecurringType
			if r, err = core.ParseRecurringType(*f.recurring); err != nil {
				err = &core.ValidationError{Field: "recurringType", Err: err}
				return
			}
			d.IsRecurring, d.RecurringType = true, r
		}
	})
	return err
}

func categoryList() string {
	names := make([]string, 0, len(core.Categories()))
	for _, c := range core.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
