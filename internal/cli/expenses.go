package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ispolnov/spendcli/internal/api"
	"github.com/ispolnov/spendcli/internal/models"
	"github.com/ispolnov/spendcli/internal/notify"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid expense id %q", arg)
	}
	return id, nil
}

func (a *App) printRecord(r models.ExpenseRecord) {
	desc := "-"
	if r.Description != nil {
		desc = *r.Description
	}
	fmt.Fprintf(a.out, "%6d  %s  %8.2f %s  %-13s %s\n",
		r.ID, r.SpentAt, r.Amount, r.Currency, r.Category, desc)
}

// listFilterForm prompts for the optional list filters; every field may be
// skipped with Enter, and skipped fields are not sent at all.
func (a *App) listFilterForm() (models.ListFilter, error) {
	var filter models.ListFilter

	s, err := getSimpleText(a.reader, "Filter by category (Enter to skip)", a.out)
	if err != nil {
		return filter, err
	}
	if s != "" {
		for _, c := range models.Categories {
			if strings.EqualFold(s, string(c)) {
				filter.Category = c
			}
		}
		if filter.Category == "" {
			return filter, fmt.Errorf("unknown category %q", s)
		}
	}

	if s, err = getSimpleText(a.reader, "Min amount (Enter to skip)", a.out); err != nil {
		return filter, err
	}
	if s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid amount %q", s)
		}
		filter.MinAmount = &v
	}

	if s, err = getSimpleText(a.reader, "Max amount (Enter to skip)", a.out); err != nil {
		return filter, err
	}
	if s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid amount %q", s)
		}
		filter.MaxAmount = &v
	}

	if s, err = getSimpleText(a.reader, "From date YYYY-MM-DD (Enter to skip)", a.out); err != nil {
		return filter, err
	}
	if s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			return filter, err
		}
		filter.DateFrom = &d
	}

	if s, err = getSimpleText(a.reader, "To date YYYY-MM-DD (Enter to skip)", a.out); err != nil {
		return filter, err
	}
	if s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			return filter, err
		}
		filter.DateTo = &d
	}

	if s, err = getSimpleText(a.reader, "Search text (Enter to skip)", a.out); err != nil {
		return filter, err
	}
	filter.Query = s

	return filter, nil
}

// listView fetches and prints expenses, optionally filtered.
func (a *App) listView(ctx context.Context, withFilter bool) {
	var (
		filter models.ListFilter
		err    error
	)
	if withFilter {
		if filter, err = a.listFilterForm(); err != nil {
			a.notifier.Post(notify.KindError, err.Error())
			a.flash()
			return
		}
	}

	records, err := a.api.ListExpenses(ctx, filter)
	if err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Could not load expenses."))
		a.flash()
		return
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "No expenses found.")
		return
	}
	for _, r := range records {
		a.printRecord(r)
	}
}

// getView fetches one expense by id.
func (a *App) getView(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	record, err := a.api.GetExpense(ctx, id)
	if err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Could not load the expense."))
		a.flash()
		return
	}
	a.printRecord(*record)
}

// updateView applies a partial update: each field may be skipped, and only
// the entered ones are sent.
func (a *App) updateView(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	var patch models.ExpenseUpdate

	s, err := getSimpleText(a.reader, "New amount (Enter to keep)", a.out)
	if err != nil {
		return
	}
	if s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			fmt.Fprintf(a.out, "invalid amount %q\n", s)
			return
		}
		patch.Amount = &v
	}

	if s, err = getSimpleText(a.reader, "New currency (Enter to keep)", a.out); err != nil {
		return
	}
	if s != "" {
		c := models.Currency(strings.ToUpper(s))
		if !c.Valid() {
			fmt.Fprintf(a.out, "unknown currency %q\n", s)
			return
		}
		patch.Currency = &c
	}

	if s, err = getSimpleText(a.reader, "New category (Enter to keep)", a.out); err != nil {
		return
	}
	if s != "" {
		c := models.Category(s)
		if !c.Valid() {
			fmt.Fprintf(a.out, "unknown category %q\n", s)
			return
		}
		patch.Category = &c
	}

	if s, err = getSimpleText(a.reader, "New date YYYY-MM-DD (Enter to keep)", a.out); err != nil {
		return
	}
	if s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		patch.SpentAt = &d
	}

	if s, err = getSimpleText(a.reader, "New description (Enter to keep)", a.out); err != nil {
		return
	}
	if s != "" {
		patch.Description = &s
	}

	record, err := a.api.UpdateExpense(ctx, id, patch)
	if err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Update failed."))
		a.flash()
		return
	}
	a.notifier.Post(notify.KindSuccess, "Expense updated.")
	a.flash()
	a.printRecord(*record)
}

// replaceView overwrites the full record with a freshly entered payload.
func (a *App) replaceView(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	payload, err := getExpensePayload(a.reader, a.out)
	if err != nil {
		a.notifier.Post(notify.KindError, err.Error())
		a.flash()
		return
	}

	record, err := a.api.ReplaceExpense(ctx, id, payload)
	if err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Replace failed."))
		a.flash()
		return
	}
	a.notifier.Post(notify.KindSuccess, "Expense replaced.")
	a.flash()
	a.printRecord(*record)
}

// deleteView removes one expense on the server.
func (a *App) deleteView(ctx context.Context, arg string) {
	id, err := parseID(arg)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if err := a.api.DeleteExpense(ctx, id); err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Delete failed."))
		a.flash()
		return
	}
	a.notifier.Post(notify.KindSuccess, fmt.Sprintf("Deleted expense %d.", id))
	a.flash()
}

// summaryView prints per-category/currency totals for a date window,
// defaulting to the last 30 days.
func (a *App) summaryView(ctx context.Context) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -30)

	if s, err := getSimpleText(a.reader, "Start date YYYY-MM-DD (Enter for 30 days ago)", a.out); err == nil && s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		start = d.Time
	}
	if s, err := getSimpleText(a.reader, "End date YYYY-MM-DD (Enter for today)", a.out); err == nil && s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		end = d.Time
	}

	summary, err := a.api.Summary(ctx, start, end)
	if err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Could not load the summary."))
		a.flash()
		return
	}

	if len(summary) == 0 {
		fmt.Fprintln(a.out, "No expenses in this period.")
		return
	}

	// composite "Category_Currency" keys, printed in stable order
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%-25s %10.2f\n", k, summary[k])
	}
}
