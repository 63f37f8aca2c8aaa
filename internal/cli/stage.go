package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ispolnov/spendcli/internal/notify"
)

// flash prints the current notification, if any. Notifications also expire
// on their own timer; this just surfaces them in a line-oriented UI.
func (a *App) flash() {
	n := a.notifier.Current()
	if n == nil {
		return
	}
	fmt.Fprintf(a.out, "[%s] %s\n", n.Kind, n.Text)
}

// resolveIndex maps a 1-based position from the staged listing to the
// underlying draft id.
func (a *App) resolveIndex(arg string) (string, bool) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 || idx > a.buffer.Len() {
		fmt.Fprintf(a.out, "No staged expense #%s. Run 'staged' to see positions.\n", arg)
		return "", false
	}
	return a.buffer.Items()[idx-1].ID, true
}

// stageAdd renders the expense form and appends the result to the draft
// buffer. When an edit is in progress the form replaces that draft instead.
func (a *App) stageAdd(ctx context.Context) {
	payload, err := getExpensePayload(a.reader, a.out)
	if err != nil {
		a.notifier.Post(notify.KindError, err.Error())
		a.flash()
		return
	}

	if editing := a.buffer.EditingID(); editing != "" {
		if err := a.buffer.Update(editing, payload); err != nil {
			a.notifier.Post(notify.KindError, err.Error())
			a.flash()
			return
		}
		a.buffer.CancelEdit()
		a.notifier.Post(notify.KindSuccess, "Expense updated.")
		a.flash()
		return
	}

	if _, err := a.buffer.Add(payload); err != nil {
		a.notifier.Post(notify.KindError, err.Error())
		a.flash()
		return
	}
	a.notifier.Post(notify.KindSuccess, "Expense added to list.")
	a.flash()
}

// stageEdit pre-fills the form with draft #n and re-runs it.
func (a *App) stageEdit(ctx context.Context, arg string) {
	id, ok := a.resolveIndex(arg)
	if !ok {
		return
	}

	payload, ok := a.buffer.BeginEdit(id)
	if !ok {
		return
	}

	desc := ""
	if payload.Description != nil {
		desc = *payload.Description
	}
	fmt.Fprintf(a.out, "Editing: %.2f %s %s on %s (%s)\nRe-enter the expense:\n",
		payload.Amount, payload.Currency, payload.Category, payload.SpentAt, desc)
	a.stageAdd(ctx)
}

// stageCancelEdit abandons an in-progress edit without changing the buffer.
func (a *App) stageCancelEdit() {
	a.buffer.CancelEdit()
	fmt.Fprintln(a.out, "Edit cancelled.")
}

// stageRemove drops draft #n from the buffer.
func (a *App) stageRemove(arg string) {
	id, ok := a.resolveIndex(arg)
	if !ok {
		return
	}
	a.buffer.Remove(id)
	a.notifier.Post(notify.KindSuccess, "Removed from list.")
	a.flash()
}

// stageClear empties the whole buffer.
func (a *App) stageClear() {
	a.buffer.Clear()
	a.notifier.Post(notify.KindSuccess, "Cleared the list.")
	a.flash()
}

// stageList prints the staged drafts in submission order.
func (a *App) stageList() {
	items := a.buffer.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No staged expenses. Use 'add' to stage one.")
		return
	}

	fmt.Fprintf(a.out, "Staged expenses (%d):\n", len(items))
	for i, item := range items {
		marker := " "
		if item.ID == a.buffer.EditingID() {
			marker = "*"
		}
		desc := "-"
		if item.Payload.Description != nil {
			desc = *item.Payload.Description
		}
		fmt.Fprintf(a.out, "%s %2d. %s  %8.2f %s  %-13s %s\n",
			marker, i+1, item.Payload.SpentAt, item.Payload.Amount, item.Payload.Currency, item.Payload.Category, desc)
	}
}

// submitAll sends the whole staged list as one batch.
func (a *App) submitAll(ctx context.Context) {
	if a.coordinator.Submitting() {
		fmt.Fprintln(a.out, "A submission is already in progress.")
		return
	}
	fmt.Fprintf(a.out, "Submitting %d expense(s)...\n", a.buffer.Len())
	_ = a.coordinator.SubmitAll(ctx)
	a.flash()
}

// submitQuick runs the form once and sends the result immediately as a
// one-element batch, bypassing the buffer.
func (a *App) submitQuick(ctx context.Context) {
	if a.coordinator.Submitting() {
		fmt.Fprintln(a.out, "A submission is already in progress.")
		return
	}
	payload, err := getExpensePayload(a.reader, a.out)
	if err != nil {
		a.notifier.Post(notify.KindError, err.Error())
		a.flash()
		return
	}
	_ = a.coordinator.SubmitQuick(ctx, payload)
	a.flash()
}
