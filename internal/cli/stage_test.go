package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ispolnov/spendcli/internal/models"
	"github.com/ispolnov/spendcli/internal/notify"
)

// expense form answers: amount, currency, category, date, description
const formLines = "12.50\nUSD\nFood\n2024-01-05\ncoffee\n"

func authedApp(t *testing.T, client *fakeAPI, input string) *App {
	t.Helper()
	app, store, _ := newTestApp(t, client, input)
	require.NoError(t, store.Save(context.Background(), "tok"))
	return app
}

func TestStageAddAppendsDraft(t *testing.T) {
	ctx := context.Background()
	app := authedApp(t, &fakeAPI{}, formLines)

	app.dispatch(ctx, "add", nil)

	require.Equal(t, 1, app.buffer.Len())
	item := app.buffer.Items()[0]
	assert.Equal(t, 12.50, item.Payload.Amount)
	assert.Equal(t, models.CategoryFood, item.Payload.Category)
	assert.Equal(t, "2024-01-05", item.Payload.SpentAt.String())
	require.NotNil(t, item.Payload.Description)
	assert.Equal(t, "coffee", *item.Payload.Description)

	n := app.notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, "Expense added to list.", n.Text)
}

func TestStageAddRejectsBadAmount(t *testing.T) {
	ctx := context.Background()
	app := authedApp(t, &fakeAPI{}, "zero\n")

	app.dispatch(ctx, "add", nil)

	assert.Zero(t, app.buffer.Len())
	n := app.notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, notify.KindError, n.Kind)
}

func TestStageAddBlankDescriptionStoredAsAbsent(t *testing.T) {
	ctx := context.Background()
	app := authedApp(t, &fakeAPI{}, "5\n\nOther\n2024-02-02\n\n")

	app.dispatch(ctx, "add", nil)

	require.Equal(t, 1, app.buffer.Len())
	item := app.buffer.Items()[0]
	assert.Equal(t, models.CurrencyUSD, item.Payload.Currency, "empty currency defaults to USD")
	assert.Nil(t, item.Payload.Description)
}

func TestStageEditReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	// first form stages the draft, second form re-enters it
	app := authedApp(t, &fakeAPI{}, formLines+"40\nEUR\nTransport\n2024-01-06\n\n")

	app.dispatch(ctx, "add", nil)
	firstID := app.buffer.Items()[0].ID

	app.dispatch(ctx, "edit", []string{"1"})

	require.Equal(t, 1, app.buffer.Len())
	item := app.buffer.Items()[0]
	assert.Equal(t, firstID, item.ID, "id survives the edit")
	assert.Equal(t, 40.0, item.Payload.Amount)
	assert.Equal(t, models.CurrencyEUR, item.Payload.Currency)
	assert.Empty(t, app.buffer.EditingID(), "cursor cleared after a completed edit")
}

func TestStageRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	app := authedApp(t, &fakeAPI{}, formLines+formLines)

	app.dispatch(ctx, "add", nil)
	app.dispatch(ctx, "add", nil)
	require.Equal(t, 2, app.buffer.Len())

	app.dispatch(ctx, "rm", []string{"1"})
	assert.Equal(t, 1, app.buffer.Len())

	app.dispatch(ctx, "clear", nil)
	assert.Zero(t, app.buffer.Len())
}

func TestSubmitHappyPath(t *testing.T) {
	ctx := context.Background()
	client := &fakeAPI{createRet: []models.ExpenseRecord{{ID: 1}, {ID: 2}}}
	app := authedApp(t, client, formLines+"40\nEUR\nTransport\n2024-01-06\n\n")

	app.dispatch(ctx, "add", nil)
	app.dispatch(ctx, "add", nil)
	app.dispatch(ctx, "submit", nil)

	assert.Contains(t, client.calls, "create")
	assert.Zero(t, app.buffer.Len())

	n := app.notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, notify.KindSuccess, n.Kind)
	assert.Equal(t, "Created 2 expense(s).", n.Text)
}

func TestSubmitEmptyBufferPostsError(t *testing.T) {
	ctx := context.Background()
	client := &fakeAPI{}
	app := authedApp(t, client, "")

	app.dispatch(ctx, "submit", nil)

	assert.NotContains(t, client.calls, "create")
	n := app.notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, notify.KindError, n.Kind)
	assert.Equal(t, "No expenses to submit.", n.Text)
}

func TestQuickSubmitBypassesBuffer(t *testing.T) {
	ctx := context.Background()
	client := &fakeAPI{createRet: []models.ExpenseRecord{{ID: 9}}}
	app := authedApp(t, client, formLines)

	app.dispatch(ctx, "quick", nil)

	assert.Contains(t, client.calls, "create")
	assert.Zero(t, app.buffer.Len())
	n := app.notifier.Current()
	require.NotNil(t, n)
	assert.Equal(t, "Created 1 expense(s).", n.Text)
}

func TestDismissClearsNotification(t *testing.T) {
	ctx := context.Background()
	app := authedApp(t, &fakeAPI{}, "")

	app.notifier.Post(notify.KindSuccess, "hello")
	app.dispatch(ctx, "dismiss", nil)

	assert.Nil(t, app.notifier.Current())
}
