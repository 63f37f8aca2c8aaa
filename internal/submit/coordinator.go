// Package submit drives batch submission of staged drafts to the ledger
// service. It is the only place where draft state, the remote client, and
// user notifications meet.
package submit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ispolnov/spendcli/internal/api"
	"github.com/ispolnov/spendcli/internal/draft"
	"github.com/ispolnov/spendcli/internal/logging"
	"github.com/ispolnov/spendcli/internal/models"
	"github.com/ispolnov/spendcli/internal/notify"
)

// createFallbackMsg is shown when a failed create carries no usable detail.
const createFallbackMsg = "Create failed."

var (
	// ErrNothingToSubmit is returned when SubmitAll runs on an empty buffer.
	ErrNothingToSubmit = errors.New("no expenses to submit")

	// ErrSubmissionInFlight is returned when a submission is already running.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// Creator is the slice of the remote client the coordinator needs.
type Creator interface {
	CreateExpenses(ctx context.Context, payloads []models.ExpensePayload) ([]models.ExpenseRecord, error)
}

// Coordinator validates the draft buffer, sends its contents as one batch
// create request, and reports the outcome through the notification channel.
//
// A failed submission never mutates the buffer, so the user can retry the
// same submit action without losing or duplicating drafts client-side.
type Coordinator struct {
	creator    Creator
	buffer     *draft.Buffer
	notifier   *notify.Channel
	log        logging.Logger
	submitting atomic.Bool
}

func NewCoordinator(creator Creator, buffer *draft.Buffer, notifier *notify.Channel, log logging.Logger) *Coordinator {
	return &Coordinator{creator: creator, buffer: buffer, notifier: notifier, log: log}
}

// Submitting reports whether a submission is currently in flight. Views use
// it to disable submit controls.
func (c *Coordinator) Submitting() bool {
	return c.submitting.Load()
}

// SubmitAll sends every staged draft as one batch. On success the buffer
// (and its editing cursor) is cleared and a success notification posted; on
// failure the buffer is untouched and an error notification posted. The
// returned error mirrors the notification for programmatic callers.
func (c *Coordinator) SubmitAll(ctx context.Context) error {
	if c.buffer.Len() == 0 {
		c.notifier.Post(notify.KindError, "No expenses to submit.")
		return ErrNothingToSubmit
	}
	return c.send(ctx, c.buffer.Payloads())
}

// SubmitQuick bypasses the buffer for a single payload, wrapping it as a
// one-element batch. Outcome handling is identical to SubmitAll; success
// clears any buffer state as a consistency measure.
func (c *Coordinator) SubmitQuick(ctx context.Context, payload models.ExpensePayload) error {
	if err := payload.Validate(); err != nil {
		c.notifier.Post(notify.KindError, err.Error())
		return err
	}
	return c.send(ctx, []models.ExpensePayload{payload})
}

// send is the single funnel to the create endpoint. The submitting latch
// guarantees at most one batch request is in flight per coordinator.
func (c *Coordinator) send(ctx context.Context, payloads []models.ExpensePayload) error {
	if !c.submitting.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	defer c.submitting.Store(false)

	records, err := c.creator.CreateExpenses(ctx, payloads)
	if err != nil {
		msg := api.ErrorMessage(err, createFallbackMsg)
		c.log.Error(ctx, "batch create failed", "count", len(payloads), "error", err)
		c.notifier.Post(notify.KindError, msg)
		return err
	}

	created := len(records)
	if created == 0 {
		created = len(payloads)
	}

	c.buffer.Clear()
	c.log.Info(ctx, "batch create succeeded", "count", created)
	c.notifier.Post(notify.KindSuccess, fmt.Sprintf("Created %d expense(s).", created))
	return nil
}
