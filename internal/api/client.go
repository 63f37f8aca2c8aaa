// Package api speaks to the remote expense ledger service. It owns the
// authenticated request dispatch (bearer token injection from the session
// store) and the remapping of the service's failure bodies into typed errors.
package api

import (
	"context"
	"time"

	"github.com/ispolnov/spendcli/internal/models"
)

// Client is the full surface of the remote ledger service as the CLI
// consumes it. The concrete implementation is HTTPClient; tests substitute
// fakes.
type Client interface {
	// Register creates a new account.
	Register(ctx context.Context, email, password string) error

	// Login exchanges credentials for an access token. The token is opaque;
	// persisting it is the caller's concern.
	Login(ctx context.Context, email, password string) (string, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (*models.User, error)

	ListExpenses(ctx context.Context, filter models.ListFilter) ([]models.ExpenseRecord, error)
	GetExpense(ctx context.Context, id int64) (*models.ExpenseRecord, error)

	// CreateExpenses creates a batch of expenses in one request. The body is
	// always a JSON array, even for a single payload; that is the service's
	// wire contract, not a convenience.
	CreateExpenses(ctx context.Context, payloads []models.ExpensePayload) ([]models.ExpenseRecord, error)

	// UpdateExpense applies a partial merge; unset fields are left alone.
	UpdateExpense(ctx context.Context, id int64, patch models.ExpenseUpdate) (*models.ExpenseRecord, error)

	// ReplaceExpense overwrites the full record.
	ReplaceExpense(ctx context.Context, id int64, payload models.ExpensePayload) (*models.ExpenseRecord, error)

	DeleteExpense(ctx context.Context, id int64) error

	// Summary returns per-"Category_Currency" totals for the given window.
	Summary(ctx context.Context, start, end time.Time) (map[string]float64, error)
}
