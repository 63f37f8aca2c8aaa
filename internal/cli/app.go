// Package cli hosts the interactive terminal views of the expense client:
// authentication, draft staging, batch submission, and the read-only ledger
// views. Access to protected views is gated on the session store.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/ispolnov/spendcli/internal/api"
	"github.com/ispolnov/spendcli/internal/config"
	"github.com/ispolnov/spendcli/internal/draft"
	"github.com/ispolnov/spendcli/internal/localdb"
	"github.com/ispolnov/spendcli/internal/logging"
	"github.com/ispolnov/spendcli/internal/notify"
	"github.com/ispolnov/spendcli/internal/session"
	"github.com/ispolnov/spendcli/internal/submit"
)

// App wires the client together: one session store shared by the dispatcher
// and the route gate, and one draft buffer owned by the staging view.
type App struct {
	cfg         *config.Config
	api         api.Client
	session     session.Store
	buffer      *draft.Buffer
	coordinator *submit.Coordinator
	notifier    *notify.Channel
	log         logging.Logger

	reader *bufio.Reader
	out    io.Writer

	db *sql.DB
}

// NewApp builds a fully wired App from configuration. When a local database
// path is configured the session survives restarts; otherwise it lives in
// memory for the duration of the process.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	var (
		store session.Store
		db    *sql.DB
	)

	if cfg.LocalDBPath != "" {
		opened, err := localdb.Open(ctx, cfg.LocalDBPath)
		if err != nil {
			return nil, err
		}
		db = opened
		store = session.NewSQLiteStore(db)
	} else {
		store = session.NewMemoryStore()
	}

	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, store)
	return newApp(cfg, client, store, log, bufio.NewReader(os.Stdin), os.Stdout, db), nil
}

// newApp is the dependency-injected constructor used by NewApp and tests.
func newApp(cfg *config.Config, client api.Client, store session.Store, log logging.Logger, reader *bufio.Reader, out io.Writer, db *sql.DB) *App {
	buffer := draft.NewBuffer()
	notifier := notify.NewChannel(cfg.NotificationTTL)

	return &App{
		cfg:         cfg,
		api:         client,
		session:     store,
		buffer:      buffer,
		coordinator: submit.NewCoordinator(client, buffer, notifier, log),
		notifier:    notifier,
		log:         log,
		reader:      reader,
		out:         out,
		db:          db,
	}
}

// Close releases the local database handle, if any.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.root(ctx)
}
