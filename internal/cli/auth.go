package cli

import (
	"context"
	"fmt"

	"github.com/ispolnov/spendcli/internal/api"
	"github.com/ispolnov/spendcli/internal/notify"
)

// getSimpleText and getPassword are indirections used by tests to avoid
// touching a real terminal.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginView renders the login form and, on success, saves the issued token
// to the session store.
func (a *App) loginView(ctx context.Context) {
	a.enterAuthEntry(ctx)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if email == "" || password == "" {
		a.notifier.Post(notify.KindError, "Please enter email and password.")
		a.flash()
		return
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Login failed. Try again."))
		a.flash()
		return
	}

	if err := a.session.Save(ctx, token); err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err)
		a.notifier.Post(notify.KindError, "Could not save your session.")
		a.flash()
		return
	}

	a.notifier.Post(notify.KindSuccess, "Welcome back!")
	a.flash()
}

// registerView renders the registration form.
func (a *App) registerView(ctx context.Context) {
	a.enterAuthEntry(ctx)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if email == "" || password == "" {
		a.notifier.Post(notify.KindError, "Please enter email and password.")
		a.flash()
		return
	}

	if err := a.api.Register(ctx, email, password); err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Registration failed. Try again."))
		a.flash()
		return
	}

	a.notifier.Post(notify.KindSuccess, "Account created. You can now log in.")
	a.flash()
}

// logout destroys the stored credential. Local only; the server keeps no
// session state to tear down.
func (a *App) logout(ctx context.Context) {
	if err := a.session.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
		return
	}
	fmt.Fprintln(a.out, "Signed out.")
}

// meView shows the authenticated profile.
func (a *App) meView(ctx context.Context) {
	user, err := a.api.Me(ctx)
	if err != nil {
		a.notifier.Post(notify.KindError, api.ErrorMessage(err, "Could not load your profile."))
		a.flash()
		return
	}
	fmt.Fprintf(a.out, "id: %d\nemail: %s\nactive: %t\n", user.ID, user.Email, user.IsActive)
}
