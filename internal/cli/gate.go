package cli

import (
	"context"
	"fmt"
)

// requireAuth is the route gate for protected views. It re-reads the
// session store on every invocation (there is no cached session state), so
// the authenticated/unauthenticated decision is never staler than the last
// command. When unauthenticated it redirects to the login view instead of
// running the requested one, without touching the network.
func (a *App) requireAuth(ctx context.Context) bool {
	if a.session.IsAuthenticated(ctx) {
		return true
	}
	fmt.Fprintln(a.out, "You are not signed in. Redirecting to login.")
	a.loginView(ctx)
	return false
}

// enterAuthEntry runs when the user navigates to the login or register
// view. An existing session is never silently overwritten by a new login
// attempt: the gate clears the store first, forcing a clean credential
// state before the form renders.
func (a *App) enterAuthEntry(ctx context.Context) {
	if !a.session.IsAuthenticated(ctx) {
		return
	}
	if err := a.session.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
		return
	}
	fmt.Fprintln(a.out, "Previous session cleared; please sign in again.")
}
