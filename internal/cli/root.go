package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	helpAnon = "Available commands: register, login, help, exit"
	helpAuth = "Available commands: add, edit <n>, rm <n>, canceledit, clear, staged, submit, quick, " +
		"list, search, get <id>, update <id>, replace <id>, delete <id>, summary, me, dismiss, logout, exit"
)

func (a *App) status(ctx context.Context) string {
	if a.session.IsAuthenticated(ctx) {
		return "(signed in)"
	}
	return ""
}

// root runs the read-eval-print loop. Every dispatched command is a
// navigation event: the route gate re-reads the session store before any
// protected view runs, and the login/register entries force a clean
// credential state when reached while authenticated.
func (a *App) root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to spendcli (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "spend %s> ", a.status(ctx))
		line, err := a.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
		a.dispatch(ctx, cmd, args)
	}
}

// dispatch routes one command to its view.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	arg := func(usage string) (string, bool) {
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage:", usage)
			return "", false
		}
		return args[0], true
	}

	switch cmd {
	case "help":
		if a.session.IsAuthenticated(ctx) {
			fmt.Fprintln(a.out, helpAuth)
		} else {
			fmt.Fprintln(a.out, helpAnon)
		}

	case "register":
		a.registerView(ctx)

	case "login":
		a.loginView(ctx)

	case "logout":
		a.logout(ctx)

	case "dismiss":
		a.notifier.Dismiss()

	case "me":
		if a.requireAuth(ctx) {
			a.meView(ctx)
		}

	case "add":
		if a.requireAuth(ctx) {
			a.stageAdd(ctx)
		}

	case "edit":
		if v, ok := arg("edit <n>"); ok && a.requireAuth(ctx) {
			a.stageEdit(ctx, v)
		}

	case "canceledit":
		if a.requireAuth(ctx) {
			a.stageCancelEdit()
		}

	case "rm":
		if v, ok := arg("rm <n>"); ok && a.requireAuth(ctx) {
			a.stageRemove(v)
		}

	case "clear":
		if a.requireAuth(ctx) {
			a.stageClear()
		}

	case "staged":
		if a.requireAuth(ctx) {
			a.stageList()
		}

	case "submit":
		if a.requireAuth(ctx) {
			a.submitAll(ctx)
		}

	case "quick":
		if a.requireAuth(ctx) {
			a.submitQuick(ctx)
		}

	case "l", "list":
		if a.requireAuth(ctx) {
			a.listView(ctx, false)
		}

	case "search":
		if a.requireAuth(ctx) {
			a.listView(ctx, true)
		}

	case "get":
		if v, ok := arg("get <id>"); ok && a.requireAuth(ctx) {
			a.getView(ctx, v)
		}

	case "update":
		if v, ok := arg("update <id>"); ok && a.requireAuth(ctx) {
			a.updateView(ctx, v)
		}

	case "replace":
		if v, ok := arg("replace <id>"); ok && a.requireAuth(ctx) {
			a.replaceView(ctx, v)
		}

	case "delete":
		if v, ok := arg("delete <id>"); ok && a.requireAuth(ctx) {
			a.deleteView(ctx, v)
		}

	case "summary":
		if a.requireAuth(ctx) {
			a.summaryView(ctx)
		}

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}
