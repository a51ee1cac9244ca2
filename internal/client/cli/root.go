package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// Root runs the REPL. A persisted session is restored before the first
// prompt; an expired or corrupt snapshot silently starts anonymous.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to memopad (type 'help' for commands)")

	if a.session.Restore(ctx) {
		if u := a.session.User(); u != nil {
			fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
		}
	}

	for {
		fmt.Fprintf(a.out, "memo %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			break
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.session.IsAuthenticated() {
				fmt.Fprintln(a.out, "Available commands: list, new, show <id>, templates, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, register, list, show <id>, templates, exit")
			}
		case "login":
			a.login(ctx)
		case "register":
			a.register(ctx)
		case "logout":
			a.logout(ctx)
		case "list":
			a.list(ctx)
		case "new":
			a.createMemo(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: show <id>")
				continue
			}
			a.show(args[0])
		case "templates":
			a.listTemplates(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
