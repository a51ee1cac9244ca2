package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/memopad/internal/client/models"
)

// genericAuthFailure is what the user sees on a failed login/register;
// the underlying cause stays in the logs.
const genericAuthFailure = "Authentication failed. Please check your details and try again."

func (a *App) login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	cred := models.Credential{Username: username, Password: password}
	if err := cred.Validate(); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if !a.session.Login(ctx, cred) {
		fmt.Fprintln(a.out, genericAuthFailure)
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", username)
}

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	data := models.RegisterData{Username: username, Email: email, Password: password}
	if err := data.Validate(); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	if !a.session.Register(ctx, data) {
		fmt.Fprintln(a.out, genericAuthFailure)
		return
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", username)
}

func (a *App) logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}
