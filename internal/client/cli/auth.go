package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for a username, email and password and attempts to
// create a new account. A successful registration also signs the user in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Register(ctx, userName, email, password)
	if err != nil {
		printlnFn("Registration unsuccessful:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// credential is persisted locally, so the session survives a restart.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		printlnFn("Login unsuccessful:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", user.Username, user.Role))
	return nil
}

// Logout drops the local session. No server call is made.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn("Logout unsuccessful:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current session: user, role, and when the stored token
// expires (when that can be read off the token).
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.currentUser()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> role=%s", user.Username, user.Email, user.Role))
	if exp, ok := a.authService.TokenExpiry(ctx); ok {
		printlnFn("Token expires:", exp.Format(time.RFC3339))
	}
	return nil
}
