package cli

import (
	"context"
	"os"

	"github.com/pranayk/reflections/internal/client/api"
)

// getSimpleText, getPassword and friends are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
	getChoice       = GetChoice
	getConfirmation = GetConfirmation
)

// Login prompts for admin credentials and tries to authenticate. The session
// credential lives in the gateway's cookie jar; all this handler keeps is the
// user name for the prompt. The password byte slice is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in")
		return nil
	}

	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	err = a.auth.Login(ctx, userName, string(password))
	for i := range password {
		password[i] = 0
	}
	if err != nil {
		printlnFn("Login failed:", api.Message(err))
		return err
	}

	a.userName = userName
	printlnFn("Logged in as", userName)
	return nil
}

// Logout ends the admin session. Local state is dropped even when the server
// call fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	a.userName = ""
	if err != nil {
		printlnFn("Logout:", api.Message(err))
		return err
	}
	printlnFn("Logged out")
	return nil
}
