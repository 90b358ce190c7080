package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"beervault/internal/common"
	"beervault/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and attempts to create
// an account. Validation failures are shown inline; the user stays where
// they were.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
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
	defer common.WipeByteArray(password)

	draft := models.AccountDraft{Username: username, Email: email, Password: string(password)}
	acct, err := a.coord.RegisterAccount(ctx, draft)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			fmt.Println(err.Error())
			return nil
		}
		return err
	}

	fmt.Printf("Welcome, %s! You can log in now.\n", acct.Username)
	return nil
}

// Login prompts for credentials and authenticates. An exact mismatch shows
// the inline invalid-credentials message; the session is remembered only if
// the user asks for it.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetYesNo(a.reader, "Remember me?", os.Stdout)
	if err != nil {
		return err
	}

	acct, err := a.coord.Login(ctx, email, string(password), remember)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Println("Invalid email or password")
			return nil
		}
		return err
	}

	fmt.Printf("Logged in as %s %s\n", acct.AvatarToken, acct.Username)
	return nil
}

// Logout clears the active and remembered session.
func (a *App) Logout(ctx context.Context) error {
	a.coord.Logout(ctx)
	fmt.Println("Logged out")
	return nil
}

// requireSession returns the signed-in account or prints a hint.
func (a *App) requireSession() *models.Account {
	sess := a.coord.State().Session()
	if sess == nil {
		fmt.Println("Please log in first")
	}
	return sess
}
