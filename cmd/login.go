// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
	"learndash/admincli/internal/apierrors"
	"learndash/admincli/internal/httperrors"
)

const codeAttempts = 3

// loginCmd represents the login command for two-step authentication.
// It collects the operator's email and password, then prompts for the
// 6-digit verification code that the backend emails out. Successful
// verification stores the resulting tokens in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Authenticate with email, password and a verification code",
	Long: `The login command signs in to the Learndash backend in two steps. First it
submits your email and password; the backend then emails a 6-digit code to
your address. Entering that code completes the login and stores the access
and refresh tokens securely in the OS keychain.

Type 'resend' at the code prompt to request a fresh code. If already logged
in with stored credentials, the command short-circuits.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		sess, err := newSession()
		if err != nil {
			return err
		}
		if sess.IsLoggedIn() {
			fmt.Println("Already logged in. Run 'learndash logout' first to switch accounts.")
			return nil
		}

		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		password, err := promptSecret("Password: ")
		if err != nil {
			return err
		}

		if err := withSpinner("Signing in", func() error {
			return sess.Login(ctx, email, password)
		}); err != nil {
			return presentError(err, "signing in")
		}

		pterm.Printf("A verification code was sent to %s\n", sess.MaskedEmail())

		user, err := verifyCodeLoop(ctx, sess)
		if err != nil {
			return err
		}

		name := fullName(user.FirstName, user.LastName)
		if name == "" {
			name = user.Email
		}
		pterm.Success.Printf("Welcome back, %s!\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

// verifyCodeLoop prompts for the emailed code until verification succeeds
// or the attempt budget is spent. Typing "resend" replays the login to
// issue a fresh code without consuming an attempt.
func verifyCodeLoop(ctx context.Context, sess verifier) (api.User, error) {
	for attempt := 0; attempt < codeAttempts; {
		code, err := promptThenClear("Enter the 6-digit code (or 'resend'): ")
		if err != nil {
			return api.User{}, err
		}

		if strings.EqualFold(code, "resend") {
			if err := withSpinner("Requesting a new code", func() error {
				return sess.Resend(ctx)
			}); err != nil {
				pterm.Error.Println(httperrors.Describe(err))
				continue
			}
			pterm.Printf("A new code was sent to %s\n", sess.MaskedEmail())
			continue
		}

		var user api.User
		if err := withSpinner("Verifying", func() error {
			var verifyErr error
			user, verifyErr = sess.VerifyCode(ctx, code)
			return verifyErr
		}); err != nil {
			pterm.Error.Println(httperrors.Describe(err))
			// Local validation failures (wrong length) do not consume
			// an attempt; rejected codes do.
			if !apierrors.IsValidation(err) {
				attempt++
			}
			continue
		}
		return user, nil
	}
	return api.User{}, fmt.Errorf("too many failed verification attempts; run 'learndash login' to start over")
}

// verifier is the slice of the session the code loop needs; it keeps the
// loop testable without a live backend.
type verifier interface {
	VerifyCode(ctx context.Context, code string) (api.User, error)
	Resend(ctx context.Context) error
	MaskedEmail() string
}
