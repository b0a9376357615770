// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
)

// registerCmd represents the register command for creating a new account.
// Registration does not sign the operator in; the new account still has to
// go through the normal login flow once approved.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new admin account",
	Long: `The register command creates a new account on the Learndash backend.
It prompts for name, email and password, validates them locally, and submits
the registration. New accounts may require approval before they can log in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		firstName, err := promptLine("First name: ")
		if err != nil {
			return err
		}
		lastName, err := promptLine("Last name: ")
		if err != nil {
			return err
		}
		email, err := promptLine("Email: ")
		if err != nil {
			return err
		}
		password, err := promptSecret("Password (min 8 characters): ")
		if err != nil {
			return err
		}

		var res api.RegisterResult
		if err := withSpinner("Creating account", func() error {
			var regErr error
			res, regErr = sess.Register(cmd.Context(), firstName, lastName, email, password)
			return regErr
		}); err != nil {
			return presentError(err, "creating the account")
		}

		pterm.Success.Printf("Account created for %s\n", res.Email)
		pterm.Println("Run 'learndash login' once your account is approved.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
