// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
)

var resetToken string

// forgotPasswordCmd asks the backend to email a password reset link.
var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Request a password reset email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		var res api.ForgotPasswordResult
		if err := withSpinner("Requesting reset email", func() error {
			var reqErr error
			res, reqErr = sess.RequestPasswordReset(cmd.Context(), args[0])
			return reqErr
		}); err != nil {
			return presentError(err, "requesting the reset email")
		}

		if res.Message != "" {
			pterm.Println(res.Message)
		} else {
			pterm.Println("If the address is registered, a reset email is on its way.")
		}
		return nil
	},
}

// resetPasswordCmd redeems a reset token for a new password. The token
// comes from the link in the reset email.
var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password using a reset token",
	Long: `The reset-password command completes a password reset. Pass the token from
the reset email via --token; the new password is prompted for without echo.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		newPassword, err := promptSecret("New password (min 8 characters): ")
		if err != nil {
			return err
		}

		if err := withSpinner("Resetting password", func() error {
			return sess.ConfirmPasswordReset(cmd.Context(), resetToken, newPassword)
		}); err != nil {
			return presentError(err, "resetting the password")
		}

		pterm.Success.Println("Password updated. You can now log in with the new password.")
		return nil
	},
}

func init() {
	resetPasswordCmd.Flags().StringVar(&resetToken, "token", "", "Reset token from the password reset email")
	rootCmd.AddCommand(forgotPasswordCmd)
	rootCmd.AddCommand(resetPasswordCmd)
}
