// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
)

var (
	updateFirstName string
	updateLastName  string
	updateEmail     string
)

// profileCmd groups the operations on the authenticated operator's own
// account. Running it without a subcommand shows the profile.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and manage your own account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return profileShowCmd.RunE(cmd, args)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var user api.User
		if err := withSpinner("Fetching profile", func() error {
			var getErr error
			user, getErr = sess.API().GetProfile(cmd.Context())
			return getErr
		}); err != nil {
			return presentError(err, "fetching your profile")
		}

		printProfile(user)
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your name or email",
	Long: `Update your profile fields. Only the flags you pass are changed; omitted
fields keep their current value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}
		if updateFirstName == "" && updateLastName == "" && updateEmail == "" {
			return cmd.Help()
		}

		update := api.ProfileUpdate{
			FirstName: updateFirstName,
			LastName:  updateLastName,
			Email:     updateEmail,
		}
		var user api.User
		if err := withSpinner("Updating profile", func() error {
			var updErr error
			user, updErr = sess.API().UpdateProfile(cmd.Context(), update)
			return updErr
		}); err != nil {
			return presentError(err, "updating your profile")
		}

		pterm.Success.Println("Profile updated")
		printProfile(user)
		return nil
	},
}

var profilePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		current, err := promptSecret("Current password: ")
		if err != nil {
			return err
		}
		next, err := promptSecret("New password (min 8 characters): ")
		if err != nil {
			return err
		}

		if err := withSpinner("Changing password", func() error {
			return sess.ChangePassword(cmd.Context(), current, next)
		}); err != nil {
			return presentError(err, "changing your password")
		}

		pterm.Success.Println("Password changed")
		return nil
	},
}

var profileUploadImageCmd = &cobra.Command{
	Use:   "upload-image <path>",
	Short: "Upload a profile image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var res api.UploadImageResult
		if err := withSpinner("Uploading image", func() error {
			var upErr error
			res, upErr = sess.API().UploadProfileImage(cmd.Context(), args[0])
			return upErr
		}); err != nil {
			return presentError(err, "uploading the image")
		}

		pterm.Success.Printf("Image uploaded: %s\n", res.ImageURL)
		return nil
	},
}

var profileRemoveImageCmd = &cobra.Command{
	Use:   "remove-image",
	Short: "Remove your profile image",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		if err := withSpinner("Removing image", func() error {
			return sess.API().RemoveProfileImage(cmd.Context())
		}); err != nil {
			return presentError(err, "removing the image")
		}

		pterm.Success.Println("Profile image removed")
		return nil
	},
}

func printProfile(user api.User) {
	data := pterm.TableData{
		{"Name", fullName(user.FirstName, user.LastName)},
		{"Email", user.Email},
		{"Role", user.Role},
		{"Member since", formatDate(user.CreatedAt)},
	}
	if user.Image != "" {
		data = append(data, []string{"Image", user.Image})
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}

func init() {
	profileUpdateCmd.Flags().StringVar(&updateFirstName, "first-name", "", "New first name")
	profileUpdateCmd.Flags().StringVar(&updateLastName, "last-name", "", "New last name")
	profileUpdateCmd.Flags().StringVar(&updateEmail, "email", "", "New email address")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePasswordCmd)
	profileCmd.AddCommand(profileUploadImageCmd)
	profileCmd.AddCommand(profileRemoveImageCmd)
	rootCmd.AddCommand(profileCmd)
}
