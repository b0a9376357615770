// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
)

var (
	notifLimit  int
	notifStatus string
)

// notificationsCmd lists admin notifications and carries the read-state
// subcommands. Without a subcommand it shows the notification list.
var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notif", "inbox"},
	Short:   "List and manage admin notifications",

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var list api.NotificationList
		if err := withSpinner("Fetching notifications", func() error {
			var listErr error
			list, listErr = sess.API().GetNotifications(cmd.Context(), notifLimit, notifStatus)
			return listErr
		}); err != nil {
			return presentError(err, "fetching notifications")
		}

		if len(list.Notifications) == 0 {
			pterm.Println("No notifications.")
			return nil
		}

		printNotifications(list.Notifications)
		if list.UnreadCount > 0 {
			pterm.Printf("\n%d unread. Run 'learndash notifications mark-all-read' to clear.\n", list.UnreadCount)
		}
		return nil
	},
}

var notifRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var list api.NotificationList
		if err := withSpinner("Fetching notifications", func() error {
			var listErr error
			list, listErr = sess.API().GetRecentNotifications(cmd.Context())
			return listErr
		}); err != nil {
			return presentError(err, "fetching notifications")
		}

		if len(list.Notifications) == 0 {
			pterm.Println("No notifications.")
			return nil
		}
		printNotifications(list.Notifications)
		return nil
	},
}

var notifMarkReadCmd = &cobra.Command{
	Use:   "mark-read <notification-id>",
	Short: "Mark one notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		if err := withSpinner("Marking as read", func() error {
			return sess.API().MarkNotificationRead(cmd.Context(), args[0])
		}); err != nil {
			return presentError(err, "marking the notification as read")
		}

		pterm.Success.Println("Notification marked as read")
		return nil
	},
}

var notifMarkAllReadCmd = &cobra.Command{
	Use:   "mark-all-read",
	Short: "Mark every notification as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		if err := withSpinner("Marking all as read", func() error {
			return sess.API().MarkAllNotificationsRead(cmd.Context())
		}); err != nil {
			return presentError(err, "marking notifications as read")
		}

		pterm.Success.Println("All notifications marked as read")
		return nil
	},
}

// printNotifications renders notification rows, highlighting unread ones.
func printNotifications(notifications []api.Notification) {
	for _, n := range notifications {
		marker := " "
		title := n.Title
		if !n.IsRead {
			marker = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("●")
			title = pterm.NewStyle(pterm.Bold).Sprint(title)
		}
		pterm.Printf("%s %s  %s\n", marker, formatDate(n.CreatedAt), title)
		if n.Message != "" {
			pterm.Printf("    %s\n", n.Message)
		}
		pterm.Printf("    id: %s\n", n.ID)
	}
}

func init() {
	notificationsCmd.Flags().IntVar(&notifLimit, "limit", 0, "Maximum rows to fetch (0 for the backend default)")
	notificationsCmd.Flags().StringVar(&notifStatus, "status", "", "Filter by read state (read, unread)")

	notificationsCmd.AddCommand(notifRecentCmd)
	notificationsCmd.AddCommand(notifMarkReadCmd)
	notificationsCmd.AddCommand(notifMarkAllReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}
