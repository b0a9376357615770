// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"learndash/admincli/internal/api"
)

// dashboardCmd shows the landing-view aggregates: platform counters plus
// the most recent notifications. The two fetches run concurrently.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show platform statistics and recent notifications",

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var (
			stats  api.DashboardStats
			recent api.NotificationList
		)
		if err := withSpinner("Loading dashboard", func() error {
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var statsErr error
				stats, statsErr = sess.API().GetDashboardStats(ctx)
				return statsErr
			})
			g.Go(func() error {
				var recentErr error
				recent, recentErr = sess.API().GetRecentNotifications(ctx)
				return recentErr
			})
			return g.Wait()
		}); err != nil {
			return presentError(err, "loading the dashboard")
		}

		printDashboardStats(stats)

		if len(recent.Notifications) > 0 {
			pterm.Println()
			pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Recent notifications"))
			printNotifications(recent.Notifications)
		}
		if recent.UnreadCount > 0 {
			pterm.Printf("\n%d unread. Run 'learndash notifications' to review.\n", recent.UnreadCount)
		}
		return nil
	},
}

func printDashboardStats(stats api.DashboardStats) {
	data := pterm.TableData{
		{"", "Total", "Detail"},
		{"Instructors", fmt.Sprint(stats.Instructors.Total),
			fmt.Sprintf("%d verified, %d pending", stats.Instructors.Verified, stats.Instructors.Pending)},
		{"Students", fmt.Sprint(stats.Students.Total),
			fmt.Sprintf("%d active", stats.Students.Active)},
		{"Courses", fmt.Sprint(stats.Courses.Total),
			fmt.Sprintf("%d active, %d draft", stats.Courses.Active, stats.Courses.Draft)},
		{"Revenue", formatMoney(stats.Revenue.Total),
			fmt.Sprintf("%s this month", formatMoney(stats.Revenue.ThisMonth))},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
