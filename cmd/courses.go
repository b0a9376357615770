// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
)

// coursesCmd shows the course population broken down by review state.
var coursesCmd = &cobra.Command{
	Use:     "courses",
	Aliases: []string{"course"},
	Short:   "Show course statistics by review state",

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var stats api.CourseStats
		if err := withSpinner("Fetching course statistics", func() error {
			var statsErr error
			stats, statsErr = sess.API().GetCourseStats(cmd.Context())
			return statsErr
		}); err != nil {
			return presentError(err, "fetching course statistics")
		}

		data := pterm.TableData{
			{"State", "Count"},
			{"Published", fmt.Sprint(stats.Published)},
			{"Pending review", fmt.Sprint(stats.PendingReview)},
			{"Draft", fmt.Sprint(stats.Draft)},
			{"Rejected", fmt.Sprint(stats.Rejected)},
			{"Total", fmt.Sprint(stats.Total)},
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
