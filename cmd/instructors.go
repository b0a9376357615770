// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
)

var (
	instructorStatus string
	instructorSearch string
)

// instructorsCmd lists instructors with optional status and search
// filters, and carries the moderation subcommands (approve, reject,
// revoke) that change an instructor's verification status.
var instructorsCmd = &cobra.Command{
	Use:     "instructors",
	Aliases: []string{"instructor"},
	Short:   "List and moderate instructors",
	Long: `The instructors command lists instructors registered on the platform.
Use --status to filter by verification state (verified, pending, rejected)
and --search to match against names and emails. The filters are applied by
the backend.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var list api.InstructorList
		if err := withSpinner("Fetching instructors", func() error {
			var listErr error
			list, listErr = sess.API().GetInstructors(cmd.Context(), instructorStatus, instructorSearch)
			return listErr
		}); err != nil {
			return presentError(err, "fetching instructors")
		}

		pterm.Printf("%d total: %d verified, %d pending, %d rejected\n\n",
			list.Stats.Total, list.Stats.Verified, list.Stats.Pending, list.Stats.Rejected)

		if len(list.Instructors) == 0 {
			pterm.Println("No instructors match the current filters.")
			return nil
		}

		data := pterm.TableData{{"ID", "Name", "Email", "Status", "Joined"}}
		for _, ins := range list.Instructors {
			data = append(data, []string{
				ins.ID,
				fullName(ins.FirstName, ins.LastName),
				ins.Email,
				ins.InstructorStatus,
				formatDate(ins.CreatedAt),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

// newInstructorStatusCmd builds one moderation subcommand. All three are
// the same status-update call with a different target status.
func newInstructorStatusCmd(use, short, status, doneVerb string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <instructor-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok, err := requireSession()
			if err != nil || !ok {
				return err
			}

			var res api.StatusUpdateResult
			if err := withSpinner("Updating status", func() error {
				var updErr error
				res, updErr = sess.API().UpdateInstructorStatus(cmd.Context(), args[0], status)
				return updErr
			}); err != nil {
				return presentError(err, "updating the instructor status")
			}

			if res.Message != "" {
				pterm.Success.Println(res.Message)
			} else {
				pterm.Success.Printf("Instructor %s %s\n", args[0], doneVerb)
			}
			return nil
		},
	}
}

func init() {
	instructorsCmd.Flags().StringVar(&instructorStatus, "status", "", fmt.Sprintf("Filter by status (%s, %s, %s)", api.InstructorVerified, api.InstructorPending, api.InstructorRejected))
	instructorsCmd.Flags().StringVar(&instructorSearch, "search", "", "Search names and emails")

	instructorsCmd.AddCommand(newInstructorStatusCmd("approve", "Approve a pending instructor", api.InstructorVerified, "approved"))
	instructorsCmd.AddCommand(newInstructorStatusCmd("reject", "Reject a pending instructor", api.InstructorRejected, "rejected"))
	instructorsCmd.AddCommand(newInstructorStatusCmd("revoke", "Revoke a verified instructor back to pending", api.InstructorPending, "moved back to pending"))
	rootCmd.AddCommand(instructorsCmd)
}
