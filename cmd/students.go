// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
)

var (
	studentStatus string
	studentSearch string
)

// studentsCmd lists students with optional status and search filters.
var studentsCmd = &cobra.Command{
	Use:     "students",
	Aliases: []string{"student"},
	Short:   "List students",

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		var list api.StudentList
		if err := withSpinner("Fetching students", func() error {
			var listErr error
			list, listErr = sess.API().GetStudents(cmd.Context(), studentStatus, studentSearch)
			return listErr
		}); err != nil {
			return presentError(err, "fetching students")
		}

		pterm.Printf("%d total, %d active\n\n", list.Stats.Total, list.Stats.Active)

		if len(list.Students) == 0 {
			pterm.Println("No students match the current filters.")
			return nil
		}

		data := pterm.TableData{{"ID", "Name", "Email", "Status", "Joined"}}
		for _, st := range list.Students {
			data = append(data, []string{
				st.ID,
				fullName(st.FirstName, st.LastName),
				st.Email,
				st.Status,
				formatDate(st.CreatedAt),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	studentsCmd.Flags().StringVar(&studentStatus, "status", "", "Filter by account status")
	studentsCmd.Flags().StringVar(&studentSearch, "search", "", "Search names and emails")
	rootCmd.AddCommand(studentsCmd)
}
