// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"learndash/admincli/internal/api"
	"learndash/admincli/internal/config"
)

var (
	txPage   int
	txLimit  int
	txStatus string
	txSearch string
)

// transactionsCmd lists course purchase transactions. Pagination and
// filtering happen on the backend; the pagination block is echoed back
// verbatim and rendered as-is.
var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx", "orders"},
	Short:   "List course purchase transactions",
	Long: `The transactions command lists orders placed on the platform, newest first.
Use --page and --limit to page through results, --status to filter by order
state (completed, pending, failed, refunded) and --search to match order
numbers, student names and emails.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		limit := txLimit
		if limit <= 0 {
			if cfg, err := config.Load(); err == nil {
				limit = cfg.PageLimit
			}
		}

		var list api.TransactionList
		if err := withSpinner("Fetching transactions", func() error {
			var listErr error
			list, listErr = sess.API().GetTransactions(cmd.Context(), txPage, limit, txStatus, txSearch)
			return listErr
		}); err != nil {
			return presentError(err, "fetching transactions")
		}

		pterm.Printf("%d transactions, %s total revenue (%s this month)\n\n",
			list.Summary.TotalTransactions,
			formatMoney(list.Summary.TotalRevenue),
			formatMoney(list.Summary.ThisMonthRevenue))

		if len(list.Transactions) == 0 {
			pterm.Println("No transactions match the current filters.")
			return nil
		}

		data := pterm.TableData{{"Order", "Date", "Student", "Courses", "Amount", "Status"}}
		for _, tx := range list.Transactions {
			data = append(data, []string{
				tx.OrderNumber,
				formatDate(tx.CreatedAt),
				tx.Student.Name,
				courseTitles(tx.Courses),
				formatMoney(tx.Amount),
				tx.Status,
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		if list.Pagination.Pages > 1 {
			pterm.Printf("\nPage %d of %d (%d total). Use --page to continue.\n",
				list.Pagination.Page, list.Pagination.Pages, list.Pagination.Total)
		}
		return nil
	},
}

// courseTitles joins the purchased course titles for one table cell.
func courseTitles(courses []api.TransactionCourse) string {
	if len(courses) == 0 {
		return "-"
	}
	titles := make([]string, 0, len(courses))
	for _, c := range courses {
		titles = append(titles, c.Title)
	}
	joined := strings.Join(titles, ", ")
	if len(joined) > 60 {
		joined = fmt.Sprintf("%d courses", len(courses))
	}
	return joined
}

func init() {
	transactionsCmd.Flags().IntVar(&txPage, "page", 1, "Page number")
	transactionsCmd.Flags().IntVar(&txLimit, "limit", 0, "Rows per page (0 uses the configured default)")
	transactionsCmd.Flags().StringVar(&txStatus, "status", "", "Filter by order status")
	transactionsCmd.Flags().StringVar(&txSearch, "search", "", "Search order numbers, student names and emails")
	rootCmd.AddCommand(transactionsCmd)
}
