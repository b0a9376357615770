package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current
// authentication state. It fetches the profile from the backend when
// possible and falls back to locally cached user data when offline.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. It fetches the live profile from the backend when reachable and
falls back to the user data captured at login time otherwise.

If no valid session exists, it will indicate that you are not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, ok, err := requireSession()
		if err != nil || !ok {
			return err
		}

		user, err := sess.API().GetProfile(cmd.Context())
		if err != nil {
			// Offline or rejected: fall back to the cached user.
			user = sess.User()
		}

		switch {
		case user.Email != "":
			fmt.Printf("👤 Current user: %s <%s>\n", fullName(user.FirstName, user.LastName), user.Email)
		case user.ID != "":
			fmt.Printf("👤 Current user: %s\n", user.ID)
		default:
			fmt.Println("👤 Logged in (profile unavailable right now)")
		}
		if user.Role != "" {
			fmt.Printf("   Role: %s\n", user.Role)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
