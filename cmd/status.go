package cmd

import (
	"context"
	"fmt"

	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [venue-id]",
	Short: "Show the current session",
	Long: `Show the current session, if any. With a venue id, also reports
whether the current session is active for that venue.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			out := cmd.OutOrStdout()

			sess, ok := mgr.CurrentSession()
			if !ok {
				fmt.Fprintln(out, "No current session")
			} else {
				fmt.Fprintf(out, "Venue:        %s\n", sess.VenueID)
				fmt.Fprintf(out, "Display name: %s\n", sess.DisplayName)
				fmt.Fprintf(out, "Access code:  %s\n", sess.AccessCode)
				fmt.Fprintf(out, "Anonymous:    %t\n", sess.IsAnonymous)
				fmt.Fprintf(out, "Joined:       %s\n", sess.JoinedAt.Format("2006-01-02 15:04:05"))
			}

			if len(args) == 1 {
				fmt.Fprintf(out, "Active for %s: %t\n", args[0], mgr.HasActiveSession(args[0]))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
