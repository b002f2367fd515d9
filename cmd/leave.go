package cmd

import (
	"context"
	"fmt"

	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Leave the current chatroom",
	Long: `Remove the current session from its chatroom and clear it. The room
and its message history are kept. Does nothing when there is no current
session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			sess, ok := mgr.CurrentSession()
			mgr.LeaveRoom(ctx)
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Left %s\n", sess.VenueID)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No current session")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(leaveCmd)
}
