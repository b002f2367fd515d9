package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <venue-id> <text>...",
	Short: "Post a message to a venue's chatroom",
	Long: `Post a message to the venue's chatroom. Requires a current session
for that venue (see "venuechat join"). The message carries the display
identity of the session at the moment it is sent.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		venueID := args[0]
		text := strings.Join(args[1:], " ")

		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			if err := mgr.SendMessage(ctx, venueID, text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent to %s\n", venueID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
}
