package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var (
	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("135"))

	anonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var showCmd = &cobra.Command{
	Use:   "show <venue-id>",
	Short: "Show a venue's chat transcript",
	Long:  `Render the full message history of a venue's chatroom, in send order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		venueID := args[0]

		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			out := cmd.OutOrStdout()

			room := mgr.JoinChatroom(venueID)
			if room == nil {
				return fmt.Errorf("no chatroom for venue %q", venueID)
			}

			fmt.Fprintln(out, headerStyle.Render(room.Name))
			fmt.Fprintf(out, "%d active sessions, %d messages\n\n",
				len(room.ActiveSessions), len(room.Messages))

			for _, msg := range room.Messages {
				name := nameStyle.Render(msg.DisplayName)
				if msg.IsAnonymous {
					name += anonStyle.Render(" (anon)")
				}
				fmt.Fprintf(out, "%s %s\n  %s\n",
					name,
					timeStyle.Render(msg.SentAt.Format("15:04:05")),
					msg.Text)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
