package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	roomStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List chatrooms",
	Long:  `List every chatroom in the local store with session and message counts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			out := cmd.OutOrStdout()

			rooms := mgr.Chatrooms()
			if len(rooms) == 0 {
				fmt.Fprintln(out, "No chatrooms yet. Try: venuechat join <venue-id>")
				return nil
			}

			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Chatrooms (%d)", len(rooms))))

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VENUE\tSESSIONS\tMESSAGES\tLAST ACTIVITY")
			for _, room := range rooms {
				last := "-"
				if t := room.LastActivity(); !t.IsZero() {
					last = dateStyle.Render(t.Format("2006-01-02 15:04"))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					roomStyle.Render(room.VenueID),
					countStyle.Render(fmt.Sprintf("%d", len(room.ActiveSessions))),
					countStyle.Render(fmt.Sprintf("%d", len(room.Messages))),
					last)
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(roomsCmd)
}
