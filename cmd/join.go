package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var (
	joinAnonymous bool
	joinNickname  string
	joinAvatar    string
)

var (
	codeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var joinCmd = &cobra.Command{
	Use:   "join <venue-id>",
	Short: "Join a venue's chatroom",
	Long: `Join (or create) the chatroom for a venue and make it the current
session. Any prior session for this user in that venue is superseded.
Prints the access code to share with people at the table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		venueID := args[0]

		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			if joinAvatar != "" {
				users.SetAvatarURL(joinAvatar)
			}
			accessCode, err := mgr.CreateSession(ctx, venueID, joinAnonymous, joinNickname)
			if err != nil {
				return err
			}

			sess, _ := mgr.CurrentSession()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				labelStyle.Render("Joined "+venueID+" as"),
				sess.DisplayName)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				labelStyle.Render("Access code:"),
				codeStyle.Render(accessCode))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(joinCmd)
	joinCmd.Flags().BoolVarP(&joinAnonymous, "anonymous", "a", false, "Join anonymously with a generated display name")
	joinCmd.Flags().StringVarP(&joinNickname, "nickname", "n", "", "Custom nickname (anonymous joins only)")
	joinCmd.Flags().StringVar(&joinAvatar, "avatar", "", "Avatar URL shown on non-anonymous sessions")
}
