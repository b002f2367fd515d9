package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var archiveOut string

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive all chatroom transcripts",
	Long: `Write every chatroom to the archive directory as JSON, with a YAML
index. Rooms whose content is unchanged since the last run are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			dir := archiveOut
			if dir == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("failed to get home directory: %w", err)
				}
				dir = filepath.Join(home, ".venuechat", "archive")
			}

			am := internal.NewArchiveManager(dir)
			archived, skipped, err := am.ArchiveRooms(mgr.Chatrooms())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %d rooms (%d unchanged) to %s\n", archived, skipped, dir)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.Flags().StringVarP(&archiveOut, "out", "o", "", "Archive directory (default: ~/.venuechat/archive)")
}
