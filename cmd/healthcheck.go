package cmd

import (
	"context"
	"fmt"

	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check the local store and report chat state",
	Long: `Open the database, load the snapshot and profile, and report what was
found. Useful when chat state looks wrong or missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path, err := resolveDataPath()
		if err != nil {
			return fmt.Errorf("failed to resolve data path: %w", err)
		}
		fmt.Fprintf(out, "Database: %s\n", path)

		if err := internal.EnsureDataDir(path); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		store, err := internal.OpenSQLiteKV(path)
		if err != nil {
			return fmt.Errorf("store unusable: %w", err)
		}
		defer func() { _ = store.Close() }()
		fmt.Fprintln(out, "Store: OK")

		ctx := context.Background()

		users := internal.NewStoredUserProvider(store)
		users.LoadProfile(ctx)
		if user, ok := users.CurrentUser(); ok {
			fmt.Fprintf(out, "Profile: %s (%s)\n", user.Name, user.Role)
		} else {
			fmt.Fprintln(out, "Profile: none (implicit login will mint one)")
		}

		mgr := internal.NewChatManager(store, users)
		switch mgr.Load(ctx) {
		case internal.LoadOK:
			fmt.Fprintln(out, "Snapshot: OK")
		case internal.LoadTimedOut:
			fmt.Fprintln(out, "Snapshot: load timed out")
		default:
			fmt.Fprintln(out, "Snapshot: none or unreadable (starting empty is fine)")
		}

		rooms, sessions, messages := mgr.Stats()
		fmt.Fprintf(out, "Chatrooms: %d\n", rooms)
		fmt.Fprintf(out, "Active sessions: %d\n", sessions)
		fmt.Fprintf(out, "Messages: %d\n", messages)

		if sess, ok := mgr.CurrentSession(); ok {
			fmt.Fprintf(out, "Current session: %s in %s\n", sess.DisplayName, sess.VenueID)
		} else {
			fmt.Fprintln(out, "Current session: none")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
