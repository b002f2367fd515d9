package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/onplate/venuechat/internal"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	dataPath string
	version  string = "dev"
	commit   string = "unknown"
	date     string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "venuechat",
	Short: "Anonymous venue chatrooms for the OnPlate dining app",
	Long: `venuechat drives the local chatroom engine used by the OnPlate dining app.

Each venue (bar, restaurant, cafe) gets one chatroom, created lazily on
first join. A device holds at most one current session at a time; joining
a venue hands you a short access code to share at the table. Messages are
append-only with the sender identity frozen at send time. State lives in
a local SQLite key-value store and is persisted best-effort.

Quick Start:
  venuechat join venue-42 --anonymous   # Join a venue's chatroom
  venuechat send venue-42 "hello"       # Post a message
  venuechat show venue-42               # Read the transcript
  venuechat leave                       # Leave the current room

For detailed usage, see: https://github.com/onplate/venuechat`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Custom database location (defaults to ~/.venuechat/venuechat.db or $VENUECHAT_DATA)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveDataPath picks the database location from the --data flag, the
// environment, or the default.
func resolveDataPath() (string, error) {
	if dataPath != "" {
		return dataPath, nil
	}
	return internal.DefaultDataPath()
}

// withManager opens the store, loads the snapshot and profile, runs fn,
// and flushes state back to disk when fn succeeds.
func withManager(fn func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error) error {
	ctx := context.Background()

	path, err := resolveDataPath()
	if err != nil {
		return fmt.Errorf("failed to resolve data path: %w", err)
	}
	if err := internal.EnsureDataDir(path); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := internal.OpenSQLiteKV(path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	users := internal.NewStoredUserProvider(store)
	users.LoadProfile(ctx)

	mgr := internal.NewChatManager(store, users)
	mgr.Load(ctx)

	if err := fn(ctx, mgr, users); err != nil {
		return err
	}
	return mgr.Flush(ctx)
}
