package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onplate/venuechat/internal"
	"github.com/onplate/venuechat/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <venue-id>",
	Short: "Export a venue's chat transcript",
	Long: `Export a venue's chatroom in one of several formats (jsonl, md, yaml,
json). Writes to stdout unless --out names a directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		venueID := args[0]

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		return withManager(func(ctx context.Context, mgr *internal.ChatManager, users *internal.StoredUserProvider) error {
			room := mgr.JoinChatroom(venueID)
			if room == nil {
				return fmt.Errorf("no chatroom for venue %q", venueID)
			}

			if exportOut == "" {
				return exporter.Export(room, cmd.OutOrStdout())
			}

			if err := os.MkdirAll(exportOut, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			path := filepath.Join(exportOut, fmt.Sprintf("%s.%s", room.ID, exporter.Extension()))
			f, err := os.Create(path)
			if err != nil {
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
			defer func() { _ = f.Close() }()

			if err := exporter.Export(room, f); err != nil {
				return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", venueID, path)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (default: stdout)")
}
