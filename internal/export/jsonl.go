package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/onplate/venuechat/internal"
)

// JSONLExporter exports chatrooms in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a chatroom to JSONL format
func (e *JSONLExporter) Export(room *internal.Chatroom, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range room.Messages {
		obj := map[string]interface{}{
			"displayName": msg.DisplayName,
			"text":        msg.Text,
			"anonymous":   msg.IsAnonymous,
		}
		if !msg.SentAt.IsZero() {
			obj["sentAt"] = msg.SentAt.Format(time.RFC3339)
		}

		// Encode to single line
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
