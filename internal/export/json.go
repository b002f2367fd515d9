package export

import (
	"encoding/json"
	"io"

	"github.com/onplate/venuechat/internal"
)

// JSONExporter exports chatrooms in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a chatroom to JSON format
func (e *JSONExporter) Export(room *internal.Chatroom, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(room)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
