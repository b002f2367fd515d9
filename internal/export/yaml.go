package export

import (
	"io"

	"github.com/onplate/venuechat/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports chatrooms in YAML format
type YAMLExporter struct{}

// Export exports a chatroom to YAML format
func (e *YAMLExporter) Export(room *internal.Chatroom, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(room)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
