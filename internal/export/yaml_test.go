package export

import (
	"bytes"
	"testing"

	"github.com/onplate/venuechat/internal"
	"gopkg.in/yaml.v3"
)

func testEmptyRoom() *internal.Chatroom {
	return internal.NewChatroom("venue-empty")
}

func TestYAMLExporter_Export(t *testing.T) {
	room := testRoom()
	var buf bytes.Buffer

	exporter := &YAMLExporter{}
	if err := exporter.Export(room, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["id"] != "chat-venue-1" {
		t.Errorf("decoded id = %v, want chat-venue-1", decoded["id"])
	}
	messages, ok := decoded["messages"].([]interface{})
	if !ok || len(messages) != 2 {
		t.Errorf("decoded messages = %v, want 2 entries", decoded["messages"])
	}
}
