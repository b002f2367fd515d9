package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/onplate/venuechat/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	room := testRoom()
	var buf bytes.Buffer

	exporter := &MarkdownExporter{}
	if err := exporter.Export(room, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "# Chat @ venue-1") {
		t.Error("output missing room header")
	}
	if !strings.Contains(output, "**Venue:** venue-1") {
		t.Error("output missing venue line")
	}
	if !strings.Contains(output, "**Messages:** 2") {
		t.Error("output missing message count")
	}
	if !strings.Contains(output, "anyone here?") || !strings.Contains(output, "the tacos are great") {
		t.Error("output missing message text")
	}
	if !strings.Contains(output, "[anon]") {
		t.Error("anonymous messages should be flagged")
	}

	// Order preserved
	if strings.Index(output, "anyone here?") > strings.Index(output, "the tacos are great") {
		t.Error("messages out of order")
	}
}

func TestMarkdownExporter_EscapesOutsideCodeBlocks(t *testing.T) {
	room := internal.NewChatroom("venue-1")
	room.Messages = append(room.Messages, internal.ChatMessage{
		ID: "m1", Text: "**bold** and\n```\n**code**\n```", DisplayName: "Alex",
	})

	var buf bytes.Buffer
	exporter := &MarkdownExporter{}
	if err := exporter.Export(room, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `\*\*bold\*\*`) {
		t.Error("markdown outside code blocks should be escaped")
	}
	if !strings.Contains(output, "**code**") {
		t.Error("markdown inside code blocks should be preserved")
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"bold", "**hi**", `\*\*hi\*\*`},
		{"underscore", "__hi__", `\_\_hi\_\_`},
		{"code block preserved", "```\n**x**\n```", "```\n**x**\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeMarkdown(tt.input); got != tt.want {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
