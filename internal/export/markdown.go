package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/onplate/venuechat/internal"
)

// MarkdownExporter exports chatrooms in Markdown format
type MarkdownExporter struct{}

// Export exports a chatroom to Markdown format
func (e *MarkdownExporter) Export(room *internal.Chatroom, w io.Writer) error {
	// Header
	_, _ = fmt.Fprintf(w, "# %s\n\n", room.Name)
	_, _ = fmt.Fprintf(w, "**Venue:** %s  \n", room.VenueID)
	_, _ = fmt.Fprintf(w, "**Active sessions:** %d  \n", len(room.ActiveSessions))
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(room.Messages))

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	for i, msg := range room.Messages {
		timestamp := ""
		if !msg.SentAt.IsZero() {
			timestamp = fmt.Sprintf(" (%s)", msg.SentAt.Format(time.RFC3339))
		}

		name := msg.DisplayName
		if msg.IsAnonymous {
			name += " [anon]"
		}

		content := escapeMarkdown(msg.Text)

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", name, timestamp, content)

		// Horizontal rule after each message (except the last one)
		if i < len(room.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters
func escapeMarkdown(text string) string {
	// Basic escaping - preserve code blocks
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
