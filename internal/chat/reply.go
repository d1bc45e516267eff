package chat

import (
	"fmt"
	"strings"
)

const fallbackReply = "I'm here. Ask me anything about code, ideas, or tech."

const (
	// Inputs longer than truncateThreshold characters are echoed back as the
	// first truncateLength characters plus an ellipsis marker.
	truncateThreshold = 120
	truncateLength    = 117
)

const replyTemplate = "⚡ Tanim AI • Insight\n" +
	"You said: \"%s\"\n\n" +
	"Here's a thoughtful response: I can help you plan, outline, and implement this. " +
	"If you'd like, ask for a step-by-step plan or a quick prototype."

// GenerateReply maps user text to the canned assistant reply. It is pure and
// deterministic: no I/O, no randomness, same input yields the same output.
func GenerateReply(userText string) string {
	hint := strings.TrimSpace(userText)
	if hint == "" {
		return fallbackReply
	}

	if runes := []rune(hint); len(runes) > truncateThreshold {
		hint = string(runes[:truncateLength]) + "..."
	}

	return fmt.Sprintf(replyTemplate, hint)
}
