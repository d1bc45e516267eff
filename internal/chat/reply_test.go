package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReplyEchoesShortInput(t *testing.T) {
	inputs := []string{
		"hello",
		"how do I write a worker pool in Go?",
		strings.Repeat("a", 120),
	}

	for _, input := range inputs {
		reply := GenerateReply(input)
		assert.Contains(t, reply, "You said: \""+input+"\"")
		assert.NotContains(t, reply, input+"...")
	}
}

func TestGenerateReplyTruncatesLongInput(t *testing.T) {
	input := strings.Repeat("a", 121)
	reply := GenerateReply(input)

	assert.Contains(t, reply, strings.Repeat("a", 117)+"...")
	assert.NotContains(t, reply, input)
}

func TestGenerateReplyTruncatesByCharacterNotByte(t *testing.T) {
	input := strings.Repeat("世", 121)
	reply := GenerateReply(input)

	assert.Contains(t, reply, strings.Repeat("世", 117)+"...")
	assert.NotContains(t, reply, strings.Repeat("世", 118))
}

func TestGenerateReplyFallbackForBlankInput(t *testing.T) {
	for _, input := range []string{"", " ", "   ", "\n\t "} {
		assert.Equal(t, fallbackReply, GenerateReply(input))
	}
}

func TestGenerateReplyDeterministic(t *testing.T) {
	for _, input := range []string{"", "hello", strings.Repeat("x", 500)} {
		assert.Equal(t, GenerateReply(input), GenerateReply(input))
	}
}
