package service

import (
	"context"
	"strings"

	"github.com/hackbuddy/hackbuddy/internal/ai"
)

// chatFallbackReply is returned when the AI service answers but produces no
// usable text.
const chatFallbackReply = "Sorry, I could not generate a response."

// ChatService relays user messages to the AI assistant.
type ChatService struct {
	client ai.Client
}

func NewChatService(client ai.Client) *ChatService {
	return &ChatService{client: client}
}

// Reply sends the message and returns the assistant's answer. Transport
// failure surfaces to the caller; an odd-but-successful response degrades to
// the fallback reply.
func (s *ChatService) Reply(ctx context.Context, message string) (string, error) {
	reply, err := s.client.GenerateContent(ctx, message)
	if err != nil {
		return "", err
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return chatFallbackReply, nil
	}
	return reply, nil
}
