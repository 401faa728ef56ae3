package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackbuddy/hackbuddy/internal/ai"
)

type fakeAIClient struct {
	reply  string
	err    error
	prompt string
}

func (c *fakeAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.reply, c.err
}

func TestChatReply(t *testing.T) {
	client := &fakeAIClient{reply: "Try the team formation channel first."}
	svc := NewChatService(client)

	reply, err := svc.Reply(context.Background(), "how do I find a team?")
	require.NoError(t, err)
	assert.Equal(t, "Try the team formation channel first.", reply)
	assert.Equal(t, "how do I find a team?", client.prompt)
}

func TestChatReplyTrimsWhitespace(t *testing.T) {
	svc := NewChatService(&fakeAIClient{reply: "  answer \n"})

	reply, err := svc.Reply(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, "answer", reply)
}

func TestChatReplyEmptyAnswerFallsBack(t *testing.T) {
	svc := NewChatService(&fakeAIClient{reply: "   "})

	reply, err := svc.Reply(context.Background(), "question")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I could not generate a response.", reply)
}

func TestChatReplyTransportErrorSurfaces(t *testing.T) {
	svc := NewChatService(&fakeAIClient{err: ai.ErrServiceUnavailable})

	_, err := svc.Reply(context.Background(), "question")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrServiceUnavailable))
}
