package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
)

type stubCompletions struct {
	reply string
	err   error
	calls int
}

func (s *stubCompletions) Complete(_ context.Context, _ []client.ChatMessage) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestReplyScriptedRules(t *testing.T) {
	svc := NewChatService(nil, testLogger())
	ctx := context.Background()

	cases := []struct {
		message  string
		fragment string
	}{
		{"Which fertilizer should I buy?", "liquid fertilizers"},
		{"My soil is very compacted", "humic acid"},
		{"Are your products organic?", "100% organic"},
		{"What plants grow in shade?", "nutritional needs"},
		{"I need help", "plant nutrition"},
		{"What is the meaning of life?", "gardening experts"},
	}

	for _, tc := range cases {
		reply, err := svc.Reply(ctx, []dto.ChatMessage{{Role: "user", Content: tc.message}})
		require.NoError(t, err)
		assert.True(t, strings.Contains(reply, tc.fragment),
			"reply to %q should mention %q, got: %s", tc.message, tc.fragment, reply)
	}
}

func TestReplyEmptyConversation(t *testing.T) {
	svc := NewChatService(nil, testLogger())
	_, err := svc.Reply(context.Background(), nil)
	assert.ErrorIs(t, err, ErrMissingChatMessages)
}

func TestReplyUsesCompletionBackend(t *testing.T) {
	stub := &stubCompletions{reply: "Kelp is rich in trace minerals."}
	svc := NewChatService(stub, testLogger())

	reply, err := svc.Reply(context.Background(), []dto.ChatMessage{
		{Role: "user", Content: "Tell me about kelp"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Kelp is rich in trace minerals.", reply)
	assert.Equal(t, 1, stub.calls)
}

func TestReplyFallsBackWhenBackendFails(t *testing.T) {
	stub := &stubCompletions{err: errors.New("upstream down")}
	svc := NewChatService(stub, testLogger())

	reply, err := svc.Reply(context.Background(), []dto.ChatMessage{
		{Role: "user", Content: "Which fertilizer for tomatoes?"},
	})
	require.NoError(t, err)
	assert.Contains(t, reply, "liquid fertilizers")
}

func TestReplyUsesLastUserMessage(t *testing.T) {
	svc := NewChatService(nil, testLogger())

	reply, err := svc.Reply(context.Background(), []dto.ChatMessage{
		{Role: "user", Content: "Are your products organic?"},
		{Role: "assistant", Content: "They are."},
		{Role: "user", Content: "And what about my soil?"},
	})
	require.NoError(t, err)
	assert.Contains(t, reply, "humic acid")
}
