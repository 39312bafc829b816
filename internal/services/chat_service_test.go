package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_ReplyIsCanned(t *testing.T) {
	svc := NewChatService(rand.NewSource(1))
	replies := Replies()
	require.Len(t, replies, 8)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		reply, err := svc.Reply("where is my order?")
		require.NoError(t, err)
		assert.Contains(t, replies, reply.Reply)
		assert.Equal(t, "where is my order?", reply.Message)
		seen[reply.Reply] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestChatService_DeterministicWithSameSeed(t *testing.T) {
	a := NewChatService(rand.NewSource(42))
	b := NewChatService(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		ra, _ := a.Reply("hi")
		rb, _ := b.Reply("hi")
		assert.Equal(t, ra.Reply, rb.Reply)
	}
}

func TestChatService_EmptyMessage(t *testing.T) {
	_, err := NewChatService(nil).Reply("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}
