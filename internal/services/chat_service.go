// internal/services/chat_service.go
package services

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"
)

var ErrEmptyMessage = errors.New("chat message is empty")

var chatReplies = []string{
	"I'm here to help! You can ask about products, orders, or recommendations.",
	"Looking for something specific? Try using the search bar above!",
	"Our trending products are updated daily. Would you like a recommendation?",
	"If you need help with your cart or wishlist, just let me know!",
	"You can filter products by category, price, or rating for a better experience.",
	"For the best deals, check out our sale section!",
	"I'm an AI assistant, but if you need human support, visit our contact page.",
	"Want to know more about a product? Click on it for a quick view!",
}

// ChatService answers shopper messages with a canned reply.
type ChatService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

type ChatRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

type ChatReply struct {
	Message string    `json:"message"`
	Reply   string    `json:"reply"`
	SentAt  time.Time `json:"sent_at"`
}

// NewChatService uses src for reply selection; nil seeds from the clock.
func NewChatService(src rand.Source) *ChatService {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &ChatService{rng: rand.New(src)}
}

func (s *ChatService) Reply(message string) (ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatReply{}, ErrEmptyMessage
	}

	s.mu.Lock()
	reply := chatReplies[s.rng.Intn(len(chatReplies))]
	s.mu.Unlock()

	return ChatReply{
		Message: message,
		Reply:   reply,
		SentAt:  time.Now().UTC(),
	}, nil
}

// Replies lists every canned reply.
func Replies() []string {
	out := make([]string, len(chatReplies))
	copy(out, chatReplies)
	return out
}
