package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// MessageRepository defines persistence for conversations and messages.
type MessageRepository interface {
	CreateConversation(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error)
	FindConversation(ctx context.Context, id string) (*domain.Conversation, error)
	// ListConversations returns conversations the user participates in,
	// newest first.
	ListConversations(ctx context.Context, userID string) ([]*domain.Conversation, error)
	InsertMessage(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// ListMessages returns a conversation's messages, oldest first.
	ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error)
}
