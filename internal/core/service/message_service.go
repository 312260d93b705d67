package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type messageService struct {
	messages ports.MessageRepository
	emitter  ports.EventEmitter
	log      zerolog.Logger
}

// NewMessageService returns a MessageService implementation.
func NewMessageService(messages ports.MessageRepository, emitter ports.EventEmitter, log zerolog.Logger) ports.MessageService {
	return &messageService{messages: messages, emitter: emitter, log: log}
}

func (s *messageService) CreateConversation(ctx context.Context, userID, participantID string) (*domain.Conversation, error) {
	if participantID == "" || participantID == userID {
		return nil, domain.ErrInvalidTarget
	}
	return s.messages.CreateConversation(ctx, &domain.Conversation{
		ID:           uuid.NewString(),
		Participants: []string{userID, participantID},
		CreatedAt:    time.Now().UTC(),
	})
}

func (s *messageService) ListConversations(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	return s.messages.ListConversations(ctx, userID)
}

func (s *messageService) ListMessages(ctx context.Context, conversationID, userID string) ([]*domain.Message, error) {
	conversation, err := s.messages.FindConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, domain.ErrNotParticipant
	}
	return s.messages.ListMessages(ctx, conversationID)
}

// Send persists the message and pushes message:new to every participant.
func (s *messageService) Send(ctx context.Context, conversationID, senderID, content string) (*domain.Message, error) {
	conversation, err := s.messages.FindConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(senderID) {
		return nil, domain.ErrNotParticipant
	}

	message, err := s.messages.InsertMessage(ctx, &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	if err := s.emitter.Emit(domain.RealtimeEvent{
		Type: domain.EventMessageNew,
		Payload: map[string]any{
			"messageId":      message.ID,
			"conversationId": conversationID,
			"senderId":       senderID,
			"content":        message.Content,
		},
		Targets: conversation.Participants,
	}); err != nil {
		s.log.Warn().Err(err).Str("conversation_id", conversationID).Msg("failed to emit message event")
	}

	return message, nil
}
