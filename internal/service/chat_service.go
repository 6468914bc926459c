package service

import (
	"context"
	"fmt"

	"learnhub-service/internal/models"
)

type ChatService struct {
	Messages MessageStore
}

func NewChatService(messages MessageStore) *ChatService {
	return &ChatService{Messages: messages}
}

// History returns the conversation between two users in chronological order.
// Either side may have opened the room, so both room-id orderings are
// checked. No messages at all reads as a missing conversation.
func (s *ChatService) History(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	rooms := []string{
		fmt.Sprintf("%s_%s", userID, otherID),
		fmt.Sprintf("%s_%s", otherID, userID),
	}
	messages, err := s.Messages.FindByRooms(ctx, rooms)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, models.ErrNotFound
	}
	return messages, nil
}

// Partners lists the distinct users this user has chatted with.
func (s *ChatService) Partners(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", models.ErrValidation)
	}
	partners, err := s.Messages.ChatPartners(ctx, userID)
	if err != nil {
		return nil, err
	}
	if partners == nil {
		partners = []string{}
	}
	return partners, nil
}
