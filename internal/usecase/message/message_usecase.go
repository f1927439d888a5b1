package message

import (
	"context"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/repository"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
}

func NewMessageUseCase(messageRepo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
	}
}

// Send stores the message document exactly as the client supplied it.
func (uc *MessageUseCase) Send(ctx context.Context, msg domain.Message) (*domain.InsertAck, error) {
	return uc.messageRepo.Create(ctx, msg)
}

// GetDirected returns one direction of a conversation. A full thread
// takes two calls, one per direction, merged by the caller.
func (uc *MessageUseCase) GetDirected(ctx context.Context, fromUserID, toUserID string) ([]domain.Message, error) {
	return uc.messageRepo.GetByDirectedPair(ctx, fromUserID, toUserID)
}
