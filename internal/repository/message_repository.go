package repository

import (
	"context"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
)

type MessageRepository interface {
	// Create inserts the message document verbatim.
	Create(ctx context.Context, message domain.Message) (*domain.InsertAck, error)

	// GetByDirectedPair returns messages sent from fromUserID to
	// toUserID, in that direction only.
	GetByDirectedPair(ctx context.Context, fromUserID, toUserID string) ([]domain.Message, error)
}
