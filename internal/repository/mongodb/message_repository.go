package mongodb

import (
	"context"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type messageRepository struct {
	c *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &messageRepository{c: db.Collection("messages")}
}

func (r *messageRepository) Create(ctx context.Context, message domain.Message) (*domain.InsertAck, error) {
	res, err := r.c.InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}
	return &domain.InsertAck{
		Acknowledged: true,
		InsertedID:   res.InsertedID,
	}, nil
}

func (r *messageRepository) GetByDirectedPair(ctx context.Context, fromUserID, toUserID string) ([]domain.Message, error) {
	cur, err := r.c.Find(ctx, bson.M{
		domain.MessageFromField: fromUserID,
		domain.MessageToField:   toUserID,
	})
	if err != nil {
		return nil, err
	}
	messages := []domain.Message{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
