package repository

import (
	"context"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
)

type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email unique index rejects the write.
	Create(ctx context.Context, user *domain.User) error

	// GetByUserID returns (nil, nil) when no user has the given user_id.
	GetByUserID(ctx context.Context, userID string) (*domain.User, error)

	// GetByEmail returns (nil, nil) when no user has the given email.
	// The email is matched as stored, i.e. already lowercased.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	GetByGenderIdentity(ctx context.Context, gender string) ([]*domain.User, error)
	GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.User, error)

	// UpdateProfile replaces the fixed profile field set on the user
	// matched by upd.UserID and returns the driver acknowledgment.
	UpdateProfile(ctx context.Context, upd *domain.ProfileUpdate) (*domain.UpdateAck, error)

	// PushMatch appends {user_id: matchedUserID} to the matches array of
	// the user matched by userID. One-directional, no duplicate check.
	PushMatch(ctx context.Context, userID, matchedUserID string) (*domain.UpdateAck, error)

	// EnsureIndexes creates the unique index on email.
	EnsureIndexes(ctx context.Context) error
}
