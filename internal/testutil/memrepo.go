// Package testutil provides in-memory repository implementations for
// tests that exercise use cases and handlers without a running Mongo.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
)

// MemUserRepo is an in-memory repository.UserRepository. It enforces
// email uniqueness the way the real unique index does.
type MemUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by user_id

	// FailWith, when set, is returned by every method.
	FailWith error
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]*domain.User)}
}

func (r *MemUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *MemUserRepo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *MemUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepo) GetByGenderIdentity(ctx context.Context, gender string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	users := []*domain.User{}
	for _, u := range r.users {
		if u.GenderIdentity == gender {
			cp := *u
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (r *MemUserRepo) GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	users := []*domain.User{}
	for _, id := range userIDs {
		if u, ok := r.users[id]; ok {
			cp := *u
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (r *MemUserRepo) UpdateProfile(ctx context.Context, upd *domain.ProfileUpdate) (*domain.UpdateAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	u, ok := r.users[upd.UserID]
	if !ok {
		return &domain.UpdateAck{Acknowledged: true}, nil
	}
	u.FirstName = upd.FirstName
	u.DoBDay = upd.DoBDay
	u.DoBMonth = upd.DoBMonth
	u.DoBYear = upd.DoBYear
	u.ShowGender = upd.ShowGender
	u.GenderIdentity = upd.GenderIdentity
	u.GenderInterest = upd.GenderInterest
	u.URL = upd.URL
	u.About = upd.About
	u.Matches = upd.Matches
	return &domain.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *MemUserRepo) PushMatch(ctx context.Context, userID, matchedUserID string) (*domain.UpdateAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	u, ok := r.users[userID]
	if !ok {
		return &domain.UpdateAck{Acknowledged: true}, nil
	}
	u.Matches = append(u.Matches, domain.MatchRef{UserID: matchedUserID})
	return &domain.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *MemUserRepo) EnsureIndexes(ctx context.Context) error {
	return r.FailWith
}

// MemMessageRepo is an in-memory repository.MessageRepository.
type MemMessageRepo struct {
	mu       sync.Mutex
	messages []domain.Message

	FailWith error
}

func NewMemMessageRepo() *MemMessageRepo {
	return &MemMessageRepo{}
}

func (r *MemMessageRepo) Create(ctx context.Context, message domain.Message) (*domain.InsertAck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	cp := domain.Message{}
	for k, v := range message {
		cp[k] = v
	}
	r.messages = append(r.messages, cp)
	return &domain.InsertAck{
		Acknowledged: true,
		InsertedID:   fmt.Sprintf("mem-%d", len(r.messages)),
	}, nil
}

func (r *MemMessageRepo) GetByDirectedPair(ctx context.Context, fromUserID, toUserID string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	messages := []domain.Message{}
	for _, m := range r.messages {
		if m[domain.MessageFromField] == fromUserID && m[domain.MessageToField] == toUserID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}
