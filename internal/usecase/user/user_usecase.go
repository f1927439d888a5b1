package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// genderedUsersTTL bounds how stale a cached gendered listing can be.
const genderedUsersTTL = time.Minute

type UserUseCase struct {
	userRepo repository.UserRepository
	cache    *redis.Client
	logger   *zap.Logger
}

// NewUserUseCase wires the user repository with an optional Redis
// cache. cache may be nil, in which case every read goes to Mongo.
func NewUserUseCase(userRepo repository.UserRepository, cache *redis.Client, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

// GetByUserID returns (nil, nil) for an unknown id; the handler
// serializes that as a JSON null rather than a 404.
func (uc *UserUseCase) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	return uc.userRepo.GetByUserID(ctx, userID)
}

// GetGenderedUsers lists users whose gender_identity equals gender,
// serving from the cache when one is configured. Cache failures are
// logged and fall through to Mongo.
func (uc *UserUseCase) GetGenderedUsers(ctx context.Context, gender string) ([]*domain.User, error) {
	key := genderedUsersKey(gender)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key).Bytes()
		if err == nil {
			var users []*domain.User
			if err := json.Unmarshal(cached, &users); err == nil {
				return users, nil
			}
			uc.logger.Warn("discarding unreadable cache entry", zap.String("key", key))
		} else if err != redis.Nil {
			uc.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	users, err := uc.userRepo.GetByGenderIdentity(ctx, gender)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(users); err == nil {
			if err := uc.cache.Set(ctx, key, payload, genderedUsersTTL).Err(); err != nil {
				uc.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return users, nil
}

// GetMatches returns the existing users whose user_id is in userIDs.
// Missing ids are silently dropped; order is not guaranteed.
func (uc *UserUseCase) GetMatches(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	return uc.userRepo.GetByUserIDs(ctx, userIDs)
}

// UpdateProfile replaces the fixed profile field set and returns the
// update acknowledgment, not the updated document.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, upd *domain.ProfileUpdate) (*domain.UpdateAck, error) {
	return uc.userRepo.UpdateProfile(ctx, upd)
}

// AddMatch appends matchedUserID to userID's matches array. The link
// is one-directional; the matched user's document is untouched.
func (uc *UserUseCase) AddMatch(ctx context.Context, userID, matchedUserID string) (*domain.UpdateAck, error) {
	return uc.userRepo.PushMatch(ctx, userID, matchedUserID)
}

func genderedUsersKey(gender string) string {
	return fmt.Sprintf("gendered-users:%s", gender)
}
