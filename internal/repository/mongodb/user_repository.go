package mongodb

import (
	"context"
	"errors"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	c *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{c: db.Collection("users")}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.c.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByGenderIdentity(ctx context.Context, gender string) ([]*domain.User, error) {
	cur, err := r.c.Find(ctx, bson.M{"gender_identity": gender})
	if err != nil {
		return nil, err
	}
	users := []*domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByUserIDs(ctx context.Context, userIDs []string) ([]*domain.User, error) {
	cur, err := r.c.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	users := []*domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, upd *domain.ProfileUpdate) (*domain.UpdateAck, error) {
	set := bson.M{
		"first_name":      upd.FirstName,
		"DoB_day":         upd.DoBDay,
		"DoB_month":       upd.DoBMonth,
		"DoB_year":        upd.DoBYear,
		"show_gender":     upd.ShowGender,
		"gender_identity": upd.GenderIdentity,
		"gender_interest": upd.GenderInterest,
		"url":             upd.URL,
		"about":           upd.About,
		"matches":         upd.Matches,
	}

	res, err := r.c.UpdateOne(ctx, bson.M{"user_id": upd.UserID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &domain.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (r *userRepository) PushMatch(ctx context.Context, userID, matchedUserID string) (*domain.UpdateAck, error) {
	res, err := r.c.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$push": bson.M{"matches": domain.MatchRef{UserID: matchedUserID}}},
	)
	if err != nil {
		return nil, err
	}
	return &domain.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

// EnsureIndexes creates the unique email index that closes the
// check-then-insert signup race at the storage layer.
func (r *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
