package user_test

import (
	"context"
	"testing"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/testutil"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, repo *testutil.MemUserRepo, userID, email, gender string) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.User{
		UserID:         userID,
		Email:          email,
		GenderIdentity: gender,
		Matches:        []domain.MatchRef{},
	})
	require.NoError(t, err)
}

func TestGetByUserID_Unknown(t *testing.T) {
	uc := user.NewUserUseCase(testutil.NewMemUserRepo(), nil, zap.NewNop())

	u, err := uc.GetByUserID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetGenderedUsers_FiltersByIdentity(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	seedUser(t, repo, "u1", "u1@x.com", "woman")
	seedUser(t, repo, "u2", "u2@x.com", "man")
	seedUser(t, repo, "u3", "u3@x.com", "woman")
	uc := user.NewUserUseCase(repo, nil, zap.NewNop())

	users, err := uc.GetGenderedUsers(context.Background(), "woman")
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, "woman", u.GenderIdentity)
	}
}

func TestGetMatches_ReturnsExistingSubset(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	seedUser(t, repo, "x", "x@x.com", "man")
	seedUser(t, repo, "y", "y@x.com", "woman")
	uc := user.NewUserUseCase(repo, nil, zap.NewNop())

	users, err := uc.GetMatches(context.Background(), []string{"x", "y", "z"})
	require.NoError(t, err)
	require.Len(t, users, 2, "non-existent ids are dropped")
}

func TestAddMatch_IsOneDirectional(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	seedUser(t, repo, "a", "a@x.com", "man")
	seedUser(t, repo, "b", "b@x.com", "woman")
	uc := user.NewUserUseCase(repo, nil, zap.NewNop())

	ack, err := uc.AddMatch(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ack.MatchedCount)
	assert.Equal(t, int64(1), ack.ModifiedCount)

	a, err := uc.GetByUserID(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, a.Matches, 1)
	assert.Equal(t, "b", a.Matches[0].UserID)

	b, err := uc.GetByUserID(context.Background(), "b")
	require.NoError(t, err)
	assert.Empty(t, b.Matches, "reverse link must not appear")
}

func TestAddMatch_NoDuplicateCheck(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	seedUser(t, repo, "a", "a@x.com", "man")
	uc := user.NewUserUseCase(repo, nil, zap.NewNop())

	_, err := uc.AddMatch(context.Background(), "a", "b")
	require.NoError(t, err)
	_, err = uc.AddMatch(context.Background(), "a", "b")
	require.NoError(t, err)

	a, err := uc.GetByUserID(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, a.Matches, 2, "matches are append-only, no dedup")
}

func TestAddMatch_UnknownUser(t *testing.T) {
	uc := user.NewUserUseCase(testutil.NewMemUserRepo(), nil, zap.NewNop())

	ack, err := uc.AddMatch(context.Background(), "missing", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(0), ack.MatchedCount)
}

func TestUpdateProfile_ReplacesFixedFields(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	seedUser(t, repo, "a", "a@x.com", "")
	uc := user.NewUserUseCase(repo, nil, zap.NewNop())

	ack, err := uc.UpdateProfile(context.Background(), &domain.ProfileUpdate{
		UserID:         "a",
		FirstName:      "Ada",
		DoBDay:         "01",
		DoBMonth:       "02",
		DoBYear:        "1995",
		ShowGender:     true,
		GenderIdentity: "woman",
		GenderInterest: "man",
		URL:            "https://example.com/ada.jpg",
		About:          "hi",
		Matches:        []domain.MatchRef{},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ack.MatchedCount)

	a, err := uc.GetByUserID(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "Ada", a.FirstName)
	assert.Equal(t, "woman", a.GenderIdentity)
	assert.Equal(t, "a@x.com", a.Email, "email is not part of the profile update")
}
