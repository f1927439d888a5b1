package auth_test

import (
	"context"
	"testing"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/testutil"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

func newUseCase(repo *testutil.MemUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, testSecret, 60*24)
}

func TestSignup_CreatesUser(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	uc := newUseCase(repo)

	result, err := uc.Signup(context.Background(), "A@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	_, err = uuid.Parse(result.UserID)
	assert.NoError(t, err, "user_id should be a uuid")

	stored, err := repo.GetByUserID(context.Background(), result.UserID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "a@x.com", stored.Email, "email should be lowercased")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("p1")))
	assert.NotEqual(t, "p1", stored.HashedPassword)
	assert.NotNil(t, stored.Matches)
	assert.Empty(t, stored.Matches)
}

func TestSignup_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Signup(context.Background(), "A@x.com", "p1")
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), "a@X.COM", "p2")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignup_TokenIsMinimal(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	uc := newUseCase(repo)

	result, err := uc.Signup(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)

	subject, err := uc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, subject)
}

func TestLogin_CorrectPassword(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	uc := newUseCase(repo)

	signedUp, err := uc.Signup(context.Background(), "A@x.com", "p1")
	require.NoError(t, err)

	// Login normalizes case the same way signup does.
	result, err := uc.Login(context.Background(), "a@X.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, signedUp.UserID, result.UserID)
	assert.NotEmpty(t, result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Signup(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Login(context.Background(), "nobody@x.com", "p1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestParseToken_RejectsForeignSignature(t *testing.T) {
	repo := testutil.NewMemUserRepo()
	uc := newUseCase(repo)

	result, err := uc.Signup(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)

	other := auth.NewAuthUseCase(repo, "another-secret", 60*24)
	_, err = other.ParseToken(result.Token)
	assert.Error(t, err)
}
