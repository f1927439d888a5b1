package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor, matching the original deployment's hashes so
// existing accounts keep logging in.
const hashCost = 10

type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtSecret string, expiryMin int) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  time.Duration(expiryMin) * time.Minute,
	}
}

// AuthResult is what a successful signup or login yields.
type AuthResult struct {
	Token  string
	UserID string
}

// Signup creates an account with a generated user_id and a bcrypt hash
// of the password. The email is lowercased before storage; uniqueness
// is enforced by the index, so a concurrent duplicate surfaces as
// domain.ErrEmailTaken rather than a second account.
func (uc *AuthUseCase) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	sanitizedEmail := strings.ToLower(email)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		UserID:         uuid.NewString(),
		Email:          sanitizedEmail,
		HashedPassword: string(hashed),
		Matches:        []domain.MatchRef{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.signToken(user.UserID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, UserID: user.UserID}, nil
}

// Login verifies the password against the stored hash. Unknown email
// and wrong password both come back as domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.signToken(user.UserID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, UserID: user.UserID}, nil
}

// signToken issues a token carrying only the user id and expiry. The
// payload never includes the user document or the password hash.
func (uc *AuthUseCase) signToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(uc.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ParseToken validates a token issued by this service and returns the
// user id it was issued for.
func (uc *AuthUseCase) ParseToken(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
