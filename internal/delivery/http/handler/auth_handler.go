package handler

import (
	"errors"
	"net/http"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
	logger      *zap.Logger
}

func NewAuthHandler(authUseCase *auth.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// CredentialsRequest is the body of both POST /signup and POST /login.
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is the 201 body of POST /signup
type SignupResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// LoginResponse is the 201 body of POST /login
type LoginResponse struct {
	Token string `json:"token"`
}

// Signup handles POST /signup. A duplicate email (case-insensitive)
// gets the original's plain-text 409; success returns 201 with a token
// and the generated userId.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.String(http.StatusConflict, "User already exists. Please login")
			return
		}
		h.logger.Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "signup failed",
		})
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Token:  result.Token,
		UserID: result.UserID,
	})
}

// Login handles POST /login. Unknown email and wrong password both get
// the same plain-text 400.
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.String(http.StatusBadRequest, "Invalid Credentials")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "login failed",
		})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		Token: result.Token,
	})
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}
