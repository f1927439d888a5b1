package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Scott-fo/mern-tinder-backend/internal/domain"
	"github.com/Scott-fo/mern-tinder-backend/internal/usecase/user"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userUseCase *user.UserUseCase
	logger      *zap.Logger
}

func NewUserHandler(userUseCase *user.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetUser handles GET /user?userId=. An unknown id returns a 200 with
// a JSON null body, not a 404.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Query("userId")

	u, err := h.userUseCase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get user", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get user",
		})
		return
	}

	c.JSON(http.StatusOK, u)
}

// GetGenderedUsers handles GET /gendered-users?gender=
func (h *UserHandler) GetGenderedUsers(c *gin.Context) {
	gender := c.Query("gender")

	users, err := h.userUseCase.GetGenderedUsers(c.Request.Context(), gender)
	if err != nil {
		h.logger.Error("failed to list gendered users", zap.String("gender", gender), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list users",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetMatches handles GET /matches?userIds=. The query parameter is a
// JSON-encoded array of user ids.
func (h *UserHandler) GetMatches(c *gin.Context) {
	var userIDs []string
	if err := json.Unmarshal([]byte(c.Query("userIds")), &userIDs); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "userIds must be a JSON array of strings",
		})
		return
	}

	users, err := h.userUseCase.GetMatches(c.Request.Context(), userIDs)
	if err != nil {
		h.logger.Error("failed to get matches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get matches",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

// ProfileForm carries the fixed field set PUT /user replaces. Field
// names mirror the stored document.
type ProfileForm struct {
	UserID         string            `json:"user_id" binding:"required"`
	FirstName      string            `json:"first_name"`
	DoBDay         string            `json:"DoB_day"`
	DoBMonth       string            `json:"DoB_month"`
	DoBYear        string            `json:"DoB_year"`
	ShowGender     bool              `json:"show_gender"`
	GenderIdentity string            `json:"gender_identity"`
	GenderInterest string            `json:"gender_interest"`
	URL            string            `json:"url"`
	About          string            `json:"about"`
	Matches        []domain.MatchRef `json:"matches"`
}

// UpdateUserRequest wraps the form the client posts to PUT /user.
type UpdateUserRequest struct {
	FormData ProfileForm `json:"formData" binding:"required"`
}

// UpdateUser handles PUT /user. The response is the raw update
// acknowledgment, not the updated document.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	upd := &domain.ProfileUpdate{
		UserID:         req.FormData.UserID,
		FirstName:      req.FormData.FirstName,
		DoBDay:         req.FormData.DoBDay,
		DoBMonth:       req.FormData.DoBMonth,
		DoBYear:        req.FormData.DoBYear,
		ShowGender:     req.FormData.ShowGender,
		GenderIdentity: req.FormData.GenderIdentity,
		GenderInterest: req.FormData.GenderInterest,
		URL:            req.FormData.URL,
		About:          req.FormData.About,
		Matches:        req.FormData.Matches,
	}

	ack, err := h.userUseCase.UpdateProfile(c.Request.Context(), upd)
	if err != nil {
		h.logger.Error("failed to update profile", zap.String("user_id", upd.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to update user",
		})
		return
	}

	c.JSON(http.StatusOK, ack)
}

// AddMatchRequest is the body of PUT /addmatch.
type AddMatchRequest struct {
	UserID        string `json:"userId" binding:"required"`
	MatchedUserID string `json:"matchedUserId" binding:"required"`
}

// AddMatch handles PUT /addmatch. The push is one-directional and does
// not check that either user exists or that the match is new.
func (h *UserHandler) AddMatch(c *gin.Context) {
	var req AddMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	ack, err := h.userUseCase.AddMatch(c.Request.Context(), req.UserID, req.MatchedUserID)
	if err != nil {
		h.logger.Error("failed to add match", zap.String("user_id", req.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to add match",
		})
		return
	}

	c.JSON(http.StatusOK, ack)
}
