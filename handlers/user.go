package handlers

import (
	"net/http"

	friendshipRepo "pillpal/database/repository/friendship"
	userRepo "pillpal/database/repository/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile-adjacent endpoints: friend listing and push
// identity registration.
type UserHandler struct {
	Users       userRepo.UserRepository
	Friendships friendshipRepo.FriendshipRepository
}

func NewUserHandler(users userRepo.UserRepository, friendships friendshipRepo.FriendshipRepository) *UserHandler {
	return &UserHandler{Users: users, Friendships: friendships}
}

// ListFriends handles GET /api/friends. Returns the counterpart profiles of
// every accepted friendship.
func (h *UserHandler) ListFriends(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	friendships, err := h.Friendships.ListAccepted(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list friendships", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list friends"})
		return
	}

	friends := make([]gin.H, 0, len(friendships))
	for _, f := range friendships {
		friendID := f.Other(userID)
		profile, err := h.Users.GetByID(c.Request.Context(), friendID)
		if err != nil || profile == nil {
			logger.Warn("friend profile missing", zap.String("friendID", friendID), zap.Error(err))
			continue
		}
		friends = append(friends, gin.H{
			"id":           profile.ID,
			"username":     profile.Username,
			"display_name": profile.DisplayName,
		})
	}
	c.JSON(http.StatusOK, friends)
}

type pushTokenRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
}

// UpdatePushToken handles PUT /api/users/push-token.
func (h *UserHandler) UpdatePushToken(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req pushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Users.UpdatePushPlayerID(c.Request.Context(), userID, req.PlayerID); err != nil {
		logger.Error("failed to update push token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update push token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
