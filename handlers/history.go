package handlers

import (
	"net/http"

	friendReminderRepo "pillpal/database/repository/friendreminder"
	reminderRepo "pillpal/database/repository/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryHandler serves dose history and the friend-reminder inbox.
type HistoryHandler struct {
	Reminders       reminderRepo.ReminderRepository
	FriendReminders friendReminderRepo.FriendReminderRepository
}

func NewHistoryHandler(rems reminderRepo.ReminderRepository, frs friendReminderRepo.FriendReminderRepository) *HistoryHandler {
	return &HistoryHandler{Reminders: rems, FriendReminders: frs}
}

// ListHistory handles GET /api/history.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logs, err := h.Reminders.ListLogsByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list history"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ListFriendReminders handles GET /api/reminders/friend (received reminders).
func (h *HistoryHandler) ListFriendReminders(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recs, err := h.FriendReminders.ListByRecipient(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list friend reminders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list friend reminders"})
		return
	}
	c.JSON(http.StatusOK, recs)
}
