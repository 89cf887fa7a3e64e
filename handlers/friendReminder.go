package handlers

import (
	"net/http"

	"pillpal/models"
	"pillpal/services/friendremind"
	"pillpal/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FriendReminderHandler exposes the cross-user reminder dispatch endpoint.
type FriendReminderHandler struct {
	Svc friendremind.FriendReminderService
}

func NewFriendReminderHandler(svc friendremind.FriendReminderService) *FriendReminderHandler {
	return &FriendReminderHandler{Svc: svc}
}

// SendFriendReminder handles POST /api/reminders/friend. Any failure,
// whether authorization or persistence, answers 400 with a reason; a
// persisted reminder always answers 200 even if the push attempt failed.
func (h *FriendReminderHandler) SendFriendReminder(c *gin.Context) {
	logger := getLogger(c)

	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
		return
	}

	var req models.FriendReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("friend reminder: invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	rec, outcome, err := h.Svc.Send(c.Request.Context(), req, caller)
	if err != nil {
		if denied, ok := err.(*friendremind.DeniedError); ok {
			logger.Warn("friend reminder denied",
				zap.String("caller", caller),
				zap.String("reason", denied.Reason),
			)
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": denied.Reason})
			return
		}
		logger.Error("friend reminder failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Failed to send reminder"})
		return
	}

	msg := "Reminder sent"
	if outcome != notification.OutcomeSent {
		msg = "Reminder recorded; push not delivered (" + string(outcome) + ")"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"reminder_id": rec.ID,
		"message":     msg,
	})
}
