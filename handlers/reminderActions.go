package handlers

import (
	"errors"
	"net/http"

	"pillpal/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderActionHandler exposes the take/skip/snooze transitions on a
// reminder instance.
type ReminderActionHandler struct {
	Svc reminder.ReminderService
}

func NewReminderActionHandler(svc reminder.ReminderService) *ReminderActionHandler {
	return &ReminderActionHandler{Svc: svc}
}

type takeRequest struct {
	PhotoRef string `json:"photo_ref"`
	Notes    string `json:"notes"`
}

type skipRequest struct {
	Notes string `json:"notes"`
}

type snoozeRequest struct {
	Minutes int `json:"minutes" binding:"required,gt=0"`
}

func (h *ReminderActionHandler) respondTransitionError(c *gin.Context, err error) {
	logger := getLogger(c)

	var nf *reminder.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}
	var inv *reminder.InvalidStateError
	if errors.As(err, &inv) {
		c.JSON(http.StatusConflict, gin.H{"error": inv.Error()})
		return
	}
	logger.Error("reminder transition failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder"})
}

// TakeReminder handles POST /api/reminders/:id/take.
func (h *ReminderActionHandler) TakeReminder(c *gin.Context) {
	var req takeRequest
	// Body is optional; evidence and notes may be absent.
	_ = c.ShouldBindJSON(&req)

	inst, already, err := h.Svc.MarkTaken(c.Request.Context(), c.Param("id"), req.PhotoRef, req.Notes)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instance": inst, "already_resolved": already})
}

// SkipReminder handles POST /api/reminders/:id/skip.
func (h *ReminderActionHandler) SkipReminder(c *gin.Context) {
	var req skipRequest
	_ = c.ShouldBindJSON(&req)

	inst, already, err := h.Svc.MarkSkipped(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instance": inst, "already_resolved": already})
}

// SnoozeReminder handles POST /api/reminders/:id/snooze.
func (h *ReminderActionHandler) SnoozeReminder(c *gin.Context) {
	var req snoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "minutes must be a positive integer"})
		return
	}

	inst, err := h.Svc.Snooze(c.Request.Context(), c.Param("id"), req.Minutes)
	if err != nil {
		h.respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instance": inst})
}
