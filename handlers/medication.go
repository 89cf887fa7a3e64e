package handlers

import (
	"errors"
	"net/http"
	"time"

	medicationRepo "pillpal/database/repository/medication"
	"pillpal/models"
	"pillpal/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MedicationHandler exposes medication CRUD. Deletion goes through the
// reminder service so open instances are cancelled atomically.
type MedicationHandler struct {
	Meds        medicationRepo.MedicationRepository
	ReminderSvc reminder.ReminderService
}

func NewMedicationHandler(meds medicationRepo.MedicationRepository, svc reminder.ReminderService) *MedicationHandler {
	return &MedicationHandler{Meds: meds, ReminderSvc: svc}
}

type medicationRequest struct {
	Name           string `json:"name" binding:"required"`
	Dosage         string `json:"dosage"`
	Color          string `json:"color"`
	ReminderHour   int    `json:"reminder_hour" binding:"min=0,max=23"`
	ReminderMinute int    `json:"reminder_minute" binding:"min=0,max=59"`
	ReminderDays   []int  `json:"reminder_days"`
	IsActive       bool   `json:"is_active"`
}

func validDays(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}

// CreateMedication handles POST /api/medications.
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !validDays(req.ReminderDays) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reminder_days must be weekday numbers 0-6"})
		return
	}

	// An active schedule with no days can never fire. Allowed, but worth
	// flagging.
	if req.IsActive && len(req.ReminderDays) == 0 {
		logger.Warn("active medication created with no reminder days",
			zap.String("userID", userID), zap.String("name", req.Name))
	}

	med := models.Medication{
		UserID:         userID,
		Name:           req.Name,
		Dosage:         req.Dosage,
		Color:          req.Color,
		ReminderHour:   req.ReminderHour,
		ReminderMinute: req.ReminderMinute,
		ReminderDays:   req.ReminderDays,
		IsActive:       req.IsActive,
	}
	id, err := h.Meds.Create(c.Request.Context(), med)
	if err != nil {
		logger.Error("failed to create medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create medication"})
		return
	}

	// Return the stored document so the body carries the repo's timestamps.
	created, err := h.Meds.GetByID(c.Request.Context(), id)
	if err != nil || created == nil {
		logger.Error("failed to load created medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create medication"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListMedications handles GET /api/medications.
func (h *MedicationHandler) ListMedications(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	meds, err := h.Meds.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list medications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list medications"})
		return
	}
	c.JSON(http.StatusOK, meds)
}

// UpdateMedication handles PUT /api/medications/:id.
func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	medID := c.Param("id")

	existing, err := h.Meds.GetByID(c.Request.Context(), medID)
	if err != nil {
		logger.Error("failed to fetch medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medication"})
		return
	}
	if existing == nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}

	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !validDays(req.ReminderDays) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reminder_days must be weekday numbers 0-6"})
		return
	}
	if req.IsActive && len(req.ReminderDays) == 0 {
		logger.Warn("active medication updated with no reminder days",
			zap.String("medicationID", medID))
	}

	existing.Name = req.Name
	existing.Dosage = req.Dosage
	existing.Color = req.Color
	existing.ReminderHour = req.ReminderHour
	existing.ReminderMinute = req.ReminderMinute
	existing.ReminderDays = req.ReminderDays
	existing.IsActive = req.IsActive
	existing.UpdatedAt = time.Now()

	if err := h.Meds.Update(c.Request.Context(), *existing); err != nil {
		logger.Error("failed to update medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update medication"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// DeleteMedication handles DELETE /api/medications/:id.
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	medID := c.Param("id")

	existing, err := h.Meds.GetByID(c.Request.Context(), medID)
	if err != nil {
		logger.Error("failed to fetch medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medication"})
		return
	}
	if existing == nil || existing.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}

	if err := h.ReminderSvc.DeleteMedication(c.Request.Context(), medID); err != nil {
		var nf *reminder.NotFoundError
		if errors.As(err, &nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}
		logger.Error("failed to delete medication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medication"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": medID})
}
