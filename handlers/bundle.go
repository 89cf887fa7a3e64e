package handlers

import (
	userRepo "pillpal/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers and the repositories the routing
// layer's middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Friend reminder dispatch.
	SendFriendReminderHandler  gin.HandlerFunc
	ListFriendRemindersHandler gin.HandlerFunc

	// Medication CRUD.
	CreateMedicationHandler gin.HandlerFunc
	ListMedicationsHandler  gin.HandlerFunc
	UpdateMedicationHandler gin.HandlerFunc
	DeleteMedicationHandler gin.HandlerFunc

	// Reminder instance actions.
	TakeReminderHandler   gin.HandlerFunc
	SkipReminderHandler   gin.HandlerFunc
	SnoozeReminderHandler gin.HandlerFunc

	// History and profile.
	ListHistoryHandler     gin.HandlerFunc
	ListFriendsHandler     gin.HandlerFunc
	UpdatePushTokenHandler gin.HandlerFunc

	// Evidence photo storage.
	UploadEvidenceHandler gin.HandlerFunc
	GetEvidenceURLHandler gin.HandlerFunc
	DeleteEvidenceHandler gin.HandlerFunc
}
