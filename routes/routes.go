package routes

import (
	"net/http"
	"time"

	"pillpal/handlers"
	"pillpal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMedicationRoutes registers medication CRUD endpoints.
func RegisterMedicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/medications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateMedicationHandler)
		api.GET("", hb.ListMedicationsHandler)
		api.PUT("/:id", hb.UpdateMedicationHandler)
		api.DELETE("/:id", hb.DeleteMedicationHandler)
	}
}

// RegisterReminderRoutes registers reminder actions and friend dispatch.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/friend", hb.SendFriendReminderHandler)
		api.GET("/friend", hb.ListFriendRemindersHandler)
		api.POST("/:id/take", hb.TakeReminderHandler)
		api.POST("/:id/skip", hb.SkipReminderHandler)
		api.POST("/:id/snooze", hb.SnoozeReminderHandler)
	}
}

// RegisterProfileRoutes registers history, friends and push-token endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/history", hb.ListHistoryHandler)
		api.GET("/friends", hb.ListFriendsHandler)
		api.PUT("/users/push-token", hb.UpdatePushTokenHandler)
		api.POST("/storage/evidence", hb.UploadEvidenceHandler)
		api.GET("/storage/evidence/*ref", hb.GetEvidenceURLHandler)
		api.DELETE("/storage/evidence/*ref", hb.DeleteEvidenceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PillPal"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here. OPTIONS preflights are
	// answered by the CORS layer before any auth runs.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMedicationRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterHealthRoute(r)
}
