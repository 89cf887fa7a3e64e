package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	userRepo "pillpal/database/repository/user"
	"pillpal/handlers"
	"pillpal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct{}

func (stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (stubUserRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	return nil, nil
}

func (stubUserRepo) UpdatePushPlayerID(ctx context.Context, id, playerID string) error {
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	noop := func(c *gin.Context) { c.Status(http.StatusOK) }
	var repo userRepo.UserRepository = stubUserRepo{}
	hb := &handlers.HandlerBundle{
		UserRepo:                   repo,
		SendFriendReminderHandler:  noop,
		ListFriendRemindersHandler: noop,
		CreateMedicationHandler:    noop,
		ListMedicationsHandler:     noop,
		UpdateMedicationHandler:    noop,
		DeleteMedicationHandler:    noop,
		TakeReminderHandler:        noop,
		SkipReminderHandler:        noop,
		SnoozeReminderHandler:      noop,
		ListHistoryHandler:         noop,
		ListFriendsHandler:         noop,
		UpdatePushTokenHandler:     noop,
		UploadEvidenceHandler:      noop,
		GetEvidenceURLHandler:      noop,
		DeleteEvidenceHandler:      noop,
	}
	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestPreflightAnsweredBeforeAuth(t *testing.T) {
	r := newTestRouter()

	// A browser preflight carries no bearer token; the CORS layer must
	// answer it without the auth middleware rejecting the request.
	req := httptest.NewRequest(http.MethodOptions, "/api/reminders/friend", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/medications", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
