package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"pillpal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMedicationRepo struct {
	meds map[string]models.Medication
	seq  int
}

func newStubMedicationRepo() *stubMedicationRepo {
	return &stubMedicationRepo{meds: make(map[string]models.Medication)}
}

func (r *stubMedicationRepo) Create(ctx context.Context, med models.Medication) (string, error) {
	r.seq++
	med.ID = "med-" + strconv.Itoa(r.seq)
	med.CreatedAt = time.Now()
	med.UpdatedAt = time.Now()
	r.meds[med.ID] = med
	return med.ID, nil
}

func (r *stubMedicationRepo) GetByID(ctx context.Context, id string) (*models.Medication, error) {
	med, ok := r.meds[id]
	if !ok {
		return nil, nil
	}
	return &med, nil
}

func (r *stubMedicationRepo) ListByUser(ctx context.Context, userID string) ([]models.Medication, error) {
	var out []models.Medication
	for _, m := range r.meds {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMedicationRepo) ListActive(ctx context.Context) ([]models.Medication, error) {
	return nil, nil
}

func (r *stubMedicationRepo) Update(ctx context.Context, med models.Medication) error {
	r.meds[med.ID] = med
	return nil
}

func (r *stubMedicationRepo) Delete(ctx context.Context, id string) error {
	delete(r.meds, id)
	return nil
}

type stubReminderService struct {
	deleted []string
}

func (s *stubReminderService) MarkTaken(ctx context.Context, instanceID, photoRef, notes string) (*models.ReminderInstance, bool, error) {
	return nil, false, nil
}

func (s *stubReminderService) MarkSkipped(ctx context.Context, instanceID, notes string) (*models.ReminderInstance, bool, error) {
	return nil, false, nil
}

func (s *stubReminderService) Snooze(ctx context.Context, instanceID string, minutes int) (*models.ReminderInstance, error) {
	return nil, nil
}

func (s *stubReminderService) DeleteMedication(ctx context.Context, medicationID string) error {
	s.deleted = append(s.deleted, medicationID)
	return nil
}

func newMedicationRouter(repo *stubMedicationRepo, svc *stubReminderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMedicationHandler(repo, svc)
	auth := func(c *gin.Context) { c.Set("userID", "alice") }
	r := gin.New()
	r.POST("/api/medications", auth, h.CreateMedication)
	r.DELETE("/api/medications/:id", auth, h.DeleteMedication)
	return r
}

func postMedication(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/medications", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateMedication_ReturnsStoredDocument(t *testing.T) {
	repo := newStubMedicationRepo()
	r := newMedicationRouter(repo, &stubReminderService{})

	w := postMedication(t, r, map[string]any{
		"name":            "Metformin",
		"reminder_hour":   8,
		"reminder_minute": 0,
		"reminder_days":   []int{1, 2, 3, 4, 5},
		"is_active":       true,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.Medication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "med-1", got.ID)
	assert.Equal(t, "alice", got.UserID)
	// The body is the stored document, timestamps included.
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestCreateMedication_RejectsInvalidDays(t *testing.T) {
	repo := newStubMedicationRepo()
	r := newMedicationRouter(repo, &stubReminderService{})

	w := postMedication(t, r, map[string]any{
		"name":          "Metformin",
		"reminder_days": []int{7},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.meds)
}

func TestDeleteMedication_GoesThroughReminderService(t *testing.T) {
	repo := newStubMedicationRepo()
	svc := &stubReminderService{}
	r := newMedicationRouter(repo, svc)

	repo.meds["med-1"] = models.Medication{ID: "med-1", UserID: "alice"}

	req := httptest.NewRequest(http.MethodDelete, "/api/medications/med-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"med-1"}, svc.deleted)
}

func TestDeleteMedication_ForeignMedicationIs404(t *testing.T) {
	repo := newStubMedicationRepo()
	svc := &stubReminderService{}
	r := newMedicationRouter(repo, svc)

	repo.meds["med-1"] = models.Medication{ID: "med-1", UserID: "bob"}

	req := httptest.NewRequest(http.MethodDelete, "/api/medications/med-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, svc.deleted)
}
