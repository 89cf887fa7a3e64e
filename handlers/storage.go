package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pillpal/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler manages dose evidence photos. The public ID returned by an
// upload is passed back as photo_ref when marking a reminder taken.
type StorageHandler struct {
	Storage storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

func respondStorageDisabled(c *gin.Context, err error) bool {
	if errors.Is(err, storage.ErrStorageDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Evidence photo storage is not configured"})
		return true
	}
	return false
}

// evidenceRef extracts the wildcard photo reference and checks that it lives
// under the caller's evidence folder.
func evidenceRef(c *gin.Context, userID string) (string, bool) {
	ref := strings.TrimPrefix(c.Param("ref"), "/")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing photo reference"})
		return "", false
	}
	if !strings.HasPrefix(ref, "evidence/"+userID+"/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return "", false
	}
	return ref, true
}

// UploadEvidenceHandler handles POST /api/storage/evidence (multipart).
func (h *StorageHandler) UploadEvidenceHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	photoRef, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "evidence/"+userID)
	if err != nil {
		if respondStorageDisabled(c, err) {
			return
		}
		logger.Error("failed to upload evidence photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_ref": photoRef})
}

// GetEvidenceURL handles GET /api/storage/evidence/*ref.
func (h *StorageHandler) GetEvidenceURL(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	ref, ok := evidenceRef(c, userID)
	if !ok {
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), ref, time.Hour)
	if err != nil {
		if respondStorageDisabled(c, err) {
			return
		}
		logger.Error("failed to resolve evidence photo URL", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve photo URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_ref": ref, "url": url})
}

// DeleteEvidence handles DELETE /api/storage/evidence/*ref.
func (h *StorageHandler) DeleteEvidence(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	ref, ok := evidenceRef(c, userID)
	if !ok {
		return
	}

	if err := h.Storage.DeleteFile(c.Request.Context(), ref); err != nil {
		if respondStorageDisabled(c, err) {
			return
		}
		logger.Error("failed to delete evidence photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": ref})
}
