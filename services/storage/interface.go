package storage

import (
	"context"
	"time"
)

// StorageService stores dose evidence photos. The returned public ID is the
// opaque photoRef recorded on a medication log entry.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
