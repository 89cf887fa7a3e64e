package storage

import (
	"context"
	"errors"
	"time"
)

// ErrStorageDisabled is returned by every operation of the disabled
// implementation, used when no storage credentials are configured.
var ErrStorageDisabled = errors.New("evidence photo storage is not configured")

type disabledStorage struct{}

// NewDisabledStorage returns a StorageService that fails every operation
// with ErrStorageDisabled. Reminder flows are unaffected; only the photo
// evidence endpoints degrade.
func NewDisabledStorage() StorageService { return disabledStorage{} }

func (disabledStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	return "", ErrStorageDisabled
}

func (disabledStorage) DeleteFile(ctx context.Context, publicID string) error {
	return ErrStorageDisabled
}

func (disabledStorage) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	return "", ErrStorageDisabled
}
