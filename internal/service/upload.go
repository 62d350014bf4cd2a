package service

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/storage"

	"github.com/google/uuid"
)

const (
	maxImageSize      = 10 << 20
	presignedURLValid = 15 * time.Minute
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Upload is a file received from a multipart form
type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

// FileURLResponse carries a presigned download URL
type FileURLResponse struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

func validateImage(upload *Upload) error {
	if upload == nil || upload.Reader == nil {
		return apperrors.NewValidationError("file", "file is required")
	}
	if upload.Size <= 0 || upload.Size > maxImageSize {
		return apperrors.NewValidationError("file", fmt.Sprintf("file size must be between 1 byte and %d MB", maxImageSize>>20))
	}
	if !allowedImageTypes[upload.ContentType] {
		return apperrors.NewValidationError("file", "only jpeg, png, webp and gif images are accepted")
	}
	return nil
}

// storeImage uploads an image for ownerID and returns its object key
func storeImage(ctx context.Context, store ObjectStorage, prefix string, ownerID uuid.UUID, upload *Upload) (string, error) {
	if store == nil {
		return "", apperrors.ErrStorageNotConfigured
	}
	if err := validateImage(upload); err != nil {
		return "", err
	}

	key := storage.ObjectKey(prefix, ownerID, upload.FileName)
	if err := store.Put(ctx, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	return key, nil
}

func presign(ctx context.Context, store ObjectStorage, key string) (*FileURLResponse, error) {
	if store == nil {
		return nil, apperrors.ErrStorageNotConfigured
	}
	url, err := store.PresignedURL(ctx, key, presignedURLValid)
	if err != nil {
		return nil, fmt.Errorf("failed to sign file url: %w", err)
	}
	return &FileURLResponse{
		URL:       url,
		ExpiresAt: formatTime(nowFunc().Add(presignedURLValid)),
	}, nil
}
