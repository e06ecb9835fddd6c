package usecase

import (
	"io"

	"recruitme/internal/entity"
	"recruitme/pkg/logger"
)

// ImageStorage is the object-storage capability for profile images. The
// S3 client satisfies it; the noop implementation is wired in when no
// storage credentials are configured.
type ImageStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFileByURL(url string) error
}

type noopImageStorage struct {
	logger *logger.Logger
}

func NewNoopImageStorage(log *logger.Logger) ImageStorage {
	return &noopImageStorage{logger: log}
}

func (s *noopImageStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	s.logger.Warn("Object storage not configured, rejecting upload %s", key)
	return "", entity.NewValidationError("image uploads are not available")
}

func (s *noopImageStorage) DeleteFileByURL(url string) error {
	return nil
}
