package media

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// maxUploadSize caps uploads at 20 MiB.
const maxUploadSize = 20 << 20

// documentTypes lists the non-image, non-video content types accepted for
// brochure and datasheet uploads.
var documentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Service defines the media upload operations.
type Service interface {
	Upload(ctx context.Context, in domain.UploadInput) (string, error)
}

type mediaService struct {
	storage domain.ObjectStorage
}

// NewService creates a media Service backed by the given object storage.
func NewService(storage domain.ObjectStorage) Service {
	return &mediaService{storage: storage}
}

// Upload validates the file's size, content type, and destination folder,
// then stores it and returns the public URL. No database record is written
// here; callers attach the returned URL to a resource afterwards, so a
// failed upload leaves no partial state.
func (s *mediaService) Upload(ctx context.Context, in domain.UploadInput) (string, error) {
	if in.Size <= 0 || in.Size > maxUploadSize {
		return "", domain.NewAppError(domain.CodeValidation, "file size must be between 1 byte and 20 MiB", nil)
	}
	if !allowedContentType(in.ContentType) {
		return "", domain.NewAppError(domain.CodeValidation, "content type must be an image, video, or document", nil)
	}

	folder := strings.TrimSpace(in.Folder)
	if folder != "" && pkg.GenerateSlug(folder) != folder {
		return "", domain.NewAppError(domain.CodeValidation, "folder must be a lowercase slug", nil)
	}
	in.Folder = folder

	url, err := s.storage.Upload(ctx, in)
	if err != nil {
		return "", domain.NewAppError(domain.CodeInternal, "upload failed", err)
	}
	return url, nil
}

// allowedContentType accepts images, videos, and a small set of document types.
func allowedContentType(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/") {
		return true
	}
	return documentTypes[contentType]
}
