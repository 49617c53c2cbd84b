package gallery

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
)

var listConfig = domain.ListConfig{
	SearchFields:     []string{"title", "category"},
	SortFields:       []string{"id", "title", "category", "created_at"},
	FilterFields:     []string{"category"},
	DefaultSortField: "created_at",
	DefaultSortOrder: "desc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for gallery images.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for gallery images.
type Service interface {
	Create(ctx context.Context, in CreateGalleryImageRequest) (*domain.GalleryImage, error)
	Get(ctx context.Context, id uint) (*domain.GalleryImage, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.GalleryImage], error)
	Update(ctx context.Context, id uint, in UpdateGalleryImageRequest) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id uint) error
}

type galleryService struct {
	repo domain.Repository[domain.GalleryImage]
}

// NewService creates a gallery Service with the given repository.
func NewService(repo domain.Repository[domain.GalleryImage]) Service {
	return &galleryService{repo: repo}
}

// Create persists a new gallery image.
func (s *galleryService) Create(ctx context.Context, in CreateGalleryImageRequest) (*domain.GalleryImage, error) {
	image := &domain.GalleryImage{
		Title:    strings.TrimSpace(in.Title),
		Category: strings.TrimSpace(in.Category),
		ImageURL: in.ImageURL,
	}

	if err := s.repo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// Get retrieves a gallery image by ID.
func (s *galleryService) Get(ctx context.Context, id uint) (*domain.GalleryImage, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of gallery images.
func (s *galleryService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.GalleryImage], error) {
	return s.repo.List(ctx, params)
}

// Update loads the existing gallery image, applies changes, and persists them.
func (s *galleryService) Update(ctx context.Context, id uint, in UpdateGalleryImageRequest) (*domain.GalleryImage, error) {
	image, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image.Title = strings.TrimSpace(in.Title)
	image.Category = strings.TrimSpace(in.Category)
	image.ImageURL = in.ImageURL

	if err := s.repo.Update(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete checks that the gallery image exists, then removes it.
func (s *galleryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
