package principal

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

var listConfig = domain.ListConfig{
	SearchFields:     []string{"name", "manufacturer", "description"},
	SortFields:       []string{"id", "name", "manufacturer", "created_at", "updated_at"},
	DefaultSortField: "name",
	DefaultSortOrder: "asc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for principal product lines.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for principal product lines.
type Service interface {
	Create(ctx context.Context, in CreatePrincipalRequest) (*domain.Principal, error)
	Get(ctx context.Context, id uint) (*domain.Principal, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Principal, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Principal], error)
	Update(ctx context.Context, id uint, in UpdatePrincipalRequest) (*domain.Principal, error)
	Delete(ctx context.Context, id uint) error
}

type principalService struct {
	repo domain.SluggedRepository[domain.Principal]
}

// NewService creates a principal Service with the given repository.
func NewService(repo domain.SluggedRepository[domain.Principal]) Service {
	return &principalService{repo: repo}
}

// Create derives a unique slug from the name and persists a new principal.
func (s *principalService) Create(ctx context.Context, in CreatePrincipalRequest) (*domain.Principal, error) {
	name := strings.TrimSpace(in.Name)
	if pkg.GenerateSlug(name) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name must contain at least one alphanumeric character", nil)
	}

	slug, err := pkg.GenerateUniqueSlug(name, func(candidate string) (bool, error) {
		exists, err := s.repo.SlugExists(ctx, candidate)
		return !exists, err
	})
	if err != nil {
		return nil, err
	}

	principal := &domain.Principal{
		Name:         name,
		Slug:         slug,
		Manufacturer: strings.TrimSpace(in.Manufacturer),
		Description:  in.Description,
		WebsiteURL:   in.WebsiteURL,
		LogoURL:      in.LogoURL,
	}

	if err := s.repo.Create(ctx, principal); err != nil {
		return nil, err
	}
	return principal, nil
}

// Get retrieves a principal by ID.
func (s *principalService) Get(ctx context.Context, id uint) (*domain.Principal, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves a principal by its public slug.
func (s *principalService) GetBySlug(ctx context.Context, slug string) (*domain.Principal, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// List returns a paginated list of principals.
func (s *principalService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Principal], error) {
	return s.repo.List(ctx, params)
}

// Update loads the existing principal, applies changes, and persists them.
// The slug is never regenerated.
func (s *principalService) Update(ctx context.Context, id uint, in UpdatePrincipalRequest) (*domain.Principal, error) {
	principal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	principal.Name = strings.TrimSpace(in.Name)
	principal.Manufacturer = strings.TrimSpace(in.Manufacturer)
	principal.Description = in.Description
	principal.WebsiteURL = in.WebsiteURL
	principal.LogoURL = in.LogoURL

	if err := s.repo.Update(ctx, principal); err != nil {
		return nil, err
	}
	return principal, nil
}

// Delete checks that the principal exists, then removes it.
func (s *principalService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
