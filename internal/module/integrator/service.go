package integrator

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

var listConfig = domain.ListConfig{
	SearchFields:     []string{"name", "region", "description"},
	SortFields:       []string{"id", "name", "region", "created_at", "updated_at"},
	FilterFields:     []string{"region"},
	DefaultSortField: "name",
	DefaultSortOrder: "asc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for system integrators.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for system integrators.
type Service interface {
	Create(ctx context.Context, in CreateIntegratorRequest) (*domain.Integrator, error)
	Get(ctx context.Context, id uint) (*domain.Integrator, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Integrator, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Integrator], error)
	Update(ctx context.Context, id uint, in UpdateIntegratorRequest) (*domain.Integrator, error)
	Delete(ctx context.Context, id uint) error
}

type integratorService struct {
	repo domain.SluggedRepository[domain.Integrator]
}

// NewService creates an integrator Service with the given repository.
func NewService(repo domain.SluggedRepository[domain.Integrator]) Service {
	return &integratorService{repo: repo}
}

// Create derives a unique slug from the name and persists a new integrator.
func (s *integratorService) Create(ctx context.Context, in CreateIntegratorRequest) (*domain.Integrator, error) {
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

	integrator := &domain.Integrator{
		Name:        name,
		Slug:        slug,
		Region:      strings.TrimSpace(in.Region),
		Description: in.Description,
		LogoURL:     in.LogoURL,
		WebsiteURL:  in.WebsiteURL,
	}

	if err := s.repo.Create(ctx, integrator); err != nil {
		return nil, err
	}
	return integrator, nil
}

// Get retrieves an integrator by ID.
func (s *integratorService) Get(ctx context.Context, id uint) (*domain.Integrator, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves an integrator by its public slug.
func (s *integratorService) GetBySlug(ctx context.Context, slug string) (*domain.Integrator, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// List returns a paginated list of integrators.
func (s *integratorService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Integrator], error) {
	return s.repo.List(ctx, params)
}

// Update loads the existing integrator, applies changes, and persists them.
// The slug is never regenerated.
func (s *integratorService) Update(ctx context.Context, id uint, in UpdateIntegratorRequest) (*domain.Integrator, error) {
	integrator, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	integrator.Name = strings.TrimSpace(in.Name)
	integrator.Region = strings.TrimSpace(in.Region)
	integrator.Description = in.Description
	integrator.LogoURL = in.LogoURL
	integrator.WebsiteURL = in.WebsiteURL

	if err := s.repo.Update(ctx, integrator); err != nil {
		return nil, err
	}
	return integrator, nil
}

// Delete checks that the integrator exists, then removes it.
func (s *integratorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
