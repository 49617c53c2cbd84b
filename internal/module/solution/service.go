package solution

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

var listConfig = domain.ListConfig{
	SearchFields:     []string{"title", "summary", "description"},
	SortFields:       []string{"id", "title", "created_at", "updated_at"},
	DefaultSortField: "created_at",
	DefaultSortOrder: "desc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for solutions.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for solutions.
type Service interface {
	Create(ctx context.Context, in CreateSolutionRequest) (*domain.Solution, error)
	Get(ctx context.Context, id uint) (*domain.Solution, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Solution, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Solution], error)
	Update(ctx context.Context, id uint, in UpdateSolutionRequest) (*domain.Solution, error)
	Delete(ctx context.Context, id uint) error
}

type solutionService struct {
	repo domain.SluggedRepository[domain.Solution]
}

// NewService creates a solution Service with the given repository.
func NewService(repo domain.SluggedRepository[domain.Solution]) Service {
	return &solutionService{repo: repo}
}

// Create derives a unique slug from the title and persists a new solution.
func (s *solutionService) Create(ctx context.Context, in CreateSolutionRequest) (*domain.Solution, error) {
	title := strings.TrimSpace(in.Title)
	if pkg.GenerateSlug(title) == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "title must contain at least one alphanumeric character", nil)
	}

	slug, err := pkg.GenerateUniqueSlug(title, func(candidate string) (bool, error) {
		exists, err := s.repo.SlugExists(ctx, candidate)
		return !exists, err
	})
	if err != nil {
		return nil, err
	}

	solution := &domain.Solution{
		Title:       title,
		Slug:        slug,
		Summary:     strings.TrimSpace(in.Summary),
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}

	if err := s.repo.Create(ctx, solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// Get retrieves a solution by ID.
func (s *solutionService) Get(ctx context.Context, id uint) (*domain.Solution, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves a solution by its public slug.
func (s *solutionService) GetBySlug(ctx context.Context, slug string) (*domain.Solution, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// List returns a paginated list of solutions.
func (s *solutionService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Solution], error) {
	return s.repo.List(ctx, params)
}

// Update loads the existing solution, applies changes, and persists them.
// The slug is never regenerated.
func (s *solutionService) Update(ctx context.Context, id uint, in UpdateSolutionRequest) (*domain.Solution, error) {
	solution, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	solution.Title = strings.TrimSpace(in.Title)
	solution.Summary = strings.TrimSpace(in.Summary)
	solution.Description = in.Description
	solution.ImageURL = in.ImageURL

	if err := s.repo.Update(ctx, solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// Delete checks that the solution exists, then removes it.
func (s *solutionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
