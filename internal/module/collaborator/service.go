package collaborator

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
)

var listConfig = domain.ListConfig{
	SearchFields:     []string{"name"},
	SortFields:       []string{"id", "name", "created_at"},
	DefaultSortField: "name",
	DefaultSortOrder: "asc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for collaborators.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for collaborators.
type Service interface {
	Create(ctx context.Context, in CreateCollaboratorRequest) (*domain.Collaborator, error)
	Get(ctx context.Context, id uint) (*domain.Collaborator, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Collaborator], error)
	Update(ctx context.Context, id uint, in UpdateCollaboratorRequest) (*domain.Collaborator, error)
	Delete(ctx context.Context, id uint) error
}

type collaboratorService struct {
	repo domain.Repository[domain.Collaborator]
}

// NewService creates a collaborator Service with the given repository.
func NewService(repo domain.Repository[domain.Collaborator]) Service {
	return &collaboratorService{repo: repo}
}

// Create persists a new collaborator.
func (s *collaboratorService) Create(ctx context.Context, in CreateCollaboratorRequest) (*domain.Collaborator, error) {
	collab := &domain.Collaborator{
		Name:       strings.TrimSpace(in.Name),
		LogoURL:    in.LogoURL,
		WebsiteURL: in.WebsiteURL,
	}

	if err := s.repo.Create(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}

// Get retrieves a collaborator by ID.
func (s *collaboratorService) Get(ctx context.Context, id uint) (*domain.Collaborator, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of collaborators.
func (s *collaboratorService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Collaborator], error) {
	return s.repo.List(ctx, params)
}

// Update loads the existing collaborator, applies changes, and persists them.
func (s *collaboratorService) Update(ctx context.Context, id uint, in UpdateCollaboratorRequest) (*domain.Collaborator, error) {
	collab, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	collab.Name = strings.TrimSpace(in.Name)
	collab.LogoURL = in.LogoURL
	collab.WebsiteURL = in.WebsiteURL

	if err := s.repo.Update(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}

// Delete checks that the collaborator exists, then removes it.
func (s *collaboratorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
