package team

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
)

var listConfig = domain.ListConfig{
	SearchFields:     []string{"name", "position"},
	SortFields:       []string{"id", "name", "position", "display_order", "created_at"},
	DefaultSortField: "display_order",
	DefaultSortOrder: "asc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for team members.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for team members.
type Service interface {
	Create(ctx context.Context, in CreateTeamMemberRequest) (*domain.TeamMember, error)
	Get(ctx context.Context, id uint) (*domain.TeamMember, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.TeamMember], error)
	Update(ctx context.Context, id uint, in UpdateTeamMemberRequest) (*domain.TeamMember, error)
	Delete(ctx context.Context, id uint) error
}

type teamService struct {
	repo domain.Repository[domain.TeamMember]
}

// NewService creates a team Service with the given repository.
func NewService(repo domain.Repository[domain.TeamMember]) Service {
	return &teamService{repo: repo}
}

// Create persists a new team member.
func (s *teamService) Create(ctx context.Context, in CreateTeamMemberRequest) (*domain.TeamMember, error) {
	member := &domain.TeamMember{
		Name:         strings.TrimSpace(in.Name),
		Position:     strings.TrimSpace(in.Position),
		PhotoURL:     in.PhotoURL,
		DisplayOrder: in.DisplayOrder,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Get retrieves a team member by ID.
func (s *teamService) Get(ctx context.Context, id uint) (*domain.TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of team members.
func (s *teamService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.TeamMember], error) {
	return s.repo.List(ctx, params)
}

// Update loads the existing team member, applies changes, and persists them.
func (s *teamService) Update(ctx context.Context, id uint, in UpdateTeamMemberRequest) (*domain.TeamMember, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Name = strings.TrimSpace(in.Name)
	member.Position = strings.TrimSpace(in.Position)
	member.PhotoURL = in.PhotoURL
	member.DisplayOrder = in.DisplayOrder

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete checks that the team member exists, then removes it.
func (s *teamService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
