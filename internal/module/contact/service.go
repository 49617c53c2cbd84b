package contact

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
)

var listConfig = domain.ListConfig{
	SearchFields:     []string{"name", "email", "subject", "message"},
	SortFields:       []string{"id", "name", "email", "subject", "created_at"},
	DefaultSortField: "created_at",
	DefaultSortOrder: "desc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for contact submissions.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for contact submissions.
// Submissions are immutable once created; staff can only read and delete.
type Service interface {
	Create(ctx context.Context, in CreateContactRequest) (*domain.ContactSubmission, error)
	Get(ctx context.Context, id uint) (*domain.ContactSubmission, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.ContactSubmission], error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	repo domain.Repository[domain.ContactSubmission]
}

// NewService creates a contact Service with the given repository.
func NewService(repo domain.Repository[domain.ContactSubmission]) Service {
	return &contactService{repo: repo}
}

// Create persists a new contact submission.
func (s *contactService) Create(ctx context.Context, in CreateContactRequest) (*domain.ContactSubmission, error) {
	submission := &domain.ContactSubmission{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// Get retrieves a contact submission by ID.
func (s *contactService) Get(ctx context.Context, id uint) (*domain.ContactSubmission, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of contact submissions.
func (s *contactService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.ContactSubmission], error) {
	return s.repo.List(ctx, params)
}

// Delete checks that the submission exists, then removes it.
func (s *contactService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
