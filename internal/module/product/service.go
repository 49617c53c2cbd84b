package product

import (
	"context"
	"strings"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// listConfig declares the columns list requests may search, sort, and
// filter on for products.
var listConfig = domain.ListConfig{
	SearchFields:     []string{"title", "category", "summary", "description"},
	SortFields:       []string{"id", "title", "category", "created_at", "updated_at"},
	FilterFields:     []string{"category"},
	DefaultSortField: "created_at",
	DefaultSortOrder: "desc",
	DefaultPerPage:   10,
}

// ListConfig returns the list configuration for products.
func ListConfig() domain.ListConfig { return listConfig }

// Service defines the business logic interface for products.
type Service interface {
	Create(ctx context.Context, in CreateProductRequest) (*domain.Product, error)
	Get(ctx context.Context, id uint) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Product], error)
	Update(ctx context.Context, id uint, in UpdateProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo domain.SluggedRepository[domain.Product]
}

// NewService creates a product Service with the given repository.
func NewService(repo domain.SluggedRepository[domain.Product]) Service {
	return &productService{repo: repo}
}

// Create derives a unique slug from the title and persists a new product.
func (s *productService) Create(ctx context.Context, in CreateProductRequest) (*domain.Product, error) {
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

	product := &domain.Product{
		Title:       title,
		Slug:        slug,
		Category:    strings.TrimSpace(in.Category),
		Summary:     strings.TrimSpace(in.Summary),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		BrochureURL: in.BrochureURL,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get retrieves a product by ID.
func (s *productService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug retrieves a product by its public slug.
func (s *productService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// List returns a paginated list of products.
func (s *productService) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Product], error) {
	return s.repo.List(ctx, params)
}

// Update loads the existing product, applies changes, and persists them.
// The slug is never regenerated, so public URLs stay stable.
func (s *productService) Update(ctx context.Context, id uint, in UpdateProductRequest) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Title = strings.TrimSpace(in.Title)
	product.Category = strings.TrimSpace(in.Category)
	product.Summary = strings.TrimSpace(in.Summary)
	product.Description = in.Description
	product.ImageURL = in.ImageURL
	product.BrochureURL = in.BrochureURL

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete checks that the product exists, then removes it.
func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
