package product

import (
	"context"
	"errors"
	"testing"

	"github.com/intiprima/backoffice/internal/domain"
)

// mockProductRepo is an in-memory SluggedRepository for service tests.
type mockProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint

	createErr error
	listErr   error
	slugErr   error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: map[uint]*domain.Product{}, nextID: 1}
}

func (m *mockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	if p, ok := m.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockProductRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, p := range m.products {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockProductRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.slugErr != nil {
		return false, m.slugErr
	}
	for _, p := range m.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProductRepo) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[domain.Product], error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	items := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		items = append(items, *p)
	}
	return &domain.PageResult[domain.Product]{Items: items}, nil
}

func (m *mockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func TestService_Create_DerivesSlug(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateProductRequest{Title: "  Laser Cutter  "})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Title != "Laser Cutter" {
		t.Errorf("Title = %q, want trimmed", p.Title)
	}
	if p.Slug != "laser-cutter" {
		t.Errorf("Slug = %q, want %q", p.Slug, "laser-cutter")
	}
}

func TestService_Create_SlugCollisionGetsSuffix(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateProductRequest{Title: "Laser Cutter"})
	if err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	second, err := svc.Create(ctx, CreateProductRequest{Title: "Laser Cutter"})
	if err != nil {
		t.Fatalf("second Create error: %v", err)
	}

	if first.Slug != "laser-cutter" {
		t.Errorf("first Slug = %q, want %q", first.Slug, "laser-cutter")
	}
	if second.Slug != "laser-cutter-1" {
		t.Errorf("second Slug = %q, want %q", second.Slug, "laser-cutter-1")
	}
}

func TestService_Create_EmptySlugRejected(t *testing.T) {
	svc := NewService(newMockProductRepo())

	for _, title := range []string{"", "   ", "!!!"} {
		_, err := svc.Create(context.Background(), CreateProductRequest{Title: title})
		if !domain.IsValidation(err) {
			t.Errorf("Create(%q) error = %v, want validation", title, err)
		}
	}
}

func TestService_Create_SlugProbeErrorPropagates(t *testing.T) {
	repo := newMockProductRepo()
	repo.slugErr = domain.NewAppError(domain.CodeInternal, "database error", errors.New("down"))
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateProductRequest{Title: "Laser Cutter"})
	if !domain.IsInternal(err) {
		t.Errorf("error = %v, want internal", err)
	}
}

func TestService_Update_PreservesSlug(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProductRequest{Title: "Laser Cutter"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.Update(ctx, p.ID, UpdateProductRequest{Title: "Fiber Laser Cutter"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "Fiber Laser Cutter" {
		t.Errorf("Title = %q, want updated", updated.Title)
	}
	if updated.Slug != "laser-cutter" {
		t.Errorf("Slug = %q, want original slug preserved", updated.Slug)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newMockProductRepo())

	_, err := svc.Update(context.Background(), 99, UpdateProductRequest{Title: "X"})
	if !domain.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newMockProductRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProductRequest{Title: "Laser Cutter"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); !domain.IsNotFound(err) {
		t.Errorf("second Delete error = %v, want not-found", err)
	}
}
