package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/intiprima/backoffice/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Product{}, &domain.StaffUser{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

var productListConfig = domain.ListConfig{
	SearchFields:     []string{"title", "category"},
	SortFields:       []string{"id", "title", "created_at"},
	FilterFields:     []string{"category"},
	DefaultSortField: "created_at",
	DefaultSortOrder: "desc",
	DefaultPerPage:   10,
}

func newProductRepo(t *testing.T) domain.SluggedRepository[domain.Product] {
	t.Helper()
	return New[domain.Product](newTestDB(t), productListConfig)
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	p := &domain.Product{Title: "Laser Cutter", Slug: "laser-cutter", Category: "cutting"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("Create did not populate ID")
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Title != "Laser Cutter" || got.Slug != "laser-cutter" {
		t.Errorf("got %+v, want title and slug preserved", got)
	}
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := newProductRepo(t)

	_, err := repo.GetByID(context.Background(), 9999)
	if !domain.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestRepository_GetBySlug(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	p := &domain.Product{Title: "Laser Cutter", Slug: "laser-cutter"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "laser-cutter")
	if err != nil {
		t.Fatalf("GetBySlug error: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("ID = %d, want %d", got.ID, p.ID)
	}

	if _, err := repo.GetBySlug(ctx, "missing"); !domain.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}

func TestRepository_SlugExists(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Product{Title: "Laser Cutter", Slug: "laser-cutter"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	exists, err := repo.SlugExists(ctx, "laser-cutter")
	if err != nil {
		t.Fatalf("SlugExists error: %v", err)
	}
	if !exists {
		t.Error("SlugExists = false, want true")
	}

	exists, err = repo.SlugExists(ctx, "free-slug")
	if err != nil {
		t.Fatalf("SlugExists error: %v", err)
	}
	if exists {
		t.Error("SlugExists = true, want false")
	}
}

func TestRepository_Create_DuplicateSlug(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Product{Title: "Laser Cutter", Slug: "laser-cutter"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	err := repo.Create(ctx, &domain.Product{Title: "Laser Cutter 2", Slug: "laser-cutter"})
	if !domain.IsAlreadyExists(err) {
		t.Errorf("error = %v, want already-exists", err)
	}
}

func TestRepository_Update(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	p := &domain.Product{Title: "Laser Cutter", Slug: "laser-cutter"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	p.Title = "Fiber Laser Cutter"
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Title != "Fiber Laser Cutter" {
		t.Errorf("Title = %q, want updated value", got.Title)
	}
	if got.Slug != "laser-cutter" {
		t.Errorf("Slug = %q, want unchanged", got.Slug)
	}
}

func TestRepository_Delete(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	p := &domain.Product{Title: "Laser Cutter", Slug: "laser-cutter"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !domain.IsNotFound(err) {
		t.Errorf("after delete, error = %v, want not-found", err)
	}

	// Deleting again reports not-found via RowsAffected.
	if err := repo.Delete(ctx, p.ID); !domain.IsNotFound(err) {
		t.Errorf("second delete error = %v, want not-found", err)
	}
}

func seedProducts(t *testing.T, repo domain.SluggedRepository[domain.Product], titles ...string) {
	t.Helper()
	ctx := context.Background()
	for i, title := range titles {
		p := &domain.Product{Title: title, Slug: "slug-" + string(rune('a'+i)), Category: "cutting"}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
	}
}

func TestRepository_List_Pagination(t *testing.T) {
	repo := newProductRepo(t)
	seedProducts(t, repo, "Alpha", "Bravo", "Charlie", "Delta", "Echo")

	result, err := repo.List(context.Background(), domain.ListParams{
		Page: 2, PerPage: 2, SortBy: "title", SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if result.Pagination.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", result.Pagination.TotalCount)
	}
	if result.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.Pagination.TotalPages)
	}
	if !result.Pagination.HasNextPage || !result.Pagination.HasPrevPage {
		t.Errorf("pagination flags = %+v, want both true on middle page", result.Pagination)
	}

	want := []string{"Charlie", "Delta"}
	if len(result.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(result.Items), len(want))
	}
	for i, item := range result.Items {
		if item.Title != want[i] {
			t.Errorf("item[%d] = %q, want %q", i, item.Title, want[i])
		}
	}
}

func TestRepository_List_Search(t *testing.T) {
	repo := newProductRepo(t)
	ctx := context.Background()

	for _, p := range []*domain.Product{
		{Title: "Laser Cutter", Slug: "laser-cutter", Category: "cutting"},
		{Title: "Plasma Cutter", Slug: "plasma-cutter", Category: "cutting"},
		{Title: "CNC Mill", Slug: "cnc-mill", Category: "milling"},
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	result, err := repo.List(ctx, domain.ListParams{
		Page: 1, PerPage: 10, Search: "cutter", SortBy: "title", SortOrder: "asc",
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if result.Pagination.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", result.Pagination.TotalCount)
	}

	result, err = repo.List(ctx, domain.ListParams{
		Page: 1, PerPage: 10,
		Filters: map[string]string{"category": "milling"},
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if result.Pagination.TotalCount != 1 {
		t.Errorf("filtered TotalCount = %d, want 1", result.Pagination.TotalCount)
	}
}

func TestRepository_List_EmptyPage(t *testing.T) {
	repo := newProductRepo(t)

	result, err := repo.List(context.Background(), domain.ListParams{Page: 5, PerPage: 10})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if result.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
	if len(result.Items) != 0 {
		t.Errorf("got %d items, want 0", len(result.Items))
	}
	if result.Pagination.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
}

func TestStaffUsers_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewStaffUsers(db)
	ctx := context.Background()

	staff := &domain.StaffUser{Name: "Admin", Email: "admin@example.com", PasswordHash: "x"}
	if err := db.Create(staff).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != staff.ID {
		t.Errorf("ID = %d, want %d", got.ID, staff.ID)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !domain.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
}
