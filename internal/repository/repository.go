package repository

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/intiprima/backoffice/internal/domain"
	"github.com/intiprima/backoffice/internal/pkg"
)

// gormRepository is the single GORM-backed implementation of
// domain.Repository, shared by every resource type. Per-resource behavior
// (searchable/sortable/filterable columns, defaults) comes from the
// ListConfig supplied at construction.
type gormRepository[T any] struct {
	db  *gorm.DB
	cfg domain.ListConfig
}

// New creates a Repository for T backed by the given GORM database.
func New[T any](db *gorm.DB, cfg domain.ListConfig) domain.SluggedRepository[T] {
	return &gormRepository[T]{db: db, cfg: cfg}
}

// Create inserts a new record.
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID retrieves a record by its primary key.
func (r *gormRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &entity, nil
}

// GetBySlug retrieves a record by its slug column.
func (r *gormRepository[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&entity).Error; err != nil {
		return nil, mapError(err)
	}
	return &entity, nil
}

// SlugExists reports whether any record already uses the given slug.
func (r *gormRepository[T]) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, mapError(err)
	}
	return count > 0, nil
}

// List returns one page of records matching params. The count and find
// queries run concurrently on independent sessions; they may observe
// slightly different snapshots, which is acceptable for list endpoints.
func (r *gormRepository[T]) List(ctx context.Context, params domain.ListParams) (*domain.PageResult[T], error) {
	var (
		total int64
		items []T
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := r.db.WithContext(gctx).Model(new(T)).
			Scopes(pkg.Filter(params, r.cfg)).
			Count(&total).Error
		if err != nil {
			return mapError(err)
		}
		return nil
	})

	g.Go(func() error {
		err := r.db.WithContext(gctx).Model(new(T)).
			Scopes(
				pkg.Filter(params, r.cfg),
				pkg.Sort(params),
				pkg.Paginate(params),
			).
			Find(&items).Error
		if err != nil {
			return mapError(err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pkg.NewPageResult(items, total, params), nil
}

// Update saves changes to an existing record.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Delete removes a record by ID.
func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
