package domain

import (
	"context"
	"io"
)

// Repository defines the data access operations shared by every resource.
// One GORM-backed implementation serves all entity types.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, params ListParams) (*PageResult[T], error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// SluggedRepository extends Repository for resources addressed by slug.
type SluggedRepository[T any] interface {
	Repository[T]
	GetBySlug(ctx context.Context, slug string) (*T, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// StaffUserRepository provides lookups for back-office accounts.
type StaffUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*StaffUser, error)
}

// UploadInput describes a single object to store.
type UploadInput struct {
	Folder      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStorage is the external media storage collaborator. Upload stores the
// object and returns a publicly resolvable URL.
type ObjectStorage interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
}
