package domain

import "time"

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListParams holds normalized pagination, search, sorting, and filtering
// parameters for a list request. Values are always coerced to usable
// defaults; repositories never see an invalid ListParams.
type ListParams struct {
	Page      int
	PerPage   int
	Search    string
	SortBy    string
	SortOrder string
	// Filters holds resource-specific equality filters (e.g. category=cnc),
	// keyed by column name. Only keys declared in the resource's ListConfig
	// are ever populated.
	Filters map[string]string
}

// Offset returns the number of rows to skip for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ListConfig declares, per resource, which columns list requests may search,
// sort, and filter on, and which defaults apply when the caller supplies
// nothing usable.
type ListConfig struct {
	SearchFields     []string
	SortFields       []string
	FilterFields     []string
	DefaultSortField string
	DefaultSortOrder string
	DefaultPerPage   int
}

// Pagination describes the position of a page within a full result set.
type Pagination struct {
	Page        int   `json:"page"`
	PerPage     int   `json:"perPage"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// PageResult is one page of items plus its pagination descriptor.
type PageResult[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
