package pkg

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/intiprima/backoffice/internal/domain"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

// validFieldName matches only alphanumeric characters and underscores.
// Every column name that reaches SQL must pass this check, even when it
// already comes from a code-level allow-list.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParseListParams extracts pagination, search, sorting, and filtering
// parameters from the request query string, normalized against the resource's
// ListConfig. It never fails: invalid or missing values degrade to defaults
// so malformed list requests still produce best-effort results.
//
// Recognized parameters: page, perPage (alias limit), search, sortBy,
// sortOrder, plus any equality filters declared in cfg.FilterFields.
func ParseListParams(c *gin.Context, cfg domain.ListConfig) domain.ListParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	perPageDefault := cfg.DefaultPerPage
	if perPageDefault < 1 {
		perPageDefault = defaultPerPage
	}
	rawPerPage := c.Query("perPage")
	if rawPerPage == "" {
		rawPerPage = c.Query("limit")
	}
	perPage, err := strconv.Atoi(rawPerPage)
	if err != nil || perPage < 1 {
		perPage = perPageDefault
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	sortBy := c.Query("sortBy")
	if !isAllowed(sortBy, cfg.SortFields) || !validFieldName.MatchString(sortBy) {
		sortBy = cfg.DefaultSortField
	}

	sortOrder := c.Query("sortOrder")
	switch sortOrder {
	case "asc", "desc":
	default:
		// Missing or unrecognized values fall back to the resource default,
		// itself normalized to asc unless it is exactly "desc".
		sortOrder = "asc"
		if cfg.DefaultSortOrder == "desc" {
			sortOrder = "desc"
		}
	}

	filters := make(map[string]string)
	for _, field := range cfg.FilterFields {
		if v := c.Query(field); v != "" {
			filters[field] = v
		}
	}

	return domain.ListParams{
		Page:      page,
		PerPage:   perPage,
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Filters:   filters,
	}
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET.
func Paginate(params domain.ListParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}

// Sort returns a GORM scope that applies ORDER BY. ParseListParams has
// already validated the field against the allow-list; the regex check here
// is a final guard before the name is interpolated into SQL.
func Sort(params domain.ListParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.SortBy == "" || !validFieldName.MatchString(params.SortBy) {
			return db
		}
		direction := "asc"
		if params.SortOrder == "desc" {
			direction = "desc"
		}
		return db.Order(params.SortBy + " " + direction)
	}
}

// Filter returns a GORM scope that applies the search predicate and equality
// filters. A non-empty search term becomes a case-insensitive substring OR
// across cfg.SearchFields; equality filters are ANDed with it.
func Filter(params domain.ListParams, cfg domain.ListConfig) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.Search != "" && len(cfg.SearchFields) > 0 {
			pattern := "%" + strings.ToLower(params.Search) + "%"
			var clauses []string
			var args []any
			for _, field := range cfg.SearchFields {
				if !validFieldName.MatchString(field) {
					continue
				}
				clauses = append(clauses, "LOWER("+field+") LIKE ?")
				args = append(args, pattern)
			}
			if len(clauses) > 0 {
				db = db.Where(strings.Join(clauses, " OR "), args...)
			}
		}

		for field, value := range params.Filters {
			if !validFieldName.MatchString(field) || !isAllowed(field, cfg.FilterFields) {
				continue
			}
			db = db.Where(field+" = ?", value)
		}

		return db
	}
}

// NewPageResult assembles a PageResult with the derived pagination fields.
func NewPageResult[T any](items []T, total int64, params domain.ListParams) *domain.PageResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if params.PerPage > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.PerPage)))
	}

	return &domain.PageResult[T]{
		Items: items,
		Pagination: domain.Pagination{
			Page:        params.Page,
			PerPage:     params.PerPage,
			TotalCount:  total,
			TotalPages:  totalPages,
			HasNextPage: int64(params.Page)*int64(params.PerPage) < total,
			HasPrevPage: params.Page > 1,
		},
	}
}

// isAllowed checks if a field name is in the allowed list.
func isAllowed(field string, allowed []string) bool {
	return slices.Contains(allowed, field)
}
