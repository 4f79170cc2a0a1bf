package repository

import (
	"errors"
	"fmt"
)

// SortKey selects the ordering applied to catalog query results.
type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortUnitsAsc  SortKey = "units-asc"
	SortUnitsDesc SortKey = "units-desc"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

var ErrInvalidQuery = errors.New("invalid catalog query")

// CatalogQuery is a validated page request against the catalog. Construct it
// with NewCatalogQuery; the zero value is not meaningful.
type CatalogQuery struct {
	Page     int
	PageSize int
	Category string
	Sort     SortKey
}

// NewCatalogQuery validates the raw query parameters at the boundary.
// A category of "" or "all" means no filter; an empty sortBy means the stable
// default identity order.
func NewCatalogQuery(page, pageSize int, category, sortBy string) (CatalogQuery, error) {
	if page < 1 {
		return CatalogQuery{}, fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidQuery, page)
	}
	if pageSize < 1 {
		return CatalogQuery{}, fmt.Errorf("%w: page size must be at least 1, got %d", ErrInvalidQuery, pageSize)
	}

	sort := SortKey(sortBy)
	switch sort {
	case SortNone, SortPriceAsc, SortPriceDesc, SortUnitsAsc, SortUnitsDesc:
	default:
		return CatalogQuery{}, fmt.Errorf("%w: unknown sort key %q", ErrInvalidQuery, sortBy)
	}

	if category == CategoryAll {
		category = ""
	}

	return CatalogQuery{
		Page:     page,
		PageSize: pageSize,
		Category: category,
		Sort:     sort,
	}, nil
}

// Offset returns the number of records to skip under the query's order.
func (q CatalogQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Filtered reports whether a category filter applies.
func (q CatalogQuery) Filtered() bool {
	return q.Category != ""
}
