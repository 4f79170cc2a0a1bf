package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the interface for product data access.
// Units is mutated only through DecrementUnits.
type ProductRepository interface {
	// Query returns one page of products under the query's filter and order,
	// plus the total number of products matching the filter.
	Query(ctx context.Context, q CatalogQuery) ([]models.Product, int, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// Categories returns the distinct category tags present in the catalog.
	Categories(ctx context.Context) ([]string, error)
	// SearchByName returns the first product whose name contains the given
	// string (case-insensitive), or nil when nothing matches.
	SearchByName(ctx context.Context, name string) (*models.Product, error)
	// DecrementUnits conditionally subtracts qty from the product's available
	// units. It fails with ErrInsufficientStock when fewer than qty units are
	// available and never drives units negative.
	DecrementUnits(ctx context.Context, id string, qty int) error
}

// ValidProductID reports whether id is a well-formed catalog key
// (a 24-character hex ObjectID).
func ValidProductID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with seed data
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := make(map[string]models.Product, len(seedProducts))
	for _, p := range seedProducts {
		products[p.ID] = p
	}
	return &InMemoryProductRepository{products: products}
}

// NewEmptyProductRepository creates an in-memory repository with no seed data.
func NewEmptyProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: make(map[string]models.Product)}
}

// Put inserts or replaces a product.
func (r *InMemoryProductRepository) Put(p models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

// Query returns one page of the catalog under q's filter and order.
func (r *InMemoryProductRepository) Query(ctx context.Context, q CatalogQuery) ([]models.Product, int, error) {
	if q.Page < 1 || q.PageSize < 1 {
		return nil, 0, ErrInvalidQuery
	}

	r.mu.RLock()
	matching := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if q.Filtered() && p.Category != q.Category {
			continue
		}
		matching = append(matching, p)
	}
	r.mu.RUnlock()

	sortProducts(matching, q.Sort)

	total := len(matching)
	start := q.Offset()
	if start >= total {
		return []models.Product{}, total, nil
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return matching[start:end], total, nil
}

// sortProducts orders products by the sort key with the identity as a stable
// tie-break, so that pagination across repeated calls is consistent.
func sortProducts(products []models.Product, key SortKey) {
	sort.Slice(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case SortUnitsAsc:
			if a.Units != b.Units {
				return a.Units < b.Units
			}
		case SortUnitsDesc:
			if a.Units != b.Units {
				return a.Units > b.Units
			}
		}
		return a.ID < b.ID
	})
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Categories returns the distinct category tags in the catalog.
func (r *InMemoryProductRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// SearchByName returns the first product whose name contains name,
// case-insensitively. Candidates are scanned in identity order so the result
// is deterministic. A nil product with a nil error means no match.
func (r *InMemoryProductRepository) SearchByName(ctx context.Context, name string) (*models.Product, error) {
	needle := strings.ToLower(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := r.products[id]
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return &p, nil
		}
	}
	return nil, nil
}

// DecrementUnits subtracts qty from the product's available units. The check
// and the write happen under one lock, so units never go negative.
func (r *InMemoryProductRepository) DecrementUnits(ctx context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[id]
	if !exists {
		return ErrProductNotFound
	}
	if product.Units < qty {
		return ErrInsufficientStock
	}
	product.Units -= qty
	r.products[id] = product
	return nil
}
