package service

import (
	"context"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
)

// CatalogService handles business logic for browsing the product catalog
type CatalogService struct {
	repo repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// CatalogPage is one slice of the catalog plus the pagination envelope.
type CatalogPage struct {
	Items       []models.Product `json:"items"`
	Total       int              `json:"total"`
	CurrentPage int              `json:"currentPage"`
	Limit       int              `json:"limit"`
}

// Query returns one page of products under the given filter and order.
func (s *CatalogService) Query(ctx context.Context, q repository.CatalogQuery) (*CatalogPage, error) {
	items, total, err := s.repo.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return &CatalogPage{
		Items:       items,
		Total:       total,
		CurrentPage: q.Page,
		Limit:       q.PageSize,
	}, nil
}

// GetProduct returns a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories returns the distinct category tags present in the catalog.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// SearchByName returns the first product matching name case-insensitively,
// or nil when nothing matches.
func (s *CatalogService) SearchByName(ctx context.Context, name string) (*models.Product, error) {
	return s.repo.SearchByName(ctx, name)
}
