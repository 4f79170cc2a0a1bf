package service

import (
	"context"
	"testing"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
)

func TestCatalogService_Query_Envelope(t *testing.T) {
	svc := NewCatalogService(repository.NewInMemoryProductRepository())

	q, err := repository.NewCatalogQuery(2, 5, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	page, err := svc.Query(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.CurrentPage != 2 {
		t.Errorf("expected currentPage 2, got %d", page.CurrentPage)
	}
	if page.Limit != 5 {
		t.Errorf("expected limit 5, got %d", page.Limit)
	}
	if page.Total != 12 {
		t.Errorf("expected total 12, got %d", page.Total)
	}
	if len(page.Items) != 5 {
		t.Errorf("expected 5 items, got %d", len(page.Items))
	}
}
