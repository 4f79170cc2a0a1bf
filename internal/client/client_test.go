package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/feed"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/handlers"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/service"
	"github.com/JoseAngelVirgenEslava/proyecto/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T) (*httptest.Server, *repository.InMemoryProductRepository) {
	t.Helper()
	repo := repository.NewInMemoryProductRepository()
	log := logger.New("error")

	catalogService := service.NewCatalogService(repo)
	checkoutService := service.NewCheckoutService(repo)

	productHandler := handlers.NewProductHandler(catalogService, 6, log)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/categories", productHandler.ListCategories)
		r.Get("/search", productHandler.SearchProduct)
		r.Post("/checkout", checkoutHandler.Checkout)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestClient_FeedWalksWholeCatalog(t *testing.T) {
	srv, _ := newTestServer(t)
	api := New(srv.URL)
	ctx := context.Background()

	controller := feed.NewController(api, 5)
	controller.SetFilter(ctx, feed.Filter{Category: "all"})
	for controller.HasMore() {
		controller.Advance(ctx)
	}
	if err := controller.Err(); err != nil {
		t.Fatalf("unexpected feed error: %v", err)
	}

	items := controller.Items()
	if len(items) != 12 {
		t.Fatalf("expected the full catalog of 12 products, got %d", len(items))
	}
	seen := make(map[string]bool)
	for _, p := range items {
		if seen[p.ID] {
			t.Errorf("identity %s appeared twice", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestClient_CategoriesAndSearch(t *testing.T) {
	srv, _ := newTestServer(t)
	api := New(srv.URL)
	ctx := context.Background()

	categories, err := api.Categories(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 4 {
		t.Errorf("expected 4 categories, got %v", categories)
	}

	product, err := api.Search(ctx, "desk lamp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product == nil || product.Name != "Desk Lamp" {
		t.Errorf("expected Desk Lamp, got %+v", product)
	}

	missing, err := api.Search(ctx, "teapot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil product, got %+v", missing)
	}
}

func TestClient_Checkout(t *testing.T) {
	srv, repo := newTestServer(t)
	api := New(srv.URL)
	ctx := context.Background()

	const lampID = "65a1b2c3d4e5f60718290006"

	confirmation, lineErrors, err := api.Checkout(ctx, models.OrderRequest{
		OrderDetails: []models.OrderItem{{ProductID: lampID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lineErrors) != 0 {
		t.Fatalf("expected no line errors, got %v", lineErrors)
	}
	if confirmation == nil || confirmation.OrderID == "" {
		t.Fatal("expected a confirmation")
	}

	p, _ := repo.GetByID(ctx, lampID)
	if p.Units != 20 {
		t.Errorf("expected 20 units left, got %d", p.Units)
	}

	// An oversized quantity is reported as a line error, not a hard failure.
	_, lineErrors, err = api.Checkout(ctx, models.OrderRequest{
		OrderDetails: []models.OrderItem{{ProductID: lampID, Quantity: 999}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lineErrors) != 1 {
		t.Errorf("expected one line error, got %v", lineErrors)
	}
}
