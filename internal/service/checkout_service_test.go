package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
)

const (
	idInStock   = "65a1b2c3d4e5f60718290301"
	idLowStock  = "65a1b2c3d4e5f60718290302"
	idMissing   = "65a1b2c3d4e5f60718290303"
	idAlsoStock = "65a1b2c3d4e5f60718290304"
)

func checkoutFixture() *repository.InMemoryProductRepository {
	repo := repository.NewEmptyProductRepository()
	repo.Put(models.Product{ID: idInStock, Name: "Desk Lamp", Units: 5})
	repo.Put(models.Product{ID: idLowStock, Name: "Running Shoes", Units: 3})
	repo.Put(models.Product{ID: idAlsoStock, Name: "Yoga Mat", Units: 10})
	return repo
}

func TestCheckoutService_Submit_Success(t *testing.T) {
	repo := checkoutFixture()
	svc := NewCheckoutService(repo)

	confirmation, lineErrors, err := svc.Submit(context.Background(), models.OrderRequest{
		OrderDetails: []models.OrderItem{
			{ProductID: idInStock, Quantity: 2},
		},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lineErrors) != 0 {
		t.Fatalf("expected no line errors, got %v", lineErrors)
	}
	if confirmation == nil || confirmation.OrderID == "" {
		t.Fatal("expected a confirmation with an order ID")
	}

	p, _ := repo.GetByID(context.Background(), idInStock)
	if p.Units != 3 {
		t.Errorf("expected 3 units left, got %d", p.Units)
	}
}

func TestCheckoutService_Submit_InsufficientStock(t *testing.T) {
	repo := checkoutFixture()
	svc := NewCheckoutService(repo)

	confirmation, lineErrors, err := svc.Submit(context.Background(), models.OrderRequest{
		OrderDetails: []models.OrderItem{
			{ProductID: idLowStock, Quantity: 5},
		},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmation != nil {
		t.Error("expected no confirmation")
	}
	if len(lineErrors) != 1 {
		t.Fatalf("expected exactly one line error, got %d", len(lineErrors))
	}
	le := lineErrors[0]
	if le.Reason != ReasonInsufficientStock {
		t.Errorf("expected insufficient stock, got %q", le.Reason)
	}
	if le.Available != 3 {
		t.Errorf("expected available 3, got %d", le.Available)
	}

	// The failing line must not mutate inventory.
	p, _ := repo.GetByID(context.Background(), idLowStock)
	if p.Units != 3 {
		t.Errorf("expected units unchanged at 3, got %d", p.Units)
	}
}

func TestCheckoutService_Submit_AggregatesAllLineErrors(t *testing.T) {
	repo := checkoutFixture()
	svc := NewCheckoutService(repo)

	_, lineErrors, err := svc.Submit(context.Background(), models.OrderRequest{
		OrderDetails: []models.OrderItem{
			{ProductID: idMissing, Quantity: 1},
			{ProductID: idLowStock, Quantity: 4},
			{ProductID: idInStock, Quantity: 0},
		},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lineErrors) != 3 {
		t.Fatalf("expected all 3 failing lines reported, got %d: %v", len(lineErrors), lineErrors)
	}
	if lineErrors[0].Reason != ReasonNotFound {
		t.Errorf("line 0: expected not found, got %q", lineErrors[0].Reason)
	}
	if lineErrors[1].Reason != ReasonInsufficientStock {
		t.Errorf("line 1: expected insufficient stock, got %q", lineErrors[1].Reason)
	}
	if lineErrors[2].Reason != ReasonInvalidQuantity {
		t.Errorf("line 2: expected invalid quantity, got %q", lineErrors[2].Reason)
	}
}

func TestCheckoutService_Submit_PartialApplication(t *testing.T) {
	// A failure on a later line does not undo earlier decrements; callers see
	// the full error list and must not clear their cart.
	repo := checkoutFixture()
	svc := NewCheckoutService(repo)

	_, lineErrors, err := svc.Submit(context.Background(), models.OrderRequest{
		OrderDetails: []models.OrderItem{
			{ProductID: idAlsoStock, Quantity: 2},
			{ProductID: idLowStock, Quantity: 99},
		},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lineErrors) != 1 {
		t.Fatalf("expected one line error, got %d", len(lineErrors))
	}

	applied, _ := repo.GetByID(context.Background(), idAlsoStock)
	if applied.Units != 8 {
		t.Errorf("expected first line applied (8 units left), got %d", applied.Units)
	}
	untouched, _ := repo.GetByID(context.Background(), idLowStock)
	if untouched.Units != 3 {
		t.Errorf("expected failing line untouched (3 units), got %d", untouched.Units)
	}
}

func TestCheckoutService_Submit_EmptyOrder(t *testing.T) {
	svc := NewCheckoutService(checkoutFixture())

	_, _, err := svc.Submit(context.Background(), models.OrderRequest{})
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestLineError_Message(t *testing.T) {
	tests := []struct {
		name string
		le   LineError
		want string
	}{
		{
			"insufficient with name",
			LineError{ProductID: "x", Name: "Desk Lamp", Reason: ReasonInsufficientStock, Available: 2},
			"not enough units available for product Desk Lamp (available: 2)",
		},
		{
			"not found falls back to ID",
			LineError{ProductID: "abc123", Reason: ReasonNotFound},
			"product abc123 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.le.Message(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
