package cart

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
)

var lamp = models.Product{
	ID:    "65a1b2c3d4e5f60718290401",
	Name:  "Desk Lamp",
	Price: 24.0,
	Units: 2,
	Image: "/img/lamp.jpg",
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(NewMemoryStorage())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestStore_Add(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(lamp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", lines[0].Quantity)
	}
	if lines[0].SnapshotUnits != 2 {
		t.Errorf("expected snapshot units 2, got %d", lines[0].SnapshotUnits)
	}
}

func TestStore_Add_IncrementsExistingLine(t *testing.T) {
	s := newTestStore(t)

	if err := s.Add(lamp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add(lamp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := s.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestStore_Add_ClampsToSnapshotUnits(t *testing.T) {
	s := newTestStore(t)

	s.Add(lamp)
	s.Add(lamp)

	// lamp has 2 units; a third add must be rejected.
	if err := s.Add(lamp); !errors.Is(err, ErrQuantityLimit) {
		t.Fatalf("expected ErrQuantityLimit, got %v", err)
	}
	if got := s.Lines()[0].Quantity; got != 2 {
		t.Errorf("expected quantity to stay at 2, got %d", got)
	}
}

func TestStore_Add_OutOfStock(t *testing.T) {
	s := newTestStore(t)

	sold := lamp
	sold.Units = 0
	if err := s.Add(sold); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("expected ErrOutOfStock, got %v", err)
	}
}

func TestStore_Quantities(t *testing.T) {
	s := newTestStore(t)
	s.Add(lamp)

	if err := s.IncreaseQuantity(lamp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.IncreaseQuantity(lamp.ID); !errors.Is(err, ErrQuantityLimit) {
		t.Errorf("expected ErrQuantityLimit at snapshot cap, got %v", err)
	}

	if err := s.DecreaseQuantity(lamp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Quantity floors at one; removal is explicit.
	if err := s.DecreaseQuantity(lamp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Lines()[0].Quantity; got != 1 {
		t.Errorf("expected quantity 1, got %d", got)
	}

	if err := s.IncreaseQuantity("missing"); !errors.Is(err, ErrNotInCart) {
		t.Errorf("expected ErrNotInCart, got %v", err)
	}
}

func TestStore_Remove(t *testing.T) {
	s := newTestStore(t)
	s.Add(lamp)

	if err := s.Remove(lamp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Lines()) != 0 {
		t.Error("expected empty cart after remove")
	}
	if err := s.Remove(lamp.ID); !errors.Is(err, ErrNotInCart) {
		t.Errorf("expected ErrNotInCart, got %v", err)
	}
}

func TestStore_TotalPriceAndOrderRequest(t *testing.T) {
	s := newTestStore(t)
	s.Add(lamp)
	s.Add(lamp)

	mug := models.Product{ID: "65a1b2c3d4e5f60718290402", Name: "Mug", Price: 8.99, Units: 10}
	s.Add(mug)

	want := 24.0*2 + 8.99
	if got := s.TotalPrice(); got != want {
		t.Errorf("expected total %.2f, got %.2f", want, got)
	}

	req := s.ToOrderRequest()
	if len(req.OrderDetails) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(req.OrderDetails))
	}
	if req.OrderDetails[0].ProductID != lamp.ID || req.OrderDetails[0].Quantity != 2 {
		t.Errorf("unexpected first line: %+v", req.OrderDetails[0])
	}
}

func TestFileStorage_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	s, err := NewStore(NewFileStorage(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Add(lamp)
	s.Add(lamp)

	// A second store over the same file sees the persisted lines.
	reloaded, err := NewStore(NewFileStorage(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := reloaded.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("expected persisted line with quantity 2, got %+v", lines)
	}

	if err := reloaded.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := NewStore(NewFileStorage(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again.Lines()) != 0 {
		t.Error("expected empty cart after clear")
	}
}
