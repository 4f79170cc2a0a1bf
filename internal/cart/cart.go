// Package cart implements the client-side shopping cart: a persisted mapping
// from product identity to requested quantity, bounded by the unit count
// observed when the product was added. Quantities are advisory; checkout
// revalidates against live inventory.
package cart

import (
	"errors"
	"sync"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
)

var (
	ErrOutOfStock    = errors.New("product has no units available")
	ErrQuantityLimit = errors.New("cannot add more units of this product")
	ErrNotInCart     = errors.New("product is not in the cart")
)

// Line is one cart entry. It caches the product's display fields as a
// snapshot; the catalog remains the owner of the product record.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"img"`
	// SnapshotUnits is the available-unit count observed when the product was
	// added. It only bounds quantity increments in the UI.
	SnapshotUnits int `json:"units"`
	Quantity      int `json:"quantity"`
}

// Storage persists the serialized line list under a single key.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
	Clear() error
}

// Store is the cart. It is constructed once per session with an injected
// persistence port and passed to every view that reads or mutates it.
type Store struct {
	mu      sync.Mutex
	storage Storage
	lines   []Line
}

// NewStore creates a cart backed by storage, loading any persisted lines.
func NewStore(storage Storage) (*Store, error) {
	lines, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Store{storage: storage, lines: lines}, nil
}

// Add puts one unit of the product in the cart, or bumps the quantity of an
// existing line. The quantity never exceeds the unit count observed when the
// product was added.
func (s *Store) Add(p models.Product) error {
	if p.Units <= 0 {
		return ErrOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != p.ID {
			continue
		}
		if s.lines[i].Quantity >= s.lines[i].SnapshotUnits {
			return ErrQuantityLimit
		}
		s.lines[i].Quantity++
		return s.persist()
	}

	s.lines = append(s.lines, Line{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Image:         p.Image,
		SnapshotUnits: p.Units,
		Quantity:      1,
	})
	return s.persist()
}

// IncreaseQuantity bumps a line's quantity, capped at the snapshot unit count.
func (s *Store) IncreaseQuantity(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}
		if s.lines[i].Quantity >= s.lines[i].SnapshotUnits {
			return ErrQuantityLimit
		}
		s.lines[i].Quantity++
		return s.persist()
	}
	return ErrNotInCart
}

// DecreaseQuantity lowers a line's quantity, never below one. Removing the
// line entirely is an explicit Remove.
func (s *Store) DecreaseQuantity(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}
		if s.lines[i].Quantity > 1 {
			s.lines[i].Quantity--
			return s.persist()
		}
		return nil
	}
	return ErrNotInCart
}

// Remove drops a line from the cart.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist()
		}
	}
	return ErrNotInCart
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalPrice sums price times quantity over all lines.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// ToOrderRequest derives a checkout submission from the current lines.
func (s *Store) ToOrderRequest() models.OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	details := make([]models.OrderItem, 0, len(s.lines))
	for _, l := range s.lines {
		details = append(details, models.OrderItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		})
	}
	return models.OrderRequest{OrderDetails: details}
}

// Clear empties the cart and its persisted state. Call it only after a
// checkout reported no errors.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return s.storage.Clear()
}

// persist is called with the lock held.
func (s *Store) persist() error {
	return s.storage.Save(s.lines)
}
