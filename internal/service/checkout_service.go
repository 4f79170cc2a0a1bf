package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/JoseAngelVirgenEslava/proyecto/internal/models"
	"github.com/JoseAngelVirgenEslava/proyecto/internal/repository"
	"github.com/google/uuid"
)

var ErrEmptyOrder = errors.New("order must contain at least one item")

// LineError describes why a single order line could not be applied.
type LineError struct {
	ProductID string `json:"productId"`
	Name      string `json:"name,omitempty"`
	Reason    string `json:"reason"`
	// Available carries the observed unit count for insufficient-stock errors.
	Available int `json:"available,omitempty"`
}

const (
	ReasonNotFound          = "not found"
	ReasonInvalidQuantity   = "invalid quantity"
	ReasonInsufficientStock = "insufficient stock"
)

// Message renders the line error as a single human-readable string.
func (e LineError) Message() string {
	name := e.Name
	if name == "" {
		name = e.ProductID
	}
	switch e.Reason {
	case ReasonInsufficientStock:
		return fmt.Sprintf("not enough units available for product %s (available: %d)", name, e.Available)
	case ReasonNotFound:
		return fmt.Sprintf("product %s not found", name)
	case ReasonInvalidQuantity:
		return fmt.Sprintf("invalid quantity for product %s", name)
	default:
		return fmt.Sprintf("could not process product %s", name)
	}
}

// CheckoutService validates order lines against live inventory and decrements
// stock per line.
type CheckoutService struct {
	products repository.ProductRepository
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(products repository.ProductRepository) *CheckoutService {
	return &CheckoutService{
		products: products,
	}
}

// Submit processes an order line by line, in request order. Every failing line
// is reported; lines are not rolled back when a later line fails, so a partial
// failure leaves earlier decrements applied. Callers must treat a non-empty
// error list as checkout failure and keep the cart.
func (s *CheckoutService) Submit(ctx context.Context, req models.OrderRequest) (*models.Confirmation, []LineError, error) {
	if len(req.OrderDetails) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	var lineErrors []LineError

	for _, item := range req.OrderDetails {
		if item.Quantity <= 0 {
			lineErrors = append(lineErrors, LineError{
				ProductID: item.ProductID,
				Reason:    ReasonInvalidQuantity,
			})
			continue
		}

		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				lineErrors = append(lineErrors, LineError{
					ProductID: item.ProductID,
					Reason:    ReasonNotFound,
				})
				continue
			}
			return nil, nil, err
		}

		if product.Units < item.Quantity {
			lineErrors = append(lineErrors, LineError{
				ProductID: item.ProductID,
				Name:      product.Name,
				Reason:    ReasonInsufficientStock,
				Available: product.Units,
			})
			continue
		}

		if err := s.products.DecrementUnits(ctx, item.ProductID, item.Quantity); err != nil {
			switch {
			case errors.Is(err, repository.ErrInsufficientStock):
				// A concurrent checkout won the race between the stock check
				// and the decrement.
				lineErrors = append(lineErrors, LineError{
					ProductID: item.ProductID,
					Name:      product.Name,
					Reason:    ReasonInsufficientStock,
					Available: product.Units,
				})
			case errors.Is(err, repository.ErrProductNotFound):
				lineErrors = append(lineErrors, LineError{
					ProductID: item.ProductID,
					Name:      product.Name,
					Reason:    ReasonNotFound,
				})
			default:
				return nil, nil, err
			}
		}
	}

	if len(lineErrors) > 0 {
		return nil, lineErrors, nil
	}

	return &models.Confirmation{
		OrderID: uuid.New().String(),
		Message: "order placed and units updated successfully",
	}, nil, nil
}
