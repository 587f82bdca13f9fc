package port

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-cart/internal/domain"
)

var ErrCartNotFound = errors.New("cart not found")

type CartRepository interface {
	GetCart(ctx context.Context, cartID uuid.UUID) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, cartID uuid.UUID) (bool, error)
	FindByCustomer(ctx context.Context, storeID, customerID string) ([]uuid.UUID, error)
}
