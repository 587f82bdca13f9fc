package service

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-cart/internal/domain"
	"github.com/nikolayk812/checkout-cart/internal/port"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
)

// CartService drives a checkout session: it loads a cart, applies one change and stores it back.
// Requests for the same cart must be serialized by the caller.
type CartService struct {
	repo   port.CartRepository
	logger logrus.FieldLogger
}

func NewCartService(repo port.CartRepository, logger logrus.FieldLogger) *CartService {
	return &CartService{
		repo:   repo,
		logger: logger,
	}
}

type CreateCartParams struct {
	StoreID      string
	CustomerID   string
	CustomerName string
	Name         string
	CurrencyCode string
	LanguageCode string
	IsAnonymous  bool
}

type Summary struct {
	CartID              uuid.UUID
	Currency            string
	ItemsCount          int
	HasPhysicalProducts bool
	Totals              domain.Totals

	// ShippingAddress is nil when the cart has nothing to ship.
	ShippingAddress            *domain.Address
	ShippingAddressPlaceholder bool
	BillingAddress             domain.Address
	BillingAddressPlaceholder  bool

	Errors []string
}

func (s *CartService) CreateCart(ctx context.Context, params CreateCartParams) (*domain.Cart, error) {
	cart, resolution := domain.NewCart(params.StoreID, params.CustomerID, params.CustomerName, params.Name, params.CurrencyCode)
	cart.LanguageCode = params.LanguageCode
	cart.IsAnonymous = params.IsAnonymous

	log := s.logger.WithFields(logrus.Fields{
		"cart_id":     cart.ID,
		"store_id":    cart.StoreID,
		"customer_id": cart.CustomerID,
	})

	if resolution.Fallback {
		log.WithFields(logrus.Fields{
			"requested_currency": resolution.Requested,
			"currency":           resolution.Currency.Code(),
		}).Warn("unknown currency code, using default")
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("repo.SaveCart: %w", err)
	}

	log.WithField("currency", cart.Currency().Code()).Info("cart created")

	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID uuid.UUID) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("repo.GetCart: %w", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, cartID uuid.UUID, item domain.LineItem) (*domain.Cart, error) {
	return s.update(ctx, cartID, "item added", func(cart *domain.Cart) error {
		cart.AddItem(item)
		return nil
	})
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) (*domain.Cart, error) {
	return s.update(ctx, cartID, "item removed", func(cart *domain.Cart) error {
		if !cart.RemoveItem(itemID) {
			return fmt.Errorf("item[%s] is not in cart", itemID)
		}
		return nil
	})
}

func (s *CartService) AddAddress(ctx context.Context, cartID uuid.UUID, address domain.Address) (*domain.Cart, error) {
	return s.update(ctx, cartID, "address added", func(cart *domain.Cart) error {
		cart.AddAddress(address)
		return nil
	})
}

func (s *CartService) ApplyCoupon(ctx context.Context, cartID uuid.UUID, coupon domain.Coupon) (*domain.Cart, error) {
	return s.update(ctx, cartID, "coupon applied", func(cart *domain.Cart) error {
		cart.ApplyCoupon(coupon)
		if !coupon.AppliedSuccessfully {
			cart.AddError(fmt.Sprintf("coupon %s was not applied", coupon.Code))
		}
		return nil
	})
}

// ChangeCurrency switches the cart currency. Unlike cart creation an unknown code is rejected.
func (s *CartService) ChangeCurrency(ctx context.Context, cartID uuid.UUID, currencyCode string) (*domain.Cart, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", currencyCode, err)
	}

	return s.update(ctx, cartID, "currency changed", func(cart *domain.Cart) error {
		cart.SetCurrency(unit)
		return nil
	})
}

func (s *CartService) Summary(ctx context.Context, cartID uuid.UUID) (Summary, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(cart), nil
}

func Summarize(cart *domain.Cart) Summary {
	summary := Summary{
		CartID:              cart.ID,
		Currency:            cart.Currency().Code(),
		ItemsCount:          cart.ItemsCount(),
		HasPhysicalProducts: cart.HasPhysicalProducts(),
		Totals:              cart.Totals(),
		Errors:              cart.Errors(),
	}

	if shipping, ok := cart.DefaultShippingAddress(); ok {
		_, stored := cart.StoredShippingAddress()
		summary.ShippingAddress = &shipping
		summary.ShippingAddressPlaceholder = !stored
	}

	summary.BillingAddress, _ = cart.DefaultBillingAddress()
	_, stored := cart.StoredBillingAddress()
	summary.BillingAddressPlaceholder = !stored

	return summary
}

func (s *CartService) update(ctx context.Context, cartID uuid.UUID, action string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("repo.GetCart: %w", err)
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("repo.SaveCart: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"cart_id":     cart.ID,
		"items_count": cart.ItemsCount(),
	}).Debug(action)

	return cart, nil
}
