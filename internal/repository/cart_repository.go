package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-cart/internal/db"
	"github.com/nikolayk812/checkout-cart/internal/domain"
	"github.com/nikolayk812/checkout-cart/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, cartID uuid.UUID) (*domain.Cart, error) {
	if cartID == uuid.Nil {
		return nil, fmt.Errorf("cartID is empty")
	}

	return withTx(ctx, r.pool, r.q, readTx, func(q *db.Queries) (*domain.Cart, error) {
		dbCart, err := q.GetCart(ctx, cartID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("q.GetCart[%s]: %w", cartID, port.ErrCartNotFound)
			}
			return nil, fmt.Errorf("q.GetCart: %w", err)
		}

		dbItems, err := q.ListCartLineItems(ctx, cartID)
		if err != nil {
			return nil, fmt.Errorf("q.ListCartLineItems: %w", err)
		}

		dbAddresses, err := q.ListCartAddresses(ctx, cartID)
		if err != nil {
			return nil, fmt.Errorf("q.ListCartAddresses: %w", err)
		}

		cart, err := mapCartToDomain(dbCart, dbItems, dbAddresses)
		if err != nil {
			return nil, fmt.Errorf("mapCartToDomain: %w", err)
		}

		return cart, nil
	})
}

// SaveCart writes the whole cart snapshot, replacing stored items and addresses.
func (r *cartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	if cart == nil {
		return fmt.Errorf("cart is nil")
	}
	if cart.ID == uuid.Nil {
		return fmt.Errorf("cartID is empty")
	}

	itemParams, err := mapLineItemsToParams(cart)
	if err != nil {
		return fmt.Errorf("mapLineItemsToParams: %w", err)
	}

	_, err = withTx(ctx, r.pool, r.q, writeTx, func(q *db.Queries) (struct{}, error) {
		if err := q.UpsertCart(ctx, mapCartToUpsertParams(cart)); err != nil {
			return struct{}{}, fmt.Errorf("q.UpsertCart: %w", err)
		}

		if err := q.DeleteCartLineItems(ctx, cart.ID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCartLineItems: %w", err)
		}

		for _, p := range itemParams {
			if err := q.AddCartLineItem(ctx, p); err != nil {
				return struct{}{}, fmt.Errorf("q.AddCartLineItem: %w", err)
			}
		}

		if err := q.DeleteCartAddresses(ctx, cart.ID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCartAddresses: %w", err)
		}

		for i, address := range cart.Addresses {
			if err := q.AddCartAddress(ctx, mapAddressToParams(cart.ID, i, address)); err != nil {
				return struct{}{}, fmt.Errorf("q.AddCartAddress: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) DeleteCart(ctx context.Context, cartID uuid.UUID) (bool, error) {
	if cartID == uuid.Nil {
		return false, fmt.Errorf("cartID is empty")
	}

	rowsAffected, err := r.q.DeleteCart(ctx, cartID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCart: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) FindByCustomer(ctx context.Context, storeID, customerID string) ([]uuid.UUID, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customerID is empty")
	}

	ids, err := r.q.FindCartsByCustomer(ctx, db.FindCartsByCustomerParams{
		StoreID:    storeID,
		CustomerID: customerID,
	})
	if err != nil {
		return nil, fmt.Errorf("q.FindCartsByCustomer: %w", err)
	}

	return ids, nil
}
