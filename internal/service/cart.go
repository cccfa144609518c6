package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopmesh/storefront/internal/models"
	"github.com/shopmesh/storefront/internal/repo"
	"github.com/shopmesh/storefront/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

// GetCart lazily creates the cart on first read, so a GET may persist an
// empty cart row as a side effect.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*transport.CartView, error) {
	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// AddItem validates the product reference eagerly: an unknown product is
// rejected instead of being accepted as a dangling line item.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity uint) (*transport.CartView, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("productId is required: %w", ErrValidation)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product does not exist: %w", ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.Repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.AddItem(ctx, cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*transport.CartView, error) {
	cart, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart does not exist: %w", ErrNotFound)
		}
		return nil, err
	}

	if _, _, err := s.Repo.DecrementItem(ctx, cart.ID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item is not in the cart: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) view(ctx context.Context, cart *models.Cart) (*transport.CartView, error) {
	items, err := s.Repo.GetCartItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.Repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	view := &transport.CartView{
		ID:    cart.ID,
		Items: make([]transport.CartItemView, 0, len(items)),
	}
	for _, it := range items {
		view.Items = append(view.Items, transport.CartItemView{
			Product:  products[it.ProductID],
			Quantity: it.Quantity,
		})
	}
	return view, nil
}
