package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopmesh/storefront/internal/logging"
	"github.com/shopmesh/storefront/internal/models"
	"github.com/shopmesh/storefront/internal/repo"
	"github.com/shopmesh/storefront/internal/transport"
)

// DeletedProductName is shown for order items whose product was removed from
// the catalog after the purchase.
const DeletedProductName = "Deleted product"

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, addr models.ShippingAddress) (*transport.OrderView, error) {
	l := logging.FromContext(ctx).With("svc", "order.checkout")

	if addr.Name == "" || addr.Email == "" || addr.Address == "" ||
		addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
		return nil, fmt.Errorf("all shipping address fields are required: %w", ErrValidation)
	}

	cart, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart is empty: %w", ErrInvalidState)
		}
		return nil, err
	}

	order, items, err := s.Repo.Checkout(ctx, cart.ID, userID, addr)
	if err != nil {
		if errors.Is(err, repo.ErrEmptyCart) {
			return nil, fmt.Errorf("cart is empty: %w", ErrInvalidState)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product is no longer available: %w", ErrNotFound)
		}
		return nil, err
	}

	l.Info("order_created", "order_id", order.ID, "total", order.TotalAmount, "items", len(items))

	views, err := s.assemble(ctx, []models.Order{*order}, false)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]transport.OrderView, error) {
	orders, err := s.Repo.ListOrdersForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, orders, false)
}

func (s *OrderService) ListAllOrders(ctx context.Context) ([]transport.OrderView, error) {
	orders, err := s.Repo.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, orders, true)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("status must be one of Pending, Shipped, Delivered: %w", ErrValidation)
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order does not exist: %w", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

// assemble resolves order items against the live catalog for display, falling
// back to a placeholder for products deleted since the purchase. With
// withOwner set it also resolves the owning user's email.
func (s *OrderService) assemble(ctx context.Context, orders []models.Order, withOwner bool) ([]transport.OrderView, error) {
	orderIDs := make([]uuid.UUID, 0, len(orders))
	userIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
		userIDs = append(userIDs, o.UserID)
	}

	itemsByOrder, err := s.Repo.GetOrderItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0)
	for _, items := range itemsByOrder {
		for _, it := range items {
			productIDs = append(productIDs, it.ProductID)
		}
	}
	products, err := s.Repo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	var users map[uuid.UUID]models.User
	if withOwner {
		if users, err = s.Repo.GetUsersByIDs(ctx, userIDs); err != nil {
			return nil, err
		}
	}

	views := make([]transport.OrderView, 0, len(orders))
	for _, o := range orders {
		view := transport.OrderView{
			ID:              o.ID,
			Items:           make([]transport.OrderItemView, 0, len(itemsByOrder[o.ID])),
			TotalAmount:     o.TotalAmount,
			ShippingAddress: o.ShippingAddress,
			Status:          o.Status,
			CreatedAt:       o.CreatedAt,
		}
		if withOwner {
			view.UserEmail = users[o.UserID].Email
		}
		for _, it := range itemsByOrder[o.ID] {
			pv := transport.OrderProductView{ID: it.ProductID, Name: DeletedProductName}
			if p, ok := products[it.ProductID]; ok {
				pv.Name = p.Name
				pv.Price = p.Price
				pv.Image = p.Image
			}
			view.Items = append(view.Items, transport.OrderItemView{
				Product:         pv,
				Quantity:        it.Quantity,
				PriceAtPurchase: it.PriceAtPurchase,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
