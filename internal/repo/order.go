package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopmesh/storefront/internal/models"
)

// Checkout snapshots the cart into an order and empties the cart in one
// transaction, so a failure never leaves an order without a cleared cart.
// Line prices are resolved from the catalog at this moment and stored on the
// order items; later price changes do not touch the order.
func (r *GormRepo) Checkout(ctx context.Context, cartID, userID uuid.UUID, addr models.ShippingAddress) (*models.Order, []models.OrderItem, error) {
	var (
		order      models.Order
		orderItems []models.OrderItem
	)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		prices := make(map[uuid.UUID]float64, len(items))
		for _, it := range items {
			var p models.Product
			if err := tx.Where("id = ?", it.ProductID).First(&p).Error; err != nil {
				return err
			}
			prices[it.ProductID] = p.Price
			total += float64(it.Quantity) * p.Price
		}

		order = models.Order{
			UserID:          userID,
			TotalAmount:     total,
			Status:          models.StatusPending,
			ShippingAddress: addr,
			CreatedAt:       time.Now().UTC(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItems = make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			oi := models.OrderItem{
				OrderID:         order.ID,
				ProductID:       it.ProductID,
				Quantity:        it.Quantity,
				PriceAtPurchase: prices[it.ProductID],
			}
			if err := tx.Create(&oi).Error; err != nil {
				return err
			}
			orderItems = append(orderItems, oi)
		}

		return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, orderItems, nil
}

func (r *GormRepo) ListOrdersForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrderItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]models.OrderItem, error) {
	byOrder := make(map[uuid.UUID][]models.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return byOrder, nil
	}

	var items []models.OrderItem
	if err := r.DB.WithContext(ctx).Where("order_id IN ?", orderIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var order models.Order
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
