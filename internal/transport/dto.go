package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopmesh/storefront/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  uint      `json:"quantity"`
}

type CartItemView struct {
	Product  models.Product `json:"product"`
	Quantity uint           `json:"quantity"`
}

type CartView struct {
	ID    uuid.UUID      `json:"id"`
	Items []CartItemView `json:"items"`
}

type CheckoutRequest struct {
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

// OrderProductView is the subset of product fields resolved for order display.
// A product deleted from the catalog after purchase shows up as a placeholder.
type OrderProductView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Image string    `json:"image"`
}

type OrderItemView struct {
	Product         OrderProductView `json:"product"`
	Quantity        uint             `json:"quantity"`
	PriceAtPurchase float64          `json:"priceAtPurchase"`
}

type OrderView struct {
	ID              uuid.UUID              `json:"id"`
	UserEmail       string                 `json:"userEmail,omitempty"`
	Items           []OrderItemView        `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	Status          string                 `json:"status"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
}
