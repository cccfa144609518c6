package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

// ValidStatus reports whether s is one of the order statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusShipped || s == StatusDelivered
}

type Product struct {
	ID          uuid.UUID `gorm:"primaryKey"               json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `gorm:"not null"                 json:"description"`
	Price       float64   `gorm:"not null;check:price>=0"  json:"price"`
	Image       string    `gorm:"not null"                 json:"image"`
	Category    string    `gorm:"not null;index"           json:"category"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"             json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"   json:"email"`
	PasswordHash string    `gorm:"not null"               json:"-"`
	Role         string    `gorm:"not null;default:user"  json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Cart is the single per-user cart. Checkout empties its items but keeps the row.
type Cart struct {
	ID     uuid.UUID `gorm:"primaryKey"            json:"id"`
	UserID uuid.UUID `gorm:"uniqueIndex;not null"  json:"userId"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CartItem struct {
	ID        uuid.UUID `gorm:"primaryKey"                             json:"id"`
	CartID    uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null"  json:"cartId"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_cart_product;not null"  json:"productId"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"             json:"quantity"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

type ShippingAddress struct {
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"not null" json:"email"`
	Address    string `gorm:"not null" json:"address"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `gorm:"not null" json:"postalCode"`
	Country    string `gorm:"not null" json:"country"`
}

type Order struct {
	ID              uuid.UUID       `gorm:"primaryKey"                        json:"id"`
	UserID          uuid.UUID       `gorm:"index;not null"                    json:"userId"`
	TotalAmount     float64         `gorm:"not null"                          json:"totalAmount"`
	Status          string          `gorm:"not null;default:Pending"          json:"status"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem snapshots the product price at checkout time, so later catalog
// edits never change what a past order charged.
type OrderItem struct {
	ID              uuid.UUID `gorm:"primaryKey"      json:"id"`
	OrderID         uuid.UUID `gorm:"index;not null"  json:"orderId"`
	ProductID       uuid.UUID `gorm:"not null"        json:"productId"`
	Quantity        uint      `gorm:"not null"        json:"quantity"`
	PriceAtPurchase float64   `gorm:"not null"        json:"priceAtPurchase"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}
