package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrEmptyCart is returned by Checkout when the cart has no line items.
var ErrEmptyCart = errors.New("cart is empty")

type GormRepo struct {
	DB *gorm.DB
}
