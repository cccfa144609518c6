package config

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopmesh/storefront/internal/hash"
	"github.com/shopmesh/storefront/internal/models"
)

// SeedProducts fills an empty catalog with the starter set.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed count: %w", err)
	}
	if count > 0 {
		return nil
	}

	initial := []models.Product{
		{Name: "Vintage Camera", Description: "A classic camera with a timeless design.", Price: 299.99, Image: "https://placehold.co/400x300/F5EFE7/333?text=Camera", Category: "Electronics"},
		{Name: "Espresso Machine", Description: "Brew perfect espresso at home with ease.", Price: 159.99, Image: "https://placehold.co/400x300/D8C4B5/333?text=Espresso", Category: "Home Goods"},
		{Name: "Wireless Headphones", Description: "Immersive sound with noise cancellation.", Price: 129.50, Image: "https://placehold.co/400x300/C4B7A6/333?text=Headphones", Category: "Electronics"},
		{Name: "Leather Satchel", Description: "A stylish and durable bag for everyday use.", Price: 75.00, Image: "https://placehold.co/400x300/A0937D/333?text=Satchel", Category: "Apparel"},
		{Name: "Smart Watch", Description: "Stay connected on the go with this smart watch.", Price: 199.99, Image: "https://placehold.co/400x300/8B826D/333?text=Smart+Watch", Category: "Electronics"},
		{Name: "Ceramic Mug Set", Description: "Handcrafted mugs for your morning coffee.", Price: 35.00, Image: "https://placehold.co/400x300/776F61/333?text=Mugs", Category: "Home Goods"},
		{Name: "Classic Denim Jacket", Description: "A timeless jacket for any wardrobe.", Price: 89.99, Image: "https://placehold.co/400x300/625A4B/333?text=Jacket", Category: "Apparel"},
		{Name: "Mechanical Keyboard", Description: "Tactile keys for a satisfying typing experience.", Price: 149.00, Image: "https://placehold.co/400x300/4D453A/333?text=Keyboard", Category: "Electronics"},
	}
	if err := db.Create(&initial).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

// SeedAdmin bootstraps the single privileged account from configuration.
// Existing accounts are never modified.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("seed admin lookup: %w", err)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	admin := models.User{
		Email:        email,
		PasswordHash: pwHash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
