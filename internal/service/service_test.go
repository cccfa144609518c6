package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopmesh/storefront/internal/config"
	"github.com/shopmesh/storefront/internal/models"
	"github.com/shopmesh/storefront/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open in-memory db")
	require.NoError(t, config.Migrate(db))

	return &repo.GormRepo{DB: db}
}

func createProduct(t *testing.T, r *repo.GormRepo, name, category string, price float64) *models.Product {
	t.Helper()

	p := models.Product{
		Name:        name,
		Description: name + " description",
		Price:       price,
		Image:       "https://example.com/" + name + ".png",
		Category:    category,
	}
	require.NoError(t, r.DB.Create(&p).Error)
	return &p
}

func createUser(t *testing.T, r *repo.GormRepo, email, role string) *models.User {
	t.Helper()

	u := models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, r.DB.Create(&u).Error)
	return &u
}
