package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmesh/storefront/internal/models"
)

func TestCartService_GetCartCreatesLazily(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	view, err := svc.GetCart(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	// the read persisted a cart row; a second read returns the same cart
	again, err := svc.GetCart(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, again.ID)

	var count int64
	require.NoError(t, r.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCartService_AddItemMergesQuantity(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Smart Watch", "Electronics", 199.99)

	_, err := svc.AddItem(context.Background(), user.ID, prod.ID, 2)
	require.NoError(t, err)

	view, err := svc.AddItem(context.Background(), user.ID, prod.ID, 3)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, prod.ID, view.Items[0].Product.ID)
	assert.Equal(t, uint(5), view.Items[0].Quantity)
}

func TestCartService_AddItemResolvesProductDetails(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Espresso Machine", "Home Goods", 159.99)

	view, err := svc.AddItem(context.Background(), user.ID, prod.ID, 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, "Espresso Machine", view.Items[0].Product.Name)
	assert.Equal(t, 159.99, view.Items[0].Product.Price)
}

func TestCartService_AddItemRejectsUnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	_, err := svc.AddItem(context.Background(), user.ID, uuid.New(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_AddItemValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Leather Satchel", "Apparel", 75.00)

	_, err := svc.AddItem(context.Background(), user.ID, prod.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddItem(context.Background(), user.ID, uuid.Nil, 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCartService_RemoveItemDecrements(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Ceramic Mug Set", "Home Goods", 35.00)

	_, err := svc.AddItem(context.Background(), user.ID, prod.ID, 3)
	require.NoError(t, err)

	view, err := svc.RemoveItem(context.Background(), user.ID, prod.ID)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, uint(2), view.Items[0].Quantity)
}

func TestCartService_RemoveItemDeletesAtQuantityOne(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Vintage Camera", "Electronics", 299.99)

	_, err := svc.AddItem(context.Background(), user.ID, prod.ID, 1)
	require.NoError(t, err)

	view, err := svc.RemoveItem(context.Background(), user.ID, prod.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCartService_RemoveItemNotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Smart Watch", "Electronics", 199.99)

	// no cart at all
	_, err := svc.RemoveItem(context.Background(), user.ID, prod.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// cart exists but the product is not in it
	_, err = svc.GetCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = svc.RemoveItem(context.Background(), user.ID, prod.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
