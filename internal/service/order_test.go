package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmesh/storefront/internal/models"
)

func testAddress() models.ShippingAddress {
	return models.ShippingAddress{
		Name:       "X",
		Email:      "x@y.com",
		Address:    "1 St",
		City:       "C",
		PostalCode: "00000",
		Country:    "Z",
	}
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	// absent cart
	_, err := orders.Checkout(context.Background(), user.ID, testAddress())
	assert.ErrorIs(t, err, ErrInvalidState)

	// present but empty cart
	_, err = carts.GetCart(context.Background(), user.ID)
	require.NoError(t, err)
	_, err = orders.Checkout(context.Background(), user.ID, testAddress())
	assert.ErrorIs(t, err, ErrInvalidState)

	var count int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestOrderService_CheckoutValidatesAddress(t *testing.T) {
	r := newTestRepo(t)
	orders := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	addr := testAddress()
	addr.PostalCode = ""
	_, err := orders.Checkout(context.Background(), user.ID, addr)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOrderService_CheckoutSnapshotsCart(t *testing.T) {
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)

	prodA := createProduct(t, r, "Product A", "Electronics", 10.00)
	prodB := createProduct(t, r, "Product B", "Home Goods", 5.00)

	_, err := carts.AddItem(context.Background(), user.ID, prodA.ID, 2)
	require.NoError(t, err)
	_, err = carts.AddItem(context.Background(), user.ID, prodB.ID, 1)
	require.NoError(t, err)

	order, err := orders.Checkout(context.Background(), user.ID, testAddress())
	require.NoError(t, err)

	assert.Equal(t, 25.00, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "00000", order.ShippingAddress.PostalCode)
	assert.False(t, order.CreatedAt.IsZero())

	// exactly one order was created
	var orderCount int64
	require.NoError(t, r.DB.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)

	// the cart is emptied, not deleted
	view, err := carts.GetCart(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	var cartCount int64
	require.NoError(t, r.DB.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Equal(t, int64(1), cartCount)
}

func TestOrderService_PriceChangeDoesNotAffectPastOrders(t *testing.T) {
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Smart Watch", "Electronics", 100.00)

	_, err := carts.AddItem(context.Background(), user.ID, prod.ID, 1)
	require.NoError(t, err)
	placed, err := orders.Checkout(context.Background(), user.ID, testAddress())
	require.NoError(t, err)
	require.Equal(t, 100.00, placed.TotalAmount)

	require.NoError(t, r.DB.Model(&models.Product{}).Where("id = ?", prod.ID).Update("price", 250.00).Error)

	history, err := orders.ListOrdersForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 100.00, history[0].TotalAmount)
	require.Len(t, history[0].Items, 1)
	assert.Equal(t, 100.00, history[0].Items[0].PriceAtPurchase)
}

func TestOrderService_ListOrdersNewestFirst(t *testing.T) {
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Ceramic Mug Set", "Home Goods", 35.00)

	var placed []uuid.UUID
	for i := 0; i < 3; i++ {
		_, err := carts.AddItem(context.Background(), user.ID, prod.ID, 1)
		require.NoError(t, err)
		o, err := orders.Checkout(context.Background(), user.ID, testAddress())
		require.NoError(t, err)
		placed = append(placed, o.ID)
	}

	history, err := orders.ListOrdersForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, placed[2], history[0].ID)
	assert.Equal(t, placed[0], history[2].ID)
}

func TestOrderService_ListAllResolvesOwnerEmail(t *testing.T) {
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Leather Satchel", "Apparel", 75.00)

	_, err := carts.AddItem(context.Background(), user.ID, prod.ID, 1)
	require.NoError(t, err)
	_, err = orders.Checkout(context.Background(), user.ID, testAddress())
	require.NoError(t, err)

	all, err := orders.ListAllOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "buyer@example.com", all[0].UserEmail)
}

func TestOrderService_DeletedProductShowsPlaceholder(t *testing.T) {
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}
	catalog := &CatalogService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Vintage Camera", "Electronics", 299.99)

	_, err := carts.AddItem(context.Background(), user.ID, prod.ID, 1)
	require.NoError(t, err)
	_, err = orders.Checkout(context.Background(), user.ID, testAddress())
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteProduct(context.Background(), prod.ID))

	history, err := orders.ListOrdersForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Len(t, history[0].Items, 1)
	assert.Equal(t, DeletedProductName, history[0].Items[0].Product.Name)
	assert.Equal(t, 299.99, history[0].Items[0].PriceAtPurchase)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	r := newTestRepo(t)
	carts := &CartService{Repo: r}
	orders := &OrderService{Repo: r}
	user := createUser(t, r, "buyer@example.com", models.RoleUser)
	prod := createProduct(t, r, "Smart Watch", "Electronics", 199.99)

	_, err := carts.AddItem(context.Background(), user.ID, prod.ID, 1)
	require.NoError(t, err)
	placed, err := orders.Checkout(context.Background(), user.ID, testAddress())
	require.NoError(t, err)

	updated, err := orders.UpdateOrderStatus(context.Background(), placed.ID, models.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, updated.Status)

	// transitions are not forward-only
	updated, err = orders.UpdateOrderStatus(context.Background(), placed.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestOrderService_UpdateStatusErrors(t *testing.T) {
	r := newTestRepo(t)
	orders := &OrderService{Repo: r}

	_, err := orders.UpdateOrderStatus(context.Background(), uuid.New(), models.StatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = orders.UpdateOrderStatus(context.Background(), uuid.New(), "Teleported")
	assert.ErrorIs(t, err, ErrValidation)
}
