package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopmesh/storefront/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	ProductHandler *ProductHTTP
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/products", d.ProductHandler.ListProducts)
	e.POST("/auth/register", d.AuthHandler.Register)
	e.POST("/auth/login", d.AuthHandler.Login)

	authMW := middleware.RequireAuth(d.JWTSecret)

	cart := e.Group("/cart", authMW)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddItem)
	cart.DELETE("/:productId", d.CartHandler.RemoveItem)

	e.POST("/checkout", d.OrderHandler.Checkout, authMW)
	e.GET("/orders", d.OrderHandler.ListOrders, authMW)

	admin := e.Group("/admin", authMW, middleware.RequireAdmin)
	admin.GET("/orders", d.OrderHandler.ListAllOrders)
	admin.PUT("/orders/:id", d.OrderHandler.UpdateOrderStatus)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PUT("/products/:id", d.ProductHandler.UpdateProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
}
