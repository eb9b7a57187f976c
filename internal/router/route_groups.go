package router

import (
	"bridal_erp_backend/internal/handlers"
	"bridal_erp_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes sets up the order routes.
func SetupOrderRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	orderRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
		orderRoutes.DELETE("/:id", orderHandler.DeleteOrder)
		orderRoutes.POST("/:id/payments", orderHandler.AddPayment)
		orderRoutes.DELETE("/:id/payments/:payment_id", orderHandler.RemovePayment)
	}
}

// SetupCatalogRoutes sets up the variation resolution and entry-form helper routes.
func SetupCatalogRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalogRoutes := authenticatedGroup.Group("")
	catalogRoutes.Use(middleware.RoleAuthMiddleware("Admin", "Staff"))
	{
		catalogRoutes.GET("/products/:id/variations", catalogHandler.GetVariations)
		catalogRoutes.GET("/stock/entry", catalogHandler.GetStockEntry)
		catalogRoutes.POST("/packing/aggregate", catalogHandler.AggregatePacking)
		catalogRoutes.GET("/payments/quick-pay", catalogHandler.QuickPay)
	}
}
