package router

import (
	"database/sql"

	"bridal_erp_backend/internal/handlers"
	"bridal_erp_backend/internal/middleware"
	"bridal_erp_backend/internal/repositories"
	"bridal_erp_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	operatorRepo := repositories.NewOperatorRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	stockRepo := repositories.NewStockRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	numberingRepo := repositories.NewNumberingRepository(db)
	accountingRepo := repositories.NewAccountingRepository(db)
	counterpartyRepo := repositories.NewCounterpartyRepository(db)

	// Initialize Services
	authService := services.NewAuthService(operatorRepo)
	resolver := services.NewVariationResolver(catalogRepo, stockRepo)
	numbering := services.NewNumberingService(numberingRepo)
	orderService := services.NewOrderService(orderRepo, stockRepo, accountingRepo, counterpartyRepo, resolver, numbering, db)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(resolver)
	orderHandler := handlers.NewOrderHandler(orderService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/login", authHandler.Login)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupOrderRoutes(authenticated, orderHandler)
		SetupCatalogRoutes(authenticated, catalogHandler)
	}
}
