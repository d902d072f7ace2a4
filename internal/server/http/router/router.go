package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/vellamart/storefront/internal/pkg/auth"
	"github.com/vellamart/storefront/internal/server/http/handlers"
	"github.com/vellamart/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, sessions *pkgAuth.SessionStrategy, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	catalogHandler := handlers.NewCatalogHandler(facade)
	settingsHandler := handlers.NewSettingsHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	transactionHandler := handlers.NewTransactionHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)
	api.GET("/settings", settingsHandler.Get)

	shopper := api.Group("")
	shopper.Use(middleware.AuthRequired(sessions))
	shopper.GET("/cart", cartHandler.List)
	shopper.POST("/cart/items", cartHandler.Add)
	shopper.POST("/cart/items/:productID/decrease", cartHandler.Decrease)
	shopper.DELETE("/cart/items/:productID", cartHandler.Remove)
	shopper.GET("/cart/quote", cartHandler.Quote)
	shopper.POST("/checkout", orderHandler.Checkout)
	shopper.GET("/orders", orderHandler.List)
	shopper.PUT("/orders/:orderID/cancel", orderHandler.Cancel)

	admin := api.Group("/admin")
	admin.POST("/session", adminHandler.CreateSession)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AuthRequired(sessions))
	adminAuth.Use(middleware.AdminRequired(sessions))
	adminAuth.PUT("/orders/:orderID/status", orderHandler.UpdateStatus)
	adminAuth.PUT("/orders/:orderID/cancel", orderHandler.AdminCancel)
	adminAuth.GET("/transactions", transactionHandler.List)
	adminAuth.PUT("/transactions/:transactionID/refund", transactionHandler.Refund)
	adminAuth.GET("/revenue", transactionHandler.Revenue)
	adminAuth.PUT("/settings", settingsHandler.Update)

	return engine
}
