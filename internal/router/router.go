// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/handlers"
	"github.com/javajoker/shopsmart-backend/internal/middleware"
	"github.com/javajoker/shopsmart-backend/internal/services"
)

const Version = "1.0.0"

// Services bundles what the HTTP layer needs.
type Services struct {
	Catalog   *services.CatalogService
	Selection *services.SelectionService
	Profile   *services.ProfileService
	Chat      *services.ChatService
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
}

// NewRateLimiter builds the per-client limiter from configuration.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
}

func Initialize(cfg *config.Config, svc Services) *gin.Engine {
	// Initialize handlers
	productHandler := handlers.NewProductHandler(svc.Catalog, svc.Selection)
	selectionHandler := handlers.NewSelectionHandler(svc.Catalog, svc.Selection)
	profileHandler := handlers.NewProfileHandler(svc.Profile)
	chatHandler := handlers.NewChatHandler(svc.Chat)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		body := gin.H{
			"status":  "healthy",
			"version": Version,
			"catalog": gin.H{
				"ready": svc.Catalog.Ready(),
			},
		}
		if count, err := svc.Catalog.Count(); err == nil {
			body["catalog"].(gin.H)["products"] = count
		}
		if err := svc.Catalog.LoadError(); err != nil {
			body["catalog"].(gin.H)["load_error"] = err.Error()
		}
		c.JSON(http.StatusOK, body)
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/v1")
	if svc.RateLimiter != nil {
		v1.Use(svc.RateLimiter.Middleware())
	}
	{
		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/suggestions", productHandler.GetSuggestions)
			products.GET("/search/enhanced", productHandler.EnhancedSearch)
			products.GET("/:id", productHandler.GetProduct)
		}

		v1.GET("/recommendations", productHandler.GetRecommendations)
		v1.GET("/categories", productHandler.GetCategories)
		v1.GET("/stats", productHandler.GetStats)
		v1.POST("/catalog/reload", productHandler.ReloadCatalog)

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", selectionHandler.GetCart)
			cart.DELETE("", selectionHandler.ClearCart)
			cart.POST("/items", selectionHandler.AddCartItem)
			cart.PUT("/items/:id", selectionHandler.UpdateCartItem)
			cart.DELETE("/items/:id", selectionHandler.RemoveCartItem)
			cart.POST("/checkout", selectionHandler.Checkout)
		}

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		{
			wishlist.GET("", selectionHandler.GetWishlist)
			wishlist.POST("/:id/toggle", selectionHandler.ToggleWishlist)
		}

		// Compare routes
		compare := v1.Group("/compare")
		{
			compare.GET("", selectionHandler.GetCompare)
			compare.POST("/:id/toggle", selectionHandler.ToggleCompare)
		}

		// Profile routes
		profile := v1.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.DELETE("", profileHandler.Logout)
		}

		// Order history routes
		orders := v1.Group("/orders")
		{
			orders.GET("", profileHandler.ListOrders)
			orders.POST("", profileHandler.CreateOrder)
			orders.PUT("/:id", profileHandler.UpdateOrder)
			orders.DELETE("/:id", profileHandler.DeleteOrder)
		}

		v1.POST("/chat", chatHandler.SendMessage)
	}

	return r
}
