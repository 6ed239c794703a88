package routes

import (
	"time"

	"github.com/bizpulse/bizpulse-api/internal/config"
	"github.com/bizpulse/bizpulse-api/internal/presentation/http/handler"
	"github.com/bizpulse/bizpulse-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product   *handler.ProductHandler
	Sale      *handler.SaleHandler
	AdSpend   *handler.AdSpendHandler
	Dashboard *handler.DashboardHandler
	Insight   *handler.InsightHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Per-client rate limiter
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "ok",
			"service":      cfg.App.Name,
			"rate_limiter": rateLimiter.Stats(),
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.Use(rateLimiter.Middleware())

		registerProductRoutes(v1, h)
		registerSaleRoutes(v1, h)
		registerAdSpendRoutes(v1, h)

		// Dashboard
		v1.GET("/dashboard", h.Dashboard.GetStats)

		// AI insights
		v1.POST("/insights", h.Insight.Generate)
	}

	return router
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
	}
}

func registerAdSpendRoutes(v1 *gin.RouterGroup, h *Handlers) {
	ads := v1.Group("/ad-spends")
	{
		ads.GET("", h.AdSpend.List)
		ads.POST("", h.AdSpend.Create)
	}
}
