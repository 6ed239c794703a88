package main

import (
	"log"

	"github.com/bizpulse/bizpulse-api/internal/application/service"
	"github.com/bizpulse/bizpulse-api/internal/config"
	"github.com/bizpulse/bizpulse-api/internal/infrastructure/cache"
	"github.com/bizpulse/bizpulse-api/internal/infrastructure/database"
	"github.com/bizpulse/bizpulse-api/internal/infrastructure/repository"
	"github.com/bizpulse/bizpulse-api/internal/presentation/http/handler"
	"github.com/bizpulse/bizpulse-api/internal/presentation/http/routes"
	"github.com/bizpulse/bizpulse-api/pkg/insight"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo data on fresh installs when enabled
	if cfg.App.SeedDemo {
		if err := database.SeedDemoData(db); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	// Connect the advisory collection cache; a missing address disables it
	var collectionCache *cache.CollectionCache
	if cfg.Redis.Addr != "" {
		collectionCache, err = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis, continuing without cache: %v", err)
			collectionCache = nil
		} else {
			defer collectionCache.Close()
		}
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	adSpendRepo := repository.NewAdSpendRepository(db)

	// Initialize the insight provider
	insightProvider := insight.NewGeminiClient(insight.GeminiConfig{
		APIKey:  cfg.Insight.APIKey,
		Model:   cfg.Insight.Model,
		BaseURL: cfg.Insight.BaseURL,
		Timeout: cfg.Insight.Timeout,
	})

	// Initialize services
	productService := service.NewProductService(productRepo, cfg.Alerts.LowStockThreshold)
	saleService := service.NewSaleService(saleRepo, productRepo)
	adSpendService := service.NewAdSpendService(adSpendRepo)
	dashboardService := service.NewDashboardService(productRepo, saleRepo, adSpendRepo, collectionCache, cfg.Alerts.LowStockThreshold)
	insightService := service.NewInsightService(productRepo, saleRepo, adSpendRepo, insightProvider)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:   handler.NewProductHandler(productService),
		Sale:      handler.NewSaleHandler(saleService),
		AdSpend:   handler.NewAdSpendHandler(adSpendService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Insight:   handler.NewInsightHandler(insightService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
