package database

import (
	"fmt"
	"log"
	"time"

	"github.com/bizpulse/bizpulse-api/internal/config"
	"github.com/bizpulse/bizpulse-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Product{},
		&entity.Sale{},
		&entity.AdSpend{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDemoData populates an empty database with a small demo dataset so a
// fresh install renders a meaningful dashboard. It is a no-op when any
// products already exist.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding demo data...")

	coffee := entity.Product{Name: "Premium Coffee Beans", Category: "Food", Cost: 1250, Price: 2999, Stock: 45}
	mug := entity.Product{Name: "Eco-friendly Mug", Category: "Apparel", Cost: 420, Price: 1500, Stock: 120}
	straws := entity.Product{Name: "Stainless Straw Set", Category: "Accessories", Cost: 150, Price: 899, Stock: 8}

	for _, p := range []*entity.Product{&coffee, &mug, &straws} {
		if err := db.Create(p).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
	}

	// Dates are relative to today so the weekly chart has something to show
	today := time.Now()
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	sales := []entity.Sale{
		{ProductID: coffee.ID, Quantity: 2, Date: day(-3), Revenue: 5998},
		{ProductID: mug.ID, Quantity: 10, Date: day(-2), Revenue: 15000},
		{ProductID: coffee.ID, Quantity: 1, Date: day(-1), Revenue: 2999},
	}
	for i := range sales {
		if err := db.Create(&sales[i]).Error; err != nil {
			return fmt.Errorf("failed to seed sale: %w", err)
		}
	}

	ads := []entity.AdSpend{
		{Platform: "Instagram", Amount: 5000, Date: day(-5), Reach: 5000},
		{Platform: "Google", Amount: 12000, Date: day(-4), Reach: 12000},
	}
	for i := range ads {
		if err := db.Create(&ads[i]).Error; err != nil {
			return fmt.Errorf("failed to seed ad spend: %w", err)
		}
	}

	log.Println("Demo data seeding completed")
	return nil
}
