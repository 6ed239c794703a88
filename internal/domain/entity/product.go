package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents an item in the inventory
type Product struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Category  string         `gorm:"size:100;default:General" json:"category"`
	Cost      int64          `gorm:"default:0" json:"cost"`  // Unit acquisition cost, stored in cents
	Price     int64          `gorm:"default:0" json:"price"` // Unit sale price, stored in cents
	Stock     int            `gorm:"default:0" json:"stock"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetCostDecimal returns the unit cost as a decimal (for display)
func (p *Product) GetCostDecimal() float64 {
	return float64(p.Cost) / 100
}

// GetPriceDecimal returns the unit price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetCostFromDecimal sets the unit cost from a decimal value
func (p *Product) SetCostFromDecimal(cost float64) {
	p.Cost = int64(cost*100 + 0.5)
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price*100 + 0.5)
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Cost      float64   `json:"cost"`  // Decimal value for JSON
	Price     float64   `json:"price"` // Decimal value for JSON
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Cost:      p.GetCostDecimal(),
		Price:     p.GetPriceDecimal(),
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}

// UnmarshalJSON restores a Product from its decimal JSON form
func (p *Product) UnmarshalJSON(data []byte) error {
	var aux ProductJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = aux.ID
	p.Name = aux.Name
	p.Category = aux.Category
	p.Stock = aux.Stock
	p.CreatedAt = aux.CreatedAt
	p.UpdatedAt = aux.UpdatedAt
	p.SetCostFromDecimal(aux.Cost)
	p.SetPriceFromDecimal(aux.Price)
	return nil
}
