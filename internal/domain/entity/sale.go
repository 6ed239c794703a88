package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar-day format used for sale and ad-spend dates.
const DateLayout = "2006-01-02"

// Sale represents one entry in the append-only sales ledger.
// Sales are never updated or deleted once recorded. ProductID is a weak
// reference: the product may be deleted later and the sale is kept as is.
type Sale struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Revenue   int64     `gorm:"not null" json:"revenue"` // Frozen at recording time, stored in cents
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// GetRevenueDecimal returns the revenue as a decimal (for display)
func (s *Sale) GetRevenueDecimal() float64 {
	return float64(s.Revenue) / 100
}

// DateString returns the sale date at calendar-day granularity
func (s *Sale) DateString() string {
	return s.Date.Format(DateLayout)
}

// SaleJSON is a helper struct for JSON marshaling with decimal revenue
type SaleJSON struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Date      string    `json:"date"`
	Revenue   float64   `json:"revenue"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON converts Sale to JSON with decimal revenue and a plain calendar date
func (s Sale) MarshalJSON() ([]byte, error) {
	return json.Marshal(SaleJSON{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Date:      s.DateString(),
		Revenue:   s.GetRevenueDecimal(),
		CreatedAt: s.CreatedAt,
	})
}

// UnmarshalJSON restores a Sale from its decimal JSON form
func (s *Sale) UnmarshalJSON(data []byte) error {
	var aux SaleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return err
	}
	s.ID = aux.ID
	s.ProductID = aux.ProductID
	s.Quantity = aux.Quantity
	s.Date = date
	s.Revenue = int64(aux.Revenue*100 + 0.5)
	s.CreatedAt = aux.CreatedAt
	return nil
}
