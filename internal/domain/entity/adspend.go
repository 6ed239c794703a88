package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdSpend represents one entry in the append-only ad-spend ledger
type AdSpend struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Platform  string    `gorm:"size:100;not null" json:"platform"`
	Amount    int64     `gorm:"not null" json:"amount"` // Stored in cents
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Reach     int       `gorm:"default:0" json:"reach"` // Estimated audience size
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new ad-spend entry
func (a *AdSpend) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdSpend model
func (AdSpend) TableName() string {
	return "ad_spends"
}

// GetAmountDecimal returns the spend amount as a decimal (for display)
func (a *AdSpend) GetAmountDecimal() float64 {
	return float64(a.Amount) / 100
}

// DateString returns the spend date at calendar-day granularity
func (a *AdSpend) DateString() string {
	return a.Date.Format(DateLayout)
}

// AdSpendJSON is a helper struct for JSON marshaling with decimal amounts
type AdSpendJSON struct {
	ID        uuid.UUID `json:"id"`
	Platform  string    `json:"platform"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"`
	Reach     int       `json:"reach"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON converts AdSpend to JSON with a decimal amount and a plain calendar date
func (a AdSpend) MarshalJSON() ([]byte, error) {
	return json.Marshal(AdSpendJSON{
		ID:        a.ID,
		Platform:  a.Platform,
		Amount:    a.GetAmountDecimal(),
		Date:      a.DateString(),
		Reach:     a.Reach,
		CreatedAt: a.CreatedAt,
	})
}

// UnmarshalJSON restores an AdSpend from its decimal JSON form
func (a *AdSpend) UnmarshalJSON(data []byte) error {
	var aux AdSpendJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return err
	}
	a.ID = aux.ID
	a.Platform = aux.Platform
	a.Amount = int64(aux.Amount*100 + 0.5)
	a.Date = date
	a.Reach = aux.Reach
	a.CreatedAt = aux.CreatedAt
	return nil
}
