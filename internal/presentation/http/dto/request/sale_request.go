package request

import "github.com/google/uuid"

// RecordSaleRequest represents a sale recording request. Date is an optional
// YYYY-MM-DD value defaulting to today.
type RecordSaleRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Date      string    `json:"date" binding:"omitempty,len=10"`
}

// LedgerFilterRequest represents filter parameters shared by the sales and
// ad-spend ledgers. From and To are inclusive YYYY-MM-DD bounds.
type LedgerFilterRequest struct {
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
