package request

// CreateProductRequest represents a product creation request. Cost and price
// are decimal currency values.
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Category string  `json:"category" binding:"omitempty,max=100"`
	Cost     float64 `json:"cost" binding:"min=0"`
	Price    float64 `json:"price" binding:"min=0"`
	Stock    int     `json:"stock" binding:"min=0"`
}

// UpdateProductRequest represents a partial product update request
type UpdateProductRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category *string  `json:"category" binding:"omitempty,max=100"`
	Cost     *float64 `json:"cost" binding:"omitempty,min=0"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Stock    *int     `json:"stock" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	Threshold int    `form:"threshold"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
