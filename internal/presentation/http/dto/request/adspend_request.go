package request

// RecordAdSpendRequest represents an ad-spend recording request. Amount is a
// decimal currency value; Date is an optional YYYY-MM-DD value defaulting to
// today.
type RecordAdSpendRequest struct {
	Platform string  `json:"platform" binding:"required,min=2,max=100"`
	Amount   float64 `json:"amount" binding:"min=0"`
	Date     string  `json:"date" binding:"omitempty,len=10"`
	Reach    int     `json:"reach" binding:"min=0"`
}
