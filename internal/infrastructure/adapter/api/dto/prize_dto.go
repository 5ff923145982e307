package dto

// AddPrizeRequest is the body of POST /api/prizes
type AddPrizeRequest struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

// PrizeListResponse wraps the prize feed
type PrizeListResponse struct {
	Prizes any `json:"prizes"`
}

// PrizeCreatedResponse confirms a stored prize
type PrizeCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
