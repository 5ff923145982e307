package dto

// HealthResponse is the payload of GET /api/health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
