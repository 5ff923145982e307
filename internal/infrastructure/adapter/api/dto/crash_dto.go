package dto

// CrashBetResponse confirms an upserted bet
type CrashBetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CleanBetsResponse reports the result of a manual prune
type CleanBetsResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}
