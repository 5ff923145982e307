package dto

// RecordDiceGameRequest is the body of POST /api/dice/games. Result and
// BetAmount are pointers so an absent field is distinguishable from an
// explicit zero; both are required.
type RecordDiceGameRequest struct {
	UserID    string   `json:"userId"`
	Result    *float64 `json:"result"`
	BetAmount *float64 `json:"betAmount"`
	Won       bool     `json:"won"`
	Winnings  float64  `json:"winnings"`
	Timestamp int64    `json:"timestamp"`
}

// DiceGameCreatedResponse confirms a recorded game
type DiceGameCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
