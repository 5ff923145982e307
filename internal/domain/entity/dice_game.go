package entity

// MaxDiceGames caps the dice history. The oldest record by insertion order is
// evicted on append; a one-hour age window additionally prunes reads.
const MaxDiceGames = 10000

// DiceGame is one recorded dice outcome. Outcomes arrive from the game client
// as already-computed facts and are never merged or updated.
type DiceGame struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Result    float64 `json:"result"`
	BetAmount float64 `json:"betAmount"`
	Won       bool    `json:"won"`
	Winnings  float64 `json:"winnings,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// DiceStats aggregates a user's dice games inside the retention window.
// Losses are defined as "not won", so totals always satisfy
// wins + losses == totalGames.
type DiceStats struct {
	TotalGames    int     `json:"totalGames"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	TotalWinnings float64 `json:"totalWinnings"`
	TotalBets     float64 `json:"totalBets"`
}

// AppendDiceGame appends a game and enforces the FIFO cap.
func AppendDiceGame(games []DiceGame, game DiceGame) []DiceGame {
	games = append(games, game)
	if len(games) > MaxDiceGames {
		games = games[1:]
	}
	return games
}

// ComputeDiceStats reduces a user's games to their aggregate statistics.
// Callers are expected to pass an already-pruned slice; this is a pure
// read-side reduction with no mutation.
func ComputeDiceStats(games []DiceGame, userID string) DiceStats {
	var stats DiceStats
	for _, game := range games {
		if game.UserID != userID {
			continue
		}
		stats.TotalGames++
		stats.TotalBets += game.BetAmount
		if game.Won {
			stats.Wins++
			stats.TotalWinnings += game.Winnings
		} else {
			stats.Losses++
		}
	}
	return stats
}
