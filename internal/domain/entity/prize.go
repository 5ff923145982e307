package entity

// MaxPrizeRecords caps the prize feed. The oldest record by insertion order is
// evicted first, irrespective of its timestamp.
const MaxPrizeRecords = 1000

// PrizeRecord is one entry in the public prize feed.
type PrizeRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

// AppendPrize appends a prize and enforces the FIFO cap.
func AppendPrize(prizes []PrizeRecord, prize PrizeRecord) []PrizeRecord {
	prizes = append(prizes, prize)
	if len(prizes) > MaxPrizeRecords {
		prizes = prizes[1:]
	}
	return prizes
}
