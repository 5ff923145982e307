package entity

// PaymentType identifies the channel a payment arrived through.
type PaymentType string

const (
	// PaymentTypeTonkeeper marks on-chain payments submitted with a signed BOC.
	PaymentTypeTonkeeper PaymentType = "tonkeeper"
	// PaymentTypeTelegram marks payments relayed by the Telegram bot backend.
	PaymentTypeTelegram PaymentType = "telegram"
)

// MaxPaymentRecords caps the payments collection. When exceeded, the list is
// truncated to the newest records by position.
const MaxPaymentRecords = 10000

// PaymentRecord is the durable trace of a credited payment. The correlation
// key (boc for on-chain, transactionId for bot-relayed) is what makes repeat
// submissions of the same payment detectable.
type PaymentRecord struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Amount        float64     `json:"amount"`
	BOC           string      `json:"boc,omitempty"`
	TransactionID string      `json:"transactionId,omitempty"`
	PaymentHash   string      `json:"paymentHash,omitempty"`
	Address       string      `json:"address,omitempty"`
	Timestamp     int64       `json:"timestamp"`
	Verified      bool        `json:"verified"`
	Type          PaymentType `json:"type"`
}

// CorrelationKey returns the channel-specific duplicate-detection key.
func (p PaymentRecord) CorrelationKey() string {
	if p.Type == PaymentTypeTelegram {
		return p.TransactionID
	}
	return p.BOC
}

// IsDuplicateOf reports whether this record already credited the same payment
// as the given verified record: same channel, same correlation key, and the
// existing record must itself be verified.
func (p PaymentRecord) IsDuplicateOf(existing PaymentRecord) bool {
	return existing.Verified &&
		existing.Type == p.Type &&
		existing.CorrelationKey() == p.CorrelationKey() &&
		p.CorrelationKey() != ""
}

// TrimPayments keeps the newest records by list position once the cap is
// exceeded. Unlike the prize and dice caps this truncates in one cut rather
// than evicting one record per append.
func TrimPayments(payments []PaymentRecord) []PaymentRecord {
	if len(payments) > MaxPaymentRecords {
		return payments[len(payments)-MaxPaymentRecords:]
	}
	return payments
}
