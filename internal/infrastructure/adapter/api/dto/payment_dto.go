package dto

// VerifyPaymentRequest is the body of POST /api/payments/verify
type VerifyPaymentRequest struct {
	UserID        string  `json:"userId"`
	BOC           string  `json:"boc"`
	Amount        float64 `json:"amount"`
	Timestamp     int64   `json:"timestamp"`
	SenderAddress string  `json:"senderAddress"`
}

// TelegramPaymentRequest is the body of POST /api/payments/telegram
type TelegramPaymentRequest struct {
	UserID        string  `json:"userId"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
	PaymentHash   string  `json:"paymentHash"`
	Timestamp     int64   `json:"timestamp"`
}

// VerifyPaymentResponse answers POST /api/payments/verify. Rejections
// (stale, unverified, duplicate) are negative outcomes of a correctly handled
// request, so they ship with HTTP 200, verified=false and the taxonomy code
// rather than an error status.
type VerifyPaymentResponse struct {
	Verified   bool   `json:"verified"`
	Message    string `json:"message"`
	Code       int    `json:"code,omitempty"`
	NewBalance string `json:"newBalance,omitempty"`
}

// TelegramPaymentResponse answers POST /api/payments/telegram, with the same
// HTTP 200 negative-outcome convention as VerifyPaymentResponse.
type TelegramPaymentResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Code       int    `json:"code,omitempty"`
	NewBalance string `json:"newBalance,omitempty"`
}

// CheckPaymentRequest is the body of the check-tonkeeper / check-telegram
// polling endpoints. Address is only meaningful for the tonkeeper channel.
type CheckPaymentRequest struct {
	UserID    string  `json:"userId"`
	Amount    float64 `json:"amount"`
	Address   string  `json:"address"`
	Timestamp int64   `json:"timestamp"`
}

// TonkeeperCheckResponse answers POST /api/payments/check-tonkeeper
type TonkeeperCheckResponse struct {
	Verified      bool   `json:"verified"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId,omitempty"`
}

// TelegramCheckResponse answers POST /api/payments/check-telegram
type TelegramCheckResponse struct {
	Verified      bool   `json:"verified"`
	PaymentFound  bool   `json:"paymentFound"`
	Message       string `json:"message"`
	TransactionID string `json:"transactionId,omitempty"`
}
