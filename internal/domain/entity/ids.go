package entity

import "github.com/google/uuid"

// NewRecordID generates an identifier for records the caller submitted
// without one (payments, prizes, dice outcomes).
func NewRecordID() string {
	return uuid.NewString()
}
