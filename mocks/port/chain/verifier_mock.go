package chain

import (
	"context"

	"github.com/stretchr/testify/mock"

	chainport "github.com/tonarcade/casino-backend/internal/domain/port/chain"
)

// MockVerifier is a mock implementation of the chain.Verifier interface
type MockVerifier struct {
	mock.Mock
}

// VerifyTransaction mocks the VerifyTransaction method
func (m *MockVerifier) VerifyTransaction(ctx context.Context, req chainport.VerifyRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
