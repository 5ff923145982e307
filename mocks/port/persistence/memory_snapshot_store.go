package persistence

import (
	"context"
	"sync"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
)

// MemorySnapshotStore is an in-memory SnapshotStore for tests. Unlike a
// call-expectation mock it has real read-your-writes semantics, which the
// concurrency and idempotency tests depend on. Individual operations can be
// made to fail through the error fields.
type MemorySnapshotStore struct {
	mu sync.Mutex

	Users     map[string]*entity.UserAccount
	Prizes    []entity.PrizeRecord
	CrashBets []entity.CrashBet
	DiceGames []entity.DiceGame
	Payments  []entity.PaymentRecord

	LoadErr error
	SaveErr error

	// SaveUsersErr overrides SaveErr for the users collection only
	SaveUsersErr error
}

// NewMemorySnapshotStore creates an empty in-memory snapshot store
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{
		Users: make(map[string]*entity.UserAccount),
	}
}

// LoadUsers returns a copy of the user mapping
func (s *MemorySnapshotStore) LoadUsers(_ context.Context) (map[string]*entity.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	users := make(map[string]*entity.UserAccount, len(s.Users))
	for id, account := range s.Users {
		copied := *account
		users[id] = &copied
	}
	return users, nil
}

// SaveUsers replaces the user mapping
func (s *MemorySnapshotStore) SaveUsers(_ context.Context, users map[string]*entity.UserAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveUsersErr != nil {
		return s.SaveUsersErr
	}
	if s.SaveErr != nil {
		return s.SaveErr
	}
	copied := make(map[string]*entity.UserAccount, len(users))
	for id, account := range users {
		clone := *account
		copied[id] = &clone
	}
	s.Users = copied
	return nil
}

// LoadPrizes returns a copy of the prize feed
func (s *MemorySnapshotStore) LoadPrizes(_ context.Context) ([]entity.PrizeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]entity.PrizeRecord(nil), s.Prizes...), nil
}

// SavePrizes replaces the prize feed
func (s *MemorySnapshotStore) SavePrizes(_ context.Context, prizes []entity.PrizeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Prizes = append([]entity.PrizeRecord(nil), prizes...)
	return nil
}

// LoadCrashBets returns a copy of the crash bet list
func (s *MemorySnapshotStore) LoadCrashBets(_ context.Context) ([]entity.CrashBet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]entity.CrashBet(nil), s.CrashBets...), nil
}

// SaveCrashBets replaces the crash bet list
func (s *MemorySnapshotStore) SaveCrashBets(_ context.Context, bets []entity.CrashBet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.CrashBets = append([]entity.CrashBet(nil), bets...)
	return nil
}

// LoadDiceGames returns a copy of the dice history
func (s *MemorySnapshotStore) LoadDiceGames(_ context.Context) ([]entity.DiceGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]entity.DiceGame(nil), s.DiceGames...), nil
}

// SaveDiceGames replaces the dice history
func (s *MemorySnapshotStore) SaveDiceGames(_ context.Context, games []entity.DiceGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.DiceGames = append([]entity.DiceGame(nil), games...)
	return nil
}

// LoadPayments returns a copy of the payment trace
func (s *MemorySnapshotStore) LoadPayments(_ context.Context) ([]entity.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]entity.PaymentRecord(nil), s.Payments...), nil
}

// SavePayments replaces the payment trace
func (s *MemorySnapshotStore) SavePayments(_ context.Context, payments []entity.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Payments = append([]entity.PaymentRecord(nil), payments...)
	return nil
}
