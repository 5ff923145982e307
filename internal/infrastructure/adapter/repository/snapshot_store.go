// Package repository implements the typed snapshot store on top of a raw
// document store backing.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tonarcade/casino-backend/internal/domain/entity"
	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	coreport "github.com/tonarcade/casino-backend/internal/domain/port/core"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// SnapshotStore encodes and decodes collection snapshots as JSON documents.
//
// Missing documents always materialize the empty default. Corrupt documents
// do too, with a warning, unless strict mode is on; then they surface
// ErrStore so an operator can intervene before the next save overwrites the
// damaged document.
type SnapshotStore struct {
	backing persistence.DocumentStore
	logger  coreport.Logger
	strict  bool
}

// NewSnapshotStore creates a snapshot store over the given backing.
func NewSnapshotStore(backing persistence.DocumentStore, logger coreport.Logger, strict bool) *SnapshotStore {
	return &SnapshotStore{
		backing: backing,
		logger:  logger,
		strict:  strict,
	}
}

// Seed persists the empty default for every collection that has no document
// yet, so a fresh deployment starts with the full persisted layout in place.
// Existing documents are left alone; seeding twice is a no-op.
func (s *SnapshotStore) Seed(ctx context.Context) error {
	for _, collection := range persistence.Collections() {
		if _, err := s.backing.Load(ctx, collection); err == nil {
			continue
		} else if !errs.IsNotFoundError(err) {
			return err
		}

		def := []byte("[]")
		if collection == persistence.CollectionUsers {
			def = []byte("{}")
		}
		if err := s.backing.Save(ctx, collection, def); err != nil {
			return err
		}
		s.logger.Info("Seeded empty collection document", map[string]any{
			"collection": string(collection),
		})
	}
	return nil
}

// load decodes the collection document into out, leaving out untouched when
// the document is missing or (in lenient mode) unreadable.
func (s *SnapshotStore) load(ctx context.Context, collection persistence.Collection, out any) error {
	data, err := s.backing.Load(ctx, collection)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		if s.strict {
			return fmt.Errorf("%w: corrupt document in %s: %v", errs.ErrStore, collection, err)
		}
		s.logger.Warn("Corrupt collection document, starting from empty", map[string]any{
			"collection": string(collection),
			"error":      err.Error(),
		})
	}
	return nil
}

func (s *SnapshotStore) save(ctx context.Context, collection persistence.Collection, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", errs.ErrStore, collection, err)
	}
	return s.backing.Save(ctx, collection, data)
}

// LoadUsers returns the user mapping keyed by user identifier.
func (s *SnapshotStore) LoadUsers(ctx context.Context) (map[string]*entity.UserAccount, error) {
	users := make(map[string]*entity.UserAccount)
	if err := s.load(ctx, persistence.CollectionUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = make(map[string]*entity.UserAccount)
	}
	return users, nil
}

// SaveUsers atomically replaces the user mapping.
func (s *SnapshotStore) SaveUsers(ctx context.Context, users map[string]*entity.UserAccount) error {
	return s.save(ctx, persistence.CollectionUsers, users)
}

// LoadPrizes returns the prize feed, oldest first.
func (s *SnapshotStore) LoadPrizes(ctx context.Context) ([]entity.PrizeRecord, error) {
	var prizes []entity.PrizeRecord
	if err := s.load(ctx, persistence.CollectionPrizes, &prizes); err != nil {
		return nil, err
	}
	return prizes, nil
}

// SavePrizes atomically replaces the prize feed.
func (s *SnapshotStore) SavePrizes(ctx context.Context, prizes []entity.PrizeRecord) error {
	if prizes == nil {
		prizes = []entity.PrizeRecord{}
	}
	return s.save(ctx, persistence.CollectionPrizes, prizes)
}

// LoadCrashBets returns all stored crash bets.
func (s *SnapshotStore) LoadCrashBets(ctx context.Context) ([]entity.CrashBet, error) {
	var bets []entity.CrashBet
	if err := s.load(ctx, persistence.CollectionCrashBets, &bets); err != nil {
		return nil, err
	}
	return bets, nil
}

// SaveCrashBets atomically replaces the crash bet list.
func (s *SnapshotStore) SaveCrashBets(ctx context.Context, bets []entity.CrashBet) error {
	if bets == nil {
		bets = []entity.CrashBet{}
	}
	return s.save(ctx, persistence.CollectionCrashBets, bets)
}

// LoadDiceGames returns the dice history, oldest first.
func (s *SnapshotStore) LoadDiceGames(ctx context.Context) ([]entity.DiceGame, error) {
	var games []entity.DiceGame
	if err := s.load(ctx, persistence.CollectionDiceGames, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// SaveDiceGames atomically replaces the dice history.
func (s *SnapshotStore) SaveDiceGames(ctx context.Context, games []entity.DiceGame) error {
	if games == nil {
		games = []entity.DiceGame{}
	}
	return s.save(ctx, persistence.CollectionDiceGames, games)
}

// LoadPayments returns the payment trace, oldest first.
func (s *SnapshotStore) LoadPayments(ctx context.Context) ([]entity.PaymentRecord, error) {
	var payments []entity.PaymentRecord
	if err := s.load(ctx, persistence.CollectionPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// SavePayments atomically replaces the payment trace.
func (s *SnapshotStore) SavePayments(ctx context.Context, payments []entity.PaymentRecord) error {
	if payments == nil {
		payments = []entity.PaymentRecord{}
	}
	return s.save(ctx, persistence.CollectionPayments, payments)
}
