// Package postgres persists each collection as one jsonb row. A five-row
// table is an unusual shape for postgres, but it keeps the document-per-
// collection contract identical across backings while gaining real
// durability and remote access over the file backing.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// collectionRow maps one collection document to its table row.
type collectionRow struct {
	Name      string    `gorm:"primaryKey;column:name"`
	Data      []byte    `gorm:"column:data;type:jsonb"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// Store implements persistence.DocumentStore on a postgres database.
type Store struct {
	db *gorm.DB
}

// NewStore opens the database, configures the pool and migrates the schema.
func NewStore(ctx context.Context, dsn string, maxOpen, maxIdle int) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to postgres: %v", errs.ErrStore, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: acquiring connection pool: %v", errs.ErrStore, err)
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: pinging postgres: %v", errs.ErrStore, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("%w: migrating collections table: %v", errs.ErrStore, err)
	}

	return &Store{db: db}, nil
}

// Load returns the document row for the collection.
func (s *Store) Load(ctx context.Context, collection persistence.Collection) ([]byte, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).First(&row, "name = ?", string(collection)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: collection %s", errs.ErrNotFound, collection)
		}
		return nil, fmt.Errorf("%w: loading %s from postgres: %v", errs.ErrStore, collection, err)
	}
	return row.Data, nil
}

// Save upserts the document row for the collection.
func (s *Store) Save(ctx context.Context, collection persistence.Collection, data []byte) error {
	row := collectionRow{
		Name:      string(collection),
		Data:      data,
		UpdatedAt: time.Now(),
	}
	err := s.db.WithContext(ctx).
		Exec("INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?) ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at",
			row.Name, row.Data, row.UpdatedAt).Error
	if err != nil {
		return fmt.Errorf("%w: saving %s to postgres: %v", errs.ErrStore, collection, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
