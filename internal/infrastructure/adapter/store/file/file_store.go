// Package file persists each collection as a JSON file in a data directory.
// This is the default backing and mirrors the original on-disk layout, so the
// files stay inspectable and hand-editable during operation.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	errs "github.com/tonarcade/casino-backend/internal/domain/error"
	"github.com/tonarcade/casino-backend/internal/domain/port/persistence"
)

// Store implements persistence.DocumentStore over a flat directory of
// <collection>.json files. Saves are atomic: the document is written to a
// temporary file in the same directory and renamed into place, so a crash
// mid-write leaves the previous document intact.
type Store struct {
	dir string
}

// NewStore creates a file-backed document store rooted at dir, creating the
// directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory %s: %v", errs.ErrStore, dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection persistence.Collection) string {
	return filepath.Join(s.dir, string(collection)+".json")
}

// Load reads the collection document from disk.
func (s *Store) Load(_ context.Context, collection persistence.Collection) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: collection %s", errs.ErrNotFound, collection)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", errs.ErrStore, collection, err)
	}
	return data, nil
}

// Save writes the collection document via temp file plus rename.
func (s *Store) Save(_ context.Context, collection persistence.Collection, data []byte) error {
	target := s.path(collection)

	tmp, err := os.CreateTemp(s.dir, string(collection)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file for %s: %v", errs.ErrStore, collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", errs.ErrStore, collection, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing %s: %v", errs.ErrStore, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file for %s: %v", errs.ErrStore, collection, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", errs.ErrStore, collection, err)
	}
	return nil
}
