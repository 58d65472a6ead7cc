// Package cachestore persists JSON documents through a pluggable Provider.
//
// Entries live at "<root>/<prefix>_<key>.json". A provider reporting
// ErrNotFound means "no data" and is not an error for readers.
package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gabapcia/utxokit/internal/pkg/logger"
	"github.com/gabapcia/utxokit/internal/pkg/x/keylock"
)

// ErrNotFound is returned by providers when no entry exists at a path.
var ErrNotFound = errors.New("cache entry not found")

// Provider stores raw documents by path.
type Provider interface {
	// Read returns the document stored at path, or ErrNotFound.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write stores data at path, replacing any previous document.
	Write(ctx context.Context, path string, data []byte) error
}

// Store reads and writes JSON documents through a Provider.
type Store struct {
	provider Provider
	root     string
	locks    keylock.Map
}

// New returns a Store rooted at root.
func New(provider Provider, root string) *Store {
	return &Store{
		provider: provider,
		root:     root,
	}
}

// Path returns the location of the entry named prefix_key.
func (s *Store) Path(prefix, key string) string {
	return filepath.Join(s.root, fmt.Sprintf("%s_%s.json", prefix, key))
}

// Read decodes the document at path into out. It reports false, with no error,
// when nothing is stored there. A document that cannot be read or decoded is
// an error.
func (s *Store) Read(ctx context.Context, path string, out any) (bool, error) {
	data, err := s.provider.Read(ctx, path)
	if errors.Is(err, ErrNotFound) {
		logger.Debug(ctx, "cache miss", "path", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache entry %s: %w", path, err)
	}

	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", path, err)
	}

	return true, nil
}

// Write encodes v as JSON and stores it at path.
func (s *Store) Write(ctx context.Context, path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", path, err)
	}

	if err := s.provider.Write(ctx, path, data); err != nil {
		return fmt.Errorf("write cache entry %s: %w", path, err)
	}

	return nil
}

// Lock serializes read-modify-write cycles on path within this process. The
// returned function releases the lock.
func (s *Store) Lock(path string) (unlock func()) {
	return s.locks.Lock(path)
}
