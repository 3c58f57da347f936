// Package memory provides an in-process snapshot store.
package memory

import (
	"context"
	"sync"

	"bills/internal/core"
	"bills/internal/storage"
)

// Store keeps the encoded snapshot in memory. SaveErr and LoadErr, when set,
// are returned instead of touching the snapshot.
type Store struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	SaveErr error
	LoadErr error
}

func New() *Store {
	return &Store{}
}

// NewWithBills returns a store already holding a snapshot of bills.
func NewWithBills(bills []core.Bill) (*Store, error) {
	data, err := storage.EncodeBills(bills)
	if err != nil {
		return nil, err
	}
	return &Store{data: data}, nil
}

// NewWithPayload returns a store holding raw, possibly malformed, bytes.
func NewWithPayload(payload []byte) *Store {
	return &Store{data: append([]byte(nil), payload...)}
}

// Save implements storage.SnapshotStore
func (s *Store) Save(_ context.Context, bills []core.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := storage.EncodeBills(bills)
	if err != nil {
		return err
	}
	s.data = data
	s.saves++
	return nil
}

// Load implements storage.SnapshotStore
func (s *Store) Load(_ context.Context) ([]core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.data == nil {
		return nil, storage.ErrNoSnapshot
	}
	return storage.DecodeBills(s.data)
}

// Delete implements storage.Deleter
func (s *Store) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

// Saves returns how many snapshots have been written.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *Store) Close() error { return nil }
