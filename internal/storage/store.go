// Package storage persists the bill collection as a single snapshot.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bills/internal/core"
)

// DefaultSnapshotKey names the blob holding the bill collection.
const DefaultSnapshotKey = "bills"

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved snapshot")

// SnapshotStore is the only persistence contract the bill store relies on.
// Load returns exactly what the last Save wrote, or ErrNoSnapshot.
type SnapshotStore interface {
	Save(ctx context.Context, bills []core.Bill) error
	Load(ctx context.Context) ([]core.Bill, error)
	Close() error
}

// EncodeBills serializes the collection as a JSON array.
func EncodeBills(bills []core.Bill) ([]byte, error) {
	if bills == nil {
		bills = []core.Bill{}
	}
	data, err := json.Marshal(bills)
	if err != nil {
		return nil, fmt.Errorf("encode bills: %w", err)
	}
	return data, nil
}

// DecodeBills parses a JSON array written by EncodeBills.
func DecodeBills(data []byte) ([]core.Bill, error) {
	var bills []core.Bill
	if err := json.Unmarshal(data, &bills); err != nil {
		return nil, fmt.Errorf("decode bills: %w", err)
	}
	if bills == nil {
		bills = []core.Bill{}
	}
	return bills, nil
}

// Deleter is implemented by stores that can drop their snapshot.
type Deleter interface {
	Delete(ctx context.Context) error
}
