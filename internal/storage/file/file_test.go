package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"bills/internal/core"
	"bills/internal/storage"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "bills.json")

	s, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := s.Load(ctx); !errors.Is(err, storage.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}

	want := []core.Bill{{
		ID:            "x",
		Name:          "Car Insurance",
		Amount:        core.Money{Cents: 15000},
		DueDate:       core.NewDate(2025, 9, 15),
		IsRecurring:   true,
		RecurringType: core.Yearly,
		Category:      core.Insurance,
	}}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files should not be left behind, found %d entries", len(entries))
	}

	if err := s.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, storage.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot after delete, got %v", err)
	}
	if err := s.Delete(ctx); err != nil {
		t.Fatalf("Delete of a missing snapshot should succeed, got %v", err)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bills.json")
	if err := os.WriteFile(path, []byte("[{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := s.Load(context.Background()); err == nil || errors.Is(err, storage.ErrNoSnapshot) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
