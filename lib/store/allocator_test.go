// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/foryouflowerai/eticketer/lib/sqlitepool"
	"github.com/foryouflowerai/eticketer/lib/store"
)

func TestAllocatorStartsAtZero(t *testing.T) {
	pool := openPool(t, filepath.Join(t.TempDir(), "records.db"))
	allocator := store.NewAllocator(pool)

	id, err := allocator.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if id != 0 {
		t.Errorf("first id: got %d, want 0", id)
	}
}

func TestAllocatorMonotonic(t *testing.T) {
	pool := openPool(t, filepath.Join(t.TempDir(), "records.db"))
	allocator := store.NewAllocator(pool)
	ctx := context.Background()

	for want := uint64(0); want < 10; want++ {
		id, err := allocator.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if id != want {
			t.Fatalf("id: got %d, want %d", id, want)
		}
	}
}

func TestAllocatorNeverReusesAfterDelete(t *testing.T) {
	pool := openPool(t, filepath.Join(t.TempDir(), "records.db"))
	allocator := store.NewAllocator(pool)
	widgets := store.New[testRecord](pool, "widgets", "widget")
	ctx := context.Background()

	id, err := allocator.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := widgets.Insert(ctx, id, testRecord{ID: id}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := widgets.Remove(ctx, id); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// The deleted record's id stays consumed.
	next, err := allocator.Next(ctx)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if next != id+1 {
		t.Errorf("id after delete: got %d, want %d", next, id+1)
	}
}

func TestAllocatorCounterSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")
	ctx := context.Background()

	pool := openPool(t, path)
	allocator := store.NewAllocator(pool)
	for i := 0; i < 5; i++ {
		if _, err := allocator.Next(ctx); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := sqlitepool.Open(sqlitepool.Config{
		Path: path,
		OnConnect: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteScript(conn, store.Schema("widgets"), nil)
		},
	})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	// The OnConnect seed is INSERT OR IGNORE: it must not reset an
	// existing counter.
	id, err := store.NewAllocator(reopened).Next(ctx)
	if err != nil {
		t.Fatalf("Next after reopen: %v", err)
	}
	if id != 5 {
		t.Errorf("id after reopen: got %d, want 5", id)
	}
}
