// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/foryouflowerai/eticketer/lib/sqlitepool"
)

// Allocator issues strictly increasing u64 identifiers from a counter
// persisted in its own substrate region. The first id is 0. One
// allocator is shared by every entity store, so ids are unique across
// entity types, not just within one store, and are never reused:
// deletion does not return an id to the pool, and the counter survives
// process restarts.
//
// There is no rollback: an id consumed by a failed create is simply
// skipped. Overflow of the 64-bit counter is accepted as out of scope.
type Allocator struct {
	pool *sqlitepool.Pool
}

// NewAllocator returns an allocator over the pool's database. The
// allocator region is part of the [Schema] DDL, seeded with 0 when the
// database is new.
func NewAllocator(pool *sqlitepool.Pool) *Allocator {
	return &Allocator{pool: pool}
}

// Next returns the current counter value and increments it. The read
// and the increment commit in one transaction, so a crash between them
// cannot hand out the same id twice.
func (a *Allocator) Next(ctx context.Context) (uint64, error) {
	conn, err := a.pool.Take(ctx)
	if err != nil {
		return 0, err
	}
	defer a.pool.Put(conn)

	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return 0, fmt.Errorf("store: allocating id: %w", err)
	}
	defer endFn(&err)

	var next int64
	found := false
	err = sqlitex.Execute(conn, "SELECT next FROM "+allocatorRegion+" WHERE id = 0", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			next = stmt.ColumnInt64(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("store: allocating id: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("store: allocator region is missing its counter row")
	}

	err = sqlitex.Execute(conn, "UPDATE "+allocatorRegion+" SET next = ? WHERE id = 0", &sqlitex.ExecOptions{
		Args: []any{next + 1},
	})
	if err != nil {
		return 0, fmt.Errorf("store: allocating id: %w", err)
	}

	return uint64(next), nil
}
