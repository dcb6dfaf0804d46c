// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/foryouflowerai/eticketer/lib/codec"
	"github.com/foryouflowerai/eticketer/lib/schema"
	"github.com/foryouflowerai/eticketer/lib/sqlitepool"
)

// Store is an ordered map from u64 identifier to one record of type T,
// backed by a named region of the storage substrate. Construct with
// [New]; the region must be included in the [Schema] DDL passed to the
// pool's OnConnect hook.
//
// Store caches nothing: every operation goes through a pool
// connection, so the substrate is the single source of truth and
// records survive process restarts.
type Store[T any] struct {
	pool   *sqlitepool.Pool
	region string
	entity string
}

// New returns a store over the given region. The entity name (one of
// the schema.Entity* constants) appears in not-found and size errors.
// Panics on an invalid region name.
func New[T any](pool *sqlitepool.Pool, region, entity string) *Store[T] {
	return &Store[T]{
		pool:   pool,
		region: validRegion(region),
		entity: entity,
	}
}

// GetAll returns every record in ascending id order. Returns an empty
// slice, not nil, when the region is empty: callers and the wire
// protocol treat "no records" as a list, not an absence.
func (s *Store[T]) GetAll(ctx context.Context) ([]T, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	records := []T{}
	query := fmt.Sprintf("SELECT record FROM %s ORDER BY id ASC", s.region)
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			record, err := decodeRecord[T](stmt)
			if err != nil {
				return err
			}
			records = append(records, record)
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("store: scanning %s: %w", s.region, err)
	}
	return records, nil
}

// Get returns the record with the given id, or a [NotFoundError].
func (s *Store[T]) Get(ctx context.Context, id uint64) (T, error) {
	var zero T
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return zero, err
	}
	defer s.pool.Put(conn)

	return s.get(conn, id)
}

// Insert writes a record under the given id, overwriting any existing
// record. The allocator's uniqueness guarantee means the overwrite
// case never occurs for allocator-assigned ids; Insert does not check.
// Fails with [RecordSizeError] if the encoded record exceeds the
// per-record bound.
func (s *Store[T]) Insert(ctx context.Context, id uint64, record T) error {
	blob, err := s.encodeRecord(id, record)
	if err != nil {
		return err
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	query := fmt.Sprintf(
		"INSERT INTO %s (id, record) VALUES (?, ?) ON CONFLICT (id) DO UPDATE SET record = excluded.record",
		s.region)
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{int64(id), blob},
	})
	if err != nil {
		return fmt.Errorf("store: inserting %s id:%d: %w", s.entity, id, err)
	}
	return nil
}

// Replace overwrites the record under an existing id and returns the
// previous record. Fails with [NotFoundError] if the id is absent and
// with [RecordSizeError] if the new record is oversized; in both
// cases nothing is written.
func (s *Store[T]) Replace(ctx context.Context, id uint64, record T) (T, error) {
	var zero T
	blob, err := s.encodeRecord(id, record)
	if err != nil {
		return zero, err
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return zero, err
	}
	defer s.pool.Put(conn)

	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return zero, fmt.Errorf("store: replacing %s id:%d: %w", s.entity, id, err)
	}
	defer endFn(&err)

	previous, err := s.get(conn, id)
	if err != nil {
		return zero, err
	}

	query := fmt.Sprintf("UPDATE %s SET record = ? WHERE id = ?", s.region)
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{blob, int64(id)},
	})
	if err != nil {
		return zero, fmt.Errorf("store: replacing %s id:%d: %w", s.entity, id, err)
	}
	return previous, nil
}

// Remove deletes the record under the given id and returns it. Fails
// with [NotFoundError] if the id is absent. Removal is immediate and
// unconditional: no soft delete, and no cascade to records in other
// regions that reference this id.
func (s *Store[T]) Remove(ctx context.Context, id uint64) (T, error) {
	var zero T
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return zero, err
	}
	defer s.pool.Put(conn)

	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return zero, fmt.Errorf("store: removing %s id:%d: %w", s.entity, id, err)
	}
	defer endFn(&err)

	removed, err := s.get(conn, id)
	if err != nil {
		return zero, err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.region)
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{int64(id)},
	})
	if err != nil {
		return zero, fmt.Errorf("store: removing %s id:%d: %w", s.entity, id, err)
	}
	return removed, nil
}

// get performs a point lookup on an already-held connection.
func (s *Store[T]) get(conn *sqlite.Conn, id uint64) (T, error) {
	var zero T
	var record T
	found := false

	query := fmt.Sprintf("SELECT record FROM %s WHERE id = ?", s.region)
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []any{int64(id)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			decoded, err := decodeRecord[T](stmt)
			if err != nil {
				return err
			}
			record = decoded
			found = true
			return nil
		},
	})
	if err != nil {
		return zero, fmt.Errorf("store: reading %s id:%d: %w", s.entity, id, err)
	}
	if !found {
		return zero, &NotFoundError{Entity: s.entity, ID: id}
	}
	return record, nil
}

// encodeRecord serializes a record and enforces the per-record size
// bound. The bound is checked here, before any connection is taken, so
// an oversized record can never reach the substrate.
func (s *Store[T]) encodeRecord(id uint64, record T) ([]byte, error) {
	blob, err := codec.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("store: encoding %s id:%d: %w", s.entity, id, err)
	}
	if len(blob) > schema.MaxRecordSize {
		return nil, &RecordSizeError{Entity: s.entity, ID: id, Size: len(blob)}
	}
	return blob, nil
}

// decodeRecord reads the record blob from the current result row.
func decodeRecord[T any](stmt *sqlite.Stmt) (T, error) {
	var record T
	blob := make([]byte, stmt.ColumnLen(0))
	stmt.ColumnBytes(0, blob)
	if err := codec.Unmarshal(blob, &record); err != nil {
		return record, fmt.Errorf("decoding record blob: %w", err)
	}
	return record, nil
}
