// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitepool provides the eticketer-standard SQLite connection
// pool. The record stores and the identifier allocator live in one
// SQLite database file; this package is the only place that opens it.
//
// It wraps zombiezen.com/go/sqlite with production defaults: WAL
// journal mode so read-only queries never block behind the (single)
// writer, NORMAL synchronous for process-crash durability without
// fsync-per-commit overhead, and a busy timeout so a contended write
// waits instead of failing with SQLITE_BUSY.
//
// # Pragmas
//
// Every connection is initialized with:
//
//   - journal_mode=WAL: concurrent readers, single writer.
//   - synchronous=NORMAL: transactions survive process crashes.
//   - busy_timeout=5000: wait up to 5 seconds for a write lock.
//   - cache_size/mmap_size: sized for a small database read mostly
//     through full-region scans.
//   - foreign_keys=OFF: cross-record references (ticket to event,
//     ticket to user) are unenforced. The service's
//     consistency model is "references may dangle"; SQLite FK
//     enforcement or cascades would silently change delete semantics.
//   - temp_store=MEMORY: temporary structures in memory.
//
// # Usage
//
//	pool, err := sqlitepool.Open(sqlitepool.Config{
//	    Path:   filepath.Join(dataDir, "records.db"),
//	    Logger: logger,
//	    OnConnect: func(conn *sqlite.Conn) error {
//	        return sqlitex.ExecuteScript(conn, regionSchema, nil)
//	    },
//	})
//
// Callers Take a connection, do their work, and Put it back.
// Connections are not safe for concurrent use; each goroutine holds
// its own for the duration of its work.
//
// This package is intentionally thin: standard pragmas and the
// underlying zombiezen types, no query builder and no abstraction over
// SQLite's connection model. The store layer writes its own SQL.
package sqlitepool
