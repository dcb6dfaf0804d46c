// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package store provides the persistent record store and the
// identifier allocator.
//
// A [Store] is a named region of the storage substrate: an ordered map
// from u64 identifier to one record of a single entity type. Records
// are stored as deterministic CBOR blobs (lib/codec); the substrate
// neither inspects nor indexes their contents. Iteration order is
// ascending id, which is also creation order since ids are allocated
// monotonically.
//
// Each store enforces [schema.MaxRecordSize] on insert and replace:
// an oversized record fails the mutating call and writes nothing.
//
// The [Allocator] is a persistent strictly-increasing u64 counter in
// its own region. One allocator instance is shared by all entity
// stores, so ids are unique across entities, never reused after
// deletion, and survive process restarts.
//
// # Regions
//
// Every region is a SQLite table of shape (id INTEGER PRIMARY KEY,
// record BLOB). [Schema] returns the DDL for a set of regions plus
// the allocator; callers run it from the pool's OnConnect hook so the
// regions exist before first use.
//
// # Consistency
//
// Stores hold no state outside the substrate: every operation reads
// or writes through a pool connection. There is no cross-region
// transactionality: a handler mutates exactly one region (plus the
// allocator) and its mutation is all-or-nothing against that region.
package store
