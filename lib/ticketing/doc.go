// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketing implements the record service's operations: CRUD
// for events, users, and tickets, plus the derived relationship
// queries that join them by scanning.
//
// [Service] composes the identifier allocator, the three record
// stores, and the clock. Every operation is a synchronous, terminating
// computation that either returns its value or a single error kind,
// store.NotFoundError, for a missing identifier (substrate failures
// excepted).
//
// # Consistency model
//
// Creates perform no uniqueness or cross-entity validation: creating
// a ticket does not verify that its event or user exist. Deletes do
// not cascade: deleting an event leaves its tickets in place, with
// dangling EventID references. References between entities are
// unenforced, and the queries that resolve them
// ([Service.EventAttendees]) skip dangling ids instead of failing.
//
// # Serialization
//
// Mutating operations are serialized by an internal mutex, giving
// call-level atomicity: a mutation never interleaves with another
// mutation. Read-only queries run concurrently with each other on
// separate pool connections.
package ticketing
