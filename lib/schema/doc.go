// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the persisted record shapes ([Event],
// [User], [Ticket]) and their payload counterparts used by create
// and update requests.
//
// A payload carries only the mutable fields: no identifier, no
// timestamps. A payload becomes a record when the allocator assigns
// an id and the service stamps created_at. Update overwrites every
// payload field, preserves id and created_at, and stamps updated_at.
//
// Records reference each other by id only (Ticket.EventID,
// Ticket.UserID). Nothing validates those references against the
// referenced store: a ticket may outlive its event or its user, and
// queries that resolve references must tolerate dangling ids.
//
// Records are serialized with lib/codec (CBOR, falling back to the
// json tags below) when written to the storage substrate. The encoded
// size of any record must stay within [MaxRecordSize]; mutating calls
// that would exceed it fail without writing.
//
// This package has no internal dependencies.
package schema
