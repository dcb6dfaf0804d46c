// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// MaxRecordSize is the maximum serialized size of a single record
// blob, in bytes. The storage substrate enforces this bound on every
// insert and replace: a record whose CBOR encoding exceeds it fails
// the mutating call rather than being written.
const MaxRecordSize = 1024

// Entity names used in not-found errors and log fields. These are the
// canonical lowercase singular names of the three record kinds.
const (
	EntityEvent  = "event"
	EntityUser   = "user"
	EntityTicket = "ticket"
)
