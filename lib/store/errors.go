// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"

	"github.com/foryouflowerai/eticketer/lib/schema"
)

// NotFoundError reports that an identifier has no record in the
// entity's store. It is the only domain error kind: get, update,
// delete, and the relationship queries all fail with it and nothing
// else. Callers surface the message verbatim to the request origin.
type NotFoundError struct {
	// Entity is the entity name (schema.EntityEvent and friends).
	Entity string

	// ID is the identifier that had no record.
	ID uint64
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("%s id:%d does not exist", err.Entity, err.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// RecordSizeError reports that a record's serialized form exceeds the
// substrate's per-record bound. The mutating call that produced it
// wrote nothing.
type RecordSizeError struct {
	// Entity is the entity name of the rejected record.
	Entity string

	// ID is the rejected record's identifier.
	ID uint64

	// Size is the record's encoded size in bytes.
	Size int
}

func (err *RecordSizeError) Error() string {
	return fmt.Sprintf("%s id:%d record is %d bytes, exceeds the %d-byte bound",
		err.Entity, err.ID, err.Size, schema.MaxRecordSize)
}

// IsRecordSize reports whether err is a RecordSizeError.
func IsRecordSize(err error) bool {
	var sizeError *RecordSizeError
	return errors.As(err, &sizeError)
}
