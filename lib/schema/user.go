// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// User is a ticket holder. Tickets reference their owner by id; the
// user record itself holds no ticket list.
type User struct {
	// ID is the unique record identifier, assigned once at creation
	// by the shared allocator. Never reused, even after deletion.
	ID uint64 `json:"id"`

	// Name is the user's display name.
	Name string `json:"name"`

	// Email is the user's contact address. Not validated and not
	// required to be unique.
	Email string `json:"email"`

	// CreatedAt is the creation timestamp in Unix nanoseconds,
	// stamped once from the service clock. Updates preserve it.
	CreatedAt uint64 `json:"created_at"`

	// UpdatedAt is the last-update timestamp in Unix nanoseconds.
	// Zero until the record is first updated.
	UpdatedAt uint64 `json:"updated_at,omitempty"`
}

// UserPayload carries the mutable fields of a User for create and
// update requests.
type UserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
