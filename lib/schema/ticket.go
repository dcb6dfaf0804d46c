// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Ticket links a user to an event. The EventID and UserID references
// are never validated against the event or user stores: creating a
// ticket for a nonexistent event succeeds, and deleting an event does
// not cascade to its tickets. Queries that resolve these references
// (lib/ticketing.Service.EventAttendees) skip dangling ids.
type Ticket struct {
	// ID is the unique record identifier, assigned once at creation
	// by the shared allocator. Never reused, even after deletion.
	ID uint64 `json:"id"`

	// EventID references the event this ticket admits to.
	EventID uint64 `json:"event_id"`

	// UserID references the user who holds this ticket.
	UserID uint64 `json:"user_id"`

	// Price is the ticket price. Unit and currency are the client's
	// business; the service just stores the number.
	Price float64 `json:"price"`

	// CreatedAt is the creation timestamp in Unix nanoseconds,
	// stamped once from the service clock. Updates preserve it.
	CreatedAt uint64 `json:"created_at"`

	// UpdatedAt is the last-update timestamp in Unix nanoseconds.
	// Zero until the record is first updated.
	UpdatedAt uint64 `json:"updated_at,omitempty"`
}

// TicketPayload carries the mutable fields of a Ticket for create and
// update requests.
type TicketPayload struct {
	EventID uint64  `json:"event_id"`
	UserID  uint64  `json:"user_id"`
	Price   float64 `json:"price"`
}
