// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Event is a scheduled happening that tickets are sold for. Tickets
// reference their event by id; the event itself holds no ticket list.
type Event struct {
	// ID is the unique record identifier, assigned once at creation
	// by the shared allocator. Never reused, even after deletion.
	ID uint64 `json:"id"`

	// Name is the event's display name.
	Name string `json:"name"`

	// Description is a longer free-form description.
	Description string `json:"description,omitempty"`

	// Date is the event date. Free-form: the service stores what
	// clients send and imposes no calendar semantics.
	Date string `json:"date"`

	// StartTime is the event start time, free-form like Date.
	StartTime string `json:"start_time,omitempty"`

	// Location is where the event takes place.
	Location string `json:"location"`

	// CreatedAt is the creation timestamp in Unix nanoseconds,
	// stamped once from the service clock. Updates preserve it.
	CreatedAt uint64 `json:"created_at"`

	// UpdatedAt is the last-update timestamp in Unix nanoseconds.
	// Zero until the record is first updated.
	UpdatedAt uint64 `json:"updated_at,omitempty"`
}

// EventPayload carries the mutable fields of an Event for create and
// update requests.
type EventPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time,omitempty"`
	Location    string `json:"location"`
}
