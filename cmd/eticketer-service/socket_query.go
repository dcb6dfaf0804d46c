// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	"github.com/foryouflowerai/eticketer/lib/codec"
	"github.com/foryouflowerai/eticketer/lib/schema"
)

// --- Request types ---
//
// Each query action decodes its specific fields from the CBOR
// request. The "action" field is handled by the socket server and not
// included here.

// idRequest identifies a single record by id. Used by the get-* and
// relationship actions; for event-tickets and event-attendees the id
// is an event id, for user-tickets a user id.
type idRequest struct {
	ID uint64 `cbor:"id"`
}

// --- Response types ---
//
// Single-record responses use the schema types directly rather than
// parallel wire types: the CBOR library falls back to the schema's
// json tags, so they serialize correctly and cannot drift from the
// canonical shapes. List responses wrap the slice in a named field.

type eventsResponse struct {
	Events []schema.Event `cbor:"events"`
}

type usersResponse struct {
	Users []schema.User `cbor:"users"`
}

type ticketsResponse struct {
	Tickets []schema.Ticket `cbor:"tickets"`
}

// --- Handlers ---

func (rs *recordService) handleListEvents(ctx context.Context, raw []byte) (any, error) {
	events, err := rs.ticketing.Events(ctx)
	if err != nil {
		return nil, err
	}
	return eventsResponse{Events: events}, nil
}

func (rs *recordService) handleGetEvent(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.GetEvent(ctx, request.ID)
}

func (rs *recordService) handleListUsers(ctx context.Context, raw []byte) (any, error) {
	users, err := rs.ticketing.Users(ctx)
	if err != nil {
		return nil, err
	}
	return usersResponse{Users: users}, nil
}

func (rs *recordService) handleGetUser(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.GetUser(ctx, request.ID)
}

func (rs *recordService) handleListTickets(ctx context.Context, raw []byte) (any, error) {
	tickets, err := rs.ticketing.Tickets(ctx)
	if err != nil {
		return nil, err
	}
	return ticketsResponse{Tickets: tickets}, nil
}

func (rs *recordService) handleGetTicket(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.GetTicket(ctx, request.ID)
}

func (rs *recordService) handleEventTickets(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	tickets, err := rs.ticketing.EventTickets(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	return ticketsResponse{Tickets: tickets}, nil
}

func (rs *recordService) handleUserTickets(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	tickets, err := rs.ticketing.UserTickets(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	return ticketsResponse{Tickets: tickets}, nil
}

func (rs *recordService) handleEventAttendees(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	attendees, err := rs.ticketing.EventAttendees(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	return usersResponse{Users: attendees}, nil
}
