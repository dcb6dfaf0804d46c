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
// Create requests decode straight into the schema payload types (the
// CBOR decoder ignores the extra "action" field). Update requests add
// the target id alongside the embedded payload fields.

type updateEventRequest struct {
	ID uint64 `cbor:"id"`
	schema.EventPayload
}

type updateUserRequest struct {
	ID uint64 `cbor:"id"`
	schema.UserPayload
}

type updateTicketRequest struct {
	ID uint64 `cbor:"id"`
	schema.TicketPayload
}

// removeUserTicketRequest names both the ticket and the user it must
// belong to. The ticket is removed only when it exists and its owner
// matches; anything else is a ticket not-found.
type removeUserTicketRequest struct {
	UserID   uint64 `cbor:"user_id"`
	TicketID uint64 `cbor:"ticket_id"`
}

// --- Event handlers ---

func (rs *recordService) handleCreateEvent(ctx context.Context, raw []byte) (any, error) {
	var payload schema.EventPayload
	if err := codec.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return rs.ticketing.CreateEvent(ctx, payload)
}

func (rs *recordService) handleUpdateEvent(ctx context.Context, raw []byte) (any, error) {
	var request updateEventRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.UpdateEvent(ctx, request.ID, request.EventPayload)
}

func (rs *recordService) handleDeleteEvent(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.DeleteEvent(ctx, request.ID)
}

// --- User handlers ---

func (rs *recordService) handleCreateUser(ctx context.Context, raw []byte) (any, error) {
	var payload schema.UserPayload
	if err := codec.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return rs.ticketing.CreateUser(ctx, payload)
}

func (rs *recordService) handleUpdateUser(ctx context.Context, raw []byte) (any, error) {
	var request updateUserRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.UpdateUser(ctx, request.ID, request.UserPayload)
}

func (rs *recordService) handleDeleteUser(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.DeleteUser(ctx, request.ID)
}

// --- Ticket handlers ---

func (rs *recordService) handleCreateTicket(ctx context.Context, raw []byte) (any, error) {
	var payload schema.TicketPayload
	if err := codec.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return rs.ticketing.CreateTicket(ctx, payload)
}

func (rs *recordService) handleUpdateTicket(ctx context.Context, raw []byte) (any, error) {
	var request updateTicketRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.UpdateTicket(ctx, request.ID, request.TicketPayload)
}

func (rs *recordService) handleDeleteTicket(ctx context.Context, raw []byte) (any, error) {
	var request idRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.DeleteTicket(ctx, request.ID)
}

func (rs *recordService) handleRemoveUserTicket(ctx context.Context, raw []byte) (any, error) {
	var request removeUserTicketRequest
	if err := codec.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return rs.ticketing.RemoveUserTicket(ctx, request.UserID, request.TicketID)
}
