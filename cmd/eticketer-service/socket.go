// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"time"

	"github.com/foryouflowerai/eticketer/lib/clock"
	"github.com/foryouflowerai/eticketer/lib/service"
	"github.com/foryouflowerai/eticketer/lib/ticketing"
)

// recordService binds the ticketing operations to socket actions.
type recordService struct {
	ticketing *ticketing.Service
	clock     clock.Clock
	startedAt time.Time
}

func newRecordService(t *ticketing.Service, clk clock.Clock) *recordService {
	return &recordService{
		ticketing: t,
		clock:     clk,
		startedAt: clk.Now(),
	}
}

// registerActions registers the full socket API: one action per
// operation, grouped by verb. Queries are read-only; mutations go
// through the ticketing service's mutation lock.
func (rs *recordService) registerActions(server *service.Server) {
	// Liveness.
	server.Handle("status", rs.handleStatus)

	// Queries.
	server.Handle("list-events", rs.handleListEvents)
	server.Handle("get-event", rs.handleGetEvent)
	server.Handle("list-users", rs.handleListUsers)
	server.Handle("get-user", rs.handleGetUser)
	server.Handle("list-tickets", rs.handleListTickets)
	server.Handle("get-ticket", rs.handleGetTicket)
	server.Handle("event-tickets", rs.handleEventTickets)
	server.Handle("user-tickets", rs.handleUserTickets)
	server.Handle("event-attendees", rs.handleEventAttendees)

	// Mutations.
	server.Handle("create-event", rs.handleCreateEvent)
	server.Handle("update-event", rs.handleUpdateEvent)
	server.Handle("delete-event", rs.handleDeleteEvent)
	server.Handle("create-user", rs.handleCreateUser)
	server.Handle("update-user", rs.handleUpdateUser)
	server.Handle("delete-user", rs.handleDeleteUser)
	server.Handle("create-ticket", rs.handleCreateTicket)
	server.Handle("update-ticket", rs.handleUpdateTicket)
	server.Handle("delete-ticket", rs.handleDeleteTicket)
	server.Handle("remove-user-ticket", rs.handleRemoveUserTicket)
}

// statusResponse is the response to the "status" action.
type statusResponse struct {
	// UptimeSeconds is how long the service has been running.
	UptimeSeconds float64 `cbor:"uptime_seconds"`
}

// handleStatus returns a minimal liveness response.
func (rs *recordService) handleStatus(ctx context.Context, raw []byte) (any, error) {
	uptime := rs.clock.Now().Sub(rs.startedAt)
	return statusResponse{UptimeSeconds: uptime.Seconds()}, nil
}
