// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package ticketing

import (
	"context"

	"github.com/foryouflowerai/eticketer/lib/schema"
)

// Tickets returns every ticket in ascending id order.
func (s *Service) Tickets(ctx context.Context) ([]schema.Ticket, error) {
	return s.tickets.GetAll(ctx)
}

// GetTicket returns the ticket with the given id.
func (s *Service) GetTicket(ctx context.Context, id uint64) (schema.Ticket, error) {
	return s.tickets.Get(ctx, id)
}

// CreateTicket allocates an id, stamps the creation time, and stores
// the new ticket. The payload's event and user references are not
// validated; a ticket for a nonexistent event or user is accepted.
func (s *Service) CreateTicket(ctx context.Context, payload schema.TicketPayload) (schema.Ticket, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	id, err := s.ids.Next(ctx)
	if err != nil {
		return schema.Ticket{}, err
	}

	ticket := schema.Ticket{
		ID:        id,
		EventID:   payload.EventID,
		UserID:    payload.UserID,
		Price:     payload.Price,
		CreatedAt: s.now(),
	}
	if err := s.tickets.Insert(ctx, id, ticket); err != nil {
		return schema.Ticket{}, err
	}

	s.logger.Info("ticket created", "id", id, "event_id", ticket.EventID, "user_id", ticket.UserID)
	return ticket, nil
}

// UpdateTicket overwrites every payload field of an existing ticket,
// preserving its id and creation time and stamping the update time.
// Fails with NotFound if the id has no record. The new references are
// as unvalidated as they were on create.
func (s *Service) UpdateTicket(ctx context.Context, id uint64, payload schema.TicketPayload) (schema.Ticket, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	current, err := s.tickets.Get(ctx, id)
	if err != nil {
		return schema.Ticket{}, err
	}

	updated := schema.Ticket{
		ID:        id,
		EventID:   payload.EventID,
		UserID:    payload.UserID,
		Price:     payload.Price,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}
	if _, err := s.tickets.Replace(ctx, id, updated); err != nil {
		return schema.Ticket{}, err
	}

	s.logger.Info("ticket updated", "id", id)
	return updated, nil
}

// DeleteTicket removes the ticket and returns it. Fails with NotFound
// if the id has no record.
func (s *Service) DeleteTicket(ctx context.Context, id uint64) (schema.Ticket, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	removed, err := s.tickets.Remove(ctx, id)
	if err != nil {
		return schema.Ticket{}, err
	}

	s.logger.Info("ticket deleted", "id", id)
	return removed, nil
}
