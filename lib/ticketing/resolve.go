// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package ticketing

import (
	"context"

	"github.com/foryouflowerai/eticketer/lib/schema"
	"github.com/foryouflowerai/eticketer/lib/store"
)

// Relationship queries. There are no secondary indexes and no enforced
// foreign keys: each query is a linear scan of the ticket store,
// filtered on the reference field, in store iteration order (ascending
// ticket id). The referenced event or user need not exist; a query
// for a deleted event still returns its surviving tickets.

// EventTickets returns the tickets whose EventID equals eventID.
func (s *Service) EventTickets(ctx context.Context, eventID uint64) ([]schema.Ticket, error) {
	return s.scanTickets(ctx, func(ticket *schema.Ticket) bool {
		return ticket.EventID == eventID
	})
}

// UserTickets returns the tickets whose UserID equals userID.
func (s *Service) UserTickets(ctx context.Context, userID uint64) ([]schema.Ticket, error) {
	return s.scanTickets(ctx, func(ticket *schema.Ticket) bool {
		return ticket.UserID == userID
	})
}

// EventAttendees returns the users holding at least one ticket to the
// event, each at most once, ordered by first ticket appearance. User
// ids that resolve to no record are skipped rather than failing the
// query: ticket-to-user references are unenforced, so a dangling id
// is an expected state, not an error.
func (s *Service) EventAttendees(ctx context.Context, eventID uint64) ([]schema.User, error) {
	tickets, err := s.EventTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}

	attendees := []schema.User{}
	seen := make(map[uint64]struct{})
	for _, ticket := range tickets {
		if _, duplicate := seen[ticket.UserID]; duplicate {
			continue
		}
		seen[ticket.UserID] = struct{}{}

		user, err := s.users.Get(ctx, ticket.UserID)
		if err != nil {
			if store.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		attendees = append(attendees, user)
	}
	return attendees, nil
}

// RemoveUserTicket removes the ticket with the given id from the given
// user's tickets. The ticket must exist and its UserID must equal
// userID; otherwise the call fails with a ticket NotFound. A ticket
// held by a different user is indistinguishable, to this caller, from
// no ticket at all.
func (s *Service) RemoveUserTicket(ctx context.Context, userID, ticketID uint64) (schema.Ticket, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	ticket, err := s.tickets.Get(ctx, ticketID)
	if err != nil {
		return schema.Ticket{}, err
	}
	if ticket.UserID != userID {
		return schema.Ticket{}, &store.NotFoundError{Entity: schema.EntityTicket, ID: ticketID}
	}

	removed, err := s.tickets.Remove(ctx, ticketID)
	if err != nil {
		return schema.Ticket{}, err
	}

	s.logger.Info("user ticket removed", "user_id", userID, "ticket_id", ticketID)
	return removed, nil
}

// scanTickets returns the tickets matching the predicate, in store
// iteration order.
func (s *Service) scanTickets(ctx context.Context, match func(*schema.Ticket) bool) ([]schema.Ticket, error) {
	all, err := s.tickets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := []schema.Ticket{}
	for i := range all {
		if match(&all[i]) {
			matched = append(matched, all[i])
		}
	}
	return matched, nil
}
