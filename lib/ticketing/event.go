// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package ticketing

import (
	"context"

	"github.com/foryouflowerai/eticketer/lib/schema"
)

// Events returns every event in ascending id order.
func (s *Service) Events(ctx context.Context) ([]schema.Event, error) {
	return s.events.GetAll(ctx)
}

// GetEvent returns the event with the given id.
func (s *Service) GetEvent(ctx context.Context, id uint64) (schema.Event, error) {
	return s.events.Get(ctx, id)
}

// CreateEvent allocates an id, stamps the creation time, and stores
// the new event. No uniqueness or content validation is performed; a
// well-formed payload always succeeds.
func (s *Service) CreateEvent(ctx context.Context, payload schema.EventPayload) (schema.Event, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	id, err := s.ids.Next(ctx)
	if err != nil {
		return schema.Event{}, err
	}

	event := schema.Event{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		Location:    payload.Location,
		CreatedAt:   s.now(),
	}
	if err := s.events.Insert(ctx, id, event); err != nil {
		return schema.Event{}, err
	}

	s.logger.Info("event created", "id", id, "name", event.Name)
	return event, nil
}

// UpdateEvent overwrites every payload field of an existing event,
// preserving its id and creation time and stamping the update time.
// Fails with NotFound if the id has no record.
func (s *Service) UpdateEvent(ctx context.Context, id uint64, payload schema.EventPayload) (schema.Event, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	current, err := s.events.Get(ctx, id)
	if err != nil {
		return schema.Event{}, err
	}

	updated := schema.Event{
		ID:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		Location:    payload.Location,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   s.now(),
	}
	if _, err := s.events.Replace(ctx, id, updated); err != nil {
		return schema.Event{}, err
	}

	s.logger.Info("event updated", "id", id)
	return updated, nil
}

// DeleteEvent removes the event and returns it. Fails with NotFound if
// the id has no record. Tickets referencing the event are untouched.
func (s *Service) DeleteEvent(ctx context.Context, id uint64) (schema.Event, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	removed, err := s.events.Remove(ctx, id)
	if err != nil {
		return schema.Event{}, err
	}

	s.logger.Info("event deleted", "id", id)
	return removed, nil
}
