// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package ticketing

import (
	"context"

	"github.com/foryouflowerai/eticketer/lib/schema"
)

// Users returns every user in ascending id order.
func (s *Service) Users(ctx context.Context) ([]schema.User, error) {
	return s.users.GetAll(ctx)
}

// GetUser returns the user with the given id.
func (s *Service) GetUser(ctx context.Context, id uint64) (schema.User, error) {
	return s.users.Get(ctx, id)
}

// CreateUser allocates an id, stamps the creation time, and stores the
// new user. Email uniqueness is not checked; the service has no
// secondary indexes and no uniqueness constraints beyond the id.
func (s *Service) CreateUser(ctx context.Context, payload schema.UserPayload) (schema.User, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	id, err := s.ids.Next(ctx)
	if err != nil {
		return schema.User{}, err
	}

	user := schema.User{
		ID:        id,
		Name:      payload.Name,
		Email:     payload.Email,
		CreatedAt: s.now(),
	}
	if err := s.users.Insert(ctx, id, user); err != nil {
		return schema.User{}, err
	}

	s.logger.Info("user created", "id", id, "name", user.Name)
	return user, nil
}

// UpdateUser overwrites every payload field of an existing user,
// preserving its id and creation time and stamping the update time.
// Fails with NotFound if the id has no record.
func (s *Service) UpdateUser(ctx context.Context, id uint64, payload schema.UserPayload) (schema.User, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	current, err := s.users.Get(ctx, id)
	if err != nil {
		return schema.User{}, err
	}

	updated := schema.User{
		ID:        id,
		Name:      payload.Name,
		Email:     payload.Email,
		CreatedAt: current.CreatedAt,
		UpdatedAt: s.now(),
	}
	if _, err := s.users.Replace(ctx, id, updated); err != nil {
		return schema.User{}, err
	}

	s.logger.Info("user updated", "id", id)
	return updated, nil
}

// DeleteUser removes the user and returns it. Fails with NotFound if
// the id has no record. Tickets held by the user are untouched.
func (s *Service) DeleteUser(ctx context.Context, id uint64) (schema.User, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	removed, err := s.users.Remove(ctx, id)
	if err != nil {
		return schema.User{}, err
	}

	s.logger.Info("user deleted", "id", id)
	return removed, nil
}
