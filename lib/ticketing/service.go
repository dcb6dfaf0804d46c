// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package ticketing

import (
	"io"
	"log/slog"
	"sync"

	"github.com/foryouflowerai/eticketer/lib/clock"
	"github.com/foryouflowerai/eticketer/lib/schema"
	"github.com/foryouflowerai/eticketer/lib/sqlitepool"
	"github.com/foryouflowerai/eticketer/lib/store"
)

// Region names for the three entity stores. These are the named
// substrate regions the service requests; Schema() turns them into
// DDL for the pool's OnConnect hook.
const (
	regionEvents  = "events"
	regionUsers   = "users"
	regionTickets = "tickets"
)

// Schema returns the substrate DDL for the service's regions. Pass the
// result to sqlitex.ExecuteScript from sqlitepool.Config.OnConnect.
func Schema() string {
	return store.Schema(regionEvents, regionUsers, regionTickets)
}

// Service is the record service: three entity stores, the shared id
// allocator, and the clock that stamps record lifecycles.
//
// Construct with [New]. Safe for concurrent use; see the package
// documentation for the serialization model.
type Service struct {
	clock  clock.Clock
	logger *slog.Logger

	events  *store.Store[schema.Event]
	users   *store.Store[schema.User]
	tickets *store.Store[schema.Ticket]
	ids     *store.Allocator

	// mutate serializes all state-changing operations. The allocator
	// and each store are individually consistent, but an id must be
	// allocated and its record inserted without another mutation in
	// between for creation to be all-or-nothing from the caller's
	// point of view.
	mutate sync.Mutex
}

// New returns a Service over the given pool. The pool's OnConnect hook
// must have run [Schema] so the regions exist. A nil logger discards.
func New(pool *sqlitepool.Pool, clk clock.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		clock:   clk,
		logger:  logger,
		events:  store.New[schema.Event](pool, regionEvents, schema.EntityEvent),
		users:   store.New[schema.User](pool, regionUsers, schema.EntityUser),
		tickets: store.New[schema.Ticket](pool, regionTickets, schema.EntityTicket),
		ids:     store.NewAllocator(pool),
	}
}

// now returns the current clock reading as a record timestamp.
func (s *Service) now() uint64 {
	return uint64(s.clock.Now().UnixNano())
}
