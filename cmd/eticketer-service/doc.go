// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Eticketer-service is the record service process. It owns the event,
// user, and ticket stores in a single SQLite database and serves
// queries and mutations over a Unix socket using the CBOR protocol
// (lib/service).
//
// # Startup
//
// Configuration comes from a YAML file named by the --config flag or
// the ETICKETER_CONFIG environment variable (lib/config); with
// neither, built-in development defaults are used. The service
// creates its data and run directories, opens the database (creating
// the record regions on first use), and listens on the socket until
// SIGINT or SIGTERM.
//
// # Socket API
//
// Clients connect to the socket and send one CBOR request per
// connection. The "action" field determines the operation. Queries:
// status, list-events, get-event, list-users, get-user, list-tickets,
// get-ticket, event-tickets, user-tickets, event-attendees.
// Mutations: create-event, update-event, delete-event, create-user,
// update-user, delete-user, create-ticket, update-ticket,
// delete-ticket, remove-user-ticket.
//
// Mutations are serialized by the service; queries run concurrently.
// A get/update/delete for an absent id fails with a not-found message
// of the shape "event id:7 does not exist", surfaced verbatim in the
// response envelope.
package main
