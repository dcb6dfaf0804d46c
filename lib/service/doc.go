// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the CBOR-over-Unix-socket request/response
// protocol the record service is exposed through.
//
// Each connection carries exactly one request-response cycle: the
// client writes a single CBOR value containing an "action" field plus
// action-specific fields, the server routes it to the registered
// handler, writes a response envelope, and the connection closes.
// CBOR is self-delimiting, so there is no framing protocol.
//
// The response envelope is {ok, error, data}: ok=false carries the
// handler's error message verbatim, ok=true carries the handler's
// result (if any) as nested CBOR in data.
//
// [Server] is the listening side; register actions with
// [Server.Handle] before calling [Server.Serve]. [Client] is the
// calling side, used by tests and by whatever process host fronts the
// service.
package service
