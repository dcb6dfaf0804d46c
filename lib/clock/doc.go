// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts the timestamp source for testability.
//
// The record service stamps created_at on create and updated_at on
// update; those timestamps come from an injected [Clock] rather than
// direct time.Now calls, so tests can pin them with [Fake] and assert
// exact values. Production code injects [Real].
//
// Every handler in this system is a synchronous, terminating
// computation (nothing sleeps, ticks, or schedules), so the interface
// is just Now.
package clock
