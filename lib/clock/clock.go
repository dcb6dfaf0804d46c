// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock is the timestamp source for record lifecycle stamps.
// Production code injects Real(); tests inject Fake() with
// deterministic time control.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
