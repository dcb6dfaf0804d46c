// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package clock_test

import (
	"testing"
	"time"

	"github.com/foryouflowerai/eticketer/lib/clock"
)

func TestFakeClockStandsStill(t *testing.T) {
	initial := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.Fake(initial)

	if got := clk.Now(); !got.Equal(initial) {
		t.Errorf("Now: got %v, want %v", got, initial)
	}
	if got := clk.Now(); !got.Equal(initial) {
		t.Errorf("second Now: got %v, want %v", got, initial)
	}
}

func TestFakeClockAdvance(t *testing.T) {
	initial := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.Fake(initial)

	clk.Advance(90 * time.Second)
	if got, want := clk.Now(), initial.Add(90*time.Second); !got.Equal(want) {
		t.Errorf("Now after Advance: got %v, want %v", got, want)
	}
}

func TestFakeClockSet(t *testing.T) {
	clk := clock.Fake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	// Stepping backward is allowed.
	earlier := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clk.Set(earlier)
	if got := clk.Now(); !got.Equal(earlier) {
		t.Errorf("Now after Set: got %v, want %v", got, earlier)
	}
}

func TestRealClockTracksWallTime(t *testing.T) {
	clk := clock.Real()

	before := time.Now()
	got := clk.Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Now %v outside [%v, %v]", got, before, after)
	}
}
