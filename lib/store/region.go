// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"regexp"
	"strings"
)

// allocatorRegion is the region holding the shared id counter. Kept
// out of the namespace callers are likely to pick for entity regions.
const allocatorRegion = "id_allocator"

// regionNamePattern constrains region names to identifiers that are
// safe to splice into DDL and queries; table names cannot be bound
// as statement parameters.
var regionNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validRegion panics if name is not a usable region name. Region names
// are compile-time constants chosen by the service author; a bad one
// is a programming error, not a runtime condition.
func validRegion(name string) string {
	if !regionNamePattern.MatchString(name) {
		panic(fmt.Sprintf("store: invalid region name %q", name))
	}
	if name == allocatorRegion {
		panic(fmt.Sprintf("store: region name %q is reserved", name))
	}
	return name
}

// Schema returns the DDL that creates the given record regions and the
// allocator region. Run it from the pool's OnConnect hook:
//
//	sqlitepool.Config{
//	    OnConnect: func(conn *sqlite.Conn) error {
//	        return sqlitex.ExecuteScript(conn, store.Schema("events", "users", "tickets"), nil)
//	    },
//	}
//
// The statements are idempotent; the allocator seed row is inserted
// only when the database is new, so the counter survives restarts.
func Schema(regions ...string) string {
	var builder strings.Builder
	for _, region := range regions {
		fmt.Fprintf(&builder, `
CREATE TABLE IF NOT EXISTS %s (
    id     INTEGER PRIMARY KEY,
    record BLOB NOT NULL
);
`, validRegion(region))
	}
	fmt.Fprintf(&builder, `
CREATE TABLE IF NOT EXISTS %s (
    id   INTEGER PRIMARY KEY CHECK (id = 0),
    next INTEGER NOT NULL
);
INSERT OR IGNORE INTO %[1]s (id, next) VALUES (0, 0);
`, allocatorRegion)
	return builder.String()
}
