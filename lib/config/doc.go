// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the record
// service.
//
// Configuration is a single YAML file specified by:
//   - the ETICKETER_CONFIG environment variable, or
//   - the --config flag passed to the service binary.
//
// There are no fallbacks or automatic discovery, and environment
// variables do not override file values. This keeps configuration
// deterministic and auditable with no hidden overrides.
//
// The file may contain environment-specific sections (development,
// staging, production) that override base values when the environment
// matches.
package config
