// Copyright 2026 The Eticketer Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the eticketer-standard CBOR encoding.
//
// CBOR is used in two places: record blobs written into the storage
// substrate, and the socket wire protocol between the service and its
// clients. Both use the same deterministic encoder so that the same
// logical record always produces identical bytes, which makes the
// per-record size bound (lib/schema.MaxRecordSize) a stable property
// of the record's content rather than of encoder configuration.
//
// The decoder accepts standard CBOR and ignores unknown fields, so
// records written by a newer schema revision remain readable.
//
// Struct types in this repository carry json tags only; the CBOR
// library falls back to json tags when cbor tags are absent, so the
// schema types serialize identically over both encodings.
package codec
