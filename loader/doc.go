// SPDX-License-Identifier: MIT

// Package loader resolves matrix identifiers to parsed *sparse.Sparse values.
//
// A Source opens raw text (FileSource reads files, MmapSource maps them), the
// codec package parses it, and a Cache keeps the result keyed by identifier.
// The cache is an explicit value owned by whoever creates it, so tests and
// long-running processes control its lifetime with Forget and Purge.
//
// Matrices handed out are always private copies: mutating one never changes
// what a later Load returns.
//
// Each cached entry records an xxhash digest of the bytes it was parsed from;
// WithRevalidate uses it to reparse only sources whose content changed.
package loader
