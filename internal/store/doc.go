// Package store provides file-based persistence for the agentkey key file.
//
// KeyFile is bound to a single path at construction and only ever handles
// opaque bytes: callers protect data before Write and unprotect after Read.
// Writes go through a temporary file in the same directory followed by a
// rename, so a crash mid-write leaves either the old file or none, never a
// truncated one.
package store
