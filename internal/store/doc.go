// Package store persists the anime collection to durable local storage.
//
// Storage is a SQLite database holding JSON documents under fixed keys: the
// primary collection snapshot, a backup mirror of it, and the theme
// preference. Read and write operations on the snapshot keys fail soft: a
// corrupt or missing document yields an empty result and a log line, never
// an error to the caller.
package store
