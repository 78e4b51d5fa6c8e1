// Package profile manages the collection of server profiles known to hsmanager.
//
// A Profile describes one server installation: its name, version, install
// path and launch arguments. Profiles are plain values; copying one yields an
// independent value and == compares all four fields.
//
// # Registry
//
// The Registry keeps profiles in insertion order. Names are meant to be unique
// but the registry does not enforce it: Add never rejects a duplicate, and
// every name-based operation (Remove, Edit, Lookup, Get, Find) acts on the
// first matching entry only.
//
// What Remove and Edit do when no entry matches is governed by a
// MissingPolicy:
//
//   - MissingReport (default) leaves the registry unchanged and returns a
//     *NotFoundError, matched by errors.Is(err, ErrNotFound).
//   - MissingFirstEntry reproduces the behavior of the profile files written
//     by earlier releases of the tool: the first entry is removed or replaced
//     instead. It still reports ErrNotFound on an empty registry.
//
// # Persistence
//
// Registries are persisted through a Store, which is a byte source and sink.
// FileStore keeps the data in a single file; MemoryStore keeps it in memory for
// tests. The encoding is a top-level JSON array of objects with the string
// keys name, version, path and args:
//
//	[
//	  {"name": "survival", "version": "1.20.1", "path": "/srv/a", "args": "-Xmx2G"}
//	]
//
// Field values must be valid UTF-8. The JSON encoder replaces invalid bytes
// with U+FFFD, so Save followed by Load would not return them unchanged;
// Profile.Validate reports such values before they are stored.
//
// Load and Save return *StorageError on failure. A missing file is an error at
// this layer; callers that want an empty registry instead check
// errors.Is(err, os.ErrNotExist).
//
// # Concurrency
//
// A Registry is not safe for concurrent use. The interactive shell owns its
// registries from a single goroutine.
package profile
