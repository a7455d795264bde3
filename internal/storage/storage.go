package storage

import (
	"context"
	"io"
)

// Package storage contains the object-storage port used by the gallery.
// The gallery service is storage-agnostic: every backend normalizes its
// result into a public URL plus an opaque deletion handle.

// PutOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// StoredObject is the normalized outcome of a Put: the URL at which the
// object is publicly retrievable and the handle a later Delete needs.
type StoredObject struct {
	URL    string
	Handle string
}

// Storage is the port the gallery talks to. Implementations must use
// streaming I/O and be safe for concurrent use.
type Storage interface {
	// Put stores the object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (StoredObject, error)
	// Delete removes an object by the handle a previous Put returned.
	Delete(ctx context.Context, handle string) error
}
