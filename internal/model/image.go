package model

import "time"

// Image represents one gallery image: the public URL the browser loads and
// the opaque handle the storage backend needs to delete the underlying object.
// This is a pure domain model with no database-specific dependencies or tags.
type Image struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	StorageHandle string    `json:"storageHandle,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
