package repository

import (
	"context"

	"siteapi/internal/model"
)

// GalleryRepository defines data access for gallery image records using SQL
// queries only. No business logic here, strictly persistence operations.
type GalleryRepository interface {
	// CreateBatch inserts all records in a single transaction: either every
	// row of an upload batch is committed or none is.
	CreateBatch(ctx context.Context, imgs []model.Image) ([]model.Image, error)

	// FindByID returns an image record by its ID.
	FindByID(ctx context.Context, id string) (*model.Image, error)

	// List returns all image records ordered newest-first.
	List(ctx context.Context) ([]model.Image, error)

	// Delete removes an image record by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
