package repository

import (
	"context"

	"siteapi/internal/model"
)

// PlacementRepository defines data access for placement records.
type PlacementRepository interface {
	// Create inserts a new placement and returns the stored record.
	Create(ctx context.Context, p *model.Placement) (*model.Placement, error)

	// List returns placements ordered newest-first. When onlyActive is set,
	// inactive records are filtered out.
	List(ctx context.Context, onlyActive bool) ([]model.Placement, error)

	// Update replaces the mutable fields of a placement by ID and returns
	// the stored record, or sql.ErrNoRows when the row does not exist.
	Update(ctx context.Context, p *model.Placement) (*model.Placement, error)

	// Delete removes a placement by ID, returning sql.ErrNoRows when no row matched.
	Delete(ctx context.Context, id string) error
}
