package repository

import (
	"context"

	"siteapi/internal/model"
)

// LandingRepository defines data access for the singleton landing document.
// The row is addressed by a fixed well-known id, so there is no identifier
// in the interface.
type LandingRepository interface {
	// Get returns the stored document, or sql.ErrNoRows when none exists.
	Get(ctx context.Context) (*model.Landing, error)

	// Upsert writes the full document into the singleton row, creating it
	// when absent, and returns the stored state including timestamps.
	Upsert(ctx context.Context, l *model.Landing) (*model.Landing, error)
}
