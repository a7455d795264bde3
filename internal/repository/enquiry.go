package repository

import (
	"context"

	"siteapi/internal/model"
)

// EnquiryRepository defines data access for enquiry-form submissions.
type EnquiryRepository interface {
	// Create inserts a new enquiry and returns the stored record.
	Create(ctx context.Context, e *model.Enquiry) (*model.Enquiry, error)

	// List returns all enquiries ordered newest-first.
	List(ctx context.Context) ([]model.Enquiry, error)

	// Delete removes an enquiry by ID, returning sql.ErrNoRows when no row matched.
	Delete(ctx context.Context, id string) error
}
