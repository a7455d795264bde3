package postgres

import (
	"context"
	"database/sql"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// EnquiryPostgres is a PostgreSQL implementation of repository.EnquiryRepository.
type EnquiryPostgres struct {
	db *sql.DB
}

// NewEnquiryPostgres creates a new EnquiryPostgres repository.
func NewEnquiryPostgres(db *sql.DB) *EnquiryPostgres {
	return &EnquiryPostgres{db: db}
}

var _ repository.EnquiryRepository = (*EnquiryPostgres)(nil)

// Create inserts a new enquiry row and returns the stored record.
func (r *EnquiryPostgres) Create(ctx context.Context, e *model.Enquiry) (*model.Enquiry, error) {
	const q = `
		INSERT INTO enquiries (id, name, email, phone, course, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, email, phone, course, message, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.Name,
		e.Email,
		e.Phone,
		e.Course,
		e.Message,
		e.CreatedAt,
	)
	var out model.Enquiry
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Phone,
		&out.Course,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all enquiries newest-first.
func (r *EnquiryPostgres) List(ctx context.Context) ([]model.Enquiry, error) {
	const q = `
		SELECT id, name, email, phone, course, message, created_at
		FROM enquiries
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Enquiry, 0)
	for rows.Next() {
		var e model.Enquiry
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Email,
			&e.Phone,
			&e.Course,
			&e.Message,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an enquiry by ID, surfacing sql.ErrNoRows when nothing matched.
func (r *EnquiryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM enquiries WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
