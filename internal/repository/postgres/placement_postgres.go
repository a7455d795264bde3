package postgres

import (
	"context"
	"database/sql"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// PlacementPostgres is a PostgreSQL implementation of repository.PlacementRepository.
type PlacementPostgres struct {
	db *sql.DB
}

// NewPlacementPostgres creates a new PlacementPostgres repository.
func NewPlacementPostgres(db *sql.DB) *PlacementPostgres {
	return &PlacementPostgres{db: db}
}

var _ repository.PlacementRepository = (*PlacementPostgres)(nil)

// Create inserts a new placement row and returns the stored record.
func (r *PlacementPostgres) Create(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	const q = `
		INSERT INTO placements (id, student_name, course, company, position, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, student_name, course, company, position, is_active, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.StudentName,
		p.Course,
		p.Company,
		p.Position,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanPlacement(row)
}

// List returns placements newest-first, optionally filtered to active rows.
func (r *PlacementPostgres) List(ctx context.Context, onlyActive bool) ([]model.Placement, error) {
	q := `
		SELECT id, student_name, course, company, position, is_active, created_at, updated_at
		FROM placements
	`
	if onlyActive {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Placement, 0)
	for rows.Next() {
		var p model.Placement
		if err := rows.Scan(
			&p.ID,
			&p.StudentName,
			&p.Course,
			&p.Company,
			&p.Position,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the mutable fields of a placement and returns the stored
// record, or sql.ErrNoRows when the row does not exist.
func (r *PlacementPostgres) Update(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	const q = `
		UPDATE placements
		SET student_name = $2, course = $3, company = $4, position = $5, is_active = $6, updated_at = now()
		WHERE id = $1
		RETURNING id, student_name, course, company, position, is_active, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.StudentName,
		p.Course,
		p.Company,
		p.Position,
		p.IsActive,
	)
	return scanPlacement(row)
}

// Delete removes a placement by ID, surfacing sql.ErrNoRows when nothing matched.
func (r *PlacementPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM placements WHERE id = $1`
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

func scanPlacement(row *sql.Row) (*model.Placement, error) {
	var p model.Placement
	if err := row.Scan(
		&p.ID,
		&p.StudentName,
		&p.Course,
		&p.Company,
		&p.Position,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
