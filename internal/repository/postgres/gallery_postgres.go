package postgres

import (
	"context"
	"database/sql"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// GalleryPostgres is a PostgreSQL implementation of repository.GalleryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type GalleryPostgres struct {
	db *sql.DB
}

// NewGalleryPostgres creates a new GalleryPostgres repository.
func NewGalleryPostgres(db *sql.DB) *GalleryPostgres {
	return &GalleryPostgres{db: db}
}

var _ repository.GalleryRepository = (*GalleryPostgres)(nil)

const galleryInsertQuery = `
	INSERT INTO gallery_images (id, url, storage_handle, created_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id, url, storage_handle, created_at
`

// CreateBatch inserts all rows inside one transaction so an upload batch is
// committed all-or-nothing.
func (r *GalleryPostgres) CreateBatch(ctx context.Context, imgs []model.Image) ([]model.Image, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out := make([]model.Image, 0, len(imgs))
	for _, img := range imgs {
		row := tx.QueryRowContext(ctx, galleryInsertQuery,
			img.ID,
			img.URL,
			img.StorageHandle,
			img.CreatedAt,
		)
		var stored model.Image
		if err := row.Scan(
			&stored.ID,
			&stored.URL,
			&stored.StorageHandle,
			&stored.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single image record by its ID.
func (r *GalleryPostgres) FindByID(ctx context.Context, id string) (*model.Image, error) {
	const q = `
		SELECT id, url, storage_handle, created_at
		FROM gallery_images
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var img model.Image
	if err := row.Scan(
		&img.ID,
		&img.URL,
		&img.StorageHandle,
		&img.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &img, nil
}

// List returns every image record newest-first. The id tiebreak keeps the
// order stable for records created in the same instant.
func (r *GalleryPostgres) List(ctx context.Context) ([]model.Image, error) {
	const q = `
		SELECT id, url, storage_handle, created_at
		FROM gallery_images
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Image, 0)
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(
			&img.ID,
			&img.URL,
			&img.StorageHandle,
			&img.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an image record by ID. It does not return an error if the
// row does not exist; existence checks belong to the service layer.
func (r *GalleryPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM gallery_images WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
