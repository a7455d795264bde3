package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"siteapi/internal/model"
	"siteapi/internal/repository"
)

// landingRowID is the fixed key of the singleton landing row. The table's
// CHECK constraint enforces that no other id can ever exist.
const landingRowID = 1

// LandingPostgres is a PostgreSQL implementation of repository.LandingRepository.
// Each top-level section is stored as its own JSONB column so a save can
// replace sections wholesale without touching the others.
type LandingPostgres struct {
	db *sql.DB
}

// NewLandingPostgres creates a new LandingPostgres repository.
func NewLandingPostgres(db *sql.DB) *LandingPostgres {
	return &LandingPostgres{db: db}
}

var _ repository.LandingRepository = (*LandingPostgres)(nil)

// Get returns the singleton document, or sql.ErrNoRows when it was never saved.
func (r *LandingPostgres) Get(ctx context.Context) (*model.Landing, error) {
	const q = `
		SELECT hero, about, courses, features, stats, testimonials, contact, created_at, updated_at
		FROM landing_content
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, landingRowID)

	var (
		hero, about, courses, features, stats, testimonials, contact []byte
		l                                                            model.Landing
	)
	if err := row.Scan(&hero, &about, &courses, &features, &stats, &testimonials, &contact, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}

	for _, dec := range []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"hero", hero, &l.Hero},
		{"about", about, &l.About},
		{"courses", courses, &l.Courses},
		{"features", features, &l.Features},
		{"stats", stats, &l.Stats},
		{"testimonials", testimonials, &l.Testimonials},
		{"contact", contact, &l.Contact},
	} {
		if err := json.Unmarshal(dec.raw, dec.dst); err != nil {
			return nil, fmt.Errorf("decode %s section: %w", dec.name, err)
		}
	}
	return &l, nil
}

// Upsert writes the full document into the singleton row. The single-row
// ON CONFLICT update is atomic, which is all the concurrency control this
// last-write-wins document gets.
func (r *LandingPostgres) Upsert(ctx context.Context, l *model.Landing) (*model.Landing, error) {
	sections := make([][]byte, 0, 7)
	for _, enc := range []struct {
		name string
		src  any
	}{
		{"hero", l.Hero},
		{"about", l.About},
		{"courses", emptySlice(l.Courses)},
		{"features", emptySlice(l.Features)},
		{"stats", emptySlice(l.Stats)},
		{"testimonials", emptySlice(l.Testimonials)},
		{"contact", l.Contact},
	} {
		b, err := json.Marshal(enc.src)
		if err != nil {
			return nil, fmt.Errorf("encode %s section: %w", enc.name, err)
		}
		sections = append(sections, b)
	}

	const q = `
		INSERT INTO landing_content (id, hero, about, courses, features, stats, testimonials, contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			hero = EXCLUDED.hero,
			about = EXCLUDED.about,
			courses = EXCLUDED.courses,
			features = EXCLUDED.features,
			stats = EXCLUDED.stats,
			testimonials = EXCLUDED.testimonials,
			contact = EXCLUDED.contact,
			updated_at = now()
		RETURNING created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		landingRowID,
		sections[0], sections[1], sections[2], sections[3], sections[4], sections[5], sections[6],
	)

	stored := *l
	if err := row.Scan(&stored.CreatedAt, &stored.UpdatedAt); err != nil {
		return nil, err
	}
	return &stored, nil
}

// emptySlice keeps nil section slices as JSON arrays instead of null.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
