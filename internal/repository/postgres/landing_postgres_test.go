package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"siteapi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestLandingPostgres_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLandingPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("present", func(t *testing.T) {
		hero := model.Hero{Title: "X", Subtitle: "Y", CTA: "Z"}
		courses := []model.Course{{Title: "C1", Duration: "3 Months", CareerOpportunities: "Dev", Technologies: []string{"React"}, Roles: []string{"Developer"}}}

		rows := sqlmock.NewRows([]string{"hero", "about", "courses", "features", "stats", "testimonials", "contact", "created_at", "updated_at"}).
			AddRow(
				mustJSON(t, hero),
				mustJSON(t, model.About{Description: "about us"}),
				mustJSON(t, courses),
				mustJSON(t, []model.Feature{}),
				mustJSON(t, []model.Stat{}),
				mustJSON(t, []model.Testimonial{}),
				mustJSON(t, model.Contact{}),
				now, now,
			)
		mock.ExpectQuery("SELECT hero, about, courses, features, stats, testimonials, contact").
			WithArgs(landingRowID).
			WillReturnRows(rows)

		l, err := repo.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, hero, l.Hero)
		assert.Len(t, l.Courses, 1)
		assert.Equal(t, "C1", l.Courses[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT hero, about, courses, features, stats, testimonials, contact").
			WithArgs(landingRowID).
			WillReturnError(sql.ErrNoRows)

		l, err := repo.Get(ctx)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, l)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLandingPostgres_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewLandingPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	l := &model.Landing{
		Hero:  model.Hero{Title: "X", Subtitle: "Y", CTA: "Z"},
		About: model.About{Description: "about us"},
		Courses: []model.Course{
			{Title: "C1", Duration: "3 Months", CareerOpportunities: "Dev", Technologies: []string{"React"}, Roles: []string{"Developer"}},
		},
	}

	rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)
	mock.ExpectQuery("INSERT INTO landing_content").
		WithArgs(
			landingRowID,
			mustJSON(t, l.Hero),
			mustJSON(t, l.About),
			mustJSON(t, l.Courses),
			[]byte("[]"), // features
			[]byte("[]"), // stats
			[]byte("[]"), // testimonials
			mustJSON(t, l.Contact),
		).
		WillReturnRows(rows)

	stored, err := repo.Upsert(ctx, l)

	assert.NoError(t, err)
	assert.Equal(t, l.Hero, stored.Hero)
	assert.Equal(t, now, stored.UpdatedAt)
	// nil sections persist as empty JSON arrays, never null
	assert.NoError(t, mock.ExpectationsWereMet())
}
