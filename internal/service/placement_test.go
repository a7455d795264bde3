package service

import (
	"context"
	"database/sql"
	"testing"

	"siteapi/internal/model"
	repoMocks "siteapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlacementService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path defaults to active", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlacementRepository)
		svc := NewPlacementService(mRepo)

		mRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Placement) bool {
			return p.ID != "" && p.IsActive && !p.CreatedAt.IsZero()
		})).Return(&model.Placement{ID: "gen-id", IsActive: true}, nil)

		p, err := svc.Create(ctx, &model.Placement{
			StudentName: "Ravi",
			Course:      "Fullstack Development",
			Company:     "Acme",
			Position:    "Developer",
		})

		assert.NoError(t, err)
		assert.True(t, p.IsActive)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing field names the field", func(t *testing.T) {
		svc := NewPlacementService(new(repoMocks.MockPlacementRepository))

		p, err := svc.Create(ctx, &model.Placement{StudentName: "Ravi", Course: "Data Science", Position: "Analyst"})

		assert.ErrorIs(t, err, ErrFieldRequired)
		assert.Contains(t, err.Error(), "company")
		assert.Nil(t, p)
	})
}

func TestPlacementService_Update(t *testing.T) {
	ctx := context.Background()

	valid := &model.Placement{
		ID:          "p-id",
		StudentName: "Ravi",
		Course:      "Fullstack Development",
		Company:     "Acme",
		Position:    "Senior Developer",
		IsActive:    false,
	}

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlacementRepository)
		svc := NewPlacementService(mRepo)

		mRepo.On("Update", ctx, valid).Return(valid, nil)

		p, err := svc.Update(ctx, valid)

		assert.NoError(t, err)
		assert.False(t, p.IsActive)
		mRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlacementRepository)
		svc := NewPlacementService(mRepo)

		mRepo.On("Update", ctx, valid).Return(nil, sql.ErrNoRows)

		p, err := svc.Update(ctx, valid)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, p)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewPlacementService(new(repoMocks.MockPlacementRepository))

		_, err := svc.Update(ctx, &model.Placement{StudentName: "x", Course: "y", Company: "z", Position: "w"})

		assert.ErrorIs(t, err, ErrIDRequired)
	})
}

func TestPlacementService_ListAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("list active only", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlacementRepository)
		svc := NewPlacementService(mRepo)

		mRepo.On("List", ctx, true).Return([]model.Placement{{ID: "1", IsActive: true}}, nil)

		items, err := svc.List(ctx, true)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		mRepo.AssertExpectations(t)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		mRepo := new(repoMocks.MockPlacementRepository)
		svc := NewPlacementService(mRepo)

		mRepo.On("Delete", ctx, "missing").Return(sql.ErrNoRows)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	})
}
