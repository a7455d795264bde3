package mocks

import (
	"context"

	"siteapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPlacementRepository struct {
	mock.Mock
}

func (m *MockPlacementRepository) Create(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Placement), args.Error(1)
}

func (m *MockPlacementRepository) List(ctx context.Context, onlyActive bool) ([]model.Placement, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Placement), args.Error(1)
}

func (m *MockPlacementRepository) Update(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Placement), args.Error(1)
}

func (m *MockPlacementRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
