package mocks

import (
	"context"

	"siteapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPlacementService struct {
	mock.Mock
}

func (m *MockPlacementService) Create(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Placement), args.Error(1)
}

func (m *MockPlacementService) List(ctx context.Context, onlyActive bool) ([]model.Placement, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Placement), args.Error(1)
}

func (m *MockPlacementService) Update(ctx context.Context, p *model.Placement) (*model.Placement, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Placement), args.Error(1)
}

func (m *MockPlacementService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
