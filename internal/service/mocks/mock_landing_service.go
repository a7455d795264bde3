package mocks

import (
	"context"

	"siteapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLandingService struct {
	mock.Mock
}

func (m *MockLandingService) Get(ctx context.Context) (*model.Landing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Landing), args.Error(1)
}

func (m *MockLandingService) Save(ctx context.Context, upd *model.LandingUpdate) (*model.Landing, error) {
	args := m.Called(ctx, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Landing), args.Error(1)
}
