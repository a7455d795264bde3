package mocks

import (
	"context"

	"siteapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLandingRepository struct {
	mock.Mock
}

func (m *MockLandingRepository) Get(ctx context.Context) (*model.Landing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Landing), args.Error(1)
}

func (m *MockLandingRepository) Upsert(ctx context.Context, l *model.Landing) (*model.Landing, error) {
	args := m.Called(ctx, l)
	if f, ok := args.Get(0).(func(context.Context, *model.Landing) *model.Landing); ok {
		return f(ctx, l), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Landing), args.Error(1)
}
