package mocks

import (
	"context"

	"siteapi/internal/model"
	"siteapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) List(ctx context.Context) ([]model.Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *MockGalleryService) Upload(ctx context.Context, files []service.UploadFile) ([]model.Image, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Image), args.Error(1)
}

func (m *MockGalleryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
