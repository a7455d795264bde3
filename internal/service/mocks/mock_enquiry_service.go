package mocks

import (
	"context"

	"siteapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockEnquiryService struct {
	mock.Mock
}

func (m *MockEnquiryService) Create(ctx context.Context, e *model.Enquiry) (*model.Enquiry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) List(ctx context.Context) ([]model.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
