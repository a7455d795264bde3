package mocks

import (
	"context"
	"io"

	"siteapi/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutOptions) (storage.StoredObject, error) {
	args := m.Called(ctx, key, r, opt)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, storage.PutOptions) storage.StoredObject); ok {
		return f(ctx, key, r, opt), args.Error(1)
	}
	return args.Get(0).(storage.StoredObject), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, handle string) error {
	args := m.Called(ctx, handle)
	return args.Error(0)
}
