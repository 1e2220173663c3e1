package repository_test

import (
	"context"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockBackend is a mock implementation of DocumentBackend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Name() string     { return "mock" }
func (m *MockBackend) Database() string { return "coinsguard_test" }

func (m *MockBackend) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]models.Document, error) {
	args := m.Called(ctx, collection, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockBackend) ListCollections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBackend) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
