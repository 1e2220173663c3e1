package services_test

import (
	"context"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockDocumentStore is a mock implementation of services.DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Insert(ctx context.Context, kind models.FormKind, record models.FormRecord) (string, error) {
	args := m.Called(ctx, kind, record)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) QueryRecent(ctx context.Context, kind models.FormKind, filter map[string]any, limit int) ([]models.Document, error) {
	args := m.Called(ctx, kind, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}
