package services

import (
	"context"

	"github.com/coinsguard/coinsguard-api/internal/models"
)

// DocumentStore defines the storage operations the services depend on
type DocumentStore interface {
	Insert(ctx context.Context, kind models.FormKind, record models.FormRecord) (string, error)
	QueryRecent(ctx context.Context, kind models.FormKind, filter map[string]any, limit int) ([]models.Document, error)
}

// SubmissionServiceInterface defines the interface for form submission operations
type SubmissionServiceInterface interface {
	Submit(ctx context.Context, kind models.FormKind, payload map[string]any) (*models.SubmissionResponse, error)
	ListRecent(ctx context.Context, kind models.FormKind, filter map[string]any, limit int) ([]models.Document, error)
}
