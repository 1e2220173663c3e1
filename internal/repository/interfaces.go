package repository

import (
	"context"

	"github.com/coinsguard/coinsguard-api/internal/models"
)

// DocumentBackend is a connected document database.
// This allows switching between MongoDB, PostgreSQL and SQLite implementations
type DocumentBackend interface {
	// Name returns the backend identifier used in logs and metrics
	Name() string

	// Database returns the logical database name
	Database() string

	// Insert stores doc in collection and returns the generated identifier
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)

	// Find returns up to limit documents of collection matching filter.
	// Identifiers are always plain strings under models.IDField.
	Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]models.Document, error)

	// ListCollections returns the names of the existing collections.
	// Driver errors are returned unwrapped; diagnostics show only their
	// leading characters.
	ListCollections(ctx context.Context) ([]string, error)

	// Close releases the connection
	Close(ctx context.Context) error
}
