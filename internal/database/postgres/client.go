package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/coinsguard/coinsguard-api/pkg/db"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// BackendName identifies this backend in logs and metrics
const BackendName = "postgres"

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	seq        BIGSERIAL PRIMARY KEY,
	id         UUID NOT NULL UNIQUE,
	collection TEXT NOT NULL,
	body       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS documents_collection_seq_idx ON documents (collection, seq);
`

// Client stores form documents as JSONB rows of a single documents table,
// partitioned by a collection column
type Client struct {
	pool     *pgxpool.Pool
	database string
}

// Config holds PostgreSQL connection configuration
type Config struct {
	URL        string
	Database   string
	CACertPath string
	MaxConns   int32
	MinConns   int32
}

// NewClient creates a new PostgreSQL client with connection pooling and
// makes sure the documents table exists
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:        cfg.URL,
		CACertPath: cfg.CACertPath,
		MaxConns:   cfg.MaxConns,
		MinConns:   cfg.MinConns,
	})
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, createDocumentsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to prepare documents table: %w", err)
	}

	database := cfg.Database
	if database == "" {
		database = pool.Config().ConnConfig.Database
	}

	logger.Info("PostgreSQL client initialized",
		zap.String("url", db.MaskURL(cfg.URL)),
		zap.String("database", database),
		zap.Int32("max_conns", pool.Config().MaxConns),
	)

	return &Client{pool: pool, database: database}, nil
}

// Name returns the backend identifier
func (c *Client) Name() string { return BackendName }

// Database returns the database name
func (c *Client) Database() string { return c.database }

// Insert stores doc under a new UUID
func (c *Client) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	id := uuid.New()

	createdAt := time.Now().UTC()
	if ts, ok := doc[models.CreatedAtField].(time.Time); ok {
		createdAt = ts
	}

	_, err := c.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, body, created_at) VALUES ($1, $2, $3, $4)`,
		id, collection, doc, createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id.String(), nil
}

// Find returns up to limit documents whose body contains filter, oldest first
func (c *Client) Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]models.Document, error) {
	if filter == nil {
		filter = map[string]any{}
	}

	rows, err := c.pool.Query(ctx,
		`SELECT id::text, body FROM documents
		 WHERE collection = $1 AND body @> $2
		 ORDER BY seq
		 LIMIT $3`,
		collection, filter, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Document, error) {
		var (
			id   string
			body map[string]any
		)
		if err := row.Scan(&id, &body); err != nil {
			return nil, err
		}
		if body == nil {
			body = map[string]any{}
		}
		body[models.IDField] = id
		return models.Document(body), nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", collection, err)
	}
	return docs, nil
}

// ListCollections returns every collection that holds at least one document
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := c.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, err
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Close closes the connection pool
func (c *Client) Close(_ context.Context) error {
	if c.pool != nil {
		c.pool.Close()
		logger.Info("PostgreSQL connection pool closed")
	}
	return nil
}
