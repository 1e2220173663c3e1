package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/coinsguard/coinsguard-api/pkg/db"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BackendName identifies this backend in logs and metrics
const BackendName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	collection TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
`

// Client stores form documents as JSON rows in an embedded SQLite file
type Client struct {
	conn     *sql.DB
	database string
}

// NewClient opens the SQLite file behind url and prepares the schema
func NewClient(ctx context.Context, url, database string) (*Client, error) {
	path := db.SQLitePath(url)

	conn, err := db.NewSQLite(ctx, path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if database == "" {
		database = strings.TrimSuffix(filepath.Base(strings.TrimPrefix(path, "file:")), filepath.Ext(path))
	}

	logger.Info("SQLite store opened",
		zap.String("path", path),
		zap.String("database", database),
	)

	return &Client{conn: conn, database: database}, nil
}

// Name returns the backend identifier
func (c *Client) Name() string { return BackendName }

// Database returns the logical database name
func (c *Client) Database() string { return c.database }

// Insert stores doc under a new UUID
func (c *Client) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}

	createdAt := time.Now().UTC()
	if ts, ok := doc[models.CreatedAtField].(time.Time); ok {
		createdAt = ts
	}

	id := uuid.NewString()
	_, err = c.conn.ExecContext(ctx,
		`INSERT INTO documents (id, collection, body, created_at) VALUES (?, ?, ?, ?)`,
		id, collection, string(body), createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

// Find returns up to limit documents matching every filter key, oldest first
func (c *Client) Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]models.Document, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT id, body FROM documents WHERE collection = ?`)
	args := []any{collection}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		query.WriteString(` AND json_extract(body, ?) = ?`)
		args = append(args, jsonPath(k), filter[k])
	}

	query.WriteString(` ORDER BY seq LIMIT ?`)
	args = append(args, limit)

	rows, err := c.conn.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}

		doc := models.Document{}
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		doc[models.IDField] = id
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", collection, err)
	}
	return docs, nil
}

// ListCollections returns every collection that holds at least one document
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := c.conn.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database file
func (c *Client) Close(_ context.Context) error {
	return c.conn.Close()
}

// jsonPath quotes a top-level key for json_extract
func jsonPath(key string) string {
	return `$."` + strings.ReplaceAll(key, `"`, `\"`) + `"`
}
