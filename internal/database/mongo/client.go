package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/coinsguard/coinsguard-api/pkg/db"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// BackendName identifies this backend in logs and metrics
const BackendName = "mongodb"

// Config holds MongoDB connection configuration
type Config struct {
	URI            string
	Database       string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// Client stores form documents in MongoDB collections
type Client struct {
	client *mongodriver.Client
	db     *mongodriver.Database
}

// NewClient connects to MongoDB and selects the configured database
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name is required for MongoDB")
	}

	client, err := db.NewMongoClient(ctx, db.MongoConfig{
		URI:            cfg.URI,
		MaxPoolSize:    cfg.MaxPoolSize,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("MongoDB client initialized",
		zap.String("uri", db.MaskURL(cfg.URI)),
		zap.String("database", cfg.Database),
	)

	return &Client{client: client, db: client.Database(cfg.Database)}, nil
}

// Name returns the backend identifier
func (c *Client) Name() string { return BackendName }

// Database returns the selected database name
func (c *Client) Database() string { return c.db.Name() }

// Insert stores doc and returns the hex form of the generated ObjectID
func (c *Client) Insert(ctx context.Context, collection string, doc map[string]any) (string, error) {
	res, err := c.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

// Find returns up to limit documents matching filter in natural order
func (c *Client) Find(ctx context.Context, collection string, filter map[string]any, limit int64) ([]models.Document, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := c.db.Collection(collection).Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	docs := make([]models.Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, models.Document(normalizeMap(r)))
	}
	return docs, nil
}

// ListCollections returns the collection names of the database
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	names, err := c.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return err
	}
	logger.Info("MongoDB client disconnected")
	return nil
}

// normalizeMap converts driver-specific values into plain Go values that
// encode cleanly as JSON
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(val.T), 0).UTC()
	case primitive.Decimal128:
		return val.String()
	case primitive.Binary:
		return val.Data
	case bson.M:
		return normalizeMap(val)
	case map[string]any:
		return normalizeMap(val)
	case bson.D:
		return normalizeMap(val.Map())
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}
