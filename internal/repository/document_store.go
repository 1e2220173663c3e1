package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/forms"
	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/coinsguard/coinsguard-api/pkg/circuitbreaker"
	apperrors "github.com/coinsguard/coinsguard-api/pkg/errors"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"github.com/coinsguard/coinsguard-api/pkg/metrics"
	"github.com/coinsguard/coinsguard-api/pkg/tracing"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// noBackend is reported when the store started without a connection
const noBackend = "none"

// StoreOptions configures a DocumentStore
type StoreOptions struct {
	// OperationTimeout bounds each backend call; zero disables the bound
	OperationTimeout time.Duration
	// Breaker fails calls fast while the backend keeps failing; nil disables it
	Breaker *gobreaker.CircuitBreaker
	// Now overrides the clock used for created_at
	Now func() time.Time
}

// DocumentStore routes form records to their collections on a document
// backend. A store built with a nil backend is unavailable: every operation
// fails with ErrStorageUnavailable.
type DocumentStore struct {
	backend DocumentBackend
	opts    StoreOptions
}

// NewDocumentStore creates a new document store over backend (which may be nil)
func NewDocumentStore(backend DocumentBackend, opts StoreOptions) *DocumentStore {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &DocumentStore{backend: backend, opts: opts}
}

// Available reports whether a backend connection was established
func (s *DocumentStore) Available() bool {
	return s.backend != nil
}

// BackendName returns the name of the connected backend, or "none"
func (s *DocumentStore) BackendName() string {
	if s.backend == nil {
		return noBackend
	}
	return s.backend.Name()
}

// Database returns the database name of the connected backend
func (s *DocumentStore) Database() string {
	if s.backend == nil {
		return ""
	}
	return s.backend.Database()
}

// BreakerState returns the circuit breaker state
func (s *DocumentStore) BreakerState() string {
	return circuitbreaker.GetState(s.opts.Breaker)
}

// Insert stores record in the collection of kind and returns the generated
// identifier. Records violating their field constraints never reach the
// backend.
func (s *DocumentStore) Insert(ctx context.Context, kind models.FormKind, record models.FormRecord) (string, error) {
	const operation = "insert"

	collection, err := s.resolve(kind, record)
	if err != nil {
		return "", err
	}
	if err := forms.Validate(record); err != nil {
		return "", err
	}
	if s.backend == nil {
		return "", apperrors.StorageUnavailableError(operation, nil)
	}

	doc := record.Fields()
	doc[models.CreatedAtField] = s.opts.Now().UTC()

	id, err := call(ctx, s, operation, collection, true, func(ctx context.Context) (string, error) {
		return s.backend.Insert(ctx, collection, doc)
	})
	if err != nil {
		if circuitbreaker.IsRejected(err) {
			return "", apperrors.StorageUnavailableError(operation, err)
		}
		return "", apperrors.StorageWriteError(operation, err)
	}
	return id, nil
}

// QueryRecent returns up to limit documents of kind matching filter, in the
// backend's natural order. A non-positive limit returns an empty slice
// without contacting the backend.
func (s *DocumentStore) QueryRecent(ctx context.Context, kind models.FormKind, filter map[string]any, limit int) ([]models.Document, error) {
	const operation = "query_recent"

	collection, err := kind.Collection()
	if err != nil {
		return nil, apperrors.InvalidInputError("kind", err.Error())
	}
	if limit <= 0 {
		return []models.Document{}, nil
	}
	if s.backend == nil {
		return nil, apperrors.StorageUnavailableError(operation, nil)
	}

	docs, err := call(ctx, s, operation, collection, true, func(ctx context.Context) ([]models.Document, error) {
		return s.backend.Find(ctx, collection, filter, int64(limit))
	})
	if err != nil {
		return nil, apperrors.StorageUnavailableError(operation, err)
	}

	if docs == nil {
		docs = []models.Document{}
	}
	if len(docs) > limit {
		docs = docs[:limit]
	}
	for _, d := range docs {
		if raw, ok := d[models.IDField]; ok && d.ID() == "" {
			d[models.IDField] = fmt.Sprint(raw)
		}
	}
	return docs, nil
}

// ListCollections returns the collection names of the backend. It bypasses
// the circuit breaker so diagnostics always see the live state.
func (s *DocumentStore) ListCollections(ctx context.Context) ([]string, error) {
	const operation = "list_collections"

	if s.backend == nil {
		return nil, apperrors.StorageUnavailableError(operation, nil)
	}

	return call(ctx, s, operation, "", false, func(ctx context.Context) ([]string, error) {
		return s.backend.ListCollections(ctx)
	})
}

// Close releases the backend connection
func (s *DocumentStore) Close(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close(ctx)
}

func (s *DocumentStore) resolve(kind models.FormKind, record models.FormRecord) (string, error) {
	if record == nil {
		return "", apperrors.InvalidInputError("record", "is nil")
	}
	if record.Kind() != kind {
		return "", apperrors.InvalidInputError("record", fmt.Sprintf("is a %s, not a %s", record.Kind(), kind))
	}
	collection, err := kind.Collection()
	if err != nil {
		return "", apperrors.InvalidInputError("kind", err.Error())
	}
	return collection, nil
}

// call runs fn against the backend with the operation timeout, circuit
// breaker, tracing span, metrics and log line
func call[T any](ctx context.Context, s *DocumentStore, operation, collection string, guarded bool, fn func(context.Context) (T, error)) (T, error) {
	backend := s.backend.Name()

	ctx, span := tracing.StartSpan(ctx, "store."+operation,
		attribute.String("db.system", backend),
		attribute.String("db.name", s.backend.Database()),
		attribute.String("db.collection", collection),
	)

	if s.opts.OperationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.OperationTimeout)
		defer cancel()
	}

	breaker := s.opts.Breaker
	if !guarded {
		breaker = nil
	}

	start := time.Now()
	result, err := circuitbreaker.Execute(breaker, func() (T, error) {
		return fn(ctx)
	})
	duration := metrics.MeasureDuration(start)

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StoreOperationDuration.WithLabelValues(backend, operation, status).Observe(duration)
	metrics.StoreOperationTotal.WithLabelValues(backend, operation, status).Inc()
	logger.LogStoreCall(backend, operation, status, duration,
		zap.String("collection", collection),
		zap.Error(err),
	)
	tracing.EndSpan(span, err)

	return result, err
}
