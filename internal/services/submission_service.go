package services

import (
	"context"

	"github.com/coinsguard/coinsguard-api/internal/cache"
	"github.com/coinsguard/coinsguard-api/internal/forms"
	"github.com/coinsguard/coinsguard-api/internal/models"
	apperrors "github.com/coinsguard/coinsguard-api/pkg/errors"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"github.com/coinsguard/coinsguard-api/pkg/metrics"
	"go.uber.org/zap"
)

// StatusOK is the status reported for every accepted submission
const StatusOK = "ok"

var successMessages = map[models.FormKind]string{
	models.FormKindRecoveryRequest: "Anfrage erhalten. Unser Team meldet sich.",
	models.FormKindContactMessage:  "Nachricht gesendet. Wir antworten zeitnah.",
}

// SubmissionService validates submitted forms and stores them
type SubmissionService struct {
	store  DocumentStore
	recent *cache.RecentCache
}

// NewSubmissionService creates a new submission service instance.
// recent may be nil to disable caching of recent listings.
func NewSubmissionService(store DocumentStore, recent *cache.RecentCache) *SubmissionService {
	return &SubmissionService{
		store:  store,
		recent: recent,
	}
}

// Submit validates payload as a form of kind and stores it. Invalid payloads
// never reach the store.
func (s *SubmissionService) Submit(ctx context.Context, kind models.FormKind, payload map[string]any) (*models.SubmissionResponse, error) {
	record, err := forms.Decode(kind, payload)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrValidationFailed) {
			metrics.FormSubmissions.WithLabelValues(string(kind), "invalid").Inc()
			logger.Debug("Form validation failed", zap.String("form", string(kind)), zap.Error(err))
		}
		return nil, err
	}

	id, err := s.store.Insert(ctx, kind, record)
	if err != nil {
		status := "error"
		if apperrors.Is(err, apperrors.ErrStorageUnavailable) {
			status = "unavailable"
		}
		metrics.FormSubmissions.WithLabelValues(string(kind), status).Inc()
		logger.Error("Failed to store form", zap.String("form", string(kind)), zap.Error(err))
		return nil, err
	}

	s.recent.Invalidate(kind)

	metrics.FormSubmissions.WithLabelValues(string(kind), "success").Inc()
	logger.Info("Form stored", zap.String("form", string(kind)), zap.String("id", id))

	return &models.SubmissionResponse{
		Status:  StatusOK,
		ID:      id,
		Message: successMessages[kind],
	}, nil
}

// ListRecent returns up to limit stored forms of kind matching filter.
// Unfiltered listings are served from the recent cache when possible.
func (s *SubmissionService) ListRecent(ctx context.Context, kind models.FormKind, filter map[string]any, limit int) ([]models.Document, error) {
	cacheable := len(filter) == 0
	if cacheable {
		if docs, ok := s.recent.Get(kind, limit); ok {
			return docs, nil
		}
	}

	docs, err := s.store.QueryRecent(ctx, kind, filter, limit)
	if err != nil {
		logger.Error("Failed to query recent forms", zap.String("form", string(kind)), zap.Error(err))
		return nil, err
	}

	if cacheable {
		s.recent.Set(kind, limit, docs)
	}
	return docs, nil
}
