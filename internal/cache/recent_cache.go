package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/coinsguard/coinsguard-api/internal/models"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"github.com/coinsguard/coinsguard-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	recentKeyPrefix = "recent:"
	recentCacheName = "recent_documents"
	// noJanitor keeps go-cache from starting its cleanup goroutine; expired
	// entries are dropped on read and the key space is bounded by kind and limit
	noJanitor = 0
)

// RecentCache keeps short-lived copies of unfiltered "most recent documents"
// listings. Entries for a form kind are dropped whenever a new document of
// that kind is stored through the same process; writes from other processes
// show up only after the TTL.
type RecentCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewRecentCache creates a new recent documents cache. A non-positive ttl
// returns nil, which behaves as a cache that never hits.
func NewRecentCache(ttlSeconds int) *RecentCache {
	if ttlSeconds <= 0 {
		return nil
	}
	ttl := time.Duration(ttlSeconds) * time.Second

	return &RecentCache{
		cache: gocache.New(ttl, noJanitor),
		ttl:   ttl,
	}
}

// Get returns the cached listing for kind and limit
func (rc *RecentCache) Get(kind models.FormKind, limit int) ([]models.Document, bool) {
	if rc == nil {
		return nil, false
	}

	data, found := rc.cache.Get(recentKey(kind, limit))
	if !found {
		metrics.CacheMisses.WithLabelValues(recentCacheName).Inc()
		return nil, false
	}

	docs, ok := data.([]models.Document)
	if !ok {
		logger.Error("Invalid recent cache data type", zap.String("kind", string(kind)))
		rc.cache.Delete(recentKey(kind, limit))
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(recentCacheName).Inc()
	return docs, true
}

// Set stores a listing for kind and limit
func (rc *RecentCache) Set(kind models.FormKind, limit int, docs []models.Document) {
	if rc == nil {
		return
	}
	rc.cache.Set(recentKey(kind, limit), docs, rc.ttl)
	metrics.CacheSize.WithLabelValues(recentCacheName).Set(float64(rc.cache.ItemCount()))
}

// Invalidate drops every cached listing for kind
func (rc *RecentCache) Invalidate(kind models.FormKind) {
	if rc == nil {
		return
	}

	prefix := recentKeyPrefix + string(kind) + ":"
	dropped := 0
	for key := range rc.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			rc.cache.Delete(key)
			dropped++
		}
	}

	metrics.CacheSize.WithLabelValues(recentCacheName).Set(float64(rc.cache.ItemCount()))
	if dropped > 0 {
		logger.Debug("Recent cache invalidated", zap.String("kind", string(kind)), zap.Int("entries", dropped))
	}
}

func recentKey(kind models.FormKind, limit int) string {
	return fmt.Sprintf("%s%s:%d", recentKeyPrefix, kind, limit)
}
