package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	segmentCacheKeyAll    = "segments:all"
	segmentCacheKeyPrefix = "segments:id:"
	DefaultSegmentTTL     = 10 * time.Minute
)

// RedisKV is the subset of redis.Cmdable used by the segment cache.
type RedisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedSegmentRepository serves the catalog from Redis and falls back to the
// wrapped repository. Redis failures are logged and never surface to callers.
type CachedSegmentRepository struct {
	next interfaces.ISegmentRepository
	kv   RedisKV
	ttl  time.Duration
	log  logrus.FieldLogger
}

var _ interfaces.ISegmentRepository = (*CachedSegmentRepository)(nil)

func NewCachedSegmentRepository(next interfaces.ISegmentRepository, kv RedisKV, ttl time.Duration, log logrus.FieldLogger) *CachedSegmentRepository {
	if ttl <= 0 {
		ttl = DefaultSegmentTTL
	}
	return &CachedSegmentRepository{next: next, kv: kv, ttl: ttl, log: log}
}

func (r *CachedSegmentRepository) List(ctx context.Context) ([]entities.Segment, error) {
	var cached []entities.Segment
	if r.load(ctx, segmentCacheKeyAll, &cached) {
		return cached, nil
	}

	items, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, segmentCacheKeyAll, items)
	return items, nil
}

// GetByID caches only known segments so a later seed is picked up.
func (r *CachedSegmentRepository) GetByID(ctx context.Context, id string) (entities.Segment, error) {
	key := segmentCacheKeyPrefix + id

	var cached entities.Segment
	if r.load(ctx, key, &cached) {
		return cached, nil
	}

	s, err := r.next.GetByID(ctx, id)
	if err != nil {
		return entities.Segment{}, err
	}
	if s.ID != "" {
		r.store(ctx, key, s)
	}
	return s, nil
}

func (r *CachedSegmentRepository) load(ctx context.Context, key string, dest any) bool {
	if r.kv == nil {
		return false
	}
	raw, err := r.kv.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.WithError(err).WithField("key", key).Warn("[segment][cache] redis get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("[segment][cache] discarding unreadable entry")
		return false
	}
	return true
}

func (r *CachedSegmentRepository) store(ctx context.Context, key string, v any) {
	if r.kv == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.kv.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("[segment][cache] redis set failed")
	}
}
