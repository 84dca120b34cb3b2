package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"assessment-workers/internal/common/logger"
	"assessment-workers/internal/common/metrics"
	"assessment-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// CachedResults serves LatestResult from Redis and falls back to the
// underlying reader on a miss. Redis failures never fail a lookup.
type CachedResults struct {
	next   ResultReader
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedResults(next ResultReader, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedResults {
	return &CachedResults{next: next, redis: rdb, ttl: ttl, logger: log}
}

func LatestResultKey(personID, assessmentType string) string {
	return fmt.Sprintf("assessment:latest:%s:%s", assessmentType, personID)
}

func (c *CachedResults) LatestResult(ctx context.Context, personID, assessmentType string) (*models.AssessmentResult, error) {
	key := LatestResultKey(personID, assessmentType)

	cached, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var r models.AssessmentResult
		if jsonErr := json.Unmarshal(cached, &r); jsonErr == nil {
			metrics.ResultCacheRequests.WithLabelValues("hit").Inc()
			return &r, nil
		}
		c.logger.Warn("discarding undecodable cache entry", map[string]interface{}{"key": key})
	case stderrors.Is(err, redis.Nil):
	default:
		c.logger.Warn("result cache read failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
	metrics.ResultCacheRequests.WithLabelValues("miss").Inc()

	r, err := c.next.LatestResult(ctx, personID, assessmentType)
	if err != nil {
		return nil, err
	}
	c.Put(ctx, r)
	return r, nil
}

var errSupersededResult = stderrors.New("cached result is newer")

// Put stores r as the latest result for its person and type unless the
// cached entry completed later. The check and the write run in one WATCH
// transaction so concurrent writers cannot roll the entry back.
func (c *CachedResults) Put(ctx context.Context, r *models.AssessmentResult) {
	data, err := json.Marshal(r)
	if err != nil {
		return
	}
	key := LatestResultKey(r.PersonID, r.AssessmentType)

	err = c.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil && !stderrors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			var cached models.AssessmentResult
			if json.Unmarshal(current, &cached) == nil && r.CompletedAt.Before(cached.CompletedAt) {
				return errSupersededResult
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
	case stderrors.Is(err, errSupersededResult):
		c.logger.Debug("kept newer cached result", map[string]interface{}{"key": key, "resultId": r.ID})
	case stderrors.Is(err, redis.TxFailedErr):
		// Another writer got there first; let the next read settle it.
		c.Invalidate(ctx, r.PersonID, r.AssessmentType)
	default:
		c.logger.Warn("result cache write failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

func (c *CachedResults) Invalidate(ctx context.Context, personID, assessmentType string) {
	key := LatestResultKey(personID, assessmentType)
	if err := c.redis.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("result cache invalidate failed", map[string]interface{}{"key": key, "error": err.Error()})
	}
}
