// Package rediscache stores the last successfully fetched checklist
// collection. It is a read fallback for when the document store is
// unreachable, not a source of truth.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"vehicle-checklist-service/internal/core/domain"
	ports "vehicle-checklist-service/internal/core/ports/output"
)

const (
	cacheKey   = "checklists:last-good"
	defaultTTL = 24 * time.Hour
)

type reportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReportCache(rdb *redis.Client) ports.ReportCache {
	return &reportCache{rdb: rdb, ttl: defaultTTL}
}

func (c *reportCache) Put(ctx context.Context, records []*domain.Checklist) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal cached checklists: %w", err)
	}
	if err := c.rdb.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("write report cache: %w", err)
	}
	return nil
}

// Get returns (nil, nil) on a miss. A corrupt payload is logged and
// treated as a miss so the read path never crashes on stale data.
func (c *reportCache) Get(ctx context.Context) ([]*domain.Checklist, error) {
	data, err := c.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read report cache: %w", err)
	}

	var records []*domain.Checklist
	if err := json.Unmarshal(data, &records); err != nil {
		log.WithError(err).Warn("discarding corrupt report cache entry")
		return nil, nil
	}
	return records, nil
}
