package breaks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// DefaultSummaryTTL keeps the cached summary short-lived: new events arrive
// over MQTT at human pace, so 30 seconds of staleness is acceptable for the
// dashboard, and the store stays the source of truth.
const DefaultSummaryTTL = 30 * time.Second

// SummaryCache is a redis-backed cache for the per-user daily summary. A
// cache failure is never an error for the caller - reads fall through to the
// repo, writes are dropped.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func summaryKey(userID string) string {
	return fmt.Sprintf("breaks::resumo::%s", userID)
}

func (c *SummaryCache) Get(ctx context.Context, userID string) (*Summary, bool) {
	cmd := c.rdb.Get(ctx, summaryKey(userID))
	if err := cmd.Err(); err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Errorf("get cached summary for [%s]: %s", userID, err)
		}
		return nil, false
	}

	summary := &Summary{}
	if err := json.Unmarshal([]byte(cmd.Val()), summary); err != nil {
		log.Errorf("unmarshal cached summary for [%s]: %s", userID, err)
		return nil, false
	}

	return summary, true
}

func (c *SummaryCache) Set(ctx context.Context, userID string, summary *Summary) {
	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal summary for [%s]: %s", userID, err)
		return
	}

	if err := c.rdb.Set(ctx, summaryKey(userID), summaryBytes, c.ttl).Err(); err != nil {
		log.Errorf("set cached summary for [%s]: %s", userID, err)
	}
}
