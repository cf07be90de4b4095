package review

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/lenslink/photo-marketplace/internal/dto"
)

const summaryTTL = 5 * time.Minute

// SummaryCache keeps photographer rating summaries in redis. A nil
// client disables caching, so the usecases never depend on redis being
// reachable.
type SummaryCache struct {
	client *redis.Client
}

func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

func summaryKey(photographerID uint) string {
	return fmt.Sprintf("reviews:summary:%d", photographerID)
}

func (c *SummaryCache) Get(ctx context.Context, photographerID uint) (*dto.ReviewSummaryDTO, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, summaryKey(photographerID)).Result()
	if err != nil {
		return nil, false
	}

	var summary dto.ReviewSummaryDTO
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil, false
	}

	return &summary, true
}

func (c *SummaryCache) Set(ctx context.Context, summary *dto.ReviewSummaryDTO) {
	if c == nil || c.client == nil || summary == nil {
		return
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return
	}

	c.client.Set(ctx, summaryKey(summary.PhotographerID), data, summaryTTL)
}

func (c *SummaryCache) Invalidate(ctx context.Context, photographerID uint) {
	if c == nil || c.client == nil {
		return
	}

	c.client.Del(ctx, summaryKey(photographerID))
}
