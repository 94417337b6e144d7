package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jamiifund/admin/internal/models"
)

const statsKey = "admin:dashboard:stats"

// ErrStatsMiss means no snapshot is cached; the caller recomputes.
var ErrStatsMiss = errors.New("dashboard stats not cached")

// StatsCache keeps the dashboard stats snapshot in redis so the landing page
// does not fan out count queries on every load.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func (s *StatsCache) Get(ctx context.Context) (models.DashboardStats, error) {
	raw, err := s.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.DashboardStats{}, ErrStatsMiss
		}
		return models.DashboardStats{}, fmt.Errorf("stats get: %w", err)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return models.DashboardStats{}, fmt.Errorf("stats decode: %w", err)
	}
	return stats, nil
}

func (s *StatsCache) Set(ctx context.Context, stats models.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats encode: %w", err)
	}
	if err := s.client.Set(ctx, statsKey, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("stats set: %w", err)
	}
	return nil
}
