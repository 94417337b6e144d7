package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"jamiifund/admin/internal/cache"
	"jamiifund/admin/internal/repository"
)

const activityRetention = 90 * 24 * time.Hour

// Scheduler keeps the dashboard stats snapshot warm and prunes the activity
// feed so it does not grow without bound.
type Scheduler struct {
	cron       *cron.Cron
	stats      *repository.StatsRepository
	statsCache *cache.StatsCache
	activities *repository.ActivityRepository
	log        zerolog.Logger
}

func NewScheduler(
	stats *repository.StatsRepository,
	statsCache *cache.StatsCache,
	activities *repository.ActivityRepository,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		stats:      stats,
		statsCache: statsCache,
		activities: activities,
		log:        log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 */10 * * * *", s.refreshStats); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.pruneActivities); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for in-flight jobs to finish, up to a
// short grace period.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) refreshStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := s.stats.Snapshot(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("stats snapshot failed")
		return
	}
	if err := s.statsCache.Set(ctx, stats); err != nil {
		s.log.Error().Err(err).Msg("stats cache refresh failed")
		return
	}
	s.log.Debug().Time("computed_at", stats.ComputedAt).Msg("dashboard stats refreshed")
}

func (s *Scheduler) pruneActivities() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.activities.DeleteOlderThan(ctx, time.Now().Add(-activityRetention))
	if err != nil {
		s.log.Error().Err(err).Msg("activity prune failed")
		return
	}
	s.log.Info().Int64("removed", removed).Msg("activity feed pruned")
}
