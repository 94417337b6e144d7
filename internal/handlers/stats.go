package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jamiifund/admin/internal/cache"
)

func (h HandlerSet) DashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.statsCache.Get(ctx)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"stats": stats, "cached": true})
		return
	}
	if !errors.Is(err, cache.ErrStatsMiss) {
		h.log.Warn().Err(err).Msg("stats cache read failed")
	}

	stats, err = h.stats.Snapshot(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("stats snapshot failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	if err := h.statsCache.Set(ctx, stats); err != nil {
		h.log.Warn().Err(err).Msg("stats cache write failed")
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats, "cached": false})
}

func (h HandlerSet) RecentActivity(c *gin.Context) {
	activities, err := h.activities.ListRecent(c.Request.Context(), 10)
	if err != nil {
		h.log.Error().Err(err).Msg("recent activity failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (h HandlerSet) FundsReport(c *gin.Context) {
	ctx := c.Request.Context()

	campaigns, err := h.campaigns.FundsSummary(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("funds summary failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load funds"})
		return
	}

	monthly, err := h.stats.MonthlyDonations(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("monthly donations failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load funds"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns": campaigns,
		"monthly":   monthly,
	})
}
