package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jamiifund/admin/internal/models"
)

// StatsRepository aggregates the dashboard numbers in single queries instead
// of letting the UI fan out per-table counts.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) Snapshot(ctx context.Context) (models.DashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE type = 'revenue'),
			(SELECT COUNT(*) FROM transactions WHERE type = 'investment'),
			(SELECT COUNT(*) FROM campaigns WHERE status = 'active')
	`

	var stats models.DashboardStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalRevenue,
		&stats.InvestmentCount,
		&stats.ActiveCampaigns,
	); err != nil {
		return models.DashboardStats{}, err
	}
	stats.ComputedAt = time.Now().UTC()
	return stats, nil
}

// MonthlyDonations returns donation volume per month over the past year.
func (r *StatsRepository) MonthlyDonations(ctx context.Context) ([]models.MonthlyTotal, error) {
	const query = `
		SELECT date_trunc('month', created_at) AS month, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'donation' AND created_at >= NOW() - INTERVAL '12 months'
		GROUP BY month
		ORDER BY month
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.MonthlyTotal
	for rows.Next() {
		var t models.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Amount); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
