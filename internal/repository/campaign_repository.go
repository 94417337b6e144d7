package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jamiifund/admin/internal/models"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
	id, title, description, target_amount, raised_amount, donor_count, is_featured, status, admin_note, verified_at, created_at, updated_at
`

// List returns campaigns newest first, optionally filtered by featured flag.
func (r *CampaignRepository) List(ctx context.Context, featured *bool) ([]models.Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
	`
	args := []any{}
	if featured != nil {
		query += ` WHERE is_featured = $1`
		args = append(args, *featured)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

// ListPending returns campaigns awaiting verification, newest first.
func (r *CampaignRepository) ListPending(ctx context.Context) ([]models.Campaign, error) {
	const query = `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE status = 'pending'
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

// UpdateStatus records a verification decision along with the reviewer's
// note and the decision time.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id, status string, note *string) error {
	const query = `
		UPDATE campaigns
		SET status = $2, admin_note = $3, verified_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, status, note)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

type CampaignUpdate struct {
	Title        string
	Description  string
	TargetAmount int64
	IsFeatured   bool
}

func (r *CampaignRepository) Update(ctx context.Context, id string, update CampaignUpdate) (models.Campaign, error) {
	const query = `
		UPDATE campaigns
		SET title = $2, description = $3, target_amount = $4, is_featured = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + campaignColumns + `
	`

	campaign, err := scanCampaign(r.pool.QueryRow(ctx, query,
		id, update.Title, update.Description, update.TargetAmount, update.IsFeatured))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Campaign{}, ErrCampaignNotFound
		}
		return models.Campaign{}, err
	}
	return campaign, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM campaigns WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

// FundsSummary lists per-campaign totals for the funds report.
func (r *CampaignRepository) FundsSummary(ctx context.Context) ([]models.CampaignFunds, error) {
	const query = `
		SELECT id, title, target_amount, raised_amount, donor_count, status
		FROM campaigns
		ORDER BY raised_amount DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var funds []models.CampaignFunds
	for rows.Next() {
		var f models.CampaignFunds
		if err := rows.Scan(&f.ID, &f.Title, &f.Target, &f.Raised, &f.DonorCount, &f.Status); err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

func scanCampaign(row pgx.Row) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.TargetAmount,
		&c.RaisedAmount,
		&c.DonorCount,
		&c.IsFeatured,
		&c.Status,
		&c.AdminNote,
		&c.VerifiedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
