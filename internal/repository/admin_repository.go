package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jamiifund/admin/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

const adminColumns = `
	id, email, password_hash, salt, full_name, role, is_active, avatar_url, last_login, created_at, updated_at
`

// FindActiveByEmail looks up an active admin by lowercased email. Inactive
// accounts are indistinguishable from absent ones by design.
func (r *AdminRepository) FindActiveByEmail(ctx context.Context, email string) (models.Admin, error) {
	const query = `
		SELECT ` + adminColumns + `
		FROM admins WHERE email = $1 AND is_active = TRUE
	`

	return r.scanAdmin(r.pool.QueryRow(ctx, query, email))
}

// GetActiveByID resolves a token subject back to its admin record.
func (r *AdminRepository) GetActiveByID(ctx context.Context, id string) (models.Admin, error) {
	const query = `
		SELECT ` + adminColumns + `
		FROM admins WHERE id = $1 AND is_active = TRUE
	`

	return r.scanAdmin(r.pool.QueryRow(ctx, query, id))
}

func (r *AdminRepository) Create(ctx context.Context, admin models.Admin) error {
	const query = `
		INSERT INTO admins (
			id, email, password_hash, salt, full_name, role, is_active, avatar_url, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Salt,
		admin.FullName,
		admin.Role,
		admin.IsActive,
		admin.AvatarURL,
	)
	return err
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id string) error {
	const query = `
		UPDATE admins SET last_login = NOW() WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `
		UPDATE admins SET is_active = $2, updated_at = NOW() WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) scanAdmin(row pgx.Row) (models.Admin, error) {
	var admin models.Admin
	if err := row.Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Salt,
		&admin.FullName,
		&admin.Role,
		&admin.IsActive,
		&admin.AvatarURL,
		&admin.LastLogin,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		return models.Admin{}, err
	}
	return admin, nil
}
