// Command createadmin provisions an admin account. Provisioning is the only
// path that creates credential records; the API never does.
package main

import (
	"context"
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/google/uuid"

	"jamiifund/admin/internal/config"
	"jamiifund/admin/internal/database"
	"jamiifund/admin/internal/log"
	"jamiifund/admin/internal/models"
	"jamiifund/admin/internal/repository"
	"jamiifund/admin/internal/security"
)

func main() {
	var (
		email    = flag.String("email", "", "admin email (required)")
		password = flag.String("password", "", "initial password (required)")
		fullName = flag.String("name", "", "display name (required)")
		role     = flag.String("role", "admin", "role: admin or super_admin")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := log.New(cfg.Environment)

	if *email == "" || *password == "" || *fullName == "" {
		logger.Fatal().Msg("email, password and name are required")
	}
	if *role != "admin" && *role != "super_admin" {
		logger.Fatal().Str("role", *role).Msg("role must be admin or super_admin")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer dbPool.Close()

	admins := repository.NewAdminRepository(dbPool)
	normalized := strings.TrimSpace(strings.ToLower(*email))

	if _, err := admins.FindActiveByEmail(ctx, normalized); err == nil {
		logger.Fatal().Str("email", normalized).Msg("admin already exists")
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		logger.Fatal().Err(err).Msg("admin lookup failed")
	}

	salt, err := security.GenerateSalt()
	if err != nil {
		logger.Fatal().Err(err).Msg("salt generation failed")
	}

	admin := models.Admin{
		ID:           uuid.NewString(),
		Email:        normalized,
		PasswordHash: security.HashPassword(*password, salt),
		Salt:         salt,
		FullName:     *fullName,
		Role:         *role,
		IsActive:     true,
	}

	if err := admins.Create(ctx, admin); err != nil {
		logger.Fatal().Err(err).Msg("admin insert failed")
	}

	logger.Info().
		Str("id", admin.ID).
		Str("email", admin.Email).
		Str("role", admin.Role).
		Msg("admin created")
}
