package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"jamiifund/admin/internal/config"
	"jamiifund/admin/internal/models"
	"jamiifund/admin/internal/repository"
	"jamiifund/admin/internal/security"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated covers an absent, malformed, tampered or expired
	// session token.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrAccountInactive means the token verifies but the referenced admin
	// is deactivated or gone. The one place a live token is retroactively
	// rejected.
	ErrAccountInactive = errors.New("admin account inactive")
	// ErrStoreUnavailable means the credential store could not be reached.
	// Never conflated with bad credentials.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// AdminStore is the slice of the credential store the auth service needs.
type AdminStore interface {
	FindActiveByEmail(ctx context.Context, email string) (models.Admin, error)
	GetActiveByID(ctx context.Context, id string) (models.Admin, error)
	TouchLastLogin(ctx context.Context, id string) error
}

type AuthService struct {
	admins AdminStore
	cfg    config.SecurityConfig
	log    zerolog.Logger
}

func NewAuthService(admins AdminStore, cfg config.SecurityConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		admins: admins,
		cfg:    cfg,
		log:    log,
	}
}

// LoginResult carries the sanitized principal and the signed session token.
type LoginResult struct {
	Admin models.Principal
	Token string
}

// Login checks credentials, records the login and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	admin, err := s.admins.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("admin lookup failed")
		return LoginResult{}, ErrStoreUnavailable
	}

	if !security.VerifyPassword(password, admin.PasswordHash, admin.Salt) {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID); err != nil {
		s.log.Warn().Err(err).Str("admin_id", admin.ID).Msg("last_login update failed")
	}

	token, err := security.SignToken(security.Claims{
		Sub:   admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
		Name:  admin.FullName,
	}, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Admin: admin.Principal(), Token: token}, nil
}

// Session verifies a token and re-resolves its subject against the store,
// rejecting deactivated accounts even when the token itself is still live.
func (s *AuthService) Session(ctx context.Context, token string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, ErrUnauthenticated
	}

	claims, err := security.VerifyToken(token, s.cfg.JWTSecret)
	if err != nil {
		return models.Principal{}, ErrUnauthenticated
	}

	admin, err := s.admins.GetActiveByID(ctx, claims.Sub)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return models.Principal{}, ErrAccountInactive
		}
		s.log.Error().Err(err).Msg("admin lookup failed")
		return models.Principal{}, ErrStoreUnavailable
	}

	return admin.Principal(), nil
}
