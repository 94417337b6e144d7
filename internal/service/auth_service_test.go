package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jamiifund/admin/internal/config"
	"jamiifund/admin/internal/models"
	"jamiifund/admin/internal/repository"
	"jamiifund/admin/internal/security"
)

type fakeAdminStore struct {
	admins       map[string]models.Admin // by id
	failWith     error
	loginTouches []string
}

func newFakeAdminStore(admins ...models.Admin) *fakeAdminStore {
	store := &fakeAdminStore{admins: make(map[string]models.Admin)}
	for _, admin := range admins {
		store.admins[admin.ID] = admin
	}
	return store
}

func (f *fakeAdminStore) FindActiveByEmail(_ context.Context, email string) (models.Admin, error) {
	if f.failWith != nil {
		return models.Admin{}, f.failWith
	}
	for _, admin := range f.admins {
		if admin.Email == email && admin.IsActive {
			return admin, nil
		}
	}
	return models.Admin{}, repository.ErrAdminNotFound
}

func (f *fakeAdminStore) GetActiveByID(_ context.Context, id string) (models.Admin, error) {
	if f.failWith != nil {
		return models.Admin{}, f.failWith
	}
	admin, ok := f.admins[id]
	if !ok || !admin.IsActive {
		return models.Admin{}, repository.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminStore) TouchLastLogin(_ context.Context, id string) error {
	f.loginTouches = append(f.loginTouches, id)
	return nil
}

const testSecret = "auth-service-test-secret"

func testAdmin(t *testing.T, password string) models.Admin {
	t.Helper()

	salt, err := security.GenerateSalt()
	require.NoError(t, err)

	return models.Admin{
		ID:           "adm_1",
		Email:        "admin@example.com",
		PasswordHash: security.HashPassword(password, salt),
		Salt:         salt,
		FullName:     "Test Admin",
		Role:         "super_admin",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func newTestService(store AdminStore) *AuthService {
	cfg := config.SecurityConfig{
		JWTSecret: testSecret,
		TokenTTL:  24 * time.Hour,
	}
	return NewAuthService(store, cfg, zerolog.Nop())
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testAdmin(t, "correct-pw"))
	svc := newTestService(store)

	result, err := svc.Login(context.Background(), "Admin@Example.com", "correct-pw")
	require.NoError(t, err)

	assert.Equal(t, "adm_1", result.Admin.ID)
	assert.Equal(t, "admin@example.com", result.Admin.Email)
	assert.Equal(t, []string{"adm_1"}, store.loginTouches, "last_login must be touched")

	claims, err := security.VerifyToken(result.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "adm_1", claims.Sub)
	assert.Equal(t, "super_admin", claims.Role)
	assert.Equal(t, claims.Iat+86400, claims.Exp)
}

func TestLogin_PrincipalIsSanitized(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testAdmin(t, "correct-pw"))
	svc := newTestService(store)

	result, err := svc.Login(context.Background(), "admin@example.com", "correct-pw")
	require.NoError(t, err)

	raw, err := json.Marshal(result.Admin)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "password_hash")
	assert.NotContains(t, fields, "salt")
	assert.NotContains(t, fields, "PasswordHash")
	assert.NotContains(t, fields, "Salt")
}

func TestLogin_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testAdmin(t, "correct-pw"))
	svc := newTestService(store)

	_, err1 := svc.Login(context.Background(), "admin@example.com", "wrong-pw")
	_, err2 := svc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err1, ErrInvalidCredentials)
	assert.ErrorIs(t, err2, ErrInvalidCredentials)
	assert.Equal(t, err1.Error(), err2.Error())
	assert.Empty(t, store.loginTouches, "failed logins must not touch last_login")
}

func TestLogin_InactiveAccountLooksUnknown(t *testing.T) {
	t.Parallel()

	admin := testAdmin(t, "correct-pw")
	admin.IsActive = false
	svc := newTestService(newFakeAdminStore(admin))

	_, err := svc.Login(context.Background(), "admin@example.com", "correct-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_StoreOutageIsNotBadCredentials(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore()
	store.failWith = errors.New("connection refused")
	svc := newTestService(store)

	_, err := svc.Login(context.Background(), "admin@example.com", "correct-pw")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestSession_RoundTrip(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testAdmin(t, "correct-pw"))
	svc := newTestService(store)

	result, err := svc.Login(context.Background(), "admin@example.com", "correct-pw")
	require.NoError(t, err)

	principal, err := svc.Session(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, "adm_1", principal.ID)
}

func TestSession_EmptyOrGarbageToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeAdminStore(testAdmin(t, "pw")))

	_, err := svc.Session(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Session(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSession_DeactivatedAccountRejectsLiveToken(t *testing.T) {
	t.Parallel()

	admin := testAdmin(t, "correct-pw")
	store := newFakeAdminStore(admin)
	svc := newTestService(store)

	result, err := svc.Login(context.Background(), "admin@example.com", "correct-pw")
	require.NoError(t, err)

	// Deactivate after the token was issued. The token still verifies, but
	// session introspection must reject it.
	admin.IsActive = false
	store.admins[admin.ID] = admin

	_, err = svc.Session(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestSession_StoreOutage(t *testing.T) {
	t.Parallel()

	store := newFakeAdminStore(testAdmin(t, "correct-pw"))
	svc := newTestService(store)

	result, err := svc.Login(context.Background(), "admin@example.com", "correct-pw")
	require.NoError(t, err)

	store.failWith = errors.New("connection refused")
	_, err = svc.Session(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
