package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/jwt"
	"studio_cms/internal/lib/logger/handlers/slogdiscard"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/storage"
)

const (
	testSecret   = "test-secret"
	testPassword = "correct-horse"
)

type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	args := m.Called(ctx, admin)
	return args.Get(0).(models.Admin), args.Error(1)
}

func (m *MockAdminRepository) AdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Admin), args.Error(1)
}

func (m *MockAdminRepository) AdminByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Admin), args.Error(1)
}

type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func testAdmin(t *testing.T) models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return models.Admin{
		Base:         models.Base{ID: primitive.NewObjectID()},
		Email:        "owner@studio.test",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
}

func setupAuth() (*Auth, *MockAdminRepository, *MockTokenRepository) {
	admins := new(MockAdminRepository)
	tokens := new(MockTokenRepository)

	return New(slogdiscard.NewDiscardLogger(), admins, tokens, testSecret, time.Hour), admins, tokens
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t)

	t.Run("success", func(t *testing.T) {
		a, admins, _ := setupAuth()
		admins.On("AdminByEmail", ctx, admin.Email).Return(admin, nil)

		token, principal, err := a.Login(ctx, admin.Email, testPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, admin.Email, principal.Email)
		assert.Equal(t, models.RoleAdmin, principal.Role)
		assert.Equal(t, admin.ID.Hex(), principal.AdminID)
		assert.NotEmpty(t, principal.TokenID)

		claims, err := jwt.ParseToken(token, []byte(testSecret))
		require.NoError(t, err)
		assert.Equal(t, admin.ID.Hex(), claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		a, admins, _ := setupAuth()
		admins.On("AdminByEmail", ctx, admin.Email).Return(admin, nil)

		_, _, err := a.Login(ctx, admin.Email, "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		a, admins, _ := setupAuth()
		admins.On("AdminByEmail", ctx, "nobody@studio.test").Return(models.Admin{}, storage.ErrNotFound)

		_, _, err := a.Login(ctx, "nobody@studio.test", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage failure", func(t *testing.T) {
		a, admins, _ := setupAuth()
		admins.On("AdminByEmail", ctx, admin.Email).Return(models.Admin{}, storage.ErrConnection)

		_, _, err := a.Login(ctx, admin.Email, testPassword)
		assert.ErrorIs(t, err, storage.ErrConnection)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t)

	issue := func(t *testing.T, secret string, ttl time.Duration, now time.Time) (string, *jwt.Claims) {
		token, claims, err := jwt.NewToken(admin, []byte(secret), ttl, now)
		require.NoError(t, err)
		return token, claims
	}

	t.Run("valid token", func(t *testing.T) {
		a, admins, tokens := setupAuth()
		token, claims := issue(t, testSecret, time.Hour, time.Now())

		tokens.On("IsTokenRevoked", ctx, claims.ID).Return(false, nil)
		admins.On("AdminByID", ctx, admin.ID).Return(admin, nil)

		principal, err := a.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, admin.Email, principal.Email)
		assert.Equal(t, claims.ID, principal.TokenID)
	})

	unauthorized := []struct {
		name  string
		setup func(t *testing.T, admins *MockAdminRepository, tokens *MockTokenRepository) string
	}{
		{
			name: "missing token",
			setup: func(t *testing.T, _ *MockAdminRepository, _ *MockTokenRepository) string {
				return ""
			},
		},
		{
			name: "malformed token",
			setup: func(t *testing.T, _ *MockAdminRepository, _ *MockTokenRepository) string {
				return "not-a-jwt"
			},
		},
		{
			name: "foreign secret",
			setup: func(t *testing.T, _ *MockAdminRepository, _ *MockTokenRepository) string {
				token, _ := issue(t, "other-secret", time.Hour, time.Now())
				return token
			},
		},
		{
			name: "expired",
			setup: func(t *testing.T, _ *MockAdminRepository, _ *MockTokenRepository) string {
				token, _ := issue(t, testSecret, time.Hour, time.Now().Add(-2*time.Hour))
				return token
			},
		},
		{
			name: "revoked",
			setup: func(t *testing.T, _ *MockAdminRepository, tokens *MockTokenRepository) string {
				token, claims := issue(t, testSecret, time.Hour, time.Now())
				tokens.On("IsTokenRevoked", ctx, claims.ID).Return(true, nil)
				return token
			},
		},
		{
			name: "admin deleted",
			setup: func(t *testing.T, admins *MockAdminRepository, tokens *MockTokenRepository) string {
				token, claims := issue(t, testSecret, time.Hour, time.Now())
				tokens.On("IsTokenRevoked", ctx, claims.ID).Return(false, nil)
				admins.On("AdminByID", ctx, admin.ID).Return(models.Admin{}, storage.ErrNotFound)
				return token
			},
		},
	}

	for _, tt := range unauthorized {
		t.Run(tt.name, func(t *testing.T) {
			a, admins, tokens := setupAuth()
			token := tt.setup(t, admins, tokens)

			_, err := a.Authenticate(ctx, token)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}

	t.Run("revocation store failure", func(t *testing.T) {
		a, _, tokens := setupAuth()
		token, claims := issue(t, testSecret, time.Hour, time.Now())

		errRedis := errors.New("redis down")
		tokens.On("IsTokenRevoked", ctx, claims.ID).Return(false, errRedis)

		_, err := a.Authenticate(ctx, token)
		assert.ErrorIs(t, err, errRedis)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	admin := testAdmin(t)

	t.Run("revokes until expiry", func(t *testing.T) {
		a, _, tokens := setupAuth()
		token, claims, err := jwt.NewToken(admin, []byte(testSecret), time.Hour, time.Now())
		require.NoError(t, err)

		tokens.On("RevokeToken", ctx, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 59*time.Minute && ttl <= time.Hour
		})).Return(nil)

		require.NoError(t, a.Logout(ctx, token))
		tokens.AssertExpectations(t)
	})

	t.Run("unreadable token", func(t *testing.T) {
		a, _, tokens := setupAuth()

		assert.NoError(t, a.Logout(ctx, "garbage"))
		assert.NoError(t, a.Logout(ctx, ""))
		tokens.AssertNotCalled(t, "RevokeToken", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegisterAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		a, admins, _ := setupAuth()

		admins.On("SaveAdmin", ctx, mock.MatchedBy(func(admin models.Admin) bool {
			return admin.Email == "new@studio.test" &&
				admin.Role == models.RoleEditor &&
				bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(testPassword)) == nil
		})).Return(models.Admin{Base: models.Base{ID: primitive.NewObjectID()}, Email: "new@studio.test"}, nil)

		admin, err := a.RegisterAdmin(ctx, "new@studio.test", testPassword, models.RoleEditor)
		require.NoError(t, err)
		assert.Equal(t, "new@studio.test", admin.Email)
		admins.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		a, admins, _ := setupAuth()
		admins.On("SaveAdmin", ctx, mock.Anything).Return(models.Admin{}, storage.ErrDuplicateKey)

		_, err := a.RegisterAdmin(ctx, "owner@studio.test", testPassword, models.RoleAdmin)
		assert.ErrorIs(t, err, ErrAdminExists)
	})

	t.Run("short password", func(t *testing.T) {
		a, admins, _ := setupAuth()

		_, err := a.RegisterAdmin(ctx, "owner@studio.test", "short", models.RoleAdmin)
		assert.True(t, validate.IsValidationError(err))
		admins.AssertNotCalled(t, "SaveAdmin", mock.Anything, mock.Anything)
	})
}
