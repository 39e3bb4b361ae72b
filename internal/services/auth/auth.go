package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/jwt"
	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/storage"
)

var (
	// ErrUnauthorized единая ошибка для отсутствующего, испорченного,
	// просроченного или отозванного токена и неизвестного администратора
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin already exists")
)

const minPasswordLen = 8

// dummyHash сравнивается с паролем, когда администратор не найден,
// чтобы время ответа не выдавало существование email
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("studio-cms-dummy-password"), bcrypt.DefaultCost)

type AdminRepository interface {
	SaveAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	AdminByEmail(ctx context.Context, email string) (models.Admin, error)
	AdminByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error)
}

type TokenRepository interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Auth struct {
	log      *slog.Logger
	admins   AdminRepository
	tokens   TokenRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func New(log *slog.Logger, admins AdminRepository, tokens TokenRepository, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		log:      log,
		admins:   admins,
		tokens:   tokens,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// TokenTTL срок жизни выдаваемых токенов, он же срок жизни cookie
func (a *Auth) TokenTTL() time.Duration {
	return a.tokenTTL
}

// Login проверяет пароль и выпускает токен администратора
func (a *Auth) Login(ctx context.Context, email, password string) (string, models.Principal, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login admin")

	admin, err := a.admins.AdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			log.Warn("admin not found")

			return "", models.Principal{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get admin", sl.Err(err))

		return "", models.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return "", models.Principal{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, claims, err := jwt.NewToken(admin, a.secret, a.tokenTTL, a.now())
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return "", models.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in successfully")

	return token, principal(admin, claims), nil
}

// Authenticate проверяет токен из cookie и возвращает администратора.
// Любая причина отказа сводится к ErrUnauthorized.
func (a *Auth) Authenticate(ctx context.Context, token string) (models.Principal, error) {
	const op = "auth.Authenticate"

	log := a.log.With(slog.String("op", op))

	if token == "" {
		return models.Principal{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	claims, err := jwt.ParseToken(token, a.secret)
	if err != nil {
		log.Debug("token rejected", sl.Err(err))

		return models.Principal{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	revoked, err := a.tokens.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		log.Error("failed to check token revocation", sl.Err(err))

		return models.Principal{}, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		log.Debug("token revoked", slog.String("jti", claims.ID))

		return models.Principal{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	adminID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		log.Debug("malformed subject", sl.Err(err))

		return models.Principal{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	admin, err := a.admins.AdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("admin from token not found", slog.String("admin_id", claims.Subject))

			return models.Principal{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
		log.Error("failed to get admin", sl.Err(err))

		return models.Principal{}, fmt.Errorf("%s: %w", op, err)
	}

	return principal(admin, claims), nil
}

// Logout отзывает токен до истечения его срока. Нечитаемый токен игнорируется:
// такой cookie всё равно не пройдёт Authenticate.
func (a *Auth) Logout(ctx context.Context, token string) error {
	const op = "auth.Logout"

	log := a.log.With(slog.String("op", op))

	if token == "" {
		return nil
	}

	claims, err := jwt.ParseToken(token, a.secret)
	if err != nil {
		log.Debug("logout with unreadable token", sl.Err(err))

		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(a.now())
	if ttl <= 0 {
		return nil
	}

	if err := a.tokens.RevokeToken(ctx, claims.ID, ttl); err != nil {
		log.Error("failed to revoke token", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged out", slog.String("admin_id", claims.Subject))

	return nil
}

// RegisterAdmin создаёт администратора; используется утилитой create_admin
func (a *Auth) RegisterAdmin(ctx context.Context, email, password string, role models.AdminRole) (models.Admin, error) {
	const op = "auth.RegisterAdmin"

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("registering admin")

	if len(password) < minPasswordLen {
		return models.Admin{}, fmt.Errorf("%s: %w", op,
			validate.NewError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLen)))
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	admin, err := a.admins.SaveAdmin(ctx, models.Admin{
		Email:        email,
		PasswordHash: string(passHash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			log.Warn("admin already exists")

			return models.Admin{}, fmt.Errorf("%s: %w", op, ErrAdminExists)
		}
		log.Error("failed to save admin", sl.Err(err))

		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin registered", slog.String("admin_id", admin.ID.Hex()))

	return admin, nil
}

func principal(admin models.Admin, claims *jwt.Claims) models.Principal {
	return models.Principal{
		AdminID:   admin.ID.Hex(),
		Email:     admin.Email,
		Role:      admin.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}
