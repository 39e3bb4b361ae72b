package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/domain/models"
)

type AdminRepository interface {
	SaveAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	AdminByEmail(ctx context.Context, email string) (models.Admin, error)
	AdminByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error)
}

type TokenRepository interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

var (
	_ AdminRepository = (*AdminRepo)(nil)
	_ TokenRepository = (*RedisTokenRepo)(nil)
	_ TokenRepository = (*MemoryTokenRepo)(nil)
)
