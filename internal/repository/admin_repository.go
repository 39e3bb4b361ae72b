package repository

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/storage"
)

type AdminRepo struct {
	repo *Repo[models.Admin, *models.Admin]
}

func NewAdminRepo(repo *Repo[models.Admin, *models.Admin]) *AdminRepo {
	return &AdminRepo{repo: repo}
}

// SaveAdmin сохраняет администратора. Email приводится к нижнему регистру,
// повторный email даёт storage.ErrDuplicateKey.
func (r *AdminRepo) SaveAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	const op = "repository.AdminRepo.SaveAdmin"

	admin.Email = normalizeEmail(admin.Email)

	saved, err := r.repo.Create(ctx, admin)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (r *AdminRepo) AdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	const op = "repository.AdminRepo.AdminByEmail"

	admin, err := r.repo.FindOne(ctx, storage.Eq("email", normalizeEmail(email)))
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

func (r *AdminRepo) AdminByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	const op = "repository.AdminRepo.AdminByID"

	admin, err := r.repo.Get(ctx, id)
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
