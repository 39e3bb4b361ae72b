package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/repository"
	redisapp "studio_cms/internal/storage/redis"
	"studio_cms/internal/storage"
	"studio_cms/internal/storage/memory"
)

var testCtx = context.Background()

func setupRepository(t *testing.T) *repository.Repository {
	t.Helper()

	store := memory.New(repository.UniqueIndexes()...)
	t.Cleanup(func() { _ = store.Close(testCtx) })

	return repository.NewRepository(store, validate.New())
}

func fakeGallery(highlight bool) models.Gallery {
	return models.Gallery{
		Title:       gofakeit.Sentence(2),
		ImageURL:    gofakeit.URL(),
		Category:    "wedding",
		IsHighlight: highlight,
	}
}

func TestRepo_CreateAndList(t *testing.T) {
	repo := setupRepository(t)

	created, err := repo.Gallery.Create(testCtx, fakeGallery(true))
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	list, err := repo.Gallery.List(testCtx, storage.Query{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, created.ImageURL, list[0].ImageURL)
	assert.True(t, created.CreatedAt.Equal(list[0].CreatedAt))
}

func TestRepo_ListEmptyIsNotNil(t *testing.T) {
	repo := setupRepository(t)

	list, err := repo.Stories.List(testCtx, storage.Query{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRepo_CreateFillsDefaults(t *testing.T) {
	repo := setupRepository(t)

	created, err := repo.Media.Create(testCtx, models.Media{
		Type:     models.MediaTypeImage,
		Category: "portrait",
		URL:      gofakeit.URL(),
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Tags)

	got, err := repo.Media.Get(testCtx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Tags)
}

func TestRepo_CreateRejectsInvalid(t *testing.T) {
	repo := setupRepository(t)

	invalid := fakeGallery(false)
	invalid.ImageURL = ""

	_, err := repo.Gallery.Create(testCtx, invalid)
	require.Error(t, err)
	assert.True(t, validate.IsValidationError(err))

	list, err := repo.Gallery.List(testCtx, storage.Query{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepo_Update(t *testing.T) {
	repo := setupRepository(t)

	created, err := repo.Gallery.Create(testCtx, fakeGallery(false))
	require.NoError(t, err)

	t.Run("existing document", func(t *testing.T) {
		updated, err := repo.Gallery.Update(testCtx, storage.ByID(created.ID), map[string]any{
			"isHighlight": true,
			"createdAt":   time.Time{},
		})
		require.NoError(t, err)

		assert.True(t, updated.IsHighlight)
		assert.Equal(t, created.ImageURL, updated.ImageURL)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := repo.Gallery.Update(testCtx, storage.ByID(primitive.NewObjectID()), map[string]any{"title": "x"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.True(t, repository.IsNotFound(err))

		list, err := repo.Gallery.List(testCtx, storage.Query{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestRepo_UpsertByKey(t *testing.T) {
	repo := setupRepository(t)
	filter := storage.Eq("key", "hero-intro")

	first, err := repo.Sections.Upsert(testCtx, filter, map[string]any{
		"key":   "hero-intro",
		"title": "first",
		"order": 3,
		"extra": map[string]any{"cta": "Book now"},
	}, models.Section{})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Order)

	second, err := repo.Sections.Upsert(testCtx, filter, map[string]any{
		"key":   "hero-intro",
		"title": "second",
	}, models.Section{})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "second", second.Title)
	assert.Equal(t, 3, second.Order, "fields missing from the request are kept")
	assert.Equal(t, "Book now", second.Extra["cta"])
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.NotNil(t, second.Images)

	list, err := repo.Sections.List(testCtx, storage.Query{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Order)
}

func TestRepo_UpsertNewDocumentGetsDefaults(t *testing.T) {
	repo := setupRepository(t)

	saved, err := repo.Sections.Upsert(testCtx, storage.Eq("key", "cta"),
		map[string]any{"key": "cta", "title": "Book"}, models.Section{})
	require.NoError(t, err)

	assert.False(t, saved.ID.IsZero())
	assert.Equal(t, "cta", saved.Key)
	assert.Zero(t, saved.Order)
	assert.Equal(t, []models.Asset{}, saved.Images)
	assert.Equal(t, map[string]any{}, saved.Extra)
}

func TestRepo_UpsertSingleton(t *testing.T) {
	repo := setupRepository(t)
	filter := storage.ByID(models.SettingID)

	_, err := repo.Settings.Upsert(testCtx, filter, map[string]any{
		"whatsappNumber":    "+1 555 123 4567",
		"counters.weddings": 10,
	}, *models.DefaultSetting())
	require.NoError(t, err)

	saved, err := repo.Settings.Upsert(testCtx, filter, map[string]any{
		"counters.cities": 2,
	}, *models.DefaultSetting())
	require.NoError(t, err)

	assert.Equal(t, models.SettingID, saved.ID)
	assert.Equal(t, 10, saved.Counters.Weddings)
	assert.Equal(t, 2, saved.Counters.Cities)
	assert.Equal(t, "+1 555 123 4567", saved.WhatsAppNumber)

	list, err := repo.Settings.List(testCtx, storage.Query{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepo_UpsertValidatesMergedDocument(t *testing.T) {
	repo := setupRepository(t)
	filter := storage.ByID(models.SettingID)

	_, err := repo.Settings.Upsert(testCtx, filter, map[string]any{"counters.weddings": -1}, *models.DefaultSetting())
	assert.True(t, validate.IsValidationError(err))

	_, err = repo.Settings.Get(testCtx, models.SettingID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRepo_Delete(t *testing.T) {
	repo := setupRepository(t)

	a, err := repo.Gallery.Create(testCtx, fakeGallery(false))
	require.NoError(t, err)
	b, err := repo.Gallery.Create(testCtx, fakeGallery(false))
	require.NoError(t, err)

	require.NoError(t, repo.Gallery.Delete(testCtx, a.ID))

	_, err = repo.Gallery.Get(testCtx, b.ID)
	assert.NoError(t, err)

	err = repo.Gallery.Delete(testCtx, a.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAdminRepo(t *testing.T) {
	repo := setupRepository(t)

	saved, err := repo.Admins.SaveAdmin(testCtx, models.Admin{
		Email:        "  Owner@Studio.TEST ",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@studio.test", saved.Email)
	assert.Equal(t, models.RoleAdmin, saved.Role)

	t.Run("by email is case insensitive", func(t *testing.T) {
		got, err := repo.Admins.AdminByEmail(testCtx, "OWNER@studio.test")
		require.NoError(t, err)
		assert.Equal(t, saved.ID, got.ID)
		assert.Equal(t, "hash", got.PasswordHash)
	})

	t.Run("by id", func(t *testing.T) {
		got, err := repo.Admins.AdminByID(testCtx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.Email, got.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := repo.Admins.SaveAdmin(testCtx, models.Admin{Email: "owner@studio.test", PasswordHash: "other"})
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := repo.Admins.AdminByID(testCtx, primitive.NewObjectID())
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func NewMockClient() (*redisapp.Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return &redisapp.Client{Client: db}, mock
}

func TestRedisTokenRepo(t *testing.T) {
	client, mock := NewMockClient()
	repo := repository.NewRedisTokenRepo(client)
	ttl := time.Hour

	t.Run("revoke", func(t *testing.T) {
		mock.ExpectSet("revoked:jti-1", "1", ttl).SetVal("OK")
		assert.NoError(t, repo.RevokeToken(testCtx, "jti-1", ttl))
	})

	t.Run("revoked token", func(t *testing.T) {
		mock.ExpectGet("revoked:jti-1").SetVal("1")
		revoked, err := repo.IsTokenRevoked(testCtx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("unknown token", func(t *testing.T) {
		mock.ExpectGet("revoked:jti-2").RedisNil()
		revoked, err := repo.IsTokenRevoked(testCtx, "jti-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectGet("revoked:jti-3").SetErr(redis.ErrClosed)
		_, err := repo.IsTokenRevoked(testCtx, "jti-3")
		assert.ErrorIs(t, err, redis.ErrClosed)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryTokenRepo(t *testing.T) {
	repo := repository.NewMemoryTokenRepo(time.Minute)

	require.NoError(t, repo.RevokeToken(testCtx, "jti-1", time.Hour))
	require.NoError(t, repo.RevokeToken(testCtx, "jti-expired", 10*time.Millisecond))
	require.NoError(t, repo.RevokeToken(testCtx, "jti-zero", 0))

	revoked, err := repo.IsTokenRevoked(testCtx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsTokenRevoked(testCtx, "jti-zero")
	require.NoError(t, err)
	assert.False(t, revoked)

	assert.Eventually(t, func() bool {
		revoked, _ := repo.IsTokenRevoked(testCtx, "jti-expired")
		return !revoked
	}, time.Second, 5*time.Millisecond)
}
