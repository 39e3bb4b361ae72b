// Package content общий сервис для всех ресурсов сайта: список, создание,
// изменение по id или уникальному ключу, документы-одиночки.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/lib/logger/sl"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/storage"
)

var ErrNotSingleton = errors.New("resource is not a singleton")

type Repository[T any] interface {
	List(ctx context.Context, q storage.Query) ([]T, error)
	Get(ctx context.Context, id primitive.ObjectID) (T, error)
	FindOne(ctx context.Context, f storage.Filter) (T, error)
	Create(ctx context.Context, doc T) (T, error)
	Update(ctx context.Context, f storage.Filter, patch map[string]any) (T, error)
	Upsert(ctx context.Context, f storage.Filter, patch map[string]any, defaults T) (T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// NewestFirst сортировка по умолчанию
var NewestFirst = []storage.SortField{{Field: "createdAt", Desc: true}}

type Service[T any] struct {
	log      *slog.Logger
	resource string
	repo     Repository[T]
	sort     []storage.SortField

	singletonID  primitive.ObjectID
	singletonDef func() T
}

type Option[T any] func(*Service[T])

// WithSort задаёт порядок списка вместо NewestFirst
func WithSort[T any](fields ...storage.SortField) Option[T] {
	return func(s *Service[T]) {
		s.sort = fields
	}
}

// WithSingleton делает ресурс документом-одиночкой с фиксированным _id.
// def возвращается, пока документ ни разу не сохранялся.
func WithSingleton[T any](id primitive.ObjectID, def func() T) Option[T] {
	return func(s *Service[T]) {
		s.singletonID = id
		s.singletonDef = def
	}
}

func New[T any](log *slog.Logger, resource string, repo Repository[T], opts ...Option[T]) *Service[T] {
	s := &Service[T]{
		log:      log.With(slog.String("resource", resource)),
		resource: resource,
		repo:     repo,
		sort:     NewestFirst,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service[T]) List(ctx context.Context, f storage.Filter, limit int64) ([]T, error) {
	const op = "content.Service.List"

	log := s.log.With(slog.String("op", op))

	docs, err := s.repo.List(ctx, storage.Query{Filter: f, Sort: s.sort, Limit: limit})
	if err != nil {
		log.Error("failed to list documents", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("documents listed", slog.Int("count", len(docs)))

	return docs, nil
}

func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	const op = "content.Service.Get"

	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id),
	)

	var zero T

	oid, err := parseID(id)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	doc, err := s.repo.Get(ctx, oid)
	if err != nil {
		s.logFailure(log, "failed to get document", err)

		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

func (s *Service[T]) Create(ctx context.Context, doc T) (T, error) {
	const op = "content.Service.Create"

	log := s.log.With(slog.String("op", op))

	log.Info("creating document")

	created, err := s.repo.Create(ctx, doc)
	if err != nil {
		s.logFailure(log, "failed to create document", err)

		return created, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("document created")

	return created, nil
}

// Update изменяет переданные поля документа с указанным id; не создаёт документ
func (s *Service[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	const op = "content.Service.Update"

	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id),
	)

	var zero T

	oid, err := parseID(id)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("updating document", slog.Int("fields", len(patch)))

	updated, err := s.repo.Update(ctx, storage.ByID(oid), patch)
	if err != nil {
		s.logFailure(log, "failed to update document", err)

		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// UpdateByKey то же, что Update, но документ ищется по уникальному полю
func (s *Service[T]) UpdateByKey(ctx context.Context, field, value string, patch map[string]any) (T, error) {
	const op = "content.Service.UpdateByKey"

	log := s.log.With(
		slog.String("op", op),
		slog.String(field, value),
	)

	log.Info("updating document", slog.Int("fields", len(patch)))

	updated, err := s.repo.Update(ctx, storage.Eq(field, value), patch)
	if err != nil {
		s.logFailure(log, "failed to update document", err)

		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// UpsertByKey создаёт документ с ключом или заменяет переданные поля существующего
func (s *Service[T]) UpsertByKey(ctx context.Context, field, value string, patch map[string]any) (T, error) {
	const op = "content.Service.UpsertByKey"

	log := s.log.With(
		slog.String("op", op),
		slog.String(field, value),
	)

	log.Info("upserting document", slog.Int("fields", len(patch)))

	set := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		set[k] = v
	}
	set[field] = value

	var defaults T
	saved, err := s.repo.Upsert(ctx, storage.Eq(field, value), set, defaults)
	if err != nil {
		s.logFailure(log, "failed to upsert document", err)

		var zero T
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Service[T]) GetSingleton(ctx context.Context) (T, error) {
	const op = "content.Service.GetSingleton"

	log := s.log.With(slog.String("op", op))

	var zero T
	if s.singletonDef == nil {
		return zero, fmt.Errorf("%s: %w", op, ErrNotSingleton)
	}

	doc, err := s.repo.Get(ctx, s.singletonID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Debug("singleton not saved yet, returning defaults")

			return s.singletonDef(), nil
		}
		log.Error("failed to get singleton", sl.Err(err))

		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

// UpsertSingleton меняет переданные поля; при первом сохранении остальные берутся из значений по умолчанию
func (s *Service[T]) UpsertSingleton(ctx context.Context, patch map[string]any) (T, error) {
	const op = "content.Service.UpsertSingleton"

	log := s.log.With(slog.String("op", op))

	var zero T
	if s.singletonDef == nil {
		return zero, fmt.Errorf("%s: %w", op, ErrNotSingleton)
	}

	log.Info("saving singleton", slog.Int("fields", len(patch)))

	saved, err := s.repo.Upsert(ctx, storage.ByID(s.singletonID), patch, s.singletonDef())
	if err != nil {
		s.logFailure(log, "failed to save singleton", err)

		return zero, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	const op = "content.Service.Delete"

	log := s.log.With(
		slog.String("op", op),
		slog.String("id", id),
	)

	oid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Delete(ctx, oid); err != nil {
		s.logFailure(log, "failed to delete document", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("document deleted")

	return nil
}

// logFailure пишет ошибки клиента предупреждением, остальные ошибкой
func (s *Service[T]) logFailure(log *slog.Logger, msg string, err error) {
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrDuplicateKey) || validate.IsValidationError(err) {
		log.Warn(msg, sl.Err(err))
		return
	}

	log.Error(msg, sl.Err(err))
}

// parseID: некорректный id не может совпасть ни с одним документом
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", storage.ErrNotFound, id)
	}

	return oid, nil
}
