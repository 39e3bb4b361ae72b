package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studio_cms/internal/domain/models"
	"studio_cms/internal/lib/validate"
	"studio_cms/internal/storage"
)

// Repo типизированный репозиторий над коллекцией хранилища.
// Сам назначает _id и метки времени, заполняет значения по умолчанию
// и проверяет документ перед записью.
type Repo[T any, PT models.DocPtr[T]] struct {
	coll      storage.Collection
	validator *validate.Validator
	now       func() time.Time
}

func NewRepo[T any, PT models.DocPtr[T]](coll storage.Collection, v *validate.Validator) *Repo[T, PT] {
	return &Repo[T, PT]{
		coll:      coll,
		validator: v,
		now:       time.Now,
	}
}

// timestamp округляет время до миллисекунд: точнее хранилища не сохраняют
func (r *Repo[T, PT]) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func (r *Repo[T, PT]) List(ctx context.Context, q storage.Query) ([]T, error) {
	const op = "repository.Repo.List"

	var docs []T
	if err := r.coll.Find(ctx, q, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if docs == nil {
		docs = []T{}
	}

	for i := range docs {
		normalize(PT(&docs[i]))
	}

	return docs, nil
}

func (r *Repo[T, PT]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	return r.FindOne(ctx, storage.ByID(id))
}

func (r *Repo[T, PT]) FindOne(ctx context.Context, f storage.Filter) (T, error) {
	const op = "repository.Repo.FindOne"

	var doc T
	if err := r.coll.FindOne(ctx, f, &doc); err != nil {
		return doc, fmt.Errorf("%s: %w", op, err)
	}

	normalize(PT(&doc))

	return doc, nil
}

func (r *Repo[T, PT]) Create(ctx context.Context, doc T) (T, error) {
	const op = "repository.Repo.Create"

	p := PT(&doc)
	normalize(p)

	if err := r.validator.Struct(p); err != nil {
		return doc, fmt.Errorf("%s: %w", op, err)
	}

	now := r.timestamp()
	meta := p.Meta()
	meta.ID = primitive.NewObjectID()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if err := r.coll.Insert(ctx, p); err != nil {
		return doc, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

// Update применяет patch к документу, подходящему под фильтр. Документ не создаётся.
func (r *Repo[T, PT]) Update(ctx context.Context, f storage.Filter, patch map[string]any) (T, error) {
	const op = "repository.Repo.Update"

	set := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		if k == "_id" || k == "createdAt" {
			continue
		}
		set[k] = v
	}
	set["updatedAt"] = r.timestamp()

	var doc T
	if err := r.coll.Update(ctx, f, set, &doc); err != nil {
		return doc, fmt.Errorf("%s: %w", op, err)
	}

	normalize(PT(&doc))

	return doc, nil
}

// Upsert меняет в документе, подходящем под фильтр, только поля patch
// или создаёт новый документ из defaults, поверх которых наложен patch.
// Ключ "counters.cities" меняет одно поле вложенного документа, ключ без точки
// заменяет значение целиком. Проверяется итоговый документ.
func (r *Repo[T, PT]) Upsert(ctx context.Context, f storage.Filter, patch map[string]any, defaults T) (T, error) {
	const op = "repository.Repo.Upsert"

	var zero T

	changes, err := encodePatch(patch)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	var current T
	err = r.coll.FindOne(ctx, f, &current)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		current = defaults
	case err != nil:
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	normalize(PT(&current))

	base, err := fields(PT(&current))
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	touched, err := merge(base, changes)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	var merged T
	if err := decode(base, &merged); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	normalize(PT(&merged))

	if err := r.validator.Struct(PT(&merged)); err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	full, err := fields(PT(&merged))
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}

	now := r.timestamp()

	set := make(map[string]any, len(touched)+1)
	for _, k := range touched {
		set[k] = full[k]
	}
	set["updatedAt"] = now

	setOnInsert := map[string]any{"createdAt": now}
	for k, v := range full {
		if _, ok := set[k]; ok {
			continue
		}
		if _, ok := f.Eq[k]; ok {
			continue
		}
		if k == "_id" || k == "createdAt" {
			continue
		}
		setOnInsert[k] = v
	}
	if _, ok := f.ID(); !ok {
		setOnInsert["_id"] = primitive.NewObjectID()
	}

	var saved T
	if err := r.coll.Upsert(ctx, f, set, setOnInsert, &saved); err != nil {
		return saved, fmt.Errorf("%s: %w", op, err)
	}

	normalize(PT(&saved))

	return saved, nil
}

func (r *Repo[T, PT]) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "repository.Repo.Delete"

	if err := r.coll.Delete(ctx, storage.ByID(id)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func normalize(doc any) {
	if n, ok := doc.(models.Normalizer); ok {
		n.Normalize()
	}
}

// fields раскладывает документ на поля верхнего уровня по bson-тегам
func fields(doc any) (map[string]any, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	return m, nil
}

// encodePatch приводит значения patch к bson: структуры становятся документами
func encodePatch(patch map[string]any) (bson.M, error) {
	out := make(bson.M, len(patch))

	for k, v := range patch {
		top := strings.SplitN(k, ".", 2)[0]
		if top == "_id" || top == "createdAt" || top == "updatedAt" {
			continue
		}

		m, err := fields(bson.M{"v": v})
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
		out[k] = m["v"]
	}

	return out, nil
}

func decode(m bson.M, out any) error {
	raw, err := bson.Marshal(m)
	if err != nil {
		return err
	}

	return bson.Unmarshal(raw, out)
}

// merge записывает changes в doc и возвращает затронутые поля верхнего уровня
func merge(doc, changes bson.M) ([]string, error) {
	touched := make([]string, 0, len(changes))
	seen := make(map[string]bool, len(changes))

	for k, v := range changes {
		path := strings.Split(k, ".")

		parent := doc
		for _, name := range path[:len(path)-1] {
			child, ok := asM(parent[name])
			if !ok {
				if parent[name] != nil {
					return nil, fmt.Errorf("field %s is not a document", k)
				}
				child = bson.M{}
			}
			parent[name] = child
			parent = child
		}
		parent[path[len(path)-1]] = v

		if !seen[path[0]] {
			seen[path[0]] = true
			touched = append(touched, path[0])
		}
	}

	return touched, nil
}

func asM(v any) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]any:
		return bson.M(d), true
	case bson.D:
		return d.Map(), true
	default:
		return nil, false
	}
}

// IsNotFound сообщает, что документ не найден
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
