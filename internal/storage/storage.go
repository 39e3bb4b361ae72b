package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrConnection   = errors.New("storage unavailable")
)

// Filter условия выборки. Все условия объединяются через AND.
type Filter struct {
	// Eq точное совпадение значения поля
	Eq map[string]any
	// AnyOf поле-массив содержит хотя бы одно из значений
	AnyOf map[string][]string
}

func ByID(id primitive.ObjectID) Filter {
	return Eq("_id", id)
}

func Eq(field string, value any) Filter {
	return Filter{Eq: map[string]any{field: value}}
}

// And добавляет условие равенства, не изменяя исходный фильтр
func (f Filter) And(field string, value any) Filter {
	eq := make(map[string]any, len(f.Eq)+1)
	for k, v := range f.Eq {
		eq[k] = v
	}
	eq[field] = value

	return Filter{Eq: eq, AnyOf: f.AnyOf}
}

// ID возвращает _id, если фильтр его фиксирует
func (f Filter) ID() (primitive.ObjectID, bool) {
	id, ok := f.Eq["_id"].(primitive.ObjectID)
	return id, ok
}

type SortField struct {
	Field string
	Desc  bool
}

type Query struct {
	Filter Filter
	Sort   []SortField
	Limit  int64
}

// UniqueIndex уникальное поле коллекции. Нарушение даёт ErrDuplicateKey.
type UniqueIndex struct {
	Collection string
	Field      string
}

// Collection коллекция документов. Документы передаются как структуры с bson-тегами,
// результаты декодируются в out (указатель на структуру или на срез структур).
type Collection interface {
	Insert(ctx context.Context, doc any) error
	Find(ctx context.Context, q Query, out any) error
	FindOne(ctx context.Context, f Filter, out any) error
	// Update применяет set к первому подходящему документу; ErrNotFound, если такого нет.
	Update(ctx context.Context, f Filter, set map[string]any, out any) error
	// Upsert обновляет поля set или создаёт документ из set и setOnInsert.
	Upsert(ctx context.Context, f Filter, set, setOnInsert map[string]any, out any) error
	Delete(ctx context.Context, f Filter) error
}

type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
