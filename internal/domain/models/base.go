package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document реализуется всеми сущностями, которые хранятся в коллекциях.
type Document interface {
	Meta() *Base
}

// DocPtr связывает тип сущности с указателем на неё, чтобы generic-код
// мог добраться до служебных полей.
type DocPtr[T any] interface {
	*T
	Document
}

// Normalizer заполняет значения по умолчанию: пустые массивы вместо nil,
// значения перечислений по умолчанию.
type Normalizer interface {
	Normalize()
}

// Base содержит служебные поля любого документа
type Base struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (b *Base) Meta() *Base {
	return b
}

// Asset ссылка на файл во внешнем медиа-хостинге
type Asset struct {
	URL      string `json:"url" bson:"url" validate:"omitempty,url"`
	PublicID string `json:"publicId" bson:"publicId"`
}

// RequiredAsset то же, что Asset, но url обязателен
type RequiredAsset struct {
	URL      string `json:"url" bson:"url" validate:"required,url"`
	PublicID string `json:"publicId" bson:"publicId"`
}

func orEmpty[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
