package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type ObjectID = primitive.ObjectID

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media произвольный медиафайл (фото или видео)
type Media struct {
	Base       `bson:",inline"`
	Type       MediaType `json:"type" bson:"type" validate:"required,oneof=image video"`
	Category   string    `json:"category" bson:"category" validate:"required"`
	URL        string    `json:"url" bson:"url" validate:"required,url"`
	PublicID   string    `json:"publicId" bson:"publicId"`
	Tags       []string  `json:"tags" bson:"tags"`
	IsHomepage bool      `json:"isHomepage" bson:"isHomepage"`
}

func (m *Media) Normalize() {
	m.Tags = orEmpty(m.Tags)
}

// Reel короткое видео
type Reel struct {
	Base           `bson:",inline"`
	Title          string `json:"title" bson:"title" validate:"required"`
	VideoURL       string `json:"videoUrl" bson:"videoUrl" validate:"required,url"`
	PublicID       string `json:"publicId" bson:"publicId"`
	ThumbnailURL   string `json:"thumbnailUrl" bson:"thumbnailUrl" validate:"omitempty,url"`
	ShowOnHomepage bool   `json:"showOnHomepage" bson:"showOnHomepage"`
}

// Film свадебный фильм
type Film struct {
	Base        `bson:",inline"`
	Title       string `json:"title" bson:"title" validate:"required"`
	CoupleNames string `json:"coupleNames" bson:"coupleNames"`
	VideoURL    string `json:"videoUrl" bson:"videoUrl" validate:"required,url"`
	PublicID    string `json:"publicId" bson:"publicId"`
	Thumbnail   Asset  `json:"thumbnail" bson:"thumbnail"`
	Location    string `json:"location" bson:"location"`
	IsFeatured  bool   `json:"isFeatured" bson:"isFeatured"`
}
